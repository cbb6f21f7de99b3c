package imagesink

import (
	"testing"

	"github.com/rayforge/tracer/pkg/core"
)

func TestMemorySink_WriteAndRead(t *testing.T) {
	sink := NewMemorySink(4, 4)
	c := core.NewColor(0.5, 0.25, 0.75)
	sink.WritePixel(2, 3, c)
	if got := sink.At(2, 3); got != c {
		t.Errorf("expected %v, got %v", c, got)
	}
}

func TestMemorySink_UnwrittenPixelsAreBlack(t *testing.T) {
	sink := NewMemorySink(2, 2)
	if got := sink.At(0, 0); got != core.Black {
		t.Errorf("expected unwritten pixel to be black, got %v", got)
	}
}

func TestMemorySink_FinalizeIsNoOp(t *testing.T) {
	sink := NewMemorySink(1, 1)
	if err := sink.Finalize(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
