package imagesink

import "github.com/rayforge/tracer/pkg/core"

// MemorySink accumulates pixels into an in-process buffer, for tests and
// callers that want the raw Color values rather than an encoded image.
// Distinct (x, y) writes touch disjoint slice elements, so no locking is
// needed for the concurrent-safe-per-coordinate contract every ImageSink
// must satisfy.
type MemorySink struct {
	Width, Height int
	Pixels        []core.Color
}

// NewMemorySink allocates a width x height buffer initialized to black.
func NewMemorySink(width, height int) *MemorySink {
	return &MemorySink{Width: width, Height: height, Pixels: make([]core.Color, width*height)}
}

func (s *MemorySink) WritePixel(x, y int, c core.Color) {
	s.Pixels[y*s.Width+x] = c
}

// At returns the color written at (x, y), or Black if nothing was
// written there.
func (s *MemorySink) At(x, y int) core.Color {
	return s.Pixels[y*s.Width+x]
}

// Finalize is a no-op: the buffer is already the finished artifact.
func (s *MemorySink) Finalize() error {
	return nil
}
