package imagesink

import (
	"sync"

	"github.com/fogleman/gg"

	"github.com/rayforge/tracer/pkg/core"
)

// GGImageSink is the reference ImageSink implementation, backed by
// fogleman/gg's drawing context. Worker goroutines call WritePixel for
// distinct (x, y) coordinates concurrently; the guarding mutex exists
// because gg.Context itself is not safe for concurrent Fill calls, not
// because of any aliasing between pixels.
type GGImageSink struct {
	mu   sync.Mutex
	ctx  *gg.Context
	path string
}

// NewGGImageSink creates a sink that accumulates into a width x height
// canvas and writes a PNG to path on Finalize.
func NewGGImageSink(width, height int, path string) *GGImageSink {
	return &GGImageSink{ctx: gg.NewContext(width, height), path: path}
}

// WritePixel clamps c to displayable range and paints it at (x, y).
func (s *GGImageSink) WritePixel(x, y int, c core.Color) {
	r, g, b := c.Clamp255()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx.SetRGB255(int(r), int(g), int(b))
	s.ctx.SetPixel(x, y)
	s.ctx.Fill()
}

// Finalize writes the accumulated canvas to disk as a PNG.
func (s *GGImageSink) Finalize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx.SavePNG(s.path)
}
