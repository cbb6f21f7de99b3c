// Package imagesink implements the named ImageSink collaborator: a pixel
// destination the render loop writes into, decoupled from any particular
// output format.
package imagesink

import "github.com/rayforge/tracer/pkg/core"

// ImageSink receives one final color per pixel, possibly from many
// worker goroutines writing distinct coordinates concurrently, and
// persists or otherwise finalizes the accumulated image once rendering
// completes.
type ImageSink interface {
	WritePixel(x, y int, c core.Color)
	Finalize() error
}
