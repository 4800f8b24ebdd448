package renderer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/df07/go-tiled-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to a stream.
// Bands log from their own goroutines, so writes are serialised.
type DefaultLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// Printf implements core.Logger
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	fmt.Fprintf(dl.out, format, args...)
}

// NewDefaultLogger creates a logger writing to stderr, keeping stdout free
// for image data
func NewDefaultLogger() core.Logger {
	return NewWriterLogger(os.Stderr)
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &DefaultLogger{out: w}
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements core.Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
