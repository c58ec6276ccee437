package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-raycaster/pkg/core"
)

// WriterLogger implements core.Logger by formatting render progress onto an
// io.Writer. Write errors are dropped.
type WriterLogger struct {
	out io.Writer
}

func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(wl.out, format, args...)
}

// NewWriterLogger creates a logger that writes to out
func NewWriterLogger(out io.Writer) core.Logger {
	return &WriterLogger{out: out}
}

// NewDefaultLogger creates a logger that writes to stdout
func NewDefaultLogger() core.Logger {
	return NewWriterLogger(os.Stdout)
}

// NopLogger discards all output
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}
