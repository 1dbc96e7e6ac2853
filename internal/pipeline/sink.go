package pipeline

import (
	"fmt"
	"io"
)

// Sink receives user-facing progress text from the pipeline. The CLI passes
// a stdout-backed sink; the MCP server passes Discard so tool results stay
// clean without redirecting process streams.
type Sink interface {
	Printf(format string, args ...interface{})
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Printf(format string, args ...interface{}) {
	fmt.Fprintf(s.w, format, args...)
}

// NewSink returns a Sink that writes to w.
func NewSink(w io.Writer) Sink {
	return writerSink{w: w}
}

type discardSink struct{}

func (discardSink) Printf(string, ...interface{}) {}

// Discard swallows all progress output.
var Discard Sink = discardSink{}
