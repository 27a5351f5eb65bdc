package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write forwards output to the vertex's stdout stream.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError stores the error the vertex will be completed with.
func (s *Span) RecordError(err error) {
	s.err = err
}

// SetAttribute records the key-value pair in the vertex output.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End marks the vertex as finished, failed if an error was recorded.
func (s *Span) End() {
	s.vertex.Done(s.err)
}
