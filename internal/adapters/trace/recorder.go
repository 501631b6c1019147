// Package trace implements the optional verbose-trace adapter using
// progrock: a terminal-friendly DAG-of-vertices recorder. The engine
// consults it purely for log emission; wiring a Tracer in or leaving it
// nil never changes a cache decision (see ports.Tracer).
package trace

import (
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/delta/internal/core/ports"
)

// Recorder implements ports.Tracer on top of a progrock tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder writing to a fresh in-memory tape.
func New() ports.Tracer {
	tape := progrock.NewTape()
	return NewRecorder(tape)
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Begin starts a new vertex for one memoized-lookup invocation, identified
// by the DependencyKey's diagnostic string form.
func (r *Recorder) Begin(key string) ports.Vertex {
	d := digest.FromString(key)
	return &Vertex{vertex: r.rec.Vertex(d, key)}
}

// Close flushes and closes the recording session, if the underlying writer
// supports it.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
