package trace

import (
	"fmt"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Hit records that the lookup resolved without recomputation.
func (v *Vertex) Hit(outcome string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "hit: %s\n", outcome)
	v.vertex.Cached()
}

// Recompute records that the user function is about to be invoked.
func (v *Vertex) Recompute() {
	_, _ = fmt.Fprintln(v.vertex.Stdout(), "recompute")
}

// End completes the vertex, optionally recording a failure.
func (v *Vertex) End(err error) {
	v.vertex.Done(err)
}
