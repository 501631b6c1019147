package ports

// Tracer defines the interface for verbose trace logging. It is consulted
// purely for log emission: the engine's validity and recomputation decisions
// never depend on whether a Tracer is wired in, nor on what it does with the
// events it receives.
//
//go:generate go run go.uber.org/mock/mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Begin records the start of a memoized lookup for key (its diagnostic
	// string form). It returns a handle to close out the lookup.
	Begin(key string) Vertex
}

// Vertex represents one in-flight memoized lookup being traced.
type Vertex interface {
	// Hit records that the lookup resolved without recomputation (fresh or
	// revalidated) and annotates the outcome (e.g. "fresh", "valid").
	Hit(outcome string)
	// Recompute records that the user function was invoked.
	Recompute()
	// End completes the vertex, optionally recording a failure.
	End(err error)
}
