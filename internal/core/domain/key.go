package domain

import "fmt"

// DependencyKey is the pair (QueryID, argument tuple) that uniquely
// identifies one memoizable call. Args must hold a comparable concrete
// value - scalar inputs and zero-argument lookups use a nil Args - so that
// DependencyKey itself remains comparable and safe to use as a map key or
// inside a set.
type DependencyKey struct {
	Query QueryID
	Args  any
}

// String renders a diagnostic representation. Ordering of DependencyKeys for
// deterministic diagnostics is defined purely in terms of this string.
func (k DependencyKey) String() string {
	return fmt.Sprintf("%s/%v", k.Query, k.Args)
}

// Less provides a deterministic total order over DependencyKeys, used only
// for sorting diagnostic output (introspection listings, cycle traces).
func (k DependencyKey) Less(other DependencyKey) bool {
	return k.String() < other.String()
}
