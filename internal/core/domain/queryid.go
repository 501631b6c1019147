package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Kind distinguishes the two families of query identity.
type Kind uint8

const (
	// KindInput identifies an externally-settable input family.
	KindInput Kind = iota
	// KindDerived identifies a registered derived function.
	KindDerived
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindInput {
		return "input"
	}
	return "derived"
}

// QueryID is the identity tag of one declared computation: an input family
// or a derived function. It is parameterized, at registration time, by the
// computation's argument-type signature so that two computations sharing a
// name but differing in signature never collide.
//
// QueryID is comparable and is used directly as a map key.
type QueryID struct {
	kind Kind
	name string
	sig  uint64
}

// NewQueryID builds a QueryID from a kind, a human name and a signature tag
// (typically a rendering of the argument and value types). The signature is
// folded into a stable 64-bit hash so that the struct stays small and cheap
// to compare and copy.
func NewQueryID(kind Kind, name, signature string) QueryID {
	return QueryID{
		kind: kind,
		name: name,
		sig:  xxhash.Sum64String(signature),
	}
}

// Kind reports whether this identifies an input or a derived function.
func (q QueryID) Kind() Kind { return q.kind }

// Name returns the human-readable registration name.
func (q QueryID) Name() string { return q.name }

// String renders a diagnostic, not necessarily unique, representation.
func (q QueryID) String() string {
	return fmt.Sprintf("%s(%s)#%x", q.kind, q.name, q.sig)
}
