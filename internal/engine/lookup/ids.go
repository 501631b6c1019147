package lookup

import (
	"fmt"

	"go.trai.ch/delta/internal/core/domain"
)

// InputID identifies a scalar input family whose argument tuple is always
// empty: its DependencyKey always carries a nil Args.
type InputID[V any] struct {
	qid domain.QueryID
}

// InputMapID identifies a keyed input family: its DependencyKey carries the
// access key K as Args.
type InputMapID[K comparable, V any] struct {
	qid domain.QueryID
}

// DerivedID identifies one registered derived function, parameterized by
// its argument and value types.
type DerivedID[Args comparable, V any] struct {
	qid domain.QueryID
}

// QueryID exposes the underlying, type-erased identity - for introspection
// and diagnostic collaborators only.
func (id InputID[V]) QueryID() domain.QueryID { return id.qid }

// QueryID exposes the underlying, type-erased identity.
func (id InputMapID[K, V]) QueryID() domain.QueryID { return id.qid }

// QueryID exposes the underlying, type-erased identity.
func (id DerivedID[Args, V]) QueryID() domain.QueryID { return id.qid }

func scalarSignature[V any]() string {
	var v V
	return fmt.Sprintf("scalar:%T", v)
}

func mapSignature[K comparable, V any]() string {
	var k K
	var v V
	return fmt.Sprintf("map[%T]%T", k, v)
}

func derivedSignature[Args comparable, V any]() string {
	var a Args
	var v V
	return fmt.Sprintf("(%T)->%T", a, v)
}
