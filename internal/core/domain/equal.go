package domain

import (
	"math"
	"reflect"
)

// ValueEqual is the default equality predicate used both for Early-Exit
// Part 1 (input writes) and Early-Exit Part 2 (derived recomputation). It is
// value-equality, not identity: a top-level float64 or float32 NaN is
// treated as equal to NaN, unlike Go's native == or reflect.DeepEqual. Every
// other value is compared with reflect.DeepEqual, so a NaN nested inside a
// struct, slice or map is not equal to itself.
func ValueEqual(a, b any) bool {
	if af, ok := a.(float64); ok {
		if bf, ok := b.(float64); ok {
			return af == bf || (math.IsNaN(af) && math.IsNaN(bf))
		}
		return false
	}
	if af, ok := a.(float32); ok {
		if bf, ok := b.(float32); ok {
			return af == bf || (math.IsNaN(float64(af)) && math.IsNaN(float64(bf)))
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}
