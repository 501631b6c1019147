package domain

import (
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrUninitializedInput is raised when a scalar input is read before its
	// first write.
	ErrUninitializedInput = zerr.New("input not initialized")

	// ErrMissingInputKey is raised when a map input is read with a key that
	// was never set, or that has since been deleted.
	ErrMissingInputKey = zerr.New("input key missing")

	// ErrCycleDetected is raised when a derived function re-enters a key
	// already on the live-call stack.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrInputMutationDuringComputation signals a programmer error: an input
	// write was attempted while a derived computation is active.
	ErrInputMutationDuringComputation = zerr.New("input mutated while a derived computation is active")

	// ErrUnknownQuery is raised when a key references a QueryID that was
	// never registered.
	ErrUnknownQuery = zerr.New("query not registered")

	// ErrUserFunctionFailure wraps any error raised by a user-supplied
	// derived function.
	ErrUserFunctionFailure = zerr.New("derived function failed")
)

// FormatStack renders a live-call stack for diagnostic payloads, in call
// order (outermost first).
func FormatStack(stack []DependencyKey) string {
	parts := make([]string, len(stack))
	for i, k := range stack {
		parts[i] = k.String()
	}
	return strings.Join(parts, " -> ")
}

// NewCycleError builds a CycleError carrying the live-call stack at the
// point of detection, with the offending key appended.
func NewCycleError(stack []DependencyKey, offending DependencyKey) error {
	full := append(append([]DependencyKey{}, stack...), offending)
	return zerr.With(ErrCycleDetected, "stack", FormatStack(full))
}

// NewUserFunctionFailure wraps a derived-function failure with the live-call
// stack active at the point of failure.
func NewUserFunctionFailure(cause error, stack []DependencyKey) error {
	return zerr.With(fmt.Errorf("%w: %w", ErrUserFunctionFailure, cause), "stack", FormatStack(stack))
}

// SortKeys sorts a slice of DependencyKey in place using the deterministic
// diagnostic order, for reproducible introspection output.
func SortKeys(keys []DependencyKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}

// UnknownQueryError reports a specific unregistered QueryID.
func UnknownQueryError(id QueryID) error {
	return zerr.With(ErrUnknownQuery, "query", id.String())
}
