package scenarios

import "go.trai.ch/delta/internal/engine/lookup"

// EarlyExit wires a scalar input feeding a parity derivation, itself
// consumed by a second derived function, to demonstrate that a
// recomputation settling on an equal value does not propagate change to
// its consumer.
type EarlyExit struct {
	Engine       *lookup.Engine
	X            lookup.InputID[int]
	Parity       lookup.DerivedID[struct{}, int]
	DoubleParity lookup.DerivedID[struct{}, int]
}

// NewEarlyExit builds a fresh engine with the early-exit chain registered.
func NewEarlyExit() *EarlyExit {
	e := lookup.New()
	x := lookup.NewInput(e, "x", 0)

	parity := lookup.NewDerived(e, "parity", func(ctx *lookup.Ctx, _ struct{}) (int, error) {
		v, err := lookup.ReadInputScalar(ctx, x)
		if err != nil {
			return 0, err
		}
		return v % 2, nil
	})

	doubleParity := lookup.NewDerived(e, "double_parity", func(ctx *lookup.Ctx, _ struct{}) (int, error) {
		p, err := lookup.CallDerived(ctx, parity, struct{}{})
		if err != nil {
			return 0, err
		}
		return p * 2, nil
	})

	return &EarlyExit{Engine: e, X: x, Parity: parity, DoubleParity: doubleParity}
}

// SetX writes the scalar input.
func (s *EarlyExit) SetX(value int) {
	lookup.SetInputScalar(s.Engine, s.X, value)
}

// QueryDoubleParity queries the top-level derived function.
func (s *EarlyExit) QueryDoubleParity() (int, error) {
	ctx := lookup.NewSession(s.Engine)
	return lookup.CallDerived(ctx, s.DoubleParity, struct{}{})
}
