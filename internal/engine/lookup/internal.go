package lookup

import "go.trai.ch/delta/internal/core/domain"

// fetchInput pushes key onto the active trace, looks it up in the store,
// and pops the frame before returning - inputs are leaves and never open a
// frame of their own that outlives the lookup.
func (e *Engine) fetchInput(ctx *Ctx, key domain.DependencyKey, recordToParent bool) (domain.InputEntry, error) {
	if err := ctx.rec.Push(key, recordToParent); err != nil {
		return domain.InputEntry{}, err
	}
	defer ctx.rec.Pop()

	entry, ok := e.store.LookupInput(key)
	if !ok {
		return domain.InputEntry{}, missingInputError(key)
	}
	return entry, nil
}

// missingInputError picks the error kind by input shape: a scalar input's
// DependencyKey always carries a nil Args, a keyed input's always carries
// the access key.
func missingInputError(key domain.DependencyKey) error {
	if key.Args == nil {
		return domain.ErrUninitializedInput
	}
	return domain.ErrMissingInputKey
}

// lookupDerived is the type-erased memoized-lookup state machine: cache
// probe, fresh/valid short-circuit, recompute, early-exit compare, install.
func (e *Engine) lookupDerived(ctx *Ctx, key domain.DependencyKey, recordToParent bool) (any, error) {
	if err := ctx.rec.Push(key, recordToParent); err != nil {
		return nil, err
	}

	var vertex vertexLogger
	if e.tracer != nil {
		vertex = vertexLogger{v: e.tracer.Begin(key.String())}
	}

	e.store.BeginDerived()
	defer e.store.EndDerived()

	rev := e.store.CurrentRevision()
	entry, found := e.store.LookupDerived(key.Query, key.Args)

	if found && entry.VerifiedAt == rev {
		ctx.rec.Pop()
		vertex.hit("fresh")
		vertex.end(nil)
		return entry.Value, nil
	}

	if found {
		valid, err := e.validate(ctx, entry.Dependencies, entry.VerifiedAt)
		if err != nil {
			ctx.rec.Pop()
			vertex.end(err)
			return nil, err
		}
		if valid {
			e.store.TouchVerified(key.Query, key.Args, rev)
			ctx.rec.Pop()
			vertex.hit("valid")
			vertex.end(nil)
			return entry.Value, nil
		}
	}

	thunk, ok := e.thunkFor(key.Query)
	if !ok {
		ctx.rec.Pop()
		err := domain.UnknownQueryError(key.Query)
		vertex.end(err)
		return nil, err
	}

	vertex.recompute()
	v, err := thunk(ctx, key.Args)
	if err != nil {
		stack := ctx.rec.LiveStack()
		ctx.rec.Pop()
		wrapped := domain.NewUserFunctionFailure(err, stack)
		vertex.end(wrapped)
		return nil, wrapped
	}
	deps := ctx.rec.Pop()
	vertex.end(nil)

	newRev := e.store.CurrentRevision()
	if found && domain.ValueEqual(entry.Value, v) {
		e.store.ApplyEarlyExit(key.Query, key.Args, deps, newRev)
		return entry.Value, nil
	}

	e.store.InstallDerived(key.Query, key.Args, domain.DerivedEntry{
		Value:        v,
		Dependencies: deps,
		ChangedAt:    newRev,
		VerifiedAt:   newRev,
	})
	return v, nil
}

// validate runs the validity walk: dependencies are checked strictly in
// recorded order, and the walk stops at the first invalidated dependency -
// later dependencies are left unconsulted rather than forcing their own
// recomputation speculatively.
func (e *Engine) validate(ctx *Ctx, deps []domain.DependencyKey, verifiedAt domain.Revision) (bool, error) {
	for _, dep := range deps {
		changedAt, err := e.keyChangedAt(ctx, dep)
		if err != nil {
			return false, err
		}
		if changedAt > verifiedAt {
			return false, nil
		}
	}
	return true, nil
}

// keyChangedAt recursively re-validates dep without recording dep itself as
// a new dependency of the frame currently being validated.
func (e *Engine) keyChangedAt(ctx *Ctx, dep domain.DependencyKey) (domain.Revision, error) {
	if dep.Query.Kind() == domain.KindInput {
		entry, err := e.fetchInput(ctx, dep, false)
		if err != nil {
			return 0, err
		}
		return entry.ChangedAt, nil
	}

	if _, err := e.lookupDerived(ctx, dep, false); err != nil {
		return 0, err
	}
	entry, ok := e.store.LookupDerived(dep.Query, dep.Args)
	if !ok {
		return 0, domain.UnknownQueryError(dep.Query)
	}
	return entry.ChangedAt, nil
}

// vertexLogger adapts a possibly-nil ports.Vertex so call sites never need
// a nil check.
type vertexLogger struct {
	v interface {
		Hit(outcome string)
		Recompute()
		End(err error)
	}
}

func (l vertexLogger) hit(outcome string) {
	if l.v != nil {
		l.v.Hit(outcome)
	}
}

func (l vertexLogger) recompute() {
	if l.v != nil {
		l.v.Recompute()
	}
}

func (l vertexLogger) end(err error) {
	if l.v != nil {
		l.v.End(err)
	}
}
