// Package lookup implements the Lookup Engine: the memoized-lookup state
// machine that coordinates the Cache Store and the Trace Recorder to answer
// queries against registered derived functions and externally-settable
// inputs.
package lookup

import (
	"sync"

	"go.trai.ch/delta/internal/core/domain"
	"go.trai.ch/delta/internal/core/ports"
	"go.trai.ch/delta/internal/store"
	"go.trai.ch/delta/internal/trace"
)

// erasedDerived is the type-erased invocation thunk installed for one
// registered derived function: it downcasts args to the function's real
// argument type and upcasts its return value back to any.
type erasedDerived func(ctx *Ctx, args any) (any, error)

// Engine owns the Cache Store and the registry of derived-function thunks.
// It holds no per-query state; each top-level query owns its own Ctx.
type Engine struct {
	store       *store.Store
	cycleDetect bool
	tracer      ports.Tracer

	mu      sync.RWMutex
	derived map[domain.QueryID]erasedDerived
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithCycleDetection enables or disables live-call cycle detection. Cycle
// detection is on by default; disabling it trades a clean CycleError for
// unbounded recursion on a genuine cycle.
func WithCycleDetection(enabled bool) Option {
	return func(e *Engine) { e.cycleDetect = enabled }
}

// WithTracer installs an optional verbose-trace adapter. It is consulted
// only for log emission; it never influences a cache decision.
func WithTracer(t ports.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// New creates an empty Engine with an empty Cache Store at revision 0.
func New(opts ...Option) *Engine {
	e := &Engine{
		store:       store.New(),
		cycleDetect: true,
		derived:     make(map[domain.QueryID]erasedDerived),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CurrentRevision reports the engine's current revision.
func (e *Engine) CurrentRevision() domain.Revision {
	return e.store.CurrentRevision()
}

// NewInput registers a scalar input family with an initial value, seeded at
// revision 0 without advancing the clock.
func NewInput[V any](e *Engine, name string, initial V) InputID[V] {
	qid := domain.NewQueryID(domain.KindInput, name, scalarSignature[V]())
	e.store.SeedInput(domain.DependencyKey{Query: qid}, initial)
	return InputID[V]{qid: qid}
}

// NewInputMap registers a keyed input family with no initial contents.
func NewInputMap[K comparable, V any](e *Engine, name string) InputMapID[K, V] {
	qid := domain.NewQueryID(domain.KindInput, name, mapSignature[K, V]())
	return InputMapID[K, V]{qid: qid}
}

// NewDerived registers a derived function under name. Registration is
// idempotent: registering the same name and signature again replaces the
// thunk in place.
func NewDerived[Args comparable, V any](e *Engine, name string, fn func(*Ctx, Args) (V, error)) DerivedID[Args, V] {
	qid := domain.NewQueryID(domain.KindDerived, name, derivedSignature[Args, V]())
	registerDerived(e, qid, fn)
	return DerivedID[Args, V]{qid: qid}
}

// registerDerived installs the type-erased wrapper for fn. It is a free
// function, not a method, because Go methods cannot introduce their own
// type parameters beyond the receiver's.
func registerDerived[Args comparable, V any](e *Engine, qid domain.QueryID, fn func(*Ctx, Args) (V, error)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.derived[qid] = func(ctx *Ctx, args any) (any, error) {
		typed, _ := args.(Args)
		return fn(ctx, typed)
	}
}

func (e *Engine) thunkFor(qid domain.QueryID) (erasedDerived, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	fn, ok := e.derived[qid]
	return fn, ok
}

// Ctx is a per-top-level-query handle: it threads the Trace Recorder
// explicitly through recursive lookups so that concurrent top-level queries
// never share mutable trace state.
type Ctx struct {
	engine *Engine
	rec    *trace.Recorder
}

// NewSession opens a fresh top-level query context against e.
func NewSession(e *Engine) *Ctx {
	return &Ctx{engine: e, rec: trace.New(e.cycleDetect)}
}

// CallDerived is both the top-level query entry point and the call used by
// a derived function's own body to read another derived function: the same
// memoized-lookup state machine answers both.
func CallDerived[Args comparable, V any](ctx *Ctx, id DerivedID[Args, V], args Args) (V, error) {
	key := domain.DependencyKey{Query: id.qid, Args: args}
	v, err := ctx.engine.lookupDerived(ctx, key, true)
	if err != nil {
		var zero V
		return zero, err
	}
	typed, _ := v.(V)
	return typed, nil
}

// ReadInputScalar reads the current value of a scalar input, registering it
// as a dependency of the currently executing derived function (if any).
func ReadInputScalar[V any](ctx *Ctx, id InputID[V]) (V, error) {
	key := domain.DependencyKey{Query: id.qid}
	entry, err := ctx.engine.fetchInput(ctx, key, true)
	if err != nil {
		var zero V
		return zero, err
	}
	typed, _ := entry.Value.(V)
	return typed, nil
}

// ReadInputMap reads one key of a keyed input, registering it as a
// dependency of the currently executing derived function (if any).
func ReadInputMap[K comparable, V any](ctx *Ctx, id InputMapID[K, V], key K) (V, error) {
	depKey := domain.DependencyKey{Query: id.qid, Args: key}
	entry, err := ctx.engine.fetchInput(ctx, depKey, true)
	if err != nil {
		var zero V
		return zero, err
	}
	typed, _ := entry.Value.(V)
	return typed, nil
}

// SetInputScalar writes a scalar input. Writing a value equal to the
// currently stored one is a no-op that does not advance the revision.
func SetInputScalar[V any](e *Engine, id InputID[V], value V) {
	e.store.SetInput(domain.DependencyKey{Query: id.qid}, value, domain.ValueEqual)
}

// SetInputMap writes one key of a keyed input.
func SetInputMap[K comparable, V any](e *Engine, id InputMapID[K, V], key K, value V) {
	e.store.SetInput(domain.DependencyKey{Query: id.qid, Args: key}, value, domain.ValueEqual)
}

// DeleteInputMap removes one key of a keyed input. Subsequent reads of that
// key fail with MissingInputKey until it is written again.
func DeleteInputMap[K comparable, V any](e *Engine, id InputMapID[K, V], key K) {
	e.store.DeleteInput(domain.DependencyKey{Query: id.qid, Args: key})
}

// EmptyInputMap removes every key currently held by a keyed input, advancing
// the revision at most once (not at all when no key is held), and returns
// the keys that were removed.
func EmptyInputMap[K comparable, V any](e *Engine, id InputMapID[K, V]) []K {
	args := e.store.InputArgs(id.qid)
	e.store.ClearInputFamily(id.qid)
	keys := make([]K, 0, len(args))
	for _, a := range args {
		k, _ := a.(K)
		keys = append(keys, k)
	}
	return keys
}
