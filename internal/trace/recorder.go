// Package trace implements the Trace Recorder: the per-top-level-query
// stack of dependency frames used to capture the direct callees of each
// derived invocation and to detect cycles.
//
// A Recorder is owned by exactly one top-level query; it is threaded
// explicitly through recursive lookups rather than attached to the engine,
// so that concurrent top-level queries never share mutable trace state.
package trace

import "go.trai.ch/delta/internal/core/domain"

type frame struct {
	order []domain.DependencyKey
	seen  map[domain.DependencyKey]struct{}
}

func newFrame() *frame {
	return &frame{seen: make(map[domain.DependencyKey]struct{})}
}

func (f *frame) record(key domain.DependencyKey) {
	if _, ok := f.seen[key]; ok {
		return
	}
	f.seen[key] = struct{}{}
	f.order = append(f.order, key)
}

// Recorder is not safe for concurrent use; each top-level query must own its
// own instance.
type Recorder struct {
	frames      []*frame
	liveStack   []domain.DependencyKey
	live        map[domain.DependencyKey]struct{}
	cycleDetect bool
}

// New creates an empty Recorder. When cycleDetect is false, Push never
// fails; a genuine cycle then manifests as unbounded recursion instead, per
// spec.
func New(cycleDetect bool) *Recorder {
	return &Recorder{
		live:        make(map[domain.DependencyKey]struct{}),
		cycleDetect: cycleDetect,
	}
}

// Push enters key. If recordToParent is true and a frame is currently
// active, key is appended (deduplicated) to that frame's dependency list -
// this is the case for a direct call made by the caller's own user function
// or by the top-level entry point. recordToParent is false for the internal
// validity-walk recursion, which re-validates a dependency without that
// dependency becoming a new direct dependency of whoever is currently
// executing.
//
// Cycle detection, when enabled, applies unconditionally: a key already on
// the live-call stack is always an error, whether reached directly or via
// the validity walk.
func (r *Recorder) Push(key domain.DependencyKey, recordToParent bool) error {
	if r.cycleDetect {
		if _, onStack := r.live[key]; onStack {
			return domain.NewCycleError(append([]domain.DependencyKey{}, r.liveStack...), key)
		}
	}

	if recordToParent && len(r.frames) > 0 {
		r.frames[len(r.frames)-1].record(key)
	}

	r.frames = append(r.frames, newFrame())
	r.liveStack = append(r.liveStack, key)
	r.live[key] = struct{}{}
	return nil
}

// Pop removes the current frame and returns its ordered dependency list. It
// must only be called after a successful Push, exactly once per Push.
func (r *Recorder) Pop() []domain.DependencyKey {
	n := len(r.frames)
	f := r.frames[n-1]
	r.frames = r.frames[:n-1]

	key := r.liveStack[len(r.liveStack)-1]
	r.liveStack = r.liveStack[:len(r.liveStack)-1]
	delete(r.live, key)

	return f.order
}

// Current returns a copy of the direct dependencies accumulated so far in
// the current (top) frame, without popping it.
func (r *Recorder) Current() []domain.DependencyKey {
	if len(r.frames) == 0 {
		return nil
	}
	top := r.frames[len(r.frames)-1]
	out := make([]domain.DependencyKey, len(top.order))
	copy(out, top.order)
	return out
}

// LiveStack returns a snapshot of the currently executing call chain,
// outermost first, for diagnostic payloads.
func (r *Recorder) LiveStack() []domain.DependencyKey {
	out := make([]domain.DependencyKey, len(r.liveStack))
	copy(out, r.liveStack)
	return out
}
