// Package feed holds the three independently fetchable data sources of the
// transaction view: the employee directory, the paginated stream of all
// transactions, and the per-employee transaction list.
//
// Each feed owns its state exclusively and is safe for concurrent use.
// Invalidate bumps a generation counter; a fetch that resolves after its
// generation has been superseded is discarded instead of applied.
package feed

import "sync"

// Resource is the capability shared by every feed.
type Resource interface {
	// Loading reports whether a fetch is in flight.
	Loading() bool
	// Loaded reports whether the feed holds data.
	Loaded() bool
	// Invalidate resets the feed to its not-yet-loaded state and discards
	// the result of any fetch still in flight.
	Invalidate()
	// OnChange registers fn to run after every state mutation.
	OnChange(fn func())
}

// state is embedded by every feed. It tracks the in-flight count, the
// generation used by the stale-response guard and the change listener.
type state struct {
	onChange   func()
	mu         sync.Mutex
	generation uint64
	inFlight   int
}

func (s *state) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

func (s *state) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// begin marks a fetch as started and returns the generation it belongs to.
// Callers must hold s.mu.
func (s *state) begin() uint64 {
	s.inFlight++
	return s.generation
}

// finish marks a fetch as done and reports whether its result is still
// current. Callers must hold s.mu.
func (s *state) finish(generation uint64) bool {
	s.inFlight--
	return generation == s.generation
}

// listener returns the registered change listener. Callers must hold s.mu
// and invoke the result after releasing it.
func (s *state) listener() func() {
	if s.onChange == nil {
		return func() {}
	}
	return s.onChange
}
