// Package freshvar implements the fresh-variable supply (spec §4.3): a
// monotonic counter producing unique type-variable identifiers, resettable
// per top-level inference run. Grounded on the teacher's
// analyzer.InferenceContext.counter/FreshVar/Reset, adapted from funxy's
// string names ("t1") to spec's integer Var identifiers (matching
// mafm-poly's integer-keyed type variables) and pulled out into its own
// package since spec §9 calls for it to be "an explicit, per-run allocator
// threaded through the generator" rather than a process-global counter.
//
// This package deliberately has no dependency on internal/types: the type
// algebra's own unifier needs a fresh-variable source (to invent row
// variables during record unification), so the allocator can only hand
// back a plain int here, leaving callers to wrap it as types.Var{ID: ...}.
package freshvar

// Supply is a per-run, monotonic allocator of type-variable identifiers.
// The zero value starts at 0 and is ready to use.
type Supply struct {
	next int
}

// New returns a Supply starting at zero.
func New() *Supply { return &Supply{} }

// Fresh returns the current counter value then increments it.
func (s *Supply) Fresh() int {
	id := s.next
	s.next++
	return id
}

// Reset sets the counter back to zero, as required at the start of every
// top-level inference run (spec §4.3/§4.8 step 1).
func (s *Supply) Reset() { s.next = 0 }
