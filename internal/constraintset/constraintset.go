// Package constraintset implements the insertion-ordered constraint
// collection (spec §4.5): Equal and Subtype constraints, with no
// deduplication required for correctness. Grounded on the teacher's
// analyzer.Constraint/ConstraintType in internal/analyzer/constraints.go,
// renamed ConstraintUnify -> Equal to match spec §4.5's naming; the core
// only ever emits Equal constraints, with Subtype reserved for the solver
// interface but unproduced, exactly as funxy's own ConstraintImplements
// kind is declared but only emitted from trait-resolution paths this core
// has no equivalent of.
package constraintset

import "github.com/uclelang/ucle/internal/types"

// Kind distinguishes the two constraint shapes the solver interface
// supports.
type Kind int

const (
	Equal Kind = iota
	Subtype
)

// Constraint is one emitted obligation: either Equal(T1, T2) or
// Subtype(Sub, Sup) (spec §4.5).
type Constraint struct {
	Kind Kind
	T1   types.Type
	T2   types.Type
}

// Set is an insertion-ordered collection of constraints.
type Set struct {
	items []Constraint
}

// New returns an empty constraint set.
func New() *Set { return &Set{} }

// AddEqual appends an Equal(t1, t2) constraint.
func (s *Set) AddEqual(t1, t2 types.Type) {
	s.items = append(s.items, Constraint{Kind: Equal, T1: t1, T2: t2})
}

// AddSubtype appends a Subtype(sub, sup) constraint. The generator
// described in spec §4.6 never calls this; it exists so the solver
// interface in spec §4.5/§4.7 is complete.
func (s *Set) AddSubtype(sub, sup types.Type) {
	s.items = append(s.items, Constraint{Kind: Subtype, T1: sub, T2: sup})
}

// All returns the constraints in insertion order.
func (s *Set) All() []Constraint {
	return s.items
}

// Len reports how many constraints are in the set.
func (s *Set) Len() int { return len(s.items) }
