package inference

import (
	"github.com/uclelang/ucle/internal/constraintset"
	"github.com/uclelang/ucle/internal/types"
)

// Solve folds over constraints in insertion order, unifying each after
// first applying the accumulated substitution to both sides and composing
// the result into the running substitution (spec §4.7: "solve(constraints)").
func (c *Context) Solve(cs *constraintset.Set) (types.Subst, error) {
	s := types.Empty()
	for _, constraint := range cs.All() {
		t1 := s.Apply(constraint.T1)
		t2 := s.Apply(constraint.T2)
		var next types.Subst
		var err error
		switch constraint.Kind {
		case constraintset.Equal:
			next, err = types.Unify(c.Fresh, t1, t2)
		case constraintset.Subtype:
			// the generator never emits Subtype constraints (spec §4.5);
			// the solver treats one as an equality obligation so the
			// interface stays total for callers that do construct one.
			next, err = types.Unify(c.Fresh, t1, t2)
		}
		if err != nil {
			return nil, err
		}
		c.Log.Tracef("solved %s = %s", t1.Pretty(), t2.Pretty())
		s = next.Compose(s)
	}
	return s, nil
}

// unifyNow unifies a and b immediately, outside the constraint set, and
// composes the result into ctx.GlobalSubst. Used by the constructor
// pattern rule (spec §4.6: "unify with Function(...)"), which unifies
// eagerly rather than emitting a deferred Equal constraint.
func (c *Context) unifyNow(a, b types.Type) error {
	a = c.GlobalSubst.Apply(a)
	b = c.GlobalSubst.Apply(b)
	s, err := types.Unify(c.Fresh, a, b)
	if err != nil {
		return err
	}
	c.GlobalSubst = s.Compose(c.GlobalSubst)
	return nil
}
