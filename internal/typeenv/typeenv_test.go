package typeenv

import (
	"testing"

	"github.com/uclelang/ucle/internal/diagnostics"
	"github.com/uclelang/ucle/internal/freshvar"
	"github.com/uclelang/ucle/internal/types"
)

func TestLookupInstantiatesSchemeAtFreshVars(t *testing.T) {
	env := New().ExtendOne("identity", types.Scheme{
		Vars: []int{0},
		Body: types.Function{Params: []types.Type{types.Var{ID: 0}}, Ret: types.Var{ID: 0}},
	})
	fresh := freshvar.New()
	fresh.Fresh() // advance past 0 so instantiation is visibly fresh

	t1, err := env.Lookup(fresh, "identity", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := t1.(types.Function)
	if fn.Params[0].(types.Var).ID != fn.Ret.(types.Var).ID {
		t.Errorf("instantiated scheme lost the shared quantified variable: %v", fn)
	}
	if fn.Params[0].(types.Var).ID == 0 {
		t.Errorf("instantiation should use a fresh variable, not reuse the scheme's bound id 0")
	}
}

func TestLookupUnboundReportsCorrectCode(t *testing.T) {
	env := New()
	fresh := freshvar.New()
	_, err := env.Lookup(fresh, "missing", false)
	if err == nil {
		t.Fatal("expected error for unbound lower-case identifier")
	}
	if de, ok := err.(*diagnostics.Error); !ok || de.Code != diagnostics.UnboundIdentifier {
		t.Errorf("lower-case lookup error = %v, want code %s", err, diagnostics.UnboundIdentifier)
	}
	_, err = env.Lookup(fresh, "Missing", true)
	if err == nil {
		t.Fatal("expected error for unbound upper-case identifier")
	}
	if de, ok := err.(*diagnostics.Error); !ok || de.Code != diagnostics.UnboundTypeOrConstructor {
		t.Errorf("upper-case lookup error = %v, want code %s", err, diagnostics.UnboundTypeOrConstructor)
	}
}

func TestExtendDoesNotMutateParent(t *testing.T) {
	base := New().ExtendOne("x", types.Mono(types.Named{Name: "Number"}))
	child := base.ExtendOne("y", types.Mono(types.Named{Name: "String"}))

	fresh := freshvar.New()
	if _, err := base.Lookup(fresh, "y", false); err == nil {
		t.Error("y should not be visible in the parent environment")
	}
	if _, err := child.Lookup(fresh, "x", false); err != nil {
		t.Error("x from the parent should remain visible in the child")
	}
}

func TestGeneralizeQuantifiesOnlyVarsFreeInTypeNotEnv(t *testing.T) {
	// env binds "outer" to a scheme mentioning Var(1) monomorphically.
	env := New().ExtendOne("outer", types.Mono(types.Var{ID: 1}))
	// generalize Function(Var(1), Var(2)): Var(1) is free in env, Var(2) is not.
	t1 := types.Function{Params: []types.Type{types.Var{ID: 1}}, Ret: types.Var{ID: 2}}
	sc := env.Generalize(t1)
	if len(sc.Vars) != 1 || sc.Vars[0] != 2 {
		t.Errorf("Generalize quantified %v, want exactly [2]", sc.Vars)
	}
}

func TestApplySubstRewritesVisibleSchemes(t *testing.T) {
	env := New().ExtendOne("x", types.Mono(types.Var{ID: 0}))
	s := types.Singleton(0, types.Named{Name: "Boolean"})
	updated := env.ApplySubst(s)
	fresh := freshvar.New()
	got, err := updated.Lookup(fresh, "x", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Pretty() != "Boolean" {
		t.Errorf("ApplySubst did not rewrite x's scheme: got %s", got.Pretty())
	}
}
