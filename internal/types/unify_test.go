package types

import (
	"errors"
	"testing"

	"github.com/uclelang/ucle/internal/diagnostics"
	"github.com/uclelang/ucle/internal/freshvar"
)

func wantCode(t *testing.T, err error, code diagnostics.ErrorCode) {
	t.Helper()
	var de *diagnostics.Error
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a *diagnostics.Error", err)
	}
	if de.Code != code {
		t.Errorf("error code = %s, want %s", de.Code, code)
	}
}

func TestUnifyArityMismatch(t *testing.T) {
	fresh := freshvar.New()
	a := Function{Params: []Type{Var{ID: 0}}, Ret: Var{ID: 1}}
	b := Function{Params: []Type{Var{ID: 0}, Var{ID: 2}}, Ret: Var{ID: 1}}
	_, err := Unify(fresh, a, b)
	if err == nil {
		t.Fatal("expected ArityMismatch, got nil")
	}
	wantCode(t, err, diagnostics.ArityMismatch)
}

func TestUnifyClosedRecordFieldMismatch(t *testing.T) {
	fresh := freshvar.New()
	a := Record{Fields: []RecordField{{Name: "x", Type: Named{Name: "Number"}}}}
	b := Record{Fields: []RecordField{{Name: "y", Type: Named{Name: "Number"}}}}
	_, err := Unify(fresh, a, b)
	if err == nil {
		t.Fatal("expected RecordFieldMismatch, got nil")
	}
	wantCode(t, err, diagnostics.RecordFieldMismatch)
}

func TestUnifyOpenRecordAbsorbsExtraFields(t *testing.T) {
	fresh := freshvar.New()
	alpha := Var{ID: 0}
	omega := Var{ID: 1}
	open := Record{Fields: []RecordField{{Name: "x", Type: alpha}}, RowVar: &omega}
	closed := Record{Fields: []RecordField{
		{Name: "x", Type: Named{Name: "Number"}},
		{Name: "y", Type: Named{Name: "String"}},
	}}

	s, err := Unify(fresh, open, closed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Apply(alpha); got.Pretty() != "Number" {
		t.Errorf("alpha resolved to %s, want Number", got.Pretty())
	}
	resolvedOmega := s.Apply(omega)
	rec, ok := resolvedOmega.(Record)
	if !ok {
		t.Fatalf("omega resolved to %T, want Record", resolvedOmega)
	}
	if rec.RowVar != nil {
		t.Errorf("expected omega to resolve to a closed record, got open %v", rec)
	}
	yt, ok := rec.Lookup("y")
	if !ok || yt.Pretty() != "String" {
		t.Errorf("expected omega's record to carry y: String, got %v", rec)
	}
}

func TestUnifyOccursCheckFailsRecursiveType(t *testing.T) {
	fresh := freshvar.New()
	v := Var{ID: 0}
	fn := Function{Params: []Type{v}, Ret: Named{Name: "Number"}}
	_, err := Unify(fresh, v, fn)
	if err == nil {
		t.Fatal("expected RecursiveType, got nil")
	}
	wantCode(t, err, diagnostics.RecursiveType)
}

func TestUnifyVarWithItselfIsNotRecursive(t *testing.T) {
	fresh := freshvar.New()
	v := Var{ID: 0}
	s, err := Unify(fresh, v, v)
	if err != nil {
		t.Fatalf("unexpected error unifying a variable with itself: %v", err)
	}
	if len(s) != 0 {
		t.Errorf("expected empty substitution, got %v", s)
	}
}

func TestUnifyLiteralAgainstNamedBase(t *testing.T) {
	fresh := freshvar.New()
	lit := Literal{Value: 42, Base: Named{Name: "Number"}}
	_, err := Unify(fresh, lit, Named{Name: "Number"})
	if err != nil {
		t.Errorf("literal should unify with its own base type: %v", err)
	}
	_, err = Unify(fresh, lit, Named{Name: "String"})
	if err == nil {
		t.Error("literal should not unify with an unrelated named type")
	}
}

func TestUnifyNamedArityAndNameMustMatch(t *testing.T) {
	fresh := freshvar.New()
	a := Named{Name: "List", Args: []Type{Named{Name: "Number"}}}
	b := Named{Name: "List", Args: []Type{Named{Name: "String"}}}
	_, err := Unify(fresh, a, b)
	if err == nil {
		t.Error("expected failure unifying List<Number> with List<String>")
	}
}

func TestSolveSoundness(t *testing.T) {
	// for every solved constraint Equal(a, b), apply(s, a) == apply(s, b).
	fresh := freshvar.New()
	a := Var{ID: 0}
	b := Named{Name: "Boolean"}
	s, err := Unify(fresh, a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Apply(a).Pretty() != s.Apply(b).Pretty() {
		t.Errorf("soundness violated: %s != %s", s.Apply(a).Pretty(), s.Apply(b).Pretty())
	}
}
