package types

import (
	"reflect"
	"testing"
)

func TestSubstApplyChasesTransitiveBindings(t *testing.T) {
	// 0 -> Var(1), 1 -> Named("Number"): applying to Var(0) should chase
	// through to Named("Number"), not stop at Var(1).
	s := Subst{0: Var{ID: 1}, 1: Named{Name: "Number"}}
	got := s.Apply(Var{ID: 0})
	want := Named{Name: "Number"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply(Var(0)) = %v, want %v", got, want)
	}
}

func TestSubstApplyIdempotent(t *testing.T) {
	s := Subst{0: Named{Name: "Number"}}
	once := s.Apply(Function{Params: []Type{Var{ID: 0}}, Ret: Var{ID: 1}})
	twice := s.Apply(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("apply(s, apply(s, t)) != apply(s, t): %v vs %v", twice, once)
	}
}

func TestSubstComposeMatchesSpecFormula(t *testing.T) {
	// s1 = {0 -> Var(2)}, s2 = {1 -> Var(0)}
	// compose(s1, s2) = {1 -> apply(s1, Var(0)), 0 -> Var(2)}
	//                 = {1 -> Var(2), 0 -> Var(2)}
	s1 := Subst{0: Var{ID: 2}}
	s2 := Subst{1: Var{ID: 0}}
	composed := s1.Compose(s2)

	if got := composed.Apply(Var{ID: 1}); !reflect.DeepEqual(got, Var{ID: 2}) {
		t.Errorf("composed.Apply(Var(1)) = %v, want Var(2)", got)
	}
	if got := composed.Apply(Var{ID: 0}); !reflect.DeepEqual(got, Var{ID: 2}) {
		t.Errorf("composed.Apply(Var(0)) = %v, want Var(2)", got)
	}
}

func TestSubstApplyRecordSplicesOpenRowIntoConcreteRecord(t *testing.T) {
	row := Var{ID: 3}
	open := Record{Fields: []RecordField{{Name: "first", Type: Var{ID: 2}}}, RowVar: &row}
	// substitution resolves the row variable to a concrete closed record
	// carrying the remaining field.
	s := Subst{2: Named{Name: "Number"}, 3: Record{Fields: []RecordField{{Name: "second", Type: Named{Name: "String"}}}}}

	got := s.Apply(open).(Record)
	if got.RowVar != nil {
		t.Errorf("expected closed record after splicing, got open with row %v", got.RowVar)
	}
	if _, ok := got.Lookup("first"); !ok {
		t.Errorf("expected field 'first' to survive splicing")
	}
	if _, ok := got.Lookup("second"); !ok {
		t.Errorf("expected field 'second' spliced in from row binding")
	}
}
