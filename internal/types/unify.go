package types

import (
	"reflect"

	"github.com/uclelang/ucle/internal/diagnostics"
	"github.com/uclelang/ucle/internal/freshvar"
)

// Unify implements spec §4.7: syntactic unification with an occurs check,
// a row-polymorphic rule for records, and conservative positional rules
// for union/intersection/literal types. Grounded on the teacher's
// typesystem.Unify dispatch (per-variant switch, Bind/OccursCheck) for the
// scalar/function cases; the record row-variable extension follows
// mafm-poly's splitRecord (itself citing tomprimozic/type-systems'
// extensible_rows2), since funxy's own record rule uses a simpler IsOpen
// width-subtyping flag rather than true row-variable unification.
func Unify(fresh *freshvar.Supply, t1, t2 Type) (Subst, error) {
	// Rule 1: structural equality.
	if equalType(t1, t2) {
		return Empty(), nil
	}

	// Rules 2-3: either side a Var.
	if v1, ok := t1.(Var); ok {
		return bind(v1, t2)
	}
	if v2, ok := t2.(Var); ok {
		return bind(v2, t1)
	}

	switch a := t1.(type) {
	case Function:
		b, ok := t2.(Function)
		if !ok {
			return nil, mismatch(t1, t2)
		}
		return unifyFunction(fresh, a, b)
	case Record:
		b, ok := t2.(Record)
		if !ok {
			return nil, mismatch(t1, t2)
		}
		return unifyRecord(fresh, a, b)
	case Named:
		b, ok := t2.(Named)
		if !ok {
			break
		}
		return unifyNamed(fresh, a, b)
	case Union:
		b, ok := t2.(Union)
		if !ok {
			return nil, mismatch(t1, t2)
		}
		return unifyList(fresh, a.Components, b.Components)
	case Intersection:
		b, ok := t2.(Intersection)
		if !ok {
			return nil, mismatch(t1, t2)
		}
		return unifyList(fresh, a.Components, b.Components)
	case Literal:
		if b, ok := t2.(Literal); ok {
			if a.Value == b.Value && a.Base.Name == b.Base.Name {
				return Empty(), nil
			}
			return nil, diagnostics.New(diagnostics.LiteralMismatch, "",
				"literal mismatch: %v vs %v", a.Value, b.Value)
		}
		// Rule 9: Literal vs Named.
		if b, ok := t2.(Named); ok {
			if a.Base.Name == b.Name {
				return Empty(), nil
			}
			return nil, mismatch(t1, t2)
		}
		return nil, mismatch(t1, t2)
	}

	// Rule 9 symmetric: Named vs Literal.
	if a, ok := t1.(Named); ok {
		if b, ok := t2.(Literal); ok {
			if b.Base.Name == a.Name {
				return Empty(), nil
			}
		}
	}

	return nil, mismatch(t1, t2)
}

func bind(v Var, t Type) (Subst, error) {
	if t.Occurs(v.ID) {
		if other, ok := t.(Var); ok && other.ID == v.ID {
			return Empty(), nil
		}
		return nil, diagnostics.New(diagnostics.RecursiveType, "",
			"recursive type: T%d occurs in %s", v.ID, t.Pretty())
	}
	return Singleton(v.ID, t), nil
}

func unifyFunction(fresh *freshvar.Supply, a, b Function) (Subst, error) {
	if len(a.Params) != len(b.Params) {
		return nil, diagnostics.New(diagnostics.ArityMismatch, "",
			"arity mismatch: expected %d parameters, got %d", len(a.Params), len(b.Params))
	}
	s1, err := Unify(fresh, a.Ret, b.Ret)
	if err != nil {
		return nil, err
	}
	s := s1
	for i := range a.Params {
		p1 := s.Apply(a.Params[i])
		p2 := s.Apply(b.Params[i])
		si, err := Unify(fresh, p1, p2)
		if err != nil {
			return nil, err
		}
		s = si.Compose(s)
	}
	return s, nil
}

func unifyNamed(fresh *freshvar.Supply, a, b Named) (Subst, error) {
	if a.Name != b.Name || len(a.Args) != len(b.Args) {
		return nil, mismatch(a, b)
	}
	return unifyList(fresh, a.Args, b.Args)
}

func unifyList(fresh *freshvar.Supply, as, bs []Type) (Subst, error) {
	if len(as) != len(bs) {
		return nil, diagnostics.New(diagnostics.UnificationFailure, "", "size mismatch: %d vs %d", len(as), len(bs))
	}
	s := Empty()
	for i := range as {
		x := s.Apply(as[i])
		y := s.Apply(bs[i])
		si, err := Unify(fresh, x, y)
		if err != nil {
			return nil, err
		}
		s = si.Compose(s)
	}
	return s, nil
}

// unifyRecord implements spec §4.7 rule 5: unify shared fields, then
// resolve the row-polymorphic extension for fields only one side has.
func unifyRecord(fresh *freshvar.Supply, a, b Record) (Subst, error) {
	s := Empty()
	seen := map[string]struct{}{}
	for _, fa := range a.Fields {
		seen[fa.Name] = struct{}{}
		if fb, ok := b.Lookup(fa.Name); ok {
			x := s.Apply(fa.Type)
			y := s.Apply(fb)
			si, err := Unify(fresh, x, y)
			if err != nil {
				return nil, err
			}
			s = si.Compose(s)
		}
	}

	var onlyA, onlyB []RecordField
	for _, fa := range a.Fields {
		if _, ok := b.Lookup(fa.Name); !ok {
			onlyA = append(onlyA, RecordField{Name: fa.Name, Type: s.Apply(fa.Type)})
		}
	}
	for _, fb := range b.Fields {
		if _, ok := a.Lookup(fb.Name); !ok {
			onlyB = append(onlyB, RecordField{Name: fb.Name, Type: s.Apply(fb.Type)})
		}
	}

	if len(onlyA) == 0 && len(onlyB) == 0 {
		return s, nil
	}

	switch {
	case len(onlyA) > 0 && len(onlyB) > 0:
		// Both sides have extra fields: each side's row variable must
		// absorb the other's extras. A fresh shared row variable covers
		// whatever remains open on both sides.
		if a.RowVar == nil || b.RowVar == nil {
			return nil, fieldMismatch(a, b)
		}
		newRow := FreshVar(fresh)
		si, err := Unify(fresh, s.Apply(*a.RowVar), Record{Fields: onlyB, RowVar: &newRow})
		if err != nil {
			return nil, err
		}
		s = si.Compose(s)
		sj, err := Unify(fresh, s.Apply(*b.RowVar), Record{Fields: s.applyFields(onlyA), RowVar: &newRow})
		if err != nil {
			return nil, err
		}
		return sj.Compose(s), nil
	case len(onlyA) > 0:
		// b lacks these fields: b must be open to absorb them.
		if b.RowVar == nil {
			return nil, fieldMismatch(a, b)
		}
		si, err := Unify(fresh, s.Apply(*b.RowVar), Record{Fields: onlyA})
		if err != nil {
			return nil, err
		}
		return si.Compose(s), nil
	default:
		if a.RowVar == nil {
			return nil, fieldMismatch(a, b)
		}
		si, err := Unify(fresh, s.Apply(*a.RowVar), Record{Fields: onlyB})
		if err != nil {
			return nil, err
		}
		return si.Compose(s), nil
	}
}

func (s Subst) applyFields(fs []RecordField) []RecordField {
	out := make([]RecordField, len(fs))
	for i, f := range fs {
		out[i] = RecordField{Name: f.Name, Type: s.Apply(f.Type)}
	}
	return out
}

func fieldMismatch(a, b Record) error {
	return diagnostics.New(diagnostics.RecordFieldMismatch, "",
		"record field mismatch: %v vs %v", a.Keys(), b.Keys())
}

func mismatch(a, b Type) error {
	return diagnostics.New(diagnostics.UnificationFailure, "",
		"cannot unify %s with %s", a.Pretty(), b.Pretty())
}

// equalType reports structural equality for rule 1. Var identity is
// compared by id; composite types recurse field-by-field. Records compare
// by field set regardless of slice order, since "insertion order
// irrelevant" governs Record identity per spec §3 (only pretty-printing
// is order-sensitive).
func equalType(a, b Type) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.ID == y.ID
	case Named:
		y, ok := b.(Named)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !equalType(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case Function:
		y, ok := b.(Function)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !equalType(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return equalType(x.Ret, y.Ret)
	case Record:
		y, ok := b.(Record)
		if !ok || len(x.Fields) != len(y.Fields) {
			return false
		}
		if (x.RowVar == nil) != (y.RowVar == nil) {
			return false
		}
		if x.RowVar != nil && x.RowVar.ID != y.RowVar.ID {
			return false
		}
		for _, f := range x.Fields {
			yt, ok := y.Lookup(f.Name)
			if !ok || !equalType(f.Type, yt) {
				return false
			}
		}
		return true
	case Union:
		y, ok := b.(Union)
		return ok && equalTypeList(x.Components, y.Components)
	case Intersection:
		y, ok := b.(Intersection)
		return ok && equalTypeList(x.Components, y.Components)
	case Literal:
		y, ok := b.(Literal)
		return ok && x.Value == y.Value && x.Base.Name == y.Base.Name
	default:
		return reflect.DeepEqual(a, b)
	}
}

func equalTypeList(xs, ys []Type) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !equalType(xs[i], ys[i]) {
			return false
		}
	}
	return true
}
