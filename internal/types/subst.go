package types

import "github.com/uclelang/ucle/internal/freshvar"

// FreshVar draws the next identifier from supply and wraps it as a Var,
// the shape every call site in the generator, solver, and environment
// actually wants.
func FreshVar(supply *freshvar.Supply) Var {
	return Var{ID: supply.Fresh()}
}

// Subst is a finite map from type-variable identifiers to types (spec
// §4.2). Grounded on the teacher's typesystem.Subst/Compose, adapted from
// funxy's string-keyed map[string]Type to spec's integer Var identifiers.
type Subst map[int]Type

// Empty is the identity substitution.
func Empty() Subst { return Subst{} }

// Singleton builds a substitution binding exactly one variable.
func Singleton(id int, t Type) Subst { return Subst{id: t} }

// Compose returns s1 ∘ s2: apply s1 to s2's range, then add s1's own
// bindings for anything not already rebound by s2 (spec §4.2).
func (s1 Subst) Compose(s2 Subst) Subst {
	out := make(Subst, len(s1)+len(s2))
	for id, t := range s2 {
		out[id] = s1.Apply(t)
	}
	for id, t := range s1 {
		if _, ok := out[id]; !ok {
			out[id] = t
		}
	}
	return out
}

// Apply applies the substitution to t, chasing transitive Var bindings and
// recursing into composite types (spec §4.1/§4.2). It is path-compressing
// in spirit: chase follows chained bindings one substitution's worth at a
// time rather than leaving stale indirections in the result.
func (s Subst) Apply(t Type) Type {
	switch v := t.(type) {
	case Var:
		if bound, ok := s[v.ID]; ok {
			return s.Apply(bound)
		}
		return v
	case Named:
		return Named{Name: v.Name, Args: s.applyAll(v.Args)}
	case Function:
		return Function{Params: s.applyAll(v.Params), Ret: s.Apply(v.Ret)}
	case Record:
		fields := make([]RecordField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = RecordField{Name: f.Name, Type: s.Apply(f.Type)}
		}
		var row *Var
		if v.RowVar != nil {
			resolved := s.Apply(*v.RowVar)
			switch rv := resolved.(type) {
			case Var:
				row = &rv
			case Record:
				// the row variable resolved to a concrete (possibly open)
				// record: splice its fields in and adopt its row variable.
				fields = append(fields, rv.Fields...)
				row = rv.RowVar
			}
		}
		return Record{Fields: fields, RowVar: row}
	case Union:
		return Union{Components: s.applyAll(v.Components)}
	case Intersection:
		return Intersection{Components: s.applyAll(v.Components)}
	case Literal:
		return v
	default:
		return t
	}
}

func (s Subst) applyAll(ts []Type) []Type {
	if ts == nil {
		return nil
	}
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = s.Apply(t)
	}
	return out
}

// ApplyScheme applies s to a scheme's body, leaving the quantified
// variables untouched (a scheme's own bound vars must never be captured by
// an outer substitution that predates their (re-)quantification).
func (s Subst) ApplyScheme(sc Scheme) Scheme {
	filtered := make(Subst, len(s))
	bound := make(map[int]struct{}, len(sc.Vars))
	for _, v := range sc.Vars {
		bound[v] = struct{}{}
	}
	for id, t := range s {
		if _, isBound := bound[id]; !isBound {
			filtered[id] = t
		}
	}
	return Scheme{Vars: sc.Vars, Body: filtered.Apply(sc.Body)}
}
