// Package typeenv implements the type environment (spec §4.4): a mapping
// from identifier names to type schemes, supporting lookup-with-
// instantiation, functional extension, and free-variable computation for
// generalization. Grounded on the teacher's symbols.SymbolTable (Symbol
// shape, scope chain) in internal/symbols/symbol_table_core.go, simplified
// to schemes-only since UCLE has no traits, modules, aliases, or
// instances to track.
package typeenv

import (
	"github.com/uclelang/ucle/internal/diagnostics"
	"github.com/uclelang/ucle/internal/freshvar"
	"github.com/uclelang/ucle/internal/types"
)

// Env is a persistent mapping from identifier name to type scheme.
// Environments are treated as values: Extend returns a new Env and never
// mutates the receiver, matching spec §5's "no mutable aliasing between
// the environment passed into a sub-derivation and the one passed out".
type Env struct {
	parent *Env
	names  map[string]types.Scheme
}

// New returns an empty environment.
func New() *Env {
	return &Env{names: map[string]types.Scheme{}}
}

// Lookup returns the scheme bound to name with its quantified variables
// instantiated at fresh identifiers (spec §4.4). isType controls which
// diagnostic code an absent binding reports, since the generator
// distinguishes lower-case identifier lookups from upper-case
// type/constructor lookups (spec §4.6) only in the error they raise.
func (e *Env) Lookup(fresh *freshvar.Supply, name string, isType bool) (types.Type, error) {
	sc, ok := e.find(name)
	if !ok {
		if isType {
			return nil, diagnostics.New(diagnostics.UnboundTypeOrConstructor, "",
				"unbound type or constructor: %s", name)
		}
		return nil, diagnostics.New(diagnostics.UnboundIdentifier, "",
			"unbound identifier: %s", name)
	}
	return Instantiate(fresh, sc), nil
}

func (e *Env) find(name string) (types.Scheme, bool) {
	for env := e; env != nil; env = env.parent {
		if sc, ok := env.names[name]; ok {
			return sc, true
		}
	}
	return types.Scheme{}, false
}

// Instantiate replaces a scheme's quantified variables with fresh type
// variables (spec Glossary: Instantiation).
func Instantiate(fresh *freshvar.Supply, sc types.Scheme) types.Type {
	if len(sc.Vars) == 0 {
		return sc.Body
	}
	s := types.Empty()
	for _, v := range sc.Vars {
		s[v] = types.FreshVar(fresh)
	}
	return s.Apply(sc.Body)
}

// Extend returns a new environment with the given names bound to the
// given schemes, layered in front of the receiver (spec §4.4).
func (e *Env) Extend(bindings map[string]types.Scheme) *Env {
	child := &Env{parent: e, names: make(map[string]types.Scheme, len(bindings))}
	for name, sc := range bindings {
		child.names[name] = sc
	}
	return child
}

// ExtendOne is a convenience for the common single-binding case.
func (e *Env) ExtendOne(name string, sc types.Scheme) *Env {
	return e.Extend(map[string]types.Scheme{name: sc})
}

// FreeVars returns the union of free variables of every scheme visible in
// this environment (spec §3: "Free variables of an environment").
func (e *Env) FreeVars() map[int]struct{} {
	out := map[int]struct{}{}
	seen := map[string]struct{}{}
	for env := e; env != nil; env = env.parent {
		for name, sc := range env.names {
			if _, shadowed := seen[name]; shadowed {
				continue
			}
			seen[name] = struct{}{}
			for id := range sc.FreeVars() {
				out[id] = struct{}{}
			}
		}
	}
	return out
}

// Generalize returns a scheme quantifying exactly freeVars(t) \ freeVars(e)
// (spec §4.4).
func (e *Env) Generalize(t types.Type) types.Scheme {
	envFree := e.FreeVars()
	var quantified []int
	for id := range t.FreeVars() {
		if _, inEnv := envFree[id]; !inEnv {
			quantified = append(quantified, id)
		}
	}
	sortInts(quantified)
	return types.Scheme{Vars: quantified, Body: t}
}

// ApplySubst returns a new environment with s applied to every visible
// scheme, used by the driver after solving (spec §4.8 step 5).
func (e *Env) ApplySubst(s types.Subst) *Env {
	if e == nil {
		return nil
	}
	out := &Env{parent: e.parent.ApplySubst(s), names: make(map[string]types.Scheme, len(e.names))}
	for name, sc := range e.names {
		out.names[name] = s.ApplyScheme(sc)
	}
	return out
}

// Names returns every name bound anywhere in the environment chain,
// innermost scope winning on shadowing, for callers that need to walk the
// final top-level bindings (e.g. the driver's returned environment).
func (e *Env) Names() map[string]types.Scheme {
	out := map[string]types.Scheme{}
	var chain []*Env
	for env := e; env != nil; env = env.parent {
		chain = append(chain, env)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		for name, sc := range chain[i].names {
			out[name] = sc
		}
	}
	return out
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
