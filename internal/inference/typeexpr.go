package inference

import (
	"github.com/uclelang/ucle/internal/diagnostics"
	"github.com/uclelang/ucle/internal/typeenv"
	"github.com/uclelang/ucle/internal/types"
	"github.com/uclelang/ucle/internal/ucleast"
)

// ResolveTypeExpr translates a surface-syntax type annotation into a core
// type, compositionally (spec §4.6.1): name references look up the
// environment, record expressions become closed records, function
// expressions are already right-associated by the parser into nested
// Function types, and union/intersection/literal expressions become
// their corresponding closed-algebra variant.
func (c *Context) ResolveTypeExpr(env *typeenv.Env, te ucleast.TypeExpr) (types.Type, error) {
	switch t := te.(type) {
	case *ucleast.NameTypeExpr:
		resolved, err := env.Lookup(c.Fresh, t.Name, true)
		if err != nil {
			return nil, err
		}
		if len(t.Args) == 0 {
			return resolved, nil
		}
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			at, err := c.ResolveTypeExpr(env, a)
			if err != nil {
				return nil, err
			}
			args[i] = at
		}
		if named, ok := resolved.(types.Named); ok {
			return types.Named{Name: named.Name, Args: args}, nil
		}
		return resolved, nil

	case *ucleast.FunctionTypeExpr:
		param, err := c.ResolveTypeExpr(env, t.Param)
		if err != nil {
			return nil, err
		}
		ret, err := c.ResolveTypeExpr(env, t.Ret)
		if err != nil {
			return nil, err
		}
		return types.Function{Params: []types.Type{param}, Ret: ret}, nil

	case *ucleast.RecordTypeExpr:
		fields := make([]types.RecordField, len(t.Fields))
		for i, f := range t.Fields {
			ft, err := c.ResolveTypeExpr(env, f.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = types.RecordField{Name: f.Name, Type: ft}
		}
		return types.Record{Fields: fields}, nil

	case *ucleast.UnionTypeExpr:
		comps := make([]types.Type, len(t.Components))
		for i, comp := range t.Components {
			ct, err := c.ResolveTypeExpr(env, comp)
			if err != nil {
				return nil, err
			}
			comps[i] = ct
		}
		return types.Union{Components: comps}, nil

	case *ucleast.IntersectionTypeExpr:
		comps := make([]types.Type, len(t.Components))
		for i, comp := range t.Components {
			ct, err := c.ResolveTypeExpr(env, comp)
			if err != nil {
				return nil, err
			}
			comps[i] = ct
		}
		return types.Intersection{Components: comps}, nil

	case *ucleast.LiteralTypeExpr:
		if !literalBaseAllowed(c.Settings.LiteralBaseTypes, t.BaseName) {
			return nil, diagnostics.New(diagnostics.LiteralMismatch, "",
				"literal refinement over base type %q is disabled by configuration", t.BaseName)
		}
		return types.Literal{Value: t.Value, Base: types.Named{Name: t.BaseName}}, nil

	default:
		return nil, diagnostics.New(diagnostics.UnificationFailure, "",
			"unknown type expression node for inference")
	}
}

// literalBaseAllowed reports whether base is one of the configured
// literal-refinement base types (internal/config.Settings.LiteralBaseTypes).
func literalBaseAllowed(allowed []string, base string) bool {
	for _, name := range allowed {
		if name == base {
			return true
		}
	}
	return false
}
