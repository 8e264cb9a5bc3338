package inference

import (
	"github.com/uclelang/ucle/internal/diagnostics"
	"github.com/uclelang/ucle/internal/typeenv"
	"github.com/uclelang/ucle/internal/types"
	"github.com/uclelang/ucle/internal/ucleast"
)

// GenerateExpr implements the constraint generator for expressions
// (spec §4.6): given an AST node and an environment, returns the node's
// type, emitting Equal constraints and per-node type bindings as a side
// effect on ctx.
func (c *Context) GenerateExpr(env *typeenv.Env, expr ucleast.Expr) (types.Type, error) {
	switch e := expr.(type) {
	case *ucleast.IntLiteral:
		return c.record(e, types.Named{Name: "Number"}), nil

	case *ucleast.StringLiteral:
		return c.record(e, types.Named{Name: "String"}), nil

	case *ucleast.BoolLiteral:
		return c.record(e, types.Named{Name: "Boolean"}), nil

	case *ucleast.Ident:
		t, err := env.Lookup(c.Fresh, e.Name, e.Upper)
		if err != nil {
			return nil, err
		}
		return c.record(e, t), nil

	case *ucleast.Lambda:
		return c.generateLambda(env, e)

	case *ucleast.ConstIn:
		return c.generateConstIn(env, e)

	case *ucleast.RecordLiteral:
		return c.generateRecordLiteral(env, e)

	case *ucleast.Match:
		return c.generateMatch(env, e)

	case *ucleast.Compound:
		return c.generateCompound(env, e)

	default:
		return nil, diagnostics.New(diagnostics.UnificationFailure, "",
			"unknown expression node for inference")
	}
}

func (c *Context) generateLambda(env *typeenv.Env, e *ucleast.Lambda) (types.Type, error) {
	paramTypes := make([]types.Type, len(e.Params))
	bindings := map[string]types.Scheme{}
	for i, p := range e.Params {
		var pt types.Type
		if p.Annotation != nil {
			resolved, err := c.ResolveTypeExpr(env, p.Annotation)
			if err != nil {
				return nil, err
			}
			pt = resolved
		} else {
			pt = types.FreshVar(c.Fresh)
		}
		c.record(p, pt)
		paramTypes[i] = pt
		// monomorphic: lambda-bound parameters are never generalized
		// (spec §4.6 step 2, spec §8 "Generalization boundary").
		bindings[p.Name] = types.Mono(pt)
	}
	bodyEnv := env.Extend(bindings)
	bodyType, err := c.GenerateExpr(bodyEnv, e.Body)
	if err != nil {
		return nil, err
	}
	return c.record(e, types.Function{Params: paramTypes, Ret: bodyType}), nil
}

func (c *Context) generateConstIn(env *typeenv.Env, e *ucleast.ConstIn) (types.Type, error) {
	t1, err := c.GenerateExpr(env, e.Bind)
	if err != nil {
		return nil, err
	}
	// const does not generalize (spec §4.6: "const does not generalize").
	innerEnv := env.ExtendOne(e.Name, types.Mono(t1))
	t2, err := c.GenerateExpr(innerEnv, e.Body)
	if err != nil {
		return nil, err
	}
	return c.record(e, t2), nil
}

func (c *Context) generateRecordLiteral(env *typeenv.Env, e *ucleast.RecordLiteral) (types.Type, error) {
	fields := make([]types.RecordField, len(e.Fields))
	for i, f := range e.Fields {
		ft, err := c.GenerateExpr(env, f.Value)
		if err != nil {
			return nil, err
		}
		fields[i] = types.RecordField{Name: f.Name, Type: ft}
	}
	// record literals always produce a closed record (spec §9: "Row
	// polymorphism choice").
	return c.record(e, types.Record{Fields: fields}), nil
}

func (c *Context) generateMatch(env *typeenv.Env, e *ucleast.Match) (types.Type, error) {
	scrutType, err := c.GenerateExpr(env, e.Scrutinee)
	if err != nil {
		return nil, err
	}
	result := types.FreshVar(c.Fresh)
	for _, arm := range e.Arms {
		patType, delta, err := c.generatePattern(env, arm.Pattern)
		if err != nil {
			return nil, err
		}
		c.equal(scrutType, patType)
		armEnv := env.Extend(delta)
		bodyType, err := c.GenerateExpr(armEnv, arm.Body)
		if err != nil {
			return nil, err
		}
		c.equal(result, bodyType)
	}
	return c.record(e, result), nil
}

func (c *Context) generateCompound(env *typeenv.Env, e *ucleast.Compound) (types.Type, error) {
	cur, err := c.GenerateExpr(env, e.Primary)
	if err != nil {
		return nil, err
	}
	for _, suffix := range e.Suffixes {
		switch s := suffix.(type) {
		case ucleast.ApplySuffix:
			argTypes := make([]types.Type, len(s.Args))
			for i, a := range s.Args {
				at, err := c.GenerateExpr(env, a)
				if err != nil {
					return nil, err
				}
				argTypes[i] = at
			}
			result := types.FreshVar(c.Fresh)
			c.equal(cur, types.Function{Params: argTypes, Ret: result})
			cur = result
		case ucleast.FieldSuffix:
			next, err := c.generateFieldAccess(cur, s.Field)
			if err != nil {
				return nil, err
			}
			cur = next
		}
	}
	return c.record(e, cur), nil
}

// generateFieldAccess implements the `.field` rule (spec §4.6). With the
// default settings it is row-polymorphic: cur only has to unify against a
// record with the named field and an open row, so the rest of cur's
// shape stays unconstrained. When Settings.StrictRecordFieldAccess is set,
// width-subtyping is disabled: cur must already resolve to a closed record
// that names the field, and the field is read off directly instead of
// being deferred to a constraint.
func (c *Context) generateFieldAccess(cur types.Type, field string) (types.Type, error) {
	if !c.Settings.StrictRecordFieldAccess {
		ft := types.FreshVar(c.Fresh)
		row := types.FreshVar(c.Fresh)
		c.equal(cur, types.Record{
			Fields: []types.RecordField{{Name: field, Type: ft}},
			RowVar: &row,
		})
		return ft, nil
	}

	resolved := c.GlobalSubst.Apply(cur)
	rec, ok := resolved.(types.Record)
	if !ok || rec.IsOpen() {
		return nil, diagnostics.New(diagnostics.RecordFieldMismatch, "",
			"strict record field access requires a fully known closed record for field %q", field)
	}
	ft, ok := rec.Lookup(field)
	if !ok {
		return nil, diagnostics.New(diagnostics.RecordFieldMismatch, "",
			"record has no field %q", field)
	}
	return ft, nil
}

// generatePattern implements the pattern rules of spec §4.6, returning the
// pattern's type and the bindings it introduces.
func (c *Context) generatePattern(env *typeenv.Env, pat ucleast.Pattern) (types.Type, map[string]types.Scheme, error) {
	switch p := pat.(type) {
	case *ucleast.VarPattern:
		t := types.FreshVar(c.Fresh)
		c.record(p, t)
		return t, map[string]types.Scheme{p.Name: types.Mono(t)}, nil

	case *ucleast.LiteralPattern:
		t := types.Named{Name: p.BaseName}
		c.record(p, t)
		return t, map[string]types.Scheme{}, nil

	case *ucleast.RecordPattern:
		fields := make([]types.RecordField, len(p.Fields))
		delta := map[string]types.Scheme{}
		for i, f := range p.Fields {
			ft, sub, err := c.generatePattern(env, f.Pattern)
			if err != nil {
				return nil, nil, err
			}
			fields[i] = types.RecordField{Name: f.Name, Type: ft}
			for name, sc := range sub {
				delta[name] = sc
			}
		}
		t := types.Record{Fields: fields}
		c.record(p, t)
		return t, delta, nil

	case *ucleast.ConstructorPattern:
		ctor, err := env.Lookup(c.Fresh, p.Name, true)
		if err != nil {
			return nil, nil, err
		}
		argTypes := make([]types.Type, len(p.Args))
		delta := map[string]types.Scheme{}
		for i, a := range p.Args {
			at, sub, err := c.generatePattern(env, a)
			if err != nil {
				return nil, nil, err
			}
			argTypes[i] = at
			for name, sc := range sub {
				delta[name] = sc
			}
		}
		result := types.FreshVar(c.Fresh)
		if err := c.unifyNow(ctor, types.Function{Params: argTypes, Ret: result}); err != nil {
			return nil, nil, err
		}
		c.record(p, result)
		return result, delta, nil

	default:
		return nil, nil, diagnostics.New(diagnostics.UnificationFailure, "",
			"unknown pattern node for inference")
	}
}
