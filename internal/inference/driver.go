package inference

import (
	"github.com/uclelang/ucle/internal/config"
	"github.com/uclelang/ucle/internal/constraintset"
	"github.com/uclelang/ucle/internal/typeenv"
	"github.com/uclelang/ucle/internal/types"
	"github.com/uclelang/ucle/internal/ucleast"
)

func freshConstraintSet() *constraintset.Set { return constraintset.New() }

// Infer orchestrates the full pipeline for a program (spec §4.8) using the
// default settings (config.DefaultSettings): pre-declare top-level names,
// generate and solve constraints for each declaration in order, apply the
// final substitution, and return the resolved environment plus the
// per-node type map.
func Infer(program *ucleast.Program) (*typeenv.Env, map[ucleast.Node]types.Type, error) {
	return InferWithSettings(program, config.DefaultSettings())
}

// InferWithSettings runs the same pipeline as Infer, but with settings
// loaded by the caller (e.g. via config.LoadSettings), so the
// literal-refinement and record-field-access knobs actually reach the
// generator and solver instead of being decorative.
func InferWithSettings(program *ucleast.Program, settings config.Settings) (*typeenv.Env, map[ucleast.Node]types.Type, error) {
	ctx := NewContextWithSettings(settings)
	env := builtinEnv()

	placeholders := map[string]types.Var{}
	for _, decl := range program.Decls {
		switch d := decl.(type) {
		case *ucleast.LetDecl:
			v := types.FreshVar(ctx.Fresh)
			placeholders[d.Name] = v
			env = env.ExtendOne(d.Name, types.Mono(v))
		case *ucleast.TypeDecl:
			env = env.ExtendOne(d.Name, types.Mono(types.Named{Name: d.Name}))
		}
	}

	for _, decl := range program.Decls {
		var err error
		switch d := decl.(type) {
		case *ucleast.LetDecl:
			env, err = ctx.processLetDecl(env, d, placeholders[d.Name])
		case *ucleast.TypeDecl:
			// the definition is resolved for side effects (keeping the
			// resolver exercised per the AST it is given) but the current
			// core does not enforce structural consistency of user type
			// declarations beyond parsing them (spec §4.6: "Type
			// declaration").
			_, err = ctx.ResolveTypeExpr(env, d.Definition)
		case *ucleast.ExprStatement:
			_, err = ctx.GenerateExpr(env, d.Expr)
		}
		if err != nil {
			return nil, nil, err
		}
	}

	// Constraints left by expression statements after the last let
	// declaration are solved here.
	if ctx.Constraints.Len() > 0 {
		s, err := ctx.Solve(ctx.Constraints)
		if err != nil {
			return nil, nil, err
		}
		ctx.GlobalSubst = s.Compose(ctx.GlobalSubst)
		ctx.Constraints = freshConstraintSet()
	}

	final := ctx.GlobalSubst
	resolvedEnv := env.ApplySubst(final)
	for node, t := range ctx.NodeTypes {
		ctx.NodeTypes[node] = final.Apply(t)
	}
	return resolvedEnv, ctx.NodeTypes, nil
}

// processLetDecl generates constraints for one let-binding's body, solves
// them immediately (the fused generate+solve shape spec §9 permits),
// unifies the result with the pre-declared placeholder so self-reference
// resolves, generalizes against the substituted environment, and extends
// env with the generalized scheme (spec §4.6: "Let declaration").
func (c *Context) processLetDecl(env *typeenv.Env, d *ucleast.LetDecl, placeholder types.Var) (*typeenv.Env, error) {
	bodyEnv := env
	var bodyType types.Type

	if d.Params != nil {
		paramTypes := make([]types.Type, len(d.Params))
		bindings := map[string]types.Scheme{}
		for i, p := range d.Params {
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
			bindings[p.Name] = types.Mono(pt)
		}
		bodyEnv = env.Extend(bindings)
		result, err := c.GenerateExpr(bodyEnv, d.Body)
		if err != nil {
			return nil, err
		}
		bodyType = types.Function{Params: paramTypes, Ret: result}
	} else {
		result, err := c.GenerateExpr(bodyEnv, d.Body)
		if err != nil {
			return nil, err
		}
		bodyType = result
	}

	c.equal(placeholder, bodyType)

	if d.Annotation != nil {
		annotated, err := c.ResolveTypeExpr(env, d.Annotation)
		if err != nil {
			return nil, err
		}
		c.equal(placeholder, annotated)
	}

	// Solve everything accumulated so far (spec §4.6 step 2): the running
	// constraint set up through this binding, since the fused shape
	// solves once per declaration rather than re-solving a monotonically
	// growing global set across the whole program.
	s, err := c.Solve(c.Constraints)
	if err != nil {
		return nil, err
	}
	c.GlobalSubst = s.Compose(c.GlobalSubst)
	c.Constraints = freshConstraintSet()

	substituted := c.GlobalSubst.Apply(placeholder)
	// The name's own placeholder is hidden behind a closed scheme: it now
	// stands for the body type, so leaving it free in env would keep every
	// variable of the body from being generalized.
	ownName := types.Scheme{Vars: []int{placeholder.ID}, Body: placeholder}
	generalizeEnv := env.ExtendOne(d.Name, ownName).ApplySubst(c.GlobalSubst)
	scheme := generalizeEnv.Generalize(substituted)
	return env.ExtendOne(d.Name, scheme), nil
}

// builtinEnv seeds the environment with the built-in named types (spec
// §4.8 step 2).
func builtinEnv() *typeenv.Env {
	env := typeenv.New()
	bindings := map[string]types.Scheme{}
	for _, name := range config.BuiltinTypeNames {
		bindings[name] = types.Mono(types.Named{Name: name})
	}
	return env.Extend(bindings)
}
