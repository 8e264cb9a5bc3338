// Package ucle is the public surface of the UCLE type-inference core: a
// small façade over internal/inference, mirroring mafm-poly's root
// `package poly`, which exposes a similarly small public API (Infer,
// pretty-printing helpers) over an internal Algorithm-W engine.
package ucle

import (
	"io"

	"github.com/uclelang/ucle/internal/config"
	"github.com/uclelang/ucle/internal/inference"
	"github.com/uclelang/ucle/internal/typeenv"
	"github.com/uclelang/ucle/internal/types"
	"github.com/uclelang/ucle/internal/ucleast"
)

// Re-exported AST types, so callers building a program to infer never
// need to import the internal package directly.
type (
	Program              = ucleast.Program
	Decl                 = ucleast.Decl
	TypeDecl             = ucleast.TypeDecl
	LetDecl              = ucleast.LetDecl
	ExprStatement        = ucleast.ExprStatement
	Param                = ucleast.Param
	Expr                 = ucleast.Expr
	Pattern              = ucleast.Pattern
	TypeExpr             = ucleast.TypeExpr
	IntLiteral           = ucleast.IntLiteral
	StringLiteral        = ucleast.StringLiteral
	BoolLiteral          = ucleast.BoolLiteral
	Ident                = ucleast.Ident
	Lambda               = ucleast.Lambda
	ConstIn              = ucleast.ConstIn
	RecordLiteral        = ucleast.RecordLiteral
	RecordField          = ucleast.RecordField
	Match                = ucleast.Match
	MatchArm             = ucleast.MatchArm
	Compound             = ucleast.Compound
	Suffix               = ucleast.Suffix
	ApplySuffix          = ucleast.ApplySuffix
	FieldSuffix          = ucleast.FieldSuffix
	VarPattern           = ucleast.VarPattern
	LiteralPattern       = ucleast.LiteralPattern
	RecordPattern        = ucleast.RecordPattern
	RecordFieldPattern   = ucleast.RecordFieldPattern
	ConstructorPattern   = ucleast.ConstructorPattern
	NameTypeExpr         = ucleast.NameTypeExpr
	FunctionTypeExpr     = ucleast.FunctionTypeExpr
	RecordTypeExpr       = ucleast.RecordTypeExpr
	RecordFieldTypeExpr  = ucleast.RecordFieldTypeExpr
	UnionTypeExpr        = ucleast.UnionTypeExpr
	IntersectionTypeExpr = ucleast.IntersectionTypeExpr
	LiteralTypeExpr      = ucleast.LiteralTypeExpr
)

// Env is the resolved top-level environment returned by Infer.
type Env = typeenv.Env

// Type is the closed type-algebra sum (spec §3).
type Type = types.Type

// Settings is the optional YAML-configurable behavior described in
// internal/config: which literal base types admit refinement, and whether
// record field access requires an already-known closed shape.
type Settings = config.Settings

// DefaultSettings returns the zero-configuration behavior Infer uses.
func DefaultSettings() Settings {
	return config.DefaultSettings()
}

// LoadSettings parses Settings from YAML, for callers that have their own
// file or stream to read; the core itself never touches disk (spec §5).
func LoadSettings(r io.Reader) (Settings, error) {
	return config.LoadSettings(r)
}

// Infer is the primary entry point (spec §6): infer(ast) -> (env,
// nodeTypes). It returns the resolved top-level environment (one scheme
// per top-level name) and a map from every visited AST node to its
// inferred type, using DefaultSettings.
func Infer(program *Program) (*Env, map[ucleast.Node]Type, error) {
	return inference.Infer(program)
}

// InferWithSettings is Infer with caller-supplied Settings, so the
// literal-refinement and strict-record-field-access knobs take effect.
func InferWithSettings(program *Program, settings Settings) (*Env, map[ucleast.Node]Type, error) {
	return inference.InferWithSettings(program, settings)
}

// InferredTypesAsStrings is a convenience wrapper (spec §6) that
// pretty-prints each top-level scheme's body. Only user `let` declarations
// are included — the built-in names seeded into every environment (spec
// §4.8 step 2) are not themselves bindings a caller asked about.
func InferredTypesAsStrings(program *Program) (map[string]string, error) {
	env, _, err := inference.Infer(program)
	if err != nil {
		return nil, err
	}
	names := env.Names()
	out := map[string]string{}
	for _, decl := range program.Decls {
		if d, ok := decl.(*LetDecl); ok {
			if scheme, ok := names[d.Name]; ok {
				out[d.Name] = scheme.Body.Pretty()
			}
		}
	}
	return out, nil
}
