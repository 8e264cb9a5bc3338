// Package ucleast defines the abstract syntax tree the inference core
// consumes (spec §6): programs composed of type declarations, let
// declarations, and expression statements. Grounded on the shape of the
// teacher's internal/ast package (ast_core.go's Node/Statement/Expression
// interfaces, TokenLiteral()), trimmed to UCLE's own grammar from
// docs/mini/Grammar.lllg and to a plain type-switch dispatch rather than
// funxy's Visitor pattern — the teacher's own constraint generator in
// internal/analyzer/inference.go dispatches with a type switch, not
// Accept(Visitor), and that is the shape this core's generator follows
// too (see internal/inference).
package ucleast

// Node is the base interface every AST node implements. Node identity
// (pointer equality) is what keys the per-node type map the driver
// returns (spec §9: "an implementation may key by stable node indices...
// or by address").
type Node interface {
	node()
}

// Decl is a top-level declaration: a TypeDecl or a LetDecl.
type Decl interface {
	Node
	declNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Pattern is a match-arm or constructor-argument pattern.
type Pattern interface {
	Node
	patternNode()
}

// TypeExpr is a surface-syntax type annotation (spec §4.6.1).
type TypeExpr interface {
	Node
	typeExprNode()
}

// Program is the root node: an ordered sequence of top-level declarations.
type Program struct {
	Decls []Decl
}

func (p *Program) node() {}

// Param is one lambda or let-declaration parameter: a name with an
// optional type annotation.
type Param struct {
	Name       string
	Annotation TypeExpr // nil if unannotated
}

func (p *Param) node() {}

// TypeDecl registers a named type (spec §4.6: "Type declaration").
type TypeDecl struct {
	Name       string
	Params     []string // generic parameters, unchecked by the current core
	Definition TypeExpr
}

func (d *TypeDecl) node()     {}
func (d *TypeDecl) declNode() {}

// LetDecl binds Name to the value of Body, with optional generic
// parameters (unused by inference beyond naming), optional value
// parameters (making this a function binding), and an optional return
// type annotation.
type LetDecl struct {
	Name       string
	Generics   []string
	Params     []*Param // nil for a non-function binding
	Annotation TypeExpr // nil if unannotated
	Body       Expr
}

func (d *LetDecl) node()     {}
func (d *LetDecl) declNode() {}

// ExprStatement is a bare top-level expression statement.
type ExprStatement struct {
	Expr Expr
}

func (s *ExprStatement) node()     {}
func (s *ExprStatement) declNode() {}

// --- Expressions ---

// IntLiteral is an integer literal expression.
type IntLiteral struct {
	Value int64
}

func (e *IntLiteral) node()     {}
func (e *IntLiteral) exprNode() {}

// StringLiteral is a string literal expression.
type StringLiteral struct {
	Value string
}

func (e *StringLiteral) node()     {}
func (e *StringLiteral) exprNode() {}

// BoolLiteral is a True/False literal expression.
type BoolLiteral struct {
	Value bool
}

func (e *BoolLiteral) node()     {}
func (e *BoolLiteral) exprNode() {}

// Ident is an identifier reference. Upper is true when the identifier is
// lexically upper-case (a type/constructor reference), which determines
// which diagnostic an unbound lookup reports (spec §4.6).
type Ident struct {
	Name  string
	Upper bool
}

func (e *Ident) node()     {}
func (e *Ident) exprNode() {}

// Lambda is `fn(params) => body` (spec §4.6: "Lambda").
type Lambda struct {
	Params []*Param
	Body   Expr
}

func (e *Lambda) node()     {}
func (e *Lambda) exprNode() {}

// ConstIn is `const x = e1 in e2` (spec §4.6).
type ConstIn struct {
	Name string
	Bind Expr
	Body Expr
}

func (e *ConstIn) node()     {}
func (e *ConstIn) exprNode() {}

// RecordField is one `name: value` pair in a record literal.
type RecordField struct {
	Name  string
	Value Expr
}

// RecordLiteral is `rect { f1: e1, ..., fn: en }` (spec §4.6).
type RecordLiteral struct {
	Fields []RecordField
}

func (e *RecordLiteral) node()     {}
func (e *RecordLiteral) exprNode() {}

// MatchArm is one `case pattern => body` clause.
type MatchArm struct {
	Pattern Pattern
	Body    Expr
}

// Match is `match scrutinee { arm1 ... armn }` (spec §4.6).
type Match struct {
	Scrutinee Expr
	Arms      []MatchArm
}

func (e *Match) node()     {}
func (e *Match) exprNode() {}

// Compound is a primary expression followed by zero or more suffixes
// (application or field access), typed left-to-right (spec §4.6:
// "Compound expression").
type Compound struct {
	Primary  Expr
	Suffixes []Suffix
}

func (e *Compound) node()     {}
func (e *Compound) exprNode() {}

// Suffix is either an ApplySuffix or a FieldSuffix.
type Suffix interface {
	suffixNode()
}

// ApplySuffix is a `(args...)` application suffix.
type ApplySuffix struct {
	Args []Expr
}

func (s ApplySuffix) suffixNode() {}

// FieldSuffix is a `.field` access suffix.
type FieldSuffix struct {
	Field string
}

func (s FieldSuffix) suffixNode() {}

// --- Patterns ---

// VarPattern is a lower-case identifier pattern, binding a fresh name.
type VarPattern struct {
	Name string
}

func (p *VarPattern) node()        {}
func (p *VarPattern) patternNode() {}

// LiteralPattern matches a literal value against a base type.
type LiteralPattern struct {
	Value    any
	BaseName string // "Number", "String", or "Boolean"
}

func (p *LiteralPattern) node()        {}
func (p *LiteralPattern) patternNode() {}

// RecordFieldPattern is one `name: pattern` pair in a record pattern.
type RecordFieldPattern struct {
	Name    string
	Pattern Pattern
}

// RecordPattern is `rect { f1: p1, ..., fn: pn }` (spec §4.6).
type RecordPattern struct {
	Fields []RecordFieldPattern
}

func (p *RecordPattern) node()        {}
func (p *RecordPattern) patternNode() {}

// ConstructorPattern is `C(p1, ..., pn)`: an upper identifier with
// optional sub-patterns (spec §4.6).
type ConstructorPattern struct {
	Name string
	Args []Pattern
}

func (p *ConstructorPattern) node()        {}
func (p *ConstructorPattern) patternNode() {}

// --- Type expressions (spec §4.6.1) ---

// NameTypeExpr is a reference to a named type, with optional generic args.
type NameTypeExpr struct {
	Name string
	Args []TypeExpr
}

func (t *NameTypeExpr) node()         {}
func (t *NameTypeExpr) typeExprNode() {}

// FunctionTypeExpr is `a -> b -> c`, right-associated at parse time so
// each node holds a single Param and a Ret that may itself be a
// FunctionTypeExpr (spec §4.6.1: "right-associate as Function([a], Function([b], c))").
type FunctionTypeExpr struct {
	Param TypeExpr
	Ret   TypeExpr
}

func (t *FunctionTypeExpr) node()         {}
func (t *FunctionTypeExpr) typeExprNode() {}

// RecordFieldTypeExpr is one `name: type` pair in a record type
// expression.
type RecordFieldTypeExpr struct {
	Name string
	Type TypeExpr
}

// RecordTypeExpr is `rect { f1: t1, ..., fn: tn }`, always closed
// (spec §4.6.1: "record type expressions become closed records").
type RecordTypeExpr struct {
	Fields []RecordFieldTypeExpr
}

func (t *RecordTypeExpr) node()         {}
func (t *RecordTypeExpr) typeExprNode() {}

// UnionTypeExpr is `a | b | ...`.
type UnionTypeExpr struct {
	Components []TypeExpr
}

func (t *UnionTypeExpr) node()         {}
func (t *UnionTypeExpr) typeExprNode() {}

// IntersectionTypeExpr is `a & b & ...`.
type IntersectionTypeExpr struct {
	Components []TypeExpr
}

func (t *IntersectionTypeExpr) node()         {}
func (t *IntersectionTypeExpr) typeExprNode() {}

// LiteralTypeExpr is a literal used as a refinement type, e.g. the `42`
// in `x : 42`.
type LiteralTypeExpr struct {
	Value    any
	BaseName string
}

func (t *LiteralTypeExpr) node()         {}
func (t *LiteralTypeExpr) typeExprNode() {}
