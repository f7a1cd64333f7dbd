// Package ast defines Dieter's abstract syntax tree: a closed set of
// node variants, each optionally carrying a computed type populated by
// the checker.
package ast

import (
	"github.com/dieterlang/dieter/internal/token"
	"github.com/dieterlang/dieter/internal/typesystem"
)

// Node is implemented by every AST variant.
type Node interface {
	Pos() token.Token
}

// Typed is implemented by nodes that carry a computed type, set once
// by typechecking and absent before.
type Typed interface {
	SetType(typesystem.Type)
	GetType() typesystem.Type
}

// TypeHolder is embedded by every node that carries a computed type.
type TypeHolder struct {
	Type typesystem.Type
}

func (h *TypeHolder) SetType(t typesystem.Type)  { h.Type = t }
func (h *TypeHolder) GetType() typesystem.Type   { return h.Type }

// Statement is implemented by every statement variant.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression variant; expressions
// always carry a computed type once checked.
type Expression interface {
	Node
	Typed
	expressionNode()
}

// TypeExpr is implemented by every type-expression variant; it too
// carries a computed type (the typesystem.Type it denotes).
type TypeExpr interface {
	Node
	Typed
	typeExprNode()
}

// Program is the root node: ordered lists of forwards, orderings, and
// modules, in source order.
type Program struct {
	Forwards  []*ForwardDecl
	Orderings []*Ordering
	Modules   []*Module
}

// Ordering is `order before < after`, naming two qualifiers. The
// checker does not currently enforce it (spec §9's open question).
type Ordering struct {
	Before, After string
	Tok           token.Token
}

func (o *Ordering) Pos() token.Token { return o.Tok }

// ForwardDecl is an advance declaration of a procedure's type:
// `forward name(...): ReturnType`.
type ForwardDecl struct {
	Name     string
	TypeExpr TypeExpr
	Tok      token.Token
}

func (f *ForwardDecl) Pos() token.Token { return f.Tok }

// Module groups a set of locals and procedures under a name that also
// serves as a qualifier. Fails marks a module expected to fail
// typechecking.
type Module struct {
	Name       string
	Fails      bool
	Locals     []*VarDecl
	Procedures []*ProcDecl
	Tok        token.Token
}

func (m *Module) Pos() token.Token { return m.Tok }

// VarDecl is `name : TypeExpr`, used for module locals, procedure
// arguments, and procedure locals alike.
type VarDecl struct {
	Name     string
	TypeExpr TypeExpr
	Tok      token.Token
	TypeHolder
}

func (v *VarDecl) Pos() token.Token { return v.Tok }

// ProcDecl is a procedure declaration: its argument and local
// VarDecls, declared return-type expression, and body statement.
type ProcDecl struct {
	Name           string
	Args           []*VarDecl
	Locals         []*VarDecl
	ReturnTypeExpr TypeExpr
	Body           Statement
	Tok            token.Token
	TypeHolder
}

func (p *ProcDecl) Pos() token.Token { return p.Tok }
