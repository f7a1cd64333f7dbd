package ast

import "github.com/dieterlang/dieter/internal/token"

// IntConstExpr is an integer literal.
type IntConstExpr struct {
	Value int
	Tok   token.Token
	TypeHolder
}

func (e *IntConstExpr) Pos() token.Token { return e.Tok }
func (e *IntConstExpr) expressionNode()  {}

// StringConstExpr is a string literal.
type StringConstExpr struct {
	Value string
	Tok   token.Token
	TypeHolder
}

func (e *StringConstExpr) Pos() token.Token { return e.Tok }
func (e *StringConstExpr) expressionNode()  {}

// VarRefExpr references a variable, optionally projected through a
// map index: `name` or `name[index]`.
type VarRefExpr struct {
	Name  string
	Index Expression // nil unless indexed
	Tok   token.Token
	TypeHolder
}

func (e *VarRefExpr) Pos() token.Token { return e.Tok }
func (e *VarRefExpr) expressionNode()  {}

// SuperExpr is the bare `super` expression, whose type is the
// enclosing procedure's declared return type.
type SuperExpr struct {
	Tok token.Token
	TypeHolder
}

func (e *SuperExpr) Pos() token.Token { return e.Tok }
func (e *SuperExpr) expressionNode()  {}

// BestowExpr is `bestow qualifier expr`, promoting expr's type with
// qualifier — legal only inside the module named by qualifier.
type BestowExpr struct {
	Qualifier string
	Expr      Expression
	Tok       token.Token
	TypeHolder
}

func (e *BestowExpr) Pos() token.Token { return e.Tok }
func (e *BestowExpr) expressionNode()  {}

// CallExpr is a call used in expression position: `name(args)`.
type CallExpr struct {
	Name string
	Args []Expression
	Tok  token.Token
	TypeHolder
}

func (e *CallExpr) Pos() token.Token { return e.Tok }
func (e *CallExpr) expressionNode()  {}
