package ast

import "github.com/dieterlang/dieter/internal/token"

// PrimitiveTypeExpr names one of void, bool, int, rat, string, ref.
type PrimitiveTypeExpr struct {
	Keyword string
	Tok     token.Token
	TypeHolder
}

func (e *PrimitiveTypeExpr) Pos() token.Token { return e.Tok }
func (e *PrimitiveTypeExpr) typeExprNode()    {}

// MapTypeExpr is `map [from From] to To`. From is nil for an
// open-domain map.
type MapTypeExpr struct {
	To   TypeExpr
	From TypeExpr // nil when absent
	Tok  token.Token
	TypeHolder
}

func (e *MapTypeExpr) Pos() token.Token { return e.Tok }
func (e *MapTypeExpr) typeExprNode()    {}

// ProcTypeExpr is a procedure type signature: argument type
// expressions and a return type expression.
type ProcTypeExpr struct {
	ArgTypes   []TypeExpr
	ReturnType TypeExpr
	Tok        token.Token
	TypeHolder
}

func (e *ProcTypeExpr) Pos() token.Token { return e.Tok }
func (e *ProcTypeExpr) typeExprNode()    {}

// QualifiedTypeExpr is a leading-identifier qualifier applied to an
// inner type expression: `qualifier Inner`. Multiple leading
// identifiers nest left-to-right.
type QualifiedTypeExpr struct {
	Qualifier string
	Inner     TypeExpr
	Tok       token.Token
	TypeHolder
}

func (e *QualifiedTypeExpr) Pos() token.Token { return e.Tok }
func (e *QualifiedTypeExpr) typeExprNode()    {}

// TypeVariableExpr is `♥name`, denoting an unbound type variable. Every
// occurrence of the same name within one signature denotes the same
// variable; a new name gets a fresh one.
type TypeVariableExpr struct {
	Name string
	Tok  token.Token
	TypeHolder
}

func (e *TypeVariableExpr) Pos() token.Token { return e.Tok }
func (e *TypeVariableExpr) typeExprNode()    {}
