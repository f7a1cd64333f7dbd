package ast

import "github.com/dieterlang/dieter/internal/token"

// CompoundStatement is `begin step* end`.
type CompoundStatement struct {
	Steps []Statement
	Tok   token.Token
}

func (s *CompoundStatement) Pos() token.Token { return s.Tok }
func (s *CompoundStatement) statementNode()   {}

// IfStatement is `if test then then [else else]`. Else is nil when
// absent — the grammar marks it optional.
type IfStatement struct {
	Test Expression
	Then Statement
	Else Statement
	Tok  token.Token
}

func (s *IfStatement) Pos() token.Token { return s.Tok }
func (s *IfStatement) statementNode()   {}

// WhileStatement is `while test do body`.
type WhileStatement struct {
	Test Expression
	Body Statement
	Tok  token.Token
}

func (s *WhileStatement) Pos() token.Token { return s.Tok }
func (s *WhileStatement) statementNode()   {}

// ReturnStatement is `return [final] expr`. Final is accepted but has
// no semantic effect.
type ReturnStatement struct {
	Expr  Expression
	Final bool
	Tok   token.Token
}

func (s *ReturnStatement) Pos() token.Token { return s.Tok }
func (s *ReturnStatement) statementNode()   {}

// CallStatement is a call used in statement position: `name(args)`.
// Unlike other statements it carries a computed type, since a call's
// type is meaningful even when its value is discarded.
type CallStatement struct {
	Name string
	Args []Expression
	Tok  token.Token
	TypeHolder
}

func (s *CallStatement) Pos() token.Token { return s.Tok }
func (s *CallStatement) statementNode()   {}

// AssignStatement is `name [ [ index ] ] := expr`. Index is nil unless
// the left-hand side is a map projection.
type AssignStatement struct {
	Name  string
	Index Expression
	Expr  Expression
	Tok   token.Token
}

func (s *AssignStatement) Pos() token.Token { return s.Tok }
func (s *AssignStatement) statementNode()   {}
