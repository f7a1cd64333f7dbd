package parser

import (
	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	tok := p.cur
	switch {
	case p.cur.Is("begin"):
		p.grab()
		var steps []ast.Statement
		for !p.cur.Is("end") && p.cur.Type != token.EOF {
			steps = append(steps, p.parseStatement())
		}
		p.expect("end")
		return &ast.CompoundStatement{Steps: steps, Tok: tok}

	case p.cur.Is("if"):
		p.grab()
		test := p.parseExpr()
		p.expect("then")
		thenStmt := p.parseStatement()
		var elseStmt ast.Statement
		if p.cur.Is("else") {
			p.grab()
			elseStmt = p.parseStatement()
		}
		return &ast.IfStatement{Test: test, Then: thenStmt, Else: elseStmt, Tok: tok}

	case p.cur.Is("while"):
		p.grab()
		test := p.parseExpr()
		p.expect("do")
		body := p.parseStatement()
		return &ast.WhileStatement{Test: test, Body: body, Tok: tok}

	case p.cur.Is("return"):
		p.grab()
		final := false
		if p.cur.Is("final") {
			p.grab()
			final = true
		}
		expr := p.parseExpr()
		return &ast.ReturnStatement{Expr: expr, Final: final, Tok: tok}

	case p.cur.Type == token.IDENT:
		name := p.grab().Lexeme
		if p.cur.Is("(") {
			p.grab()
			var args []ast.Expression
			if !p.cur.Is(")") {
				args = append(args, p.parseExpr())
				for p.cur.Is(",") {
					p.grab()
					args = append(args, p.parseExpr())
				}
			}
			p.expect(")")
			return &ast.CallStatement{Name: name, Args: args, Tok: tok}
		}
		var index ast.Expression
		if p.cur.Is("[") {
			p.grab()
			index = p.parseExpr()
			p.expect("]")
		}
		p.expect(":=")
		expr := p.parseExpr()
		return &ast.AssignStatement{Name: name, Index: index, Expr: expr, Tok: tok}

	default:
		p.errorf(tok, "expected a statement, got %q", p.cur.Lexeme)
		p.grab()
		return &ast.CompoundStatement{Tok: tok}
	}
}
