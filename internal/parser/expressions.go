package parser

import (
	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/token"
)

func (p *Parser) parseExpr() ast.Expression {
	tok := p.cur
	switch {
	case p.cur.Is("("):
		p.grab()
		e := p.parseExpr()
		p.expect(")")
		return e

	case p.cur.Is("bestow"):
		p.grab()
		qual := p.expectIdent()
		e := p.parseExpr()
		return &ast.BestowExpr{Qualifier: qual, Expr: e, Tok: tok}

	case p.cur.Is("super"):
		p.grab()
		return &ast.SuperExpr{Tok: tok}

	case p.cur.Type == token.INT:
		t := p.grab()
		val, _ := t.Literal.(int)
		return &ast.IntConstExpr{Value: val, Tok: t}

	case p.cur.Type == token.STRING:
		t := p.grab()
		val, _ := t.Literal.(string)
		return &ast.StringConstExpr{Value: val, Tok: t}

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
			return &ast.CallExpr{Name: name, Args: args, Tok: tok}
		}
		if p.cur.Is("[") {
			p.grab()
			idx := p.parseExpr()
			p.expect("]")
			return &ast.VarRefExpr{Name: name, Index: idx, Tok: tok}
		}
		return &ast.VarRefExpr{Name: name, Tok: tok}

	default:
		p.errorf(tok, "expected an expression, got %q", p.cur.Lexeme)
		p.grab()
		return &ast.IntConstExpr{Tok: tok}
	}
}
