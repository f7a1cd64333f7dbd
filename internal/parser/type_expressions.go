package parser

import (
	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/token"
)

func isPrimitiveKeyword(s string) bool {
	switch s {
	case "void", "bool", "int", "rat", "string", "ref":
		return true
	}
	return false
}

func isBareTypeKeyword(s string) bool {
	return isPrimitiveKeyword(s) || s == "map"
}

// parseTypeExpr parses { Ident }* BareTypeExpr, accumulating leading
// identifiers as qualifiers. They nest left-to-right: the first
// identifier wraps the bare type innermost, the last wraps outermost.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	var quals []string
	var toks []token.Token
	for p.cur.Type == token.IDENT && !isBareTypeKeyword(p.cur.Lexeme) {
		toks = append(toks, p.cur)
		quals = append(quals, p.grab().Lexeme)
	}

	result := p.parseBareTypeExpr()
	for i := 0; i < len(quals); i++ {
		result = &ast.QualifiedTypeExpr{Qualifier: quals[i], Inner: result, Tok: toks[i]}
	}
	return result
}

func (p *Parser) parseBareTypeExpr() ast.TypeExpr {
	tok := p.cur
	switch {
	case p.cur.Lexeme == "♥":
		p.grab()
		name := p.expectIdent()
		return &ast.TypeVariableExpr{Name: name, Tok: tok}

	case p.cur.Is("map"):
		p.grab()
		var from ast.TypeExpr
		if p.cur.Is("from") {
			p.grab()
			from = p.parseTypeExpr()
		}
		p.expect("to")
		to := p.parseTypeExpr()
		return &ast.MapTypeExpr{To: to, From: from, Tok: tok}

	case isPrimitiveKeyword(p.cur.Lexeme):
		kw := p.grab().Lexeme
		return &ast.PrimitiveTypeExpr{Keyword: kw, Tok: tok}

	default:
		p.errorf(tok, "expected a type, got %q", p.cur.Lexeme)
		p.grab()
		return &ast.PrimitiveTypeExpr{Keyword: "void", Tok: tok}
	}
}
