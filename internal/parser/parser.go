// Package parser implements Dieter's recursive-descent parser: a
// single current token (lookahead = 1) consumed from the lexer,
// producing an AST and a list of recoverable diagnostics.
package parser

import (
	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/diagnostics"
	"github.com/dieterlang/dieter/internal/lexer"
	"github.com/dieterlang/dieter/internal/token"
)

// Parser holds scanning state: the current token and the diagnostics
// collected so far. Malformed input reports a diagnostic and attempts
// to continue; the parser never panics for a recoverable mismatch.
type Parser struct {
	lex   *lexer.Lexer
	file  string
	cur   token.Token
	diags []*diagnostics.Diagnostic
}

// New creates a Parser over src, attributing diagnostics to file.
func New(file, src string) *Parser {
	p := &Parser{lex: lexer.New(src), file: file}
	p.cur = p.lex.NextToken()
	return p
}

// Parse scans and parses a complete program, returning whatever
// diagnostics accumulated along the way (nil if none).
func Parse(file, src string) (*ast.Program, []*diagnostics.Diagnostic) {
	p := New(file, src)
	return p.ParseProgram(), p.diags
}

func (p *Parser) peek() token.Token { return p.cur }

// grab returns the current token and advances the scanner.
func (p *Parser) grab() token.Token {
	t := p.cur
	p.cur = p.lex.NextToken()
	return t
}

// expect requires the current lexeme to equal lexeme; on mismatch it
// emits a parse diagnostic and advances anyway, for best-effort recovery.
func (p *Parser) expect(lexeme string) token.Token {
	if p.cur.Lexeme == lexeme {
		return p.grab()
	}
	p.errorf(p.cur, "expected %q, got %q", lexeme, p.cur.Lexeme)
	return p.grab()
}

func (p *Parser) expectIdent() string {
	if p.cur.Type == token.IDENT {
		return p.grab().Lexeme
	}
	p.errorf(p.cur, "expected identifier, got %q", p.cur.Lexeme)
	return p.grab().Lexeme
}

func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) {
	p.diags = append(p.diags, diagnostics.NewParseError(p.file, tok, format, args...))
}

// ParseProgram consumes orderings, forwards, and modules until EOF.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Type != token.EOF {
		switch {
		case p.cur.Is("order"):
			prog.Orderings = append(prog.Orderings, p.parseOrdering())
		case p.cur.Is("forward"):
			prog.Forwards = append(prog.Forwards, p.parseForward())
		case p.cur.Is("module"):
			prog.Modules = append(prog.Modules, p.parseModule())
		default:
			p.errorf(p.cur, "expected order, forward, or module, got %q", p.cur.Lexeme)
			p.grab()
		}
	}
	return prog
}

func (p *Parser) parseOrdering() *ast.Ordering {
	tok := p.grab() // "order"
	before := p.expectIdent()
	p.expect("<")
	after := p.expectIdent()
	return &ast.Ordering{Before: before, After: after, Tok: tok}
}

func (p *Parser) parseForward() *ast.ForwardDecl {
	tok := p.grab() // "forward"
	name := p.expectIdent()
	p.expect("(")
	var argTypes []ast.TypeExpr
	if !p.cur.Is(")") {
		argTypes = append(argTypes, p.parseTypeExpr())
		for p.cur.Is(",") {
			p.grab()
			argTypes = append(argTypes, p.parseTypeExpr())
		}
	}
	p.expect(")")
	p.expect(":")
	ret := p.parseTypeExpr()
	procType := &ast.ProcTypeExpr{ArgTypes: argTypes, ReturnType: ret, Tok: tok}
	return &ast.ForwardDecl{Name: name, TypeExpr: procType, Tok: tok}
}

func (p *Parser) parseModule() *ast.Module {
	tok := p.grab() // "module"
	name := p.expectIdent()

	fails := false
	if p.cur.Is("fails") {
		p.grab()
		fails = true
	}

	var locals []*ast.VarDecl
	for p.cur.Is("var") {
		p.grab()
		locals = append(locals, p.parseVarDecl())
	}

	var procs []*ast.ProcDecl
	for p.cur.Is("procedure") {
		procs = append(procs, p.parseProcDecl())
	}

	p.expect("end")
	return &ast.Module{Name: name, Fails: fails, Locals: locals, Procedures: procs, Tok: tok}
}

func (p *Parser) parseVarDecl() *ast.VarDecl {
	tok := p.cur
	name := p.expectIdent()
	p.expect(":")
	te := p.parseTypeExpr()
	return &ast.VarDecl{Name: name, TypeExpr: te, Tok: tok}
}

func (p *Parser) parseProcDecl() *ast.ProcDecl {
	tok := p.grab() // "procedure"
	name := p.expectIdent()
	p.expect("(")

	var args []*ast.VarDecl
	if !p.cur.Is(")") {
		args = append(args, p.parseVarDecl())
		for p.cur.Is(",") {
			p.grab()
			args = append(args, p.parseVarDecl())
		}
	}
	p.expect(")")
	p.expect(":")
	ret := p.parseTypeExpr()

	var locals []*ast.VarDecl
	for p.cur.Is("var") {
		p.grab()
		locals = append(locals, p.parseVarDecl())
	}

	body := p.parseStatement()
	return &ast.ProcDecl{Name: name, Args: args, Locals: locals, ReturnTypeExpr: ret, Body: body, Tok: tok}
}
