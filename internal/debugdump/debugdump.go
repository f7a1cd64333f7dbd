// Package debugdump implements the -a/-s dump capability: walking the
// AST and printing node shapes, and walking a TypingContext printing
// its bindings. Format is deliberately non-normative — only the
// capability itself is required.
package debugdump

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/symbols"
)

// Program renders a Program's full tree, indented two spaces per
// level, in the spirit of the original driver's indent-based dump.
func Program(p *ast.Program) string {
	var b strings.Builder
	b.WriteString("program\n")
	for _, f := range p.Forwards {
		forward(&b, f, 1)
	}
	for _, o := range p.Orderings {
		line(&b, 1, "order %s < %s", o.Before, o.After)
	}
	for _, m := range p.Modules {
		module(&b, m, 1)
	}
	return b.String()
}

func line(b *strings.Builder, indent int, format string, args ...interface{}) {
	b.WriteString(strings.Repeat("  ", indent))
	fmt.Fprintf(b, format, args...)
	b.WriteString("\n")
}

func forward(b *strings.Builder, f *ast.ForwardDecl, indent int) {
	line(b, indent, "forward %s : %s", f.Name, typeExprString(f.TypeExpr))
}

func module(b *strings.Builder, m *ast.Module, indent int) {
	suffix := ""
	if m.Fails {
		suffix = " fails"
	}
	line(b, indent, "module %s%s", m.Name, suffix)
	for _, v := range m.Locals {
		varDecl(b, v, indent+1)
	}
	for _, p := range m.Procedures {
		procDecl(b, p, indent+1)
	}
}

func varDecl(b *strings.Builder, v *ast.VarDecl, indent int) {
	line(b, indent, "var %s : %s", v.Name, typeExprString(v.TypeExpr))
}

func procDecl(b *strings.Builder, p *ast.ProcDecl, indent int) {
	line(b, indent, "procedure %s : %s", p.Name, typeExprString(p.ReturnTypeExpr))
	for _, a := range p.Args {
		varDecl(b, a, indent+1)
	}
	for _, l := range p.Locals {
		varDecl(b, l, indent+1)
	}
	statement(b, p.Body, indent+1)
}

func statement(b *strings.Builder, s ast.Statement, indent int) {
	switch st := s.(type) {
	case *ast.CompoundStatement:
		line(b, indent, "begin")
		for _, step := range st.Steps {
			statement(b, step, indent+1)
		}
		line(b, indent, "end")
	case *ast.IfStatement:
		line(b, indent, "if")
		expression(b, st.Test, indent+1)
		line(b, indent, "then")
		statement(b, st.Then, indent+1)
		if st.Else != nil {
			line(b, indent, "else")
			statement(b, st.Else, indent+1)
		}
	case *ast.WhileStatement:
		line(b, indent, "while")
		expression(b, st.Test, indent+1)
		line(b, indent, "do")
		statement(b, st.Body, indent+1)
	case *ast.ReturnStatement:
		line(b, indent, "return")
		expression(b, st.Expr, indent+1)
	case *ast.CallStatement:
		line(b, indent, "%s(", st.Name)
		for _, a := range st.Args {
			expression(b, a, indent+1)
		}
		line(b, indent, ")")
	case *ast.AssignStatement:
		line(b, indent, "%s :=", st.Name)
		if st.Index != nil {
			line(b, indent+1, "[")
			expression(b, st.Index, indent+2)
			line(b, indent+1, "]")
		}
		expression(b, st.Expr, indent+1)
	default:
		line(b, indent, "<unknown statement %T>", s)
	}
}

func expression(b *strings.Builder, e ast.Expression, indent int) {
	switch ex := e.(type) {
	case *ast.IntConstExpr:
		line(b, indent, "%d", ex.Value)
	case *ast.StringConstExpr:
		line(b, indent, "%q", ex.Value)
	case *ast.VarRefExpr:
		if ex.Index != nil {
			line(b, indent, "%s [", ex.Name)
			expression(b, ex.Index, indent+1)
			line(b, indent, "]")
		} else {
			line(b, indent, "%s", ex.Name)
		}
	case *ast.SuperExpr:
		line(b, indent, "super")
	case *ast.BestowExpr:
		line(b, indent, "bestow %s", ex.Qualifier)
		expression(b, ex.Expr, indent+1)
	case *ast.CallExpr:
		line(b, indent, "%s(", ex.Name)
		for _, a := range ex.Args {
			expression(b, a, indent+1)
		}
		line(b, indent, ")")
	default:
		line(b, indent, "<unknown expression %T>", e)
	}
}

func typeExprString(te ast.TypeExpr) string {
	if t := te.GetType(); t != nil {
		return t.String()
	}
	return "<unchecked>"
}

// Context renders a single scope's own bindings (not its ancestors')
// as sorted "name : description" lines.
func Context(ctx *symbols.Context) string {
	lines := ctx.Dump()
	sort.Strings(lines)
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}
