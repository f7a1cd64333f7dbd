package checker

import (
	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/diagnostics"
	"github.com/dieterlang/dieter/internal/symbols"
	"github.com/dieterlang/dieter/internal/token"
	"github.com/dieterlang/dieter/internal/trace"
	"github.com/dieterlang/dieter/internal/typesystem"
)

func checkStatement(s ast.Statement, ctx *symbols.Context, sink trace.Sink) error {
	switch st := s.(type) {
	case *ast.CompoundStatement:
		for _, step := range st.Steps {
			if err := checkStatement(step, ctx, sink); err != nil {
				return err
			}
		}
		return nil
	case *ast.IfStatement:
		return checkIf(st, ctx, sink)
	case *ast.WhileStatement:
		return checkWhile(st, ctx, sink)
	case *ast.ReturnStatement:
		return checkReturn(st, ctx, sink)
	case *ast.CallStatement:
		return checkCallStatement(st, ctx, sink)
	case *ast.AssignStatement:
		return checkAssign(st, ctx, sink)
	default:
		return diagnostics.NewInternalError("unknown statement variant %T", s)
	}
}

// checkIf unifies receptor=Bool with provider=test, matching the
// source's literal assert_equiv("if", Bool(), test_type) order.
func checkIf(st *ast.IfStatement, ctx *symbols.Context, sink trace.Sink) error {
	if err := checkExpression(st.Test, ctx, sink); err != nil {
		return err
	}
	sink.Tracef("if: unifying bool (receptor) with %s (provider)", st.Test.GetType())
	if err := pos(ctx.AssertEquiv("if", typesystem.NewPrimitive(typesystem.Bool), st.Test.GetType()), st.Tok); err != nil {
		return err
	}
	if err := checkStatement(st.Then, ctx, sink); err != nil {
		return err
	}
	if st.Else != nil {
		return checkStatement(st.Else, ctx, sink)
	}
	return nil
}

// checkWhile unifies receptor=test with provider=Bool — the mirror
// image of If's order. This asymmetry is in the source and preserved
// deliberately rather than "fixed" into symmetry.
func checkWhile(st *ast.WhileStatement, ctx *symbols.Context, sink trace.Sink) error {
	if err := checkExpression(st.Test, ctx, sink); err != nil {
		return err
	}
	sink.Tracef("while: unifying %s (receptor) with bool (provider)", st.Test.GetType())
	if err := pos(ctx.AssertEquiv("while", st.Test.GetType(), typesystem.NewPrimitive(typesystem.Bool)), st.Tok); err != nil {
		return err
	}
	return checkStatement(st.Body, ctx, sink)
}

// checkReturn unifies receptor=declared return type with
// provider=the returned expression's type.
func checkReturn(st *ast.ReturnStatement, ctx *symbols.Context, sink trace.Sink) error {
	if err := checkExpression(st.Expr, ctx, sink); err != nil {
		return err
	}
	proc := ctx.GetProcedure()
	if proc == nil {
		return diagnostics.NewInternalError("return statement outside of any procedure")
	}
	declared := proc.GetType().(*typesystem.Proc).Return
	return pos(ctx.AssertEquiv("return", declared, st.Expr.GetType()), st.Tok)
}

func checkCallStatement(st *ast.CallStatement, ctx *symbols.Context, sink trace.Sink) error {
	t, err := checkCall(st.Name, st.Args, ctx, sink, st.Tok)
	if err != nil {
		return err
	}
	st.SetType(t)
	return nil
}

func checkCall(name string, args []ast.Expression, ctx *symbols.Context, sink trace.Sink, tok token.Token) (typesystem.Type, error) {
	argTypes := make([]typesystem.Type, len(args))
	for i, a := range args {
		if err := checkExpression(a, ctx, sink); err != nil {
			return nil, err
		}
		argTypes[i] = a.GetType()
	}
	sink.Tracef("check_call %s with %d arg(s)", name, len(argTypes))
	t, err := ctx.CheckCall(name, argTypes)
	if err != nil {
		return nil, pos(err, tok)
	}
	return t, nil
}

// checkAssign fetches the named variable's type. If it's a Map, the
// assignment requires an index, projects the map's range as the
// effective left-hand type, and asserts the index unifies with the
// map's domain when one is declared.
func checkAssign(st *ast.AssignStatement, ctx *symbols.Context, sink trace.Sink) error {
	varType, err := ctx.GetType(st.Name)
	if err != nil {
		return pos(err, st.Tok)
	}

	lhsType, err := projectIndexable(varType, st.Name, st.Index, ctx, sink, st.Tok)
	if err != nil {
		return err
	}

	if err := checkExpression(st.Expr, ctx, sink); err != nil {
		return err
	}
	return pos(ctx.AssertEquiv("assignment", lhsType, st.Expr.GetType()), st.Tok)
}

// projectIndexable implements the shared Map-index-projection rule
// used by both AssignStatement's left-hand side and VarRefExpr.
func projectIndexable(varType typesystem.Type, name string, index ast.Expression, ctx *symbols.Context, sink trace.Sink, tok token.Token) (typesystem.Type, error) {
	m, ok := typesystem.Head(varType).(*typesystem.Map)
	if !ok {
		if index != nil {
			return nil, pos(diagnostics.NewTypingError("%s is not a map, cannot be indexed", name), tok)
		}
		return varType, nil
	}
	if index == nil {
		return nil, pos(diagnostics.NewTypingError("%s is a map and requires an index", name), tok)
	}
	if err := checkExpression(index, ctx, sink); err != nil {
		return nil, err
	}
	if m.From != nil {
		if err := pos(ctx.AssertEquiv("index", m.From, index.GetType()), tok); err != nil {
			return nil, err
		}
	}
	return m.To, nil
}
