package checker

import (
	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/diagnostics"
	"github.com/dieterlang/dieter/internal/symbols"
	"github.com/dieterlang/dieter/internal/trace"
	"github.com/dieterlang/dieter/internal/typesystem"
)

func checkExpression(e ast.Expression, ctx *symbols.Context, sink trace.Sink) error {
	switch ex := e.(type) {
	case *ast.IntConstExpr:
		ex.SetType(typesystem.NewPrimitive(typesystem.Int))
		return nil
	case *ast.StringConstExpr:
		ex.SetType(typesystem.NewPrimitive(typesystem.String))
		return nil
	case *ast.VarRefExpr:
		return checkVarRef(ex, ctx, sink)
	case *ast.SuperExpr:
		return checkSuper(ex, ctx)
	case *ast.BestowExpr:
		return checkBestow(ex, ctx, sink)
	case *ast.CallExpr:
		return checkCallExpr(ex, ctx, sink)
	default:
		return diagnostics.NewInternalError("unknown expression variant %T", e)
	}
}

func checkVarRef(e *ast.VarRefExpr, ctx *symbols.Context, sink trace.Sink) error {
	varType, err := ctx.GetType(e.Name)
	if err != nil {
		return pos(err, e.Tok)
	}
	resultType, err := projectIndexable(varType, e.Name, e.Index, ctx, sink, e.Tok)
	if err != nil {
		return err
	}
	e.SetType(resultType)
	return nil
}

// checkSuper's type is the enclosing procedure's declared return-type
// expression's already-computed type — not a ProcDecl.return_type
// field, which is never set.
func checkSuper(e *ast.SuperExpr, ctx *symbols.Context) error {
	proc := ctx.GetProcedure()
	if proc == nil {
		return pos(diagnostics.NewTypingError("super used outside of any procedure"), e.Tok)
	}
	e.SetType(proc.ReturnTypeExpr.GetType())
	return nil
}

func checkBestow(e *ast.BestowExpr, ctx *symbols.Context, sink trace.Sink) error {
	mod := ctx.GetModule()
	modName := "<none>"
	if mod != nil {
		modName = mod.Name
	}
	if mod == nil || mod.Name != e.Qualifier {
		return pos(diagnostics.NewTypingError("type operation on %s used outside of its module (in module %s)", e.Qualifier, modName), e.Tok)
	}
	if err := checkExpression(e.Expr, ctx, sink); err != nil {
		return err
	}
	e.SetType(typesystem.Qualify(e.Expr.GetType(), e.Qualifier))
	return nil
}

func checkCallExpr(e *ast.CallExpr, ctx *symbols.Context, sink trace.Sink) error {
	t, err := checkCall(e.Name, e.Args, ctx, sink, e.Tok)
	if err != nil {
		return err
	}
	e.SetType(t)
	return nil
}
