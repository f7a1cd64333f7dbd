package checker

import (
	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/diagnostics"
	"github.com/dieterlang/dieter/internal/symbols"
	"github.com/dieterlang/dieter/internal/typesystem"
)

var primitiveKinds = map[string]typesystem.Kind{
	"void":   typesystem.Void,
	"bool":   typesystem.Bool,
	"int":    typesystem.Int,
	"rat":    typesystem.Rat,
	"string": typesystem.String,
	"ref":    typesystem.Ref,
}

// varScope maps a ♥-variable's name to the single Var instance that
// name denotes within one signature being typechecked. The same name
// used twice in one procedure or forward signature (e.g. "id(♥T):♥T")
// must resolve to the identical Var both times, so that instantiating
// the signature at a call site (see typesystem.CloneGraph) keeps the
// argument and return positions linked. A fresh varScope is started
// per signature; it is not shared across separate declarations.
type varScope map[string]*typesystem.Var

func checkTypeExpr(te ast.TypeExpr, ctx *symbols.Context, scope varScope) (typesystem.Type, error) {
	switch t := te.(type) {
	case *ast.PrimitiveTypeExpr:
		return checkPrimitiveTypeExpr(t)
	case *ast.MapTypeExpr:
		return checkMapTypeExpr(t, ctx, scope)
	case *ast.ProcTypeExpr:
		return checkProcTypeExpr(t, ctx, scope)
	case *ast.QualifiedTypeExpr:
		return checkQualifiedTypeExpr(t, ctx, scope)
	case *ast.TypeVariableExpr:
		return checkTypeVariableExpr(t, scope)
	default:
		return nil, diagnostics.NewInternalError("unknown type expression variant %T", te)
	}
}

func checkPrimitiveTypeExpr(t *ast.PrimitiveTypeExpr) (typesystem.Type, error) {
	kind, ok := primitiveKinds[t.Keyword]
	if !ok {
		return nil, diagnostics.NewInternalError("unknown primitive keyword %q", t.Keyword)
	}
	result := typesystem.NewPrimitive(kind)
	t.SetType(result)
	return result, nil
}

func checkMapTypeExpr(t *ast.MapTypeExpr, ctx *symbols.Context, scope varScope) (typesystem.Type, error) {
	to, err := checkTypeExpr(t.To, ctx, scope)
	if err != nil {
		return nil, err
	}
	var from typesystem.Type
	if t.From != nil {
		from, err = checkTypeExpr(t.From, ctx, scope)
		if err != nil {
			return nil, err
		}
	}
	result := typesystem.NewMap(to, from)
	t.SetType(result)
	return result, nil
}

func checkProcTypeExpr(t *ast.ProcTypeExpr, ctx *symbols.Context, scope varScope) (typesystem.Type, error) {
	args := make([]typesystem.Type, len(t.ArgTypes))
	for i, a := range t.ArgTypes {
		at, err := checkTypeExpr(a, ctx, scope)
		if err != nil {
			return nil, err
		}
		args[i] = at
	}
	ret, err := checkTypeExpr(t.ReturnType, ctx, scope)
	if err != nil {
		return nil, err
	}
	result := typesystem.NewProc(args, ret)
	t.SetType(result)
	return result, nil
}

// checkQualifiedTypeExpr yields inner.type.qualify(q). By default this
// is unconditional — the source does not gate it on q being a
// registered qualifier, and neither do we — but a project's dieter.yaml
// can turn strict mode on, which promotes an unregistered qualifier
// name from silently accepted to a typing error.
func checkQualifiedTypeExpr(t *ast.QualifiedTypeExpr, ctx *symbols.Context, scope varScope) (typesystem.Type, error) {
	inner, err := checkTypeExpr(t.Inner, ctx, scope)
	if err != nil {
		return nil, err
	}
	if ctx.IsStrict() && !ctx.IsQualifier(t.Qualifier) {
		return nil, diagnostics.NewTypingError("qualifier %s is not registered", t.Qualifier)
	}
	result := typesystem.Qualify(inner, t.Qualifier)
	t.SetType(result)
	return result, nil
}

func checkTypeVariableExpr(t *ast.TypeVariableExpr, scope varScope) (typesystem.Type, error) {
	v, ok := scope[t.Name]
	if !ok {
		v = typesystem.NewVar(t.Name)
		scope[t.Name] = v
	}
	t.SetType(v)
	return v, nil
}
