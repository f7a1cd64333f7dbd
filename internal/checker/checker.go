// Package checker walks a Dieter AST, populating each node's computed
// type and enforcing the language's typing rules. Dispatch on AST
// variant is a plain type switch, matching how this codebase's own
// inference pass works rather than a Visitor/Accept indirection.
package checker

import (
	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/diagnostics"
	"github.com/dieterlang/dieter/internal/symbols"
	"github.com/dieterlang/dieter/internal/token"
	"github.com/dieterlang/dieter/internal/trace"
	"github.com/dieterlang/dieter/internal/typesystem"
)

// pos attaches tok to err if err is a TypingError with no position set
// yet. Internal errors and nil pass through unchanged.
func pos(err error, tok token.Token) error {
	if te, ok := err.(*diagnostics.TypingError); ok && te.Token == (token.Token{}) {
		te.Token = tok
	}
	return err
}

// CheckProgram typechecks forwards, then orderings (currently a
// no-op — see the Ordering comment), then modules, in source order.
func CheckProgram(prog *ast.Program, root *symbols.Context, sink trace.Sink) error {
	if sink == nil {
		sink = trace.Discard{}
	}
	for _, f := range prog.Forwards {
		if err := checkForward(f, root); err != nil {
			return err
		}
	}
	for _, o := range prog.Orderings {
		checkOrdering(o)
	}
	for _, m := range prog.Modules {
		if err := checkModuleExpectingFails(m, root, sink); err != nil {
			return err
		}
	}
	return nil
}

func checkForward(f *ast.ForwardDecl, ctx *symbols.Context) error {
	t, err := checkTypeExpr(f.TypeExpr, ctx, varScope{})
	if err != nil {
		return err
	}
	return pos(ctx.Associate(f.Name, t), f.Tok)
}

// checkOrdering is a deliberate no-op: the checker does not currently
// use the before/after relation to constrain qualifier compatibility.
func checkOrdering(o *ast.Ordering) {}

// checkModuleExpectingFails runs a module's typecheck and reconciles
// the outcome against its Fails flag. An internal error always
// propagates as itself, regardless of Fails — only a TypingError can
// satisfy a module's claim that it fails.
func checkModuleExpectingFails(m *ast.Module, root *symbols.Context, sink trace.Sink) error {
	typingErr, internalErr := runModuleGuarded(m, root, sink)
	if internalErr != nil {
		return internalErr
	}
	if m.Fails {
		if typingErr == nil {
			return diagnostics.NewTypingError("module %s claimed to fail typechecking but didn't", m.Name).WithPos("", m.Tok)
		}
		return nil
	}
	return typingErr
}

func runModuleGuarded(m *ast.Module, root *symbols.Context, sink trace.Sink) (typingErr, internalErr error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*diagnostics.InternalError); ok {
				internalErr = ie
				return
			}
			internalErr = diagnostics.NewInternalError("panic while checking module %s: %v", m.Name, r)
		}
	}()

	err := checkModule(m, root, sink)
	switch e := err.(type) {
	case nil:
		return nil, nil
	case *diagnostics.TypingError:
		return e, nil
	case *diagnostics.InternalError:
		return nil, e
	default:
		return nil, diagnostics.NewInternalError("%v", e)
	}
}

func checkModule(m *ast.Module, root *symbols.Context, sink trace.Sink) error {
	if err := pos(root.AssociateQualifier(m.Name), m.Tok); err != nil {
		return err
	}
	modCtx := root.NewModule(m)
	for _, v := range m.Locals {
		if err := checkVarDecl(v, modCtx, varScope{}); err != nil {
			return err
		}
	}
	for _, proc := range m.Procedures {
		if err := checkProcDecl(proc, modCtx, sink); err != nil {
			return err
		}
	}
	return nil
}

func checkVarDecl(v *ast.VarDecl, ctx *symbols.Context, scope varScope) error {
	t, err := checkTypeExpr(v.TypeExpr, ctx, scope)
	if err != nil {
		return err
	}
	v.SetType(t)
	return pos(ctx.Associate(v.Name, t), v.Tok)
}

// checkProcDecl typechecks the return-type expression, builds a fresh
// Proc type, then processes args and locals in a child procedure
// scope (each arg's type appended to the Proc type as it's checked),
// binds the procedure's name to the Proc type in the global context,
// and finally typechecks the body in the procedure scope. The return
// type and all argument types share one varScope, so a ♥-variable
// named the same way in two positions of one signature — as in a
// polymorphic "id(♥T):♥T" — is the same Var in both places.
func checkProcDecl(p *ast.ProcDecl, ctx *symbols.Context, sink trace.Sink) error {
	sig := varScope{}
	retType, err := checkTypeExpr(p.ReturnTypeExpr, ctx, sig)
	if err != nil {
		return err
	}
	procType := typesystem.NewProc(nil, retType)
	p.SetType(procType)

	procCtx := ctx.NewProcedure(p)
	for _, arg := range p.Args {
		if err := checkVarDecl(arg, procCtx, sig); err != nil {
			return err
		}
		procType.AppendArg(arg.GetType())
	}
	for _, local := range p.Locals {
		if err := checkVarDecl(local, procCtx, varScope{}); err != nil {
			return err
		}
	}

	if err := pos(ctx.GlobalContext().Associate(p.Name, procType), p.Tok); err != nil {
		return err
	}

	return checkStatement(p.Body, procCtx, sink)
}
