package symbols_test

import (
	"strings"
	"testing"

	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/symbols"
	"github.com/dieterlang/dieter/internal/typesystem"
)

func TestAssociateDuplicateInSameScopeFails(t *testing.T) {
	ctx := symbols.NewGlobal()
	if err := ctx.Associate("x", typesystem.NewPrimitive(typesystem.Int)); err != nil {
		t.Fatalf("first Associate failed: %v", err)
	}
	err := ctx.Associate("x", typesystem.NewPrimitive(typesystem.String))
	if err == nil {
		t.Fatal("expected an error re-binding x in the same scope")
	}
	if !strings.Contains(err.Error(), "already bound") {
		t.Fatalf("error %q does not mention the existing binding", err.Error())
	}
}

func TestGetTypeNotFound(t *testing.T) {
	ctx := symbols.NewGlobal()
	_, err := ctx.GetType("missing")
	if err == nil {
		t.Fatal("expected an error looking up an unbound name")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("error %q does not mention not-found", err.Error())
	}
}

func TestGetTypeWalksParentChain(t *testing.T) {
	root := symbols.NewGlobal()
	if err := root.Associate("g", typesystem.NewPrimitive(typesystem.Bool)); err != nil {
		t.Fatalf("Associate on root failed: %v", err)
	}
	child := root.NewModule(nil)
	grandchild := child.NewProcedure(nil)

	typ, err := grandchild.GetType("g")
	if err != nil {
		t.Fatalf("expected to resolve g through the scope chain: %v", err)
	}
	if typ.Kind() != typesystem.Bool {
		t.Fatalf("resolved type kind = %s, want bool", typ.Kind())
	}
}

func TestQualifierMarkerIsNotAType(t *testing.T) {
	ctx := symbols.NewGlobal()
	if err := ctx.AssociateQualifier("secret"); err != nil {
		t.Fatalf("AssociateQualifier failed: %v", err)
	}
	if !ctx.IsQualifier("secret") {
		t.Fatal("IsQualifier should report true for a registered qualifier")
	}
	_, err := ctx.GetType("secret")
	if err == nil {
		t.Fatal("expected an error resolving a qualifier name as a type")
	}
	if !strings.Contains(err.Error(), "qualifier") {
		t.Fatalf("error %q does not mention the qualifier mismatch", err.Error())
	}
}

func TestAssertEquivSuccessAndFailure(t *testing.T) {
	ctx := symbols.NewGlobal()
	intType := typesystem.NewPrimitive(typesystem.Int)
	if err := ctx.AssertEquiv("test", intType, typesystem.NewPrimitive(typesystem.Int)); err != nil {
		t.Fatalf("expected matching primitives to unify: %v", err)
	}

	secretInt := typesystem.Qualify(typesystem.NewPrimitive(typesystem.Int), "secret")
	err := ctx.AssertEquiv("test", secretInt, typesystem.NewPrimitive(typesystem.Int))
	if err == nil {
		t.Fatal("expected a qualified receptor to reject an unqualified provider")
	}
	if !strings.Contains(err.Error(), "not compatible with") {
		t.Fatalf("error %q missing expected phrasing", err.Error())
	}
}

func TestCheckCallNotAProcedure(t *testing.T) {
	ctx := symbols.NewGlobal()
	if err := ctx.Associate("x", typesystem.NewPrimitive(typesystem.Int)); err != nil {
		t.Fatalf("Associate failed: %v", err)
	}
	_, err := ctx.CheckCall("x", nil)
	if err == nil {
		t.Fatal("expected an error calling a non-procedure name")
	}
	if !strings.Contains(err.Error(), "not a procedure type") {
		t.Fatalf("error %q missing expected phrasing", err.Error())
	}
}

func TestCheckCallClonesPerCallSite(t *testing.T) {
	ctx := symbols.NewGlobal()
	shared := typesystem.NewVar("T")
	id := typesystem.NewProc([]typesystem.Type{shared}, shared)
	if err := ctx.Associate("id", id); err != nil {
		t.Fatalf("Associate failed: %v", err)
	}

	retInt, err := ctx.CheckCall("id", []typesystem.Type{typesystem.NewPrimitive(typesystem.Int)})
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if typesystem.Head(retInt).Kind() != typesystem.Int {
		t.Fatalf("first call's return head kind = %s, want int", typesystem.Head(retInt).Kind())
	}

	retString, err := ctx.CheckCall("id", []typesystem.Type{typesystem.NewPrimitive(typesystem.String)})
	if err != nil {
		t.Fatalf("second call with a different argument type failed: %v", err)
	}
	if typesystem.Head(retString).Kind() != typesystem.String {
		t.Fatalf("second call's return head kind = %s, want string", typesystem.Head(retString).Kind())
	}

	if shared.IsBound() {
		t.Fatal("the declared procedure's own type variable must never be bound by a call")
	}
}

func TestGetModuleAndGetProcedureWalkUp(t *testing.T) {
	root := symbols.NewGlobal()
	if root.GetModule() != nil {
		t.Fatal("root context should have no enclosing module")
	}

	mod := &ast.Module{Name: "M"}
	proc := &ast.ProcDecl{Name: "f"}
	modCtx := root.NewModule(mod)
	procCtx := modCtx.NewProcedure(proc)

	if procCtx.GetModule() != mod {
		t.Fatal("a procedure scope should find its enclosing module through the chain")
	}
	if procCtx.GetProcedure() != proc {
		t.Fatal("GetProcedure should return the tagging ProcDecl")
	}
	if modCtx.GetProcedure() != nil {
		t.Fatal("a module scope has no enclosing procedure")
	}
	if procCtx.GlobalContext() != root {
		t.Fatal("GlobalContext from a grandchild scope should be the root")
	}
}
