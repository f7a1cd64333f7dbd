package typesystem_test

import (
	"testing"

	"github.com/dieterlang/dieter/internal/typesystem"
)

func TestQualifyUnqualifyRoundTrip(t *testing.T) {
	base := typesystem.NewPrimitive(typesystem.Int)
	qualified := typesystem.Qualify(base, "secret")

	if base.LocalQualifiers().Has("secret") {
		t.Fatal("Qualify mutated the original type's qualifier set")
	}
	if !qualified.LocalQualifiers().Has("secret") {
		t.Fatal("qualified clone is missing the added qualifier")
	}

	restored := typesystem.Unqualify(qualified, "secret")
	if restored.LocalQualifiers().Has("secret") {
		t.Fatal("Unqualify did not remove the qualifier")
	}
	if restored.String() != base.String() {
		t.Fatalf("round-tripped type %q does not match original %q", restored.String(), base.String())
	}
}

func TestCloneStructuralEquality(t *testing.T) {
	inner := typesystem.NewMap(typesystem.NewPrimitive(typesystem.String), typesystem.NewPrimitive(typesystem.Int))
	proc := typesystem.NewProc([]typesystem.Type{typesystem.NewPrimitive(typesystem.Int)}, inner)

	clone := proc.Clone()
	if clone.String() != proc.String() {
		t.Fatalf("clone() printed form %q differs from original %q", clone.String(), proc.String())
	}
	if clone == typesystem.Type(proc) {
		t.Fatal("clone() returned the same object")
	}
}

func TestCloneVarIsFreshAndUnbound(t *testing.T) {
	v := typesystem.NewVar("T")
	v.Bind(typesystem.NewPrimitive(typesystem.Int))

	clone := v.Clone().(*typesystem.Var)
	if clone.IsBound() {
		t.Fatal("clone of a bound Var must start unbound")
	}
	if clone == v {
		t.Fatal("clone() returned the same Var object")
	}
	if clone.Name != v.Name {
		t.Fatalf("clone name %q does not match original %q", clone.Name, v.Name)
	}
}

func TestCloneGraphPreservesSharedVarIdentity(t *testing.T) {
	shared := typesystem.NewVar("T")
	proc := typesystem.NewProc([]typesystem.Type{shared}, shared)

	cloned := typesystem.CloneGraph(proc).(*typesystem.Proc)
	clonedArg, ok := cloned.Args[0].(*typesystem.Var)
	if !ok {
		t.Fatalf("cloned argument is not a Var: %T", cloned.Args[0])
	}
	clonedRet, ok := cloned.Return.(*typesystem.Var)
	if !ok {
		t.Fatalf("cloned return is not a Var: %T", cloned.Return)
	}
	if clonedArg != clonedRet {
		t.Fatal("CloneGraph lost the shared identity between argument and return positions")
	}
	if clonedArg == shared {
		t.Fatal("CloneGraph did not produce a fresh Var")
	}

	// binding the clone's argument position must also resolve the
	// (identical) return position, without touching the original.
	typesystem.Unify(clonedArg, typesystem.NewPrimitive(typesystem.Int))
	if !clonedRet.IsBound() {
		t.Fatal("binding the shared clone through one position did not bind the other")
	}
	if shared.IsBound() {
		t.Fatal("CloneGraph must not mutate the original declaration's Var")
	}
}

func TestCanReceiveWideningAndNarrowing(t *testing.T) {
	plain := typesystem.NewPrimitive(typesystem.Int)
	secret := typesystem.Qualify(plain, "secret")

	if !typesystem.CanReceive(plain, secret) {
		t.Fatal("an unqualified receptor must accept a more-qualified provider")
	}
	if typesystem.CanReceive(secret, plain) {
		t.Fatal("a qualified receptor must reject a less-qualified provider")
	}
}

func TestUnifyBindsUnboundVarReceptor(t *testing.T) {
	v := typesystem.NewVar("T")
	provider := typesystem.NewPrimitive(typesystem.String)

	if !typesystem.Unify(v, provider) {
		t.Fatal("unifying an unbound Var receptor with any provider should succeed")
	}
	if !v.IsBound() {
		t.Fatal("receptor Var should be bound after a successful unify")
	}
	if typesystem.Head(v).(*typesystem.Primitive).Kind() != typesystem.String {
		t.Fatalf("unexpected head type after binding: %s", typesystem.Head(v).String())
	}
}

func TestUnifyRebindingIsMonotonic(t *testing.T) {
	v := typesystem.NewVar("T")
	first := typesystem.NewPrimitive(typesystem.Int)
	typesystem.Unify(v, first)

	before := v.GetBinding()
	// A second unify against an already-bound Var receptor must not
	// rewrite its binding; it recurses through Head() instead.
	typesystem.Unify(v, typesystem.NewPrimitive(typesystem.Int))
	if v.GetBinding() != before {
		t.Fatal("a bound Var's binding changed after a later unify call")
	}
}

func TestUnifyProcArityAndStructuralMismatch(t *testing.T) {
	oneArg := typesystem.NewProc([]typesystem.Type{typesystem.NewPrimitive(typesystem.Int)}, typesystem.NewPrimitive(typesystem.Void))
	twoArgs := typesystem.NewProc([]typesystem.Type{typesystem.NewPrimitive(typesystem.Int), typesystem.NewPrimitive(typesystem.Int)}, typesystem.NewPrimitive(typesystem.Void))

	if typesystem.Unify(oneArg, twoArgs) {
		t.Fatal("procs of differing arity must not unify")
	}

	mismatchedArg := typesystem.NewProc([]typesystem.Type{typesystem.NewPrimitive(typesystem.String)}, typesystem.NewPrimitive(typesystem.Void))
	if typesystem.Unify(oneArg, mismatchedArg) {
		t.Fatal("procs with a mismatched argument kind must not unify")
	}
}

func TestUnifyMapRequiresMatchingDomainWhenDeclared(t *testing.T) {
	closedDomain := typesystem.NewMap(typesystem.NewPrimitive(typesystem.String), typesystem.NewPrimitive(typesystem.Int))
	wrongDomain := typesystem.NewMap(typesystem.NewPrimitive(typesystem.String), typesystem.NewPrimitive(typesystem.String))

	if typesystem.Unify(closedDomain, wrongDomain) {
		t.Fatal("maps with mismatched domains must not unify")
	}

	openDomain := typesystem.NewMap(typesystem.NewPrimitive(typesystem.String), nil)
	if !typesystem.Unify(openDomain, closedDomain) {
		t.Fatal("an open-domain receptor should accept any provider domain")
	}
}

// TestSelfBoundVarDoesNotLoop covers the case check_call's putative
// type construction produces: a receptor and provider that are the
// identical unbound Var unify by binding it to itself. Head and
// EffectiveQualifiers must recognize that terminal case rather than
// looping forever chasing BoundTo.
func TestSelfBoundVarDoesNotLoop(t *testing.T) {
	v := typesystem.NewVar("T")
	if !typesystem.Unify(v, v) {
		t.Fatal("a var should unify with itself")
	}
	if typesystem.Head(v) != typesystem.Type(v) {
		t.Fatal("a variable unified with itself should be its own head")
	}
	if typesystem.EffectiveQualifiers(v) == nil {
		t.Fatal("EffectiveQualifiers must still return a usable set for a self-bound var")
	}
}
