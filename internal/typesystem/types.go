// Package typesystem implements Dieter's structural type algebra:
// primitive, map, and procedure types, qualifier sets, type variables
// with monotonic chain-binding, and the qualify/can-receive/unify
// operations that drive the checker.
package typesystem

import (
	"fmt"
	"strings"
)

// Kind tags the closed set of type variants.
type Kind int

const (
	Void Kind = iota
	Bool
	Int
	Rat
	String
	Ref
	KindMap
	KindProc
	KindVar
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Rat:
		return "rat"
	case String:
		return "string"
	case Ref:
		return "ref"
	case KindMap:
		return "map"
	case KindProc:
		return "proc"
	case KindVar:
		return "var"
	default:
		return "?"
	}
}

// Type is the interface every concrete type variant implements. A Type
// is immutable except for a Var's BoundTo slot.
type Type interface {
	Kind() Kind
	LocalQualifiers() *Qualifiers
	Clone() Type
	String() string

	setQualifiers(*Qualifiers)
}

// Primitive is one of void, bool, int, rat, string, ref — structurally
// equal to itself.
type Primitive struct {
	kind  Kind
	quals *Qualifiers
}

// NewPrimitive builds an unqualified primitive of the given kind.
func NewPrimitive(kind Kind) *Primitive {
	return &Primitive{kind: kind, quals: NewQualifiers()}
}

func (p *Primitive) Kind() Kind                   { return p.kind }
func (p *Primitive) LocalQualifiers() *Qualifiers { return p.quals }
func (p *Primitive) setQualifiers(q *Qualifiers)  { p.quals = q }

// Clone aliases nothing: primitives "alias themselves" structurally,
// but still receive an independent qualifier slice so qualify/unqualify
// on the clone never mutates the qualifier set of the original.
func (p *Primitive) Clone() Type {
	return &Primitive{kind: p.kind, quals: p.quals.Clone()}
}

func (p *Primitive) String() string {
	return qualPrefix(p.quals) + p.kind.String()
}

// Map is Map(to, from?); from absent means an open-domain map.
type Map struct {
	To    Type
	From  Type // nil when the domain is open
	quals *Qualifiers
}

// NewMap builds an unqualified map type. from may be nil.
func NewMap(to, from Type) *Map {
	return &Map{To: to, From: from, quals: NewQualifiers()}
}

func (m *Map) Kind() Kind                   { return KindMap }
func (m *Map) LocalQualifiers() *Qualifiers { return m.quals }
func (m *Map) setQualifiers(q *Qualifiers)  { m.quals = q }

func (m *Map) Clone() Type {
	clone := &Map{To: m.To.Clone(), quals: m.quals.Clone()}
	if m.From != nil {
		clone.From = m.From.Clone()
	}
	return clone
}

func (m *Map) String() string {
	var b strings.Builder
	b.WriteString(qualPrefix(m.quals))
	b.WriteString("map ")
	if m.From != nil {
		b.WriteString("from ")
		b.WriteString(m.From.String())
		b.WriteString(" ")
	}
	b.WriteString("to ")
	b.WriteString(m.To.String())
	return b.String()
}

// Proc is Proc(args, return) — a callable type.
type Proc struct {
	Args   []Type
	Return Type
	quals  *Qualifiers
}

// NewProc builds an unqualified procedure type.
func NewProc(args []Type, ret Type) *Proc {
	return &Proc{Args: args, Return: ret, quals: NewQualifiers()}
}

func (p *Proc) Kind() Kind                   { return KindProc }
func (p *Proc) LocalQualifiers() *Qualifiers { return p.quals }
func (p *Proc) setQualifiers(q *Qualifiers)  { p.quals = q }

func (p *Proc) Clone() Type {
	args := make([]Type, len(p.Args))
	for i, a := range p.Args {
		args[i] = a.Clone()
	}
	return &Proc{Args: args, Return: p.Return.Clone(), quals: p.quals.Clone()}
}

func (p *Proc) String() string {
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%sproc(%s):%s", qualPrefix(p.quals), strings.Join(parts, ", "), p.Return.String())
}

// AppendArg appends t to the procedure's argument list. Used while a
// ProcDecl is being typechecked, when arguments accumulate one at a
// time as each VarDecl is processed.
func (p *Proc) AppendArg(t Type) {
	p.Args = append(p.Args, t)
}

// Var is a type variable: initially unbound, mutable once. BoundTo
// forms a chain; it is never rewritten once set (monotonic), and is
// never compressed toward the root — the chain itself is load-bearing
// for qualifier collection.
type Var struct {
	Name    string
	BoundTo Type // nil while unbound
	quals   *Qualifiers
}

// NewVar builds a fresh unbound variable named name.
func NewVar(name string) *Var {
	return &Var{Name: name, quals: NewQualifiers()}
}

func (v *Var) Kind() Kind                   { return KindVar }
func (v *Var) LocalQualifiers() *Qualifiers { return v.quals }
func (v *Var) setQualifiers(q *Qualifiers)  { v.quals = q }

// IsBound reports whether this variable has been bound.
func (v *Var) IsBound() bool { return v.BoundTo != nil }

// Bind sets this variable's binding. It must only be called once per
// variable; callers are responsible for that invariant (unify never
// rebinds an already-bound Var).
func (v *Var) Bind(t Type) { v.BoundTo = t }

// GetBinding returns the type this variable is directly bound to. It
// is the caller's responsibility to check IsBound first.
func (v *Var) GetBinding() Type { return v.BoundTo }

// Clone produces a fresh unbound variable with the same name, carrying
// over only this Var's local qualifiers — never qualifiers reachable
// through BoundTo, since the clone starts with no binding at all.
func (v *Var) Clone() Type {
	return &Var{Name: v.Name, quals: v.quals.Clone()}
}

func (v *Var) String() string {
	return qualPrefix(v.quals) + "♥" + v.Name
}

// CloneGraph deep-clones t the way instantiating a callable's type at
// a call site must: every Var becomes fresh and unbound, but distinct
// occurrences of the identical *Var within t (by identity, not just by
// name) clone to the same fresh Var. Plain Clone cannot do this — it
// clones each child independently — which is fine for a single type
// but loses the link a polymorphic signature relies on, where one
// named ♥-variable appears in both an argument and the return
// position and must still agree after instantiation.
func CloneGraph(t Type) Type {
	return cloneGraph(t, make(map[*Var]*Var))
}

func cloneGraph(t Type, seen map[*Var]*Var) Type {
	switch v := t.(type) {
	case *Var:
		if c, ok := seen[v]; ok {
			return c
		}
		c := &Var{Name: v.Name, quals: v.quals.Clone()}
		seen[v] = c
		return c
	case *Map:
		clone := &Map{To: cloneGraph(v.To, seen), quals: v.quals.Clone()}
		if v.From != nil {
			clone.From = cloneGraph(v.From, seen)
		}
		return clone
	case *Proc:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = cloneGraph(a, seen)
		}
		return &Proc{Args: args, Return: cloneGraph(v.Return, seen), quals: v.quals.Clone()}
	default:
		return t.Clone()
	}
}

func qualPrefix(q *Qualifiers) string {
	names := q.Slice()
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, " ") + " "
}

// Qualify returns a clone of t with q added to its qualifier set.
func Qualify(t Type, q string) Type {
	clone := t.Clone()
	clone.setQualifiers(clone.LocalQualifiers().Add(q))
	return clone
}

// Unqualify returns a clone of t with q removed from its qualifier set.
func Unqualify(t Type, q string) Type {
	clone := t.Clone()
	clone.setQualifiers(clone.LocalQualifiers().Remove(q))
	return clone
}

// EffectiveQualifiers collects every qualifier along a bound variable's
// binding chain; for any other type (including an unbound variable) it
// is just the local qualifier set. A variable bound to itself (see
// Head) ends the chain there rather than looping.
func EffectiveQualifiers(t Type) *Qualifiers {
	result := NewQualifiers()
	cur := t
	for {
		v, ok := cur.(*Var)
		if !ok {
			return result.Union(cur.LocalQualifiers())
		}
		result = result.Union(v.LocalQualifiers())
		if !v.IsBound() || v.GetBinding() == Type(v) {
			return result
		}
		cur = v.GetBinding()
	}
}

// Head follows a chain of Var bindings to its concrete (or unbound)
// head, performing no mutation — no path compression, so the chain
// remains intact for later qualifier collection. A variable can end up
// bound to itself (a receptor and provider that were the same unbound
// variable unify trivially that way); that is its own head, not a loop.
func Head(t Type) Type {
	for {
		v, ok := t.(*Var)
		if !ok || !v.IsBound() {
			return t
		}
		if v.GetBinding() == Type(v) {
			return v
		}
		t = v.GetBinding()
	}
}
