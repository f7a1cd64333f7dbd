// Package symbols implements TypingContext: Dieter's nested lexical
// scope chain, mapping names to types (or a qualifier marker) and
// exposing the unification-driven helpers the checker calls.
package symbols

import (
	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/diagnostics"
	"github.com/dieterlang/dieter/internal/typesystem"
)

type binding struct {
	typ         typesystem.Type
	isQualifier bool
}

// Context is one node of the scope chain. The root context (parent
// nil) is the global context.
type Context struct {
	parent    *Context
	names     map[string]binding
	module    *ast.Module
	procedure *ast.ProcDecl
	strict    bool // only meaningful on the root context
}

// NewGlobal creates a fresh root context.
func NewGlobal() *Context {
	return &Context{names: make(map[string]binding)}
}

// SetStrict toggles strict mode on the root of this scope chain. It is
// meant to be called once, on a fresh global context, before
// typechecking begins — typically from a directory's optional
// dieter.yaml project config.
func (c *Context) SetStrict(strict bool) {
	c.GlobalContext().strict = strict
}

// IsStrict reports whether strict mode is on for this scope's context
// tree.
func (c *Context) IsStrict() bool {
	return c.GlobalContext().strict
}

// NewModule creates a child scope tagged with the owning module.
func (c *Context) NewModule(m *ast.Module) *Context {
	return &Context{parent: c, names: make(map[string]binding), module: m}
}

// NewProcedure creates a child scope tagged with the owning procedure.
func (c *Context) NewProcedure(p *ast.ProcDecl) *Context {
	return &Context{parent: c, names: make(map[string]binding), procedure: p}
}

// Associate binds name to t in this scope. It fails if name is already
// bound in this same scope (not in an ancestor).
func (c *Context) Associate(name string, t typesystem.Type) error {
	if _, ok := c.names[name]; ok {
		return diagnostics.NewTypingError("name %s already bound to %s", name, t.String())
	}
	c.names[name] = binding{typ: t}
	return nil
}

// AssociateQualifier registers name as a qualifier marker in this
// scope.
func (c *Context) AssociateQualifier(name string) error {
	if existing, ok := c.names[name]; ok {
		label := "a qualifier"
		if existing.typ != nil {
			label = existing.typ.String()
		}
		return diagnostics.NewTypingError("name %s already bound to %s", name, label)
	}
	c.names[name] = binding{isQualifier: true}
	return nil
}

// GetType looks up name in this scope, then recursively in ancestors.
// It fails if name is not found anywhere, or resolves only to a
// qualifier marker.
func (c *Context) GetType(name string) (typesystem.Type, error) {
	for cur := c; cur != nil; cur = cur.parent {
		if b, ok := cur.names[name]; ok {
			if b.isQualifier {
				return nil, diagnostics.NewTypingError("%s is a qualifier, not a type", name)
			}
			return b.typ, nil
		}
	}
	return nil, diagnostics.NewTypingError("name %s not found", name)
}

// IsQualifier reports whether name resolves to a qualifier marker
// anywhere along the scope chain.
func (c *Context) IsQualifier(name string) bool {
	for cur := c; cur != nil; cur = cur.parent {
		if b, ok := cur.names[name]; ok {
			return b.isQualifier
		}
	}
	return false
}

// GetModule walks up to the nearest enclosing module tag, or nil at
// the global context.
func (c *Context) GetModule() *ast.Module {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.module != nil {
			return cur.module
		}
	}
	return nil
}

// GetProcedure walks up to the nearest enclosing procedure tag, or nil
// outside any procedure body.
func (c *Context) GetProcedure() *ast.ProcDecl {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.procedure != nil {
			return cur.procedure
		}
	}
	return nil
}

// Dump prints this scope's own bindings (not its ancestors') as
// "name : description" lines, the way the original driver's
// context.dump() does — one scope at a time, since that is the scope
// the CLI has a handle on when -s is passed.
func (c *Context) Dump() []string {
	lines := make([]string, 0, len(c.names))
	for name, b := range c.names {
		if b.isQualifier {
			lines = append(lines, name+" : qualifier")
		} else {
			lines = append(lines, name+" : "+b.typ.String())
		}
	}
	return lines
}

// GlobalContext returns the root of this scope chain.
func (c *Context) GlobalContext() *Context {
	cur := c
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// AssertEquiv unifies receptor with provider and raises a typing error
// naming label and both types on failure.
func (c *Context) AssertEquiv(label string, receptor, provider typesystem.Type) error {
	if !typesystem.Unify(receptor, provider) {
		return diagnostics.NewTypingError("in %s: %s not compatible with %s", label, receptor.String(), provider.String())
	}
	return nil
}

// CheckCall resolves name to a procedure type, clones it so this call
// site gets independent unification, unifies the clone (receptor)
// against a putative signature built from argTypes and the clone's own
// return type (provider), and on success returns the clone's
// (possibly now bound) return type.
func (c *Context) CheckCall(name string, argTypes []typesystem.Type) (typesystem.Type, error) {
	declared, err := c.GetType(name)
	if err != nil {
		return nil, err
	}
	proc, ok := declared.(*typesystem.Proc)
	if !ok {
		return nil, diagnostics.NewTypingError("%s is not a procedure type", declared.String())
	}

	cloned := typesystem.CloneGraph(proc).(*typesystem.Proc)
	putative := typesystem.NewProc(argTypes, cloned.Return)

	if !typesystem.Unify(cloned, putative) {
		return nil, diagnostics.NewTypingError("%s could not unify with %s", cloned.String(), putative.String())
	}
	return cloned.Return, nil
}
