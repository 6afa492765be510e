package tree

import (
	"fmt"

	"github.com/arborly/groves"
)

// Scope returns the nearest scope-bearing node at or above n, including n
// itself if n's kind carries groves.Symtab. Returns nil if n is not
// attached under any scope-bearing ancestor.
func (n *Node) Scope() *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.symtab != nil {
			return cur
		}
	}
	return nil
}

// enclosingScope is Scope() of n's parent: the nearest scope strictly
// above n, excluding n's own symtab even if n has one. Lookup starts here.
func (n *Node) enclosingScope() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.Scope()
}

// Bind registers n as a defining node for name in the nearest scope strictly
// above n (n's own symbol table, if any, is not used). It returns an error
// if there is no enclosing scope at all, or ok=false (with a nil error) if
// binding n would leave the name's entry list with two or more definitions
// where at least one carries the Shadowing flag — such a name must resolve
// unambiguously.
func (n *Node) Bind(name string) (bool, error) {
	scope := n.enclosingScope()
	if scope == nil {
		return false, fmt.Errorf("groves/tree: bind %q: %s has no enclosing scope", name, n.Kind)
	}
	list := scope.symtab.bind(name, n)
	if list.Size() >= 2 {
		for _, v := range list.Values() {
			if v.(*Node).Kind.Is(groves.Shadowing) {
				tracer().Errorf("bind %q in %s: shadowing conflict with %d existing definition(s)", name, scope.Kind, list.Size()-1)
				return false, nil
			}
		}
	}
	tracer().Debugf("bind %q to %s in scope %s", name, n.Kind, scope.Kind)
	return true, nil
}

// Include appends n to the include list of the nearest scope strictly above
// n. Outward lookup passing through that scope returns n whatever name is
// being looked up; Lookdown and Look ignore includes.
func (n *Node) Include() error {
	scope := n.enclosingScope()
	if scope == nil {
		return fmt.Errorf("groves/tree: include: %s has no enclosing scope", n.Kind)
	}
	scope.symtab.includes = append(scope.symtab.includes, n)
	return nil
}

// Fresh mints a name unique within n's nearest enclosing scope.
func (n *Node) Fresh(prefix string) (string, error) {
	scope := n.Scope()
	if scope == nil {
		return "", fmt.Errorf("groves/tree: fresh: %s has no enclosing scope", n.Kind)
	}
	return scope.symtab.fresh(prefix), nil
}

// Lookup performs outward name resolution starting at the scope enclosing
// n (not n's own scope, if any) and walking toward the root. At each scope
// it collects bindings for name whose kind carries the Lookup flag,
// filtered by DefBeforeUse (only definitions that Precedes n are visible,
// if the scope's own kind carries DefBeforeUse), followed by every node on
// that scope's include list, appended unconditionally — an include is
// returned regardless of the name being looked up, since it stands for a
// wildcard contributor whose own bindings a later pass resolves. Ascent
// stops once the scope equals until, or the accumulated result contains a
// Shadowing binding, whichever comes first.
func (n *Node) Lookup(name string, until *Node) []*Node {
	var out []*Node
	for scope := n.enclosingScope(); scope != nil; scope = scope.enclosingScope() {
		for _, def := range scope.symtab.Entries(name) {
			if !def.Kind.Is(groves.Lookup) {
				continue
			}
			if scope.Kind.Is(groves.DefBeforeUse) && !Precedes(def, n) {
				continue
			}
			out = append(out, def)
		}
		out = append(out, scope.symtab.includes...)
		if scope == until {
			tracer().Debugf("lookup %q: stopped at requested scope %s with %d result(s)", name, scope.Kind, len(out))
			break
		}
		if containsShadowing(out) {
			tracer().Debugf("lookup %q: stopped at shadowing binding in scope %s", name, scope.Kind)
			break
		}
	}
	return out
}

func containsShadowing(defs []*Node) bool {
	for _, d := range defs {
		if d.Kind.Is(groves.Shadowing) {
			return true
		}
	}
	return false
}

// Lookdown returns n's own bindings for name that carry the Lookdown flag,
// ignoring includes. n must itself be a scope-bearing node; otherwise
// Lookdown returns nil.
func (n *Node) Lookdown(name string) []*Node {
	if n.symtab == nil {
		return nil
	}
	var out []*Node
	for _, def := range n.symtab.Entries(name) {
		if def.Kind.Is(groves.Lookdown) {
			out = append(out, def)
		}
	}
	return out
}

// Look returns n's own bindings for name, unfiltered by any flag. n must
// itself be a scope-bearing node; otherwise Look returns nil.
func (n *Node) Look(name string) []*Node {
	if n.symtab == nil {
		return nil
	}
	return n.symtab.Entries(name)
}
