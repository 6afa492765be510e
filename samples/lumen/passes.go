package lumen

import (
	"fmt"

	"github.com/arborly/groves"
	"github.com/arborly/groves/pass"
	"github.com/arborly/groves/pattern"
	"github.com/arborly/groves/rewrite"
	"github.com/arborly/groves/tree"
)

// hoistPass lifts every Decl found directly inside a Then up to the
// enclosing Program, leaving the if-guarded body holding only the
// statements that actually run conditionally. Grounded on the reference
// engine's samples/verona lifting of let-bindings out of nested expression
// scopes to the enclosing function body via its Lift marker.
func hoistPass() *pass.Pass {
	hoistDecl := rewrite.New(
		pattern.In(Then).Then(pattern.T(Decl).Capture("decl")),
		func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
			lift := tree.New(groves.Lift, groves.NoLocation)
			lift.PushBack(tree.New(Program, groves.NoLocation))
			lift.PushBack(m.Get("decl")[0])
			return lift
		},
	)
	return pass.New("hoist", rewrite.Set{hoistDecl}, pass.WithDirection(pass.Bottomup|pass.Once))
}

// bindAll walks root and registers every Decl node under its enclosing
// scope's symbol table. It runs after hoistPass so a declaration binds at
// its final resting place, not the nested scope it was written in. A
// duplicate declaration of the same name in the same scope embeds an Error
// at the offending Decl rather than aborting the whole bind; a missing
// enclosing scope (a malformed tree, never produced by this package's own
// builder) is the only fatal condition.
func bindAll(root *tree.Node) error {
	var fatal error
	tree.Walk(root, func(n *tree.Node) bool {
		if fatal != nil {
			return false
		}
		if n.Kind == Decl {
			name := n.At(0).Text
			ok, bindErr := n.Bind(name)
			if bindErr != nil {
				fatal = bindErr
				return false
			}
			if !ok {
				n.PushBack(errNode(n.Loc, fmt.Sprintf("%q is already declared in this scope", name), nil))
			}
		}
		return true
	}, nil)
	return fatal
}

// resolveRefsPass turns every Ref whose name resolves to nothing into an
// embedded Error, exercising Lookup from inside a rewrite action exactly as
// the reference engine's samples/verona does with its own lookup() helper.
func resolveRefsPass() *pass.Pass {
	resolve := rewrite.New(
		pattern.T(Ref).Capture("ref"),
		func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
			ref := m.Get("ref")[0]
			if defs := ref.Lookup(ref.Text, nil); len(defs) > 0 {
				return tree.New(groves.NoChange, groves.NoLocation)
			}
			return errNode(ref.Loc, fmt.Sprintf("undefined name %q", ref.Text), ref)
		},
	)
	return pass.New("resolveRefs", rewrite.Set{resolve}, pass.WithDirection(pass.Bottomup))
}
