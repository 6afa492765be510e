package json

import (
	"fmt"

	"github.com/arborly/groves/tree"
)

// wf drives the groups pass through package driver. JSON's tree carries no
// scopes, so BuildSymbols is a no-op; Check verifies the pass's own exit
// invariant, that every Group/Comma scaffolding node the builder introduced
// has collapsed away. A malformed object or array that recovered by embedding
// an Error partway through its member list leaves its Comma/Group behind on
// purpose, since collapseObject/collapseArray only match a clean member run
// ending at End(); Check skips such a subtree rather than promoting a
// recoverable syntax error into a fatal one.
type wf struct{}

func (wf) BuildSymbols(root *tree.Node) error { return nil }

func (wf) Check(root *tree.Node) error {
	var bad *tree.Node
	tree.Walk(root, func(n *tree.Node) bool {
		if bad != nil {
			return false
		}
		if n.ContainsError() {
			return false
		}
		if n.Kind == Group || n.Kind == Comma {
			bad = n
			return false
		}
		return true
	}, nil)
	if bad != nil {
		return fmt.Errorf("groves/samples/json: groups pass left a stray %s node", bad.Kind)
	}
	return nil
}
