package lumen

import (
	"fmt"

	"github.com/arborly/groves/tree"
)

// wf drives lumen's pipeline through package driver. BuildSymbols binds every
// Decl under its final, post-hoist scope; Check verifies hoistPass's own
// exit invariant, that no Decl remains directly inside a Then.
type wf struct{}

func (wf) BuildSymbols(root *tree.Node) error { return bindAll(root) }

func (wf) Check(root *tree.Node) error {
	var bad *tree.Node
	tree.Walk(root, func(n *tree.Node) bool {
		if bad != nil {
			return false
		}
		if n.Kind == Then {
			for _, ch := range n.Children() {
				if ch.Kind == Decl {
					bad = ch
					return false
				}
			}
		}
		return true
	}, nil)
	if bad != nil {
		return fmt.Errorf("groves/samples/lumen: hoist pass left a Decl %q inside a Then", bad.At(0).Text)
	}
	return nil
}
