package pass

import (
	"fmt"

	"github.com/arborly/groves"
	"github.com/arborly/groves/tree"
)

// liftPhase resolves every Lift marker reachable from root and reports how
// many were resolved. It returns an error if the sweep ends with any
// unresolved lift (one whose target kind matches no ancestor).
func liftPhase(root *tree.Node) (int, error) {
	pending, unresolved := resolveLifts(root)
	if len(unresolved) > 0 {
		tracer().Errorf("lift: %d lifted node(s) with no destination", len(unresolved))
		return 0, fmt.Errorf("groves/pass: %d lifted node(s) with no destination", len(unresolved))
	}
	return pending, nil
}

// resolveLifts walks the subtree rooted at n bottom-up: it extracts n's own
// direct Lift children, combines them with whatever lifts bubbled up from
// below, and for each one whose target kind equals n's own kind, splices
// the lift's payload into n's children in place. Lifts whose target does
// not match propagate upward for the caller to retry at the next level.
//
// A Lift node's first child names the target kind (that child's own Kind
// is the target); the Lift's remaining children, as flat siblings of that
// first child, are the payload.
func resolveLifts(n *tree.Node) (pending int, unresolved []*tree.Node) {
	var ownLifts []*tree.Node
	i := 0
	for i < n.Len() {
		ch := n.At(i)
		if ch.Kind == groves.Lift {
			n.Erase(i, i+1)
			ownLifts = append(ownLifts, ch)
			continue
		}
		i++
	}
	pending = len(ownLifts)
	bubbled := append([]*tree.Node{}, ownLifts...)
	for _, ch := range n.Children() {
		childPending, childUnresolved := resolveLifts(ch)
		pending += childPending
		bubbled = append(bubbled, childUnresolved...)
	}
	var resolvedPayload []*tree.Node
	for _, lift := range bubbled {
		if lift.Len() < 1 {
			unresolved = append(unresolved, lift)
			continue
		}
		targetKind := lift.At(0).Kind
		if n.Kind != targetKind {
			unresolved = append(unresolved, lift)
			continue
		}
		payload := lift.Erase(1, lift.Len())
		tracer().Debugf("lift: resolving %d node(s) into %s", len(payload), n.Kind)
		resolvedPayload = append(resolvedPayload, payload...)
	}
	if len(resolvedPayload) > 0 {
		n.Insert(0, resolvedPayload...)
	}
	return pending, unresolved
}
