package pass

import (
	"github.com/arborly/groves"
	"github.com/arborly/groves/pattern"
	"github.com/arborly/groves/rewrite"
	"github.com/arborly/groves/tree"
)

// Direction is a bitset of traversal-order flags.
type Direction uint8

const (
	// Topdown recurses after the rules at the current level were tried,
	// visiting parents first: in normal mode into a child at which no rule
	// fired, in once mode into the nodes a firing rule inserted.
	Topdown Direction = 1 << iota
	// Bottomup recurses into a child before attempting any rule at the
	// current level, visiting children first.
	Bottomup
	// Once disables fixed-point iteration within a node: a firing rule
	// advances the cursor past its replacement instead of restarting the
	// scan, and the whole pass runs exactly one sweep over the tree.
	Once
)

// Pass holds an ordered rule set plus the traversal strategy and per-kind
// callbacks used to apply it to a tree.
type Pass struct {
	Name      string
	Direction Direction
	Rules     rewrite.Set

	pre      map[groves.Token]func(*tree.Node)
	post     map[groves.Token]func(*tree.Node)
	preOnce  func(*tree.Node)
	postOnce func(*tree.Node)
}

// Option configures a Pass, following the teacher's functional-options idiom.
type Option func(*Pass)

// WithDirection sets the traversal direction flags.
func WithDirection(d Direction) Option {
	return func(p *Pass) { p.Direction = d }
}

// WithPre registers a callback invoked when a node of the given kind is
// first visited, before any of its children are processed.
func WithPre(kind groves.Token, fn func(*tree.Node)) Option {
	return func(p *Pass) { p.pre[kind] = fn }
}

// WithPost registers a callback invoked after all of a node's children
// have been processed, just before returning from that node.
func WithPost(kind groves.Token, fn func(*tree.Node)) Option {
	return func(p *Pass) { p.post[kind] = fn }
}

// WithPreOnce registers a callback invoked once, on the root, before the
// pass's sweep iteration begins.
func WithPreOnce(fn func(*tree.Node)) Option {
	return func(p *Pass) { p.preOnce = fn }
}

// WithPostOnce registers a callback invoked once, on the root, after the
// pass's sweep iteration ends.
func WithPostOnce(fn func(*tree.Node)) Option {
	return func(p *Pass) { p.postOnce = fn }
}

// New builds a Pass from an ordered rule set and options.
func New(name string, rules rewrite.Set, opts ...Option) *Pass {
	p := &Pass{
		Name:  name,
		Rules: rules,
		pre:   map[groves.Token]func(*tree.Node){},
		post:  map[groves.Token]func(*tree.Node){},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run sweeps root with p's rules until a sweep yields zero changes, or
// exactly once if Once is set. It returns the total number of rule firings
// plus resolved lifts across every sweep, or an error if a sweep ends with
// an unresolved Lift (one with no ancestor of its target kind).
func (p *Pass) Run(root *tree.Node) (int, error) {
	if p.preOnce != nil {
		p.preOnce(root)
	}
	total := 0
	for {
		changes := p.apply(root)
		lifted, err := liftPhase(root)
		if err != nil {
			return total, err
		}
		sweep := changes + lifted
		total += sweep
		if p.Direction&Once != 0 {
			break
		}
		if sweep == 0 {
			break
		}
	}
	if p.postOnce != nil {
		p.postOnce(root)
	}
	return total, nil
}

// apply implements the per-node algorithm of the specification's pass
// runner: Error/Lift nodes are inert islands, children are visited in the
// configured order, and the first matching rule at each cursor position
// fires, with once-mode and fixed-point-within-node dispatch differing in
// how the cursor advances afterward.
func (p *Pass) apply(n *tree.Node) int {
	if n.Kind == groves.Error || n.Kind == groves.Lift {
		tracer().Debugf("pass %q: skipping inert island %s", p.Name, n.Kind)
		return 0
	}
	if fn, ok := p.pre[n.Kind]; ok {
		fn(n)
	}
	changes := 0
	cur := pattern.NewCursor(n)
	for !cur.AtEnd() {
		child := cur.Peek()
		if child.Kind == groves.Error || child.Kind == groves.Lift {
			cur.It++
			continue
		}
		if p.Direction&Bottomup != 0 {
			changes += p.apply(child)
		}
		fired, consumed, result, _ := p.Rules.Attempt(cur)
		if !fired {
			if p.Direction&Once != 0 {
				cur.It++
				continue
			}
			if p.Direction&Topdown != 0 {
				changes += p.apply(child)
			}
			cur.It++
			continue
		}
		changes++
		at := cur.It - len(consumed)
		tracer().Debugf("pass %q: rule fired in %s, consuming %d node(s) at %d", p.Name, n.Kind, len(consumed), at)
		replaced := splice(n, at, len(consumed), consumed, result)
		if p.Direction&Once != 0 {
			if replaced != 0 && p.Direction&Topdown != 0 {
				for i := 0; i < replaced && at+i < n.Len(); i++ {
					changes += p.apply(n.At(at + i))
				}
			}
			cur.It = at + replaced
			cur.End = n.Len()
			continue
		}
		// fixed point within n: restart the scan from the beginning
		cur.It = 0
		cur.End = n.Len()
	}
	if fn, ok := p.post[n.Kind]; ok {
		fn(n)
	}
	return changes
}

// splice performs the tree surgery for a fired rule: it removes the
// consumed range [at, at+count) from parent and inserts whatever the
// result calls for, returning the number of nodes actually inserted.
func splice(parent *tree.Node, at, count int, consumed []*tree.Node, result *tree.Node) int {
	if result == nil {
		tracer().Debugf("splice: deleting %d node(s) from %s at %d", count, parent.Kind, at)
		parent.Erase(at, at+count)
		return 0
	}
	if result.Kind == groves.Seq {
		replacement := append([]*tree.Node{}, result.Children()...)
		result.Erase(0, result.Len())
		setSpanLocation(replacement, consumed)
		tracer().Debugf("splice: splicing %d node(s) into %s at %d", len(replacement), parent.Kind, at)
		parent.Erase(at, at+count)
		if len(replacement) > 0 {
			parent.Insert(at, replacement...)
		}
		return len(replacement)
	}
	setSpanLocation([]*tree.Node{result}, consumed)
	tracer().Debugf("splice: replacing %d node(s) with %s in %s at %d", count, result.Kind, parent.Kind, at)
	parent.Erase(at, at+count)
	parent.Insert(at, result)
	return 1
}

// setSpanLocation sets each of nodes' location to the union of consumed's
// locations, unless consumed is empty (an epsilon match has no span to set).
func setSpanLocation(nodes []*tree.Node, consumed []*tree.Node) {
	if len(consumed) == 0 {
		return
	}
	span := consumed[0].Loc
	for _, c := range consumed[1:] {
		span = span.Union(c.Loc)
	}
	if span.IsNone() {
		return
	}
	for _, n := range nodes {
		n.Loc = span
	}
}
