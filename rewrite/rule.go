package rewrite

import (
	"github.com/arborly/groves"
	"github.com/arborly/groves/pattern"
	"github.com/arborly/groves/tree"
)

// Action produces a replacement for the nodes a rule's pattern consumed.
// The returned node's kind determines how the pass runner handles it:
//
//   - nil              the matched range is deleted
//   - groves.NoChange  treated as if the pattern had not matched at all
//   - groves.Seq       the returned node's children are spliced in place
//   - any other kind   the returned node itself replaces the matched range
//
// consumed is the exact slice of sibling nodes the pattern matched, and m
// carries whatever captures the pattern published.
type Action func(consumed []*tree.Node, m *pattern.Match) *tree.Node

// Rule is a pattern paired with the action to run when it matches.
type Rule struct {
	Pattern pattern.Builder
	Act     Action
}

// New builds a Rule from a pattern and an action.
func New(p pattern.Builder, act Action) Rule {
	return Rule{Pattern: p, Act: act}
}

// Replace returns an Action that always replaces the matched range with a
// freshly built node of the given kind, wrapping consumed as its children.
func Replace(kind groves.Token) Action {
	return func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
		return tree.NewWithChildren(kind, consumed...)
	}
}

// Delete returns an Action that always deletes the matched range.
func Delete() Action {
	return func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
		return nil
	}
}

// Attempt runs the rule's pattern at cur; on success it invokes the
// action and reports the outcome. It does not itself mutate the tree —
// that is the pass runner's job (see package pass) — but it does restore
// the cursor when the action reports groves.NoChange, since the
// specification treats that result identically to a pattern-match failure.
func (r Rule) Attempt(cur *pattern.Cursor) (fired bool, consumed []*tree.Node, result *tree.Node, m *pattern.Match) {
	save := *cur
	scratch := pattern.NewMatch()
	if !r.Pattern.Match(cur, scratch) {
		*cur = save
		return false, nil, nil, nil
	}
	consumed = append([]*tree.Node{}, cur.Parent.Children()[save.It:cur.It]...)
	res := r.Act(consumed, scratch)
	if res != nil && res.Kind == groves.NoChange {
		tracer().Debugf("rule: action reported NoChange, treating as non-match (%d node(s))", len(consumed))
		*cur = save
		return false, nil, nil, nil
	}
	return true, consumed, res, scratch
}

// Set is an ordered list of rules, tried first-to-last.
type Set []Rule

// Or appends other to the set, for building rule lists with the reference
// engine's "A | B" composition read left to right as priority order.
func (s Set) Or(other Rule) Set {
	return append(append(Set{}, s...), other)
}

// Or composes two rules into a two-element priority-ordered Set.
func (r Rule) Or(other Rule) Set {
	return Set{r, other}
}

// Attempt tries every rule in s at cur, first match wins.
func (s Set) Attempt(cur *pattern.Cursor) (fired bool, consumed []*tree.Node, result *tree.Node, m *pattern.Match) {
	for i, r := range s {
		if fired, consumed, result, m = r.Attempt(cur); fired {
			tracer().Debugf("rule set: rule %d of %d fired", i, len(s))
			return fired, consumed, result, m
		}
	}
	tracer().Debugf("rule set: no rule out of %d matched", len(s))
	return false, nil, nil, nil
}
