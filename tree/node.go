package tree

import (
	"fmt"

	"github.com/arborly/groves"
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Node is a single tree node. Each node has at most one parent; children are
// held in an ordered slice. A node whose Kind carries groves.Symtab owns a
// symbol table (see symtab.go); all other nodes have a nil symtab.
type Node struct {
	Kind groves.Token
	Loc  groves.Location
	// Text is the node's location view (lexeme) for leaf-like tokens. It is
	// populated by front-ends and consulted by pattern.T's regex form; the
	// core tree model never derives it from Loc, since Location carries no
	// reference to the underlying source buffer.
	Text     string
	parent   *Node
	children []*Node
	symtab   *Symtab

	containsError bool
	containsLift  bool
}

// New creates a detached node with an explicit location.
func New(kind groves.Token, loc groves.Location) *Node {
	n := &Node{Kind: kind, Loc: loc}
	if kind.HasSymtab() {
		n.symtab = newSymtab()
	}
	return n
}

// NewWithChildren creates a node whose location is the union of its
// children's locations, and appends the children (reparenting them).
func NewWithChildren(kind groves.Token, children ...*Node) *Node {
	n := New(kind, groves.NoLocation)
	for _, ch := range children {
		if ch == nil {
			continue
		}
		n.PushBack(ch)
		n.Loc = n.Loc.Union(ch.Loc)
	}
	return n
}

// Parent returns the node's parent, or nil for a root/detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a read-only view of n's children. Callers must not
// mutate the returned slice; use the mutation methods below instead.
func (n *Node) Children() []*Node { return n.children }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// At returns the child at index i.
func (n *Node) At(i int) *Node { return n.children[i] }

// ContainsError reports whether the subtree rooted at n contains an Error node.
func (n *Node) ContainsError() bool { return n.containsError }

// ContainsLift reports whether the subtree rooted at n contains a Lift node.
func (n *Node) ContainsLift() bool { return n.containsLift }

// Symtab returns n's symbol table, or nil if n's kind does not carry Symtab.
func (n *Node) Symtab() *Symtab { return n.symtab }

// --- child mutation ---------------------------------------------------------

// propagateMarkers sets the containsError/containsLift bits along the path
// from n to the root, stopping as soon as an ancestor already has the bit
// set. Mirrors the reference engine's upward flag-propagation on insertion.
func (n *Node) propagateMarkers(hasError, hasLift bool) {
	for cur := n; cur != nil; cur = cur.parent {
		changed := false
		if hasError && !cur.containsError {
			cur.containsError = true
			changed = true
		}
		if hasLift && !cur.containsLift {
			cur.containsLift = true
			changed = true
		}
		if !changed {
			return
		}
	}
}

func (n *Node) subtreeMarkers() (hasError, hasLift bool) {
	if n.Kind == groves.Error {
		hasError = true
	}
	if n.Kind == groves.Lift {
		hasLift = true
	}
	return hasError || n.containsError, hasLift || n.containsLift
}

// reparent attaches child to n, propagating marker flags upward. A nil
// child is a no-op, matching the reference engine's silent-ignore rule.
func (n *Node) reparent(child *Node) {
	if child == nil {
		return
	}
	child.parent = n
	he, hl := child.subtreeMarkers()
	n.propagateMarkers(he, hl)
}

// unparent clears child's parent pointer, but only if it currently points
// back at n (a child detached and reattached elsewhere should not have its
// new parent link clobbered).
func unparent(n, child *Node) {
	if child != nil && child.parent == n {
		child.parent = nil
	}
}

// PushBack appends child as the last child, reparenting it.
func (n *Node) PushBack(child *Node) {
	if child == nil {
		return
	}
	n.children = append(n.children, child)
	n.reparent(child)
}

// PushBackEphemeral appends child without reparenting, for building
// transient views that must not affect the real tree's ownership.
func (n *Node) PushBackEphemeral(child *Node) {
	if child == nil {
		return
	}
	n.children = append(n.children, child)
}

// PushFront prepends child as the first child, reparenting it.
func (n *Node) PushFront(child *Node) {
	if child == nil {
		return
	}
	n.children = append([]*Node{child}, n.children...)
	n.reparent(child)
}

// Insert inserts children starting at index i, reparenting each.
func (n *Node) Insert(i int, children ...*Node) {
	if len(children) == 0 {
		return
	}
	tail := append([]*Node{}, n.children[i:]...)
	n.children = append(n.children[:i], children...)
	n.children = append(n.children, tail...)
	for _, ch := range children {
		n.reparent(ch)
	}
}

// Erase removes the children in [i,j), unparenting those still owned by n.
func (n *Node) Erase(i, j int) []*Node {
	removed := n.children[i:j]
	for _, ch := range removed {
		unparent(n, ch)
	}
	rest := append([]*Node{}, n.children[:i]...)
	rest = append(rest, n.children[j:]...)
	n.children = rest
	return removed
}

// PopBack removes and returns the last child, or nil if there are none.
func (n *Node) PopBack() *Node {
	if len(n.children) == 0 {
		return nil
	}
	last := n.children[len(n.children)-1]
	n.children = n.children[:len(n.children)-1]
	unparent(n, last)
	return last
}

// ReplaceAt replaces the single child at index i with zero or more
// replacement nodes (zero means "delete").
func (n *Node) ReplaceAt(i int, repl ...*Node) {
	n.Erase(i, i+1)
	if len(repl) > 0 {
		n.Insert(i, repl...)
	}
}

// Replace finds old among n's children and substitutes repl in its place.
// It is a no-op if old is not a direct child of n.
func (n *Node) Replace(old *Node, repl ...*Node) {
	for i, ch := range n.children {
		if ch == old {
			n.ReplaceAt(i, repl...)
			return
		}
	}
}

// --- traversal ---------------------------------------------------------

type frame struct {
	node *Node
	idx  int
}

// Walk performs an iterative (explicit-stack) traversal of the subtree
// rooted at n. pre is invoked on entry to each node and may return false to
// skip that node's children (and its post-visit). post, if non-nil, is
// invoked after all descendants have been visited. Traversal never
// recurses in Go call-depth, regardless of tree depth.
func Walk(n *Node, pre func(*Node) bool, post func(*Node)) {
	if n == nil {
		return
	}
	stack := linkedliststack.New()
	descend := pre == nil || pre(n)
	stack.Push(&frame{node: n, idx: 0})
	if !descend {
		stack.Pop()
		return
	}
	for !stack.Empty() {
		top, _ := stack.Peek()
		fr := top.(*frame)
		if fr.idx >= len(fr.node.children) {
			stack.Pop()
			if post != nil {
				post(fr.node)
			}
			continue
		}
		child := fr.node.children[fr.idx]
		fr.idx++
		if child == nil {
			continue
		}
		childDescend := pre == nil || pre(child)
		if !childDescend {
			continue
		}
		stack.Push(&frame{node: child, idx: 0})
	}
}

// Dispose unlinks every internal edge of the subtree rooted at n using an
// explicit work list, so that disposing a very deep tree does not grow the
// Go call stack. After Dispose, n and its former descendants have nil
// parent/children links and are safe for the garbage collector to reclaim
// immediately rather than via a generational sweep.
func Dispose(n *Node) {
	if n == nil {
		return
	}
	work := linkedliststack.New()
	work.Push(n)
	disposed := 0
	for !work.Empty() {
		top, _ := work.Pop()
		cur := top.(*Node)
		for _, ch := range cur.children {
			if ch != nil {
				work.Push(ch)
			}
		}
		cur.children = nil
		cur.parent = nil
		cur.symtab = nil
		disposed++
	}
	tracer().Debugf("disposed %d node(s) rooted at %s", disposed, n.Kind)
}

// Clone produces a structural deep copy of n: kinds and locations are
// preserved, but no node in the copy owns a symbol table (matching the
// reference engine's clone semantics — bindings are not copied because they
// would reference nodes outside the clone).
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Loc: n.Loc}
	for _, ch := range n.children {
		c.PushBack(Clone(ch))
	}
	return c
}

// --- ordering ---------------------------------------------------------

func depth(n *Node) int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// CommonParent returns a, b, or their lowest common ancestor: if one
// dominates (is an ancestor of) the other, the dominator is returned.
func CommonParent(a, b *Node) *Node {
	if a == b {
		return a
	}
	da, db := depth(a), depth(b)
	x, y := a, b
	for da > db {
		x = x.parent
		da--
	}
	for db > da {
		y = y.parent
		db--
	}
	for x != y {
		x = x.parent
		y = y.parent
	}
	return x
}

// Precedes reports whether a is strictly to the left of b in a pre-order
// walk and neither dominates the other.
func Precedes(a, b *Node) bool {
	if a == b {
		return false
	}
	lca := CommonParent(a, b)
	if lca == a || lca == b {
		return false // one dominates the other
	}
	ax, bx := a, b
	for ax.parent != lca {
		ax = ax.parent
	}
	for bx.parent != lca {
		bx = bx.parent
	}
	return indexOf(lca, ax) < indexOf(lca, bx)
}

func indexOf(parent, child *Node) int {
	for i, ch := range parent.children {
		if ch == child {
			return i
		}
	}
	return -1
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Kind.Is(groves.Print) && !n.Loc.IsNone() {
		return fmt.Sprintf("%s[%s]", n.Kind, n.Loc)
	}
	return n.Kind.String()
}
