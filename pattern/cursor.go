package pattern

import "github.com/arborly/groves/tree"

// Match is the mutable capture context threaded through a pattern match
// attempt: a mapping from capture name to the nodes consumed under that
// capture. Grounded on the reference engine's Match type, which maps a
// capture token to a (begin,end) range over the parent's children; here the
// range is materialized directly as a node slice, which is cheap because
// Cursor never mutates the tree it walks.
type Match struct {
	Captures map[string][]*tree.Node
}

// NewMatch returns an empty Match.
func NewMatch() *Match {
	return &Match{Captures: map[string][]*tree.Node{}}
}

// Get returns the nodes captured under name, or nil if name was never captured.
func (m *Match) Get(name string) []*tree.Node {
	if m.Captures == nil {
		return nil
	}
	return m.Captures[name]
}

func (m *Match) capture(name string, nodes []*tree.Node) {
	if m.Captures == nil {
		m.Captures = map[string][]*tree.Node{}
	}
	m.Captures[name] = nodes
}

// Reset clears every accumulated capture, used by the rule runner between
// rule attempts so a failed rule cannot leak captures into the next one.
func (m *Match) Reset() {
	m.Captures = map[string][]*tree.Node{}
}

// Merge copies every capture from other into m.
func (m *Match) Merge(other *Match) {
	for k, v := range other.Captures {
		m.capture(k, v)
	}
}

// Cursor is a position (it, end) into a parent node's child sequence.
type Cursor struct {
	Parent *tree.Node
	It     int
	End    int
}

// NewCursor returns a cursor spanning all of parent's children.
func NewCursor(parent *tree.Node) *Cursor {
	return &Cursor{Parent: parent, It: 0, End: parent.Len()}
}

// AtEnd reports whether the cursor has no more children to consume.
func (c *Cursor) AtEnd() bool {
	return c.It >= c.End
}

// Peek returns the child the cursor currently sits on, or nil at end.
func (c *Cursor) Peek() *tree.Node {
	if c.AtEnd() {
		return nil
	}
	return c.Parent.At(c.It)
}

func (c *Cursor) save() Cursor    { return *c }
func (c *Cursor) restore(s Cursor) { *c = s }
