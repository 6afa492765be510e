package tree

import (
	"fmt"
	"strings"

	"github.com/arborly/groves"
	"github.com/cnf/structhash"
)

// nodeProjection is a structural view of a node used only for hashing: it
// omits parent links and symbol tables (which are not part of a node's
// printed identity) and includes the location only for Print-flagged kinds.
type nodeProjection struct {
	Kind     string
	Loc      string
	Children []nodeProjection
}

func project(n *Node) nodeProjection {
	p := nodeProjection{Kind: n.Kind.String()}
	if n.Kind.Is(groves.Print) {
		p.Loc = n.Loc.String()
	}
	for _, ch := range n.children {
		p.Children = append(p.Children, project(ch))
	}
	return p
}

// Equals reports structural equality: same kind, same location view for
// kinds carrying Print, and recursively equal children. A structural-hash
// comparison is tried first as a cheap short-circuit for definitely-unequal
// trees before falling back to the full recursive comparison, which alone
// is authoritative (a hash collision must not cause a false positive).
func Equals(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	ha, errA := structhash.Hash(project(a), 1)
	hb, errB := structhash.Hash(project(b), 1)
	if errA == nil && errB == nil && ha != hb {
		return false
	}
	return equalsDeep(a, b)
}

func equalsDeep(a, b *Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind.Is(groves.Print) && a.Loc != b.Loc {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !equalsDeep(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// GetErrors collects Error nodes reachable from root, applying the
// outermost-only rule: an Error node nested inside another Error node is
// not reported separately. Subtrees whose containsError summary bit is
// clear are skipped entirely.
func GetErrors(root *Node) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if n.Kind == groves.Error {
			out = append(out, n)
			return false
		}
		return n.containsError
	}, nil)
	return out
}

// Format renders n in the debug textual form "(kind location-view? {symtab}? children…)".
func Format(n *Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString("()")
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Kind.String())
	if n.Kind.Is(groves.Print) && !n.Loc.IsNone() {
		fmt.Fprintf(b, " %s", n.Loc)
	}
	if n.symtab != nil {
		fmt.Fprintf(b, " {symtab:%d}", n.symtab.Size())
	}
	for _, ch := range n.children {
		b.WriteByte(' ')
		writeNode(b, ch)
	}
	b.WriteByte(')')
}
