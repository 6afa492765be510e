package tree

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Symtab is a per-scope symbol table: an ordered multimap from name to the
// nodes that define it, plus an include list of nodes that outward lookup
// through this scope returns whatever the name, plus a monotonic
// counter used to mint fresh names. Grounded on the teacher's
// runtime.SymbolTable/Scope pair, generalized so the table lives directly on
// the scope-bearing Node rather than in a separate Scope type, and so that
// entries carry ordering information (needed for def-before-use and
// shadowing-conflict detection) instead of a flat map[string]*Tag. Each
// name's binding list is an arraylist.List rather than a bare slice, the
// same ordered-list type the reference engine's own lr/tables.go reaches
// for when it needs an append-ordered collection.
type Symtab struct {
	entries  map[string]*arraylist.List
	includes []*Node
	counter  int
}

func newSymtab() *Symtab {
	return &Symtab{entries: make(map[string]*arraylist.List)}
}

// Clear empties the table's entries and includes but does not reset the
// fresh-name counter, mirroring the specification's monotonic-counter rule.
func (st *Symtab) Clear() {
	st.entries = make(map[string]*arraylist.List)
	st.includes = nil
}

// fresh mints a new name, suffixing prefix with "$<counter>".
func (st *Symtab) fresh(prefix string) string {
	st.counter++
	return fmt.Sprintf("%s$%d", prefix, st.counter)
}

// Includes returns the scope's include list.
func (st *Symtab) Includes() []*Node {
	return st.includes
}

// bind appends n to name's binding list, creating the list on first use.
func (st *Symtab) bind(name string, n *Node) *arraylist.List {
	list, ok := st.entries[name]
	if !ok {
		list = arraylist.New()
		st.entries[name] = list
	}
	list.Add(n)
	return list
}

// Entries returns the defining nodes bound under name in this scope only,
// in binding order, without any flag filtering.
func (st *Symtab) Entries(name string) []*Node {
	list, ok := st.entries[name]
	if !ok {
		return nil
	}
	return toNodes(list)
}

// Each iterates over every name bound in this scope.
func (st *Symtab) Each(f func(name string, defs []*Node)) {
	for name, list := range st.entries {
		f(name, toNodes(list))
	}
}

// Size returns the number of distinct names bound in this scope.
func (st *Symtab) Size() int {
	return len(st.entries)
}

func toNodes(list *arraylist.List) []*Node {
	if list == nil {
		return nil
	}
	values := list.Values()
	out := make([]*Node, len(values))
	for i, v := range values {
		out[i] = v.(*Node)
	}
	return out
}
