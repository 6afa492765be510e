package debug

import (
	"fmt"

	"github.com/arborly/groves/tree"

	"github.com/pterm/pterm"
)

// Render prints n as a colorized tree to the terminal.
func Render(n *tree.Node) {
	tracer().Debugf("rendering tree rooted at %s", n.Kind)
	ll := leveledElem(n, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// label renders a single node's display text: its kind, plus its lexeme if
// one was recorded, plus a symbol-table size hint for scope-bearing nodes.
func label(n *tree.Node) string {
	s := n.Kind.String()
	if n.Text != "" {
		s = fmt.Sprintf("%s %q", s, n.Text)
	}
	if st := n.Symtab(); st != nil {
		s = fmt.Sprintf("%s {symtab:%d}", s, st.Size())
	}
	return s
}

func leveledElem(n *tree.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	if n == nil {
		return append(ll, pterm.LeveledListItem{Level: level, Text: "()"})
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: label(n)})
	for _, ch := range n.Children() {
		ll = leveledElem(ch, ll, level+1)
	}
	return ll
}

// FormatErrors renders a slice of embedded Error nodes as one diagnostic
// line each, in the style a front end's Parse returns from tree.GetErrors.
func FormatErrors(errs []*tree.Node) []string {
	if len(errs) > 0 {
		tracer().Errorf("formatting %d embedded error node(s)", len(errs))
	}
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := "error"
		if e.Len() > 0 {
			msg = e.At(0).Text
		}
		lines = append(lines, fmt.Sprintf("%s: %s", e.Loc, msg))
	}
	return lines
}
