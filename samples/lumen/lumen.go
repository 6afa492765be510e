package lumen

import (
	"github.com/arborly/groves"
	"github.com/arborly/groves/driver"
	"github.com/arborly/groves/tree"
)

// Parse tokenizes and builds input, then drives it through package driver:
// a hoist stage (lifting every Decl out of its Then up to the enclosing
// Program, then binding each at its final position and checking the hoist
// invariant) followed by a resolve stage (turning every unresolved Ref into
// an embedded Error). The returned error is non-nil only for a fatal pass or
// well-formedness failure; undefined names and malformed syntax surface as
// embedded Error nodes in the returned slice instead.
func Parse(sourceID, input string) (*tree.Node, []*tree.Node, error) {
	tracer().Debugf("parsing %s (%d bytes)", sourceID, len(input))

	items, err := tokenize(sourceID, input)
	if err != nil {
		return nil, nil, err
	}

	program := parseProgram(items)
	root := tree.New(groves.Top, groves.NoLocation)
	root.PushBack(program)

	d := driver.New("lumen",
		driver.Stage{Name: "hoist", Pass: hoistPass(), WF: wf{}},
		driver.Stage{Name: "resolve", Pass: resolveRefsPass()},
	)
	if _, err := d.Run(root); err != nil {
		return root, nil, err
	}
	return root, d.Errors(root), nil
}
