package json

import (
	"github.com/arborly/groves"
	"github.com/arborly/groves/driver"
	"github.com/arborly/groves/tree"
)

// Parse tokenizes and builds input (tagged with sourceID for diagnostics
// only), then drives the groups pass over the raw tree via package driver.
// The returned error is non-nil only for a fatal pass or well-formedness
// failure (for instance an unresolved Lift, or a stray scaffolding node the
// groups pass should have collapsed); malformed JSON is reported as
// embedded Error nodes reachable via the returned slice instead.
func Parse(sourceID, input string) (*tree.Node, []*tree.Node, error) {
	tracer().Debugf("parsing %s (%d bytes)", sourceID, len(input))

	items, err := tokenize(sourceID, input)
	if err != nil {
		return nil, nil, err
	}

	b := &builder{items: items}
	fileLoc := groves.NoLocation
	if len(items) > 0 {
		fileLoc = items[0].Loc
	}
	file := tree.New(File, fileLoc)
	file.PushBack(b.parseValue())

	root := tree.New(groves.Top, groves.NoLocation)
	root.PushBack(file)

	d := driver.New("json", driver.Stage{Name: "groups", Pass: groupsPass(), WF: wf{}})
	if _, err := d.Run(root); err != nil {
		return root, nil, err
	}
	return root, d.Errors(root), nil
}
