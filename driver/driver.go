package driver

import (
	"fmt"

	"github.com/arborly/groves/pass"
	"github.com/arborly/groves/tree"
)

// Wellformed is implemented by a front-end that wants the driver to check
// tree shape between passes. BuildSymbols re-establishes bindings that a
// pass may have invalidated (a pass is free to leave stale bindings behind
// when it deletes or moves nodes); Check reports a shape violation as an
// error. Neither method is required to be total: a front-end with no shape
// rules for a given stage can make both a no-op.
type Wellformed interface {
	BuildSymbols(root *tree.Node) error
	Check(root *tree.Node) error
}

// Stage pairs a named pass with the well-formedness check that should run
// immediately after it. Either field may be left zero: a Stage with a nil
// Pass only runs its check (useful for a stage that validates the initial
// parse), and a Stage with a nil WF only runs its pass.
type Stage struct {
	Name string
	Pass *pass.Pass
	WF   Wellformed
}

// Driver sequences an ordered list of stages over a single tree.
type Driver struct {
	Name   string
	Stages []Stage
}

// New builds a Driver from an ordered stage list.
func New(name string, stages ...Stage) *Driver {
	return &Driver{Name: name, Stages: stages}
}

// Run executes every stage in order: the stage's pass (if any) sweeps root
// to a fixed point (or once, for a pass with the Once flag), then the
// stage's well-formedness check (if any) rebuilds symbols and validates
// shape. It stops and returns an error as soon as a
// pass or a check fails — a thrown condition in the reference engine's
// terms, as opposed to an Error node embedded in the tree, which never
// aborts a pass. The returned count is the sum of changes across every
// pass that ran before the error (or before completion).
func (d *Driver) Run(root *tree.Node) (int, error) {
	total := 0
	for _, st := range d.Stages {
		if st.Pass != nil {
			tracer().Debugf("driver %s: running pass %q", d.Name, st.Name)
			n, err := st.Pass.Run(root)
			total += n
			if err != nil {
				return total, fmt.Errorf("driver %s: pass %q: %w", d.Name, st.Name, err)
			}
		}
		if st.WF != nil {
			if err := st.WF.BuildSymbols(root); err != nil {
				return total, fmt.Errorf("driver %s: stage %q: build symbols: %w", d.Name, st.Name, err)
			}
			if err := st.WF.Check(root); err != nil {
				return total, fmt.Errorf("driver %s: stage %q: well-formedness: %w", d.Name, st.Name, err)
			}
		}
	}
	return total, nil
}

// Errors collects the outermost Error nodes remaining in root after a run,
// suitable for formatting as user-facing diagnostics.
func (d *Driver) Errors(root *tree.Node) []*tree.Node {
	return tree.GetErrors(root)
}
