/*
Package pass implements the traversal, rule-dispatch, and lift-resolution
runner that drives a rewrite.Set over a tree.Node. A Pass sweeps the tree
repeatedly until a sweep produces no changes (or exactly once, if the Once
direction flag is set), applying rules in order at every node and resolving
Lift markers after each sweep.

Grounded on the reference engine's pass.h (PassDef::run/step/apply/lift),
translated from C++'s operator-heavy dispatch into the Go idiom of a small
struct configured with functional options, matching the teacher's
lr/scanner.Option pattern.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package pass

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'groves.pass'.
func tracer() tracing.Trace {
	return tracing.Select("groves.pass")
}
