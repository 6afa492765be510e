/*
Package debug renders a tree.Node as a colorized terminal tree, for use by
cmd/groves and by front ends that want to inspect an intermediate shape
while developing a pass.

Grounded on the reference engine's terex/terexlang/trepl REPL, which builds
a pterm.LeveledList by walking an s-expression and hands it to
pterm.DefaultTree.WithRoot(...).Render(); here the same leveled-list idiom
walks a tree.Node instead of a GCons list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package debug

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'groves.debug'.
func tracer() tracing.Trace {
	return tracing.Select("groves.debug")
}
