/*
Package rewrite pairs a pattern.Builder with an action to form a rewrite
rule. Grounded on the teacher's terex/termr.RewriteRule (pattern + rewrite
function) and generalized to the reference engine's richer action-result
semantics: a rule's action may delete, splice, or replace the matched
range, or signal that it produced no effective change.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package rewrite

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'groves.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("groves.rewrite")
}
