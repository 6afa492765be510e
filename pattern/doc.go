/*
Package pattern implements the compositional pattern language used to match
sibling ranges of a tree.Node's children. A Pattern matches against a
Cursor (a position into a parent's child sequence) and a Match (a mutable
capture context), consuming zero or more children on success and leaving
the cursor untouched on failure.

The reference engine this package generalizes overloads operators
(*, /, <<, ++, [], !) to compose patterns; Go has no operator overloading,
so composition is expressed with chained builder methods on Builder
instead (Then, Or, Opt, Rep, Not, Pred, NegPred, Capture, Children, Action).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package pattern

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'groves.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("groves.pattern")
}
