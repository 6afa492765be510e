/*
Package lumen is a small scoped toy language demonstrating the tree model's
symbol table, outward lookup, and lift mechanism end to end, complementing
the samples/json front end's focus on the pattern/rewrite/pass machinery.

A program is a flat sequence of statements: `let` declarations, `if`
conditionals guarding a nested statement block, and `print` references. Every
`if` body is its own scope node, but declarations inside an `if` body are
hoisted to the enclosing top-level scope before name resolution runs, so a
`let x` inside an `if` does not shadow an outer `x`: both land in the same
top-level scope and collide as a duplicate declaration. This mirrors the reference engine's samples/verona hoisting of
local bindings out of nested expression scopes via its Lift marker. A single
resolve pass then walks every reference and reports a name that resolves to
nothing as an embedded Error node, in the same idiom samples/json uses for
malformed input.

Where samples/json tokenizes with a lexmachine DFA, lumen tokenizes with
text/scanner via package lex's GoTokenizer, exercising the engine's other
lexer adapter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package lumen

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'groves.samples.lumen'.
func tracer() tracing.Trace {
	return tracing.Select("groves.samples.lumen")
}
