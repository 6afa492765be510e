/*
Package lex defines a scanner interface for front-ends: Tokenizer, producing
a stream of Items (a groves.Token kind, a lexeme, and a groves.Location). A
default implementation wraps the standard library's text/scanner; a second,
DFA-driven implementation lives in sub-package lexmach.

Grounded on the teacher's lr/scanner package (Tokenizer, DefaultTokenizer,
the functional Option idiom, GoTokenizer), adapted to produce groves.Token/
groves.Location values in place of gorgo.TokType/gorgo.Span, since a
groves.Token is an interned struct rather than a bare rune and so needs an
explicit classify function to bridge text/scanner's rune-valued tokens.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package lex

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'groves.lex'.
func tracer() tracing.Trace {
	return tracing.Select("groves.lex")
}
