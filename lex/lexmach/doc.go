/*
Package lexmach adapts github.com/timtadh/lexmachine's DFA-driven scanner to
the lex.Tokenizer interface, for front-ends that need a hand-specified
regular-grammar lexer rather than the Go-flavored default tokenizer.

Grounded on the teacher's lr/scanner/lexmach package, adapted to emit
lex.Items carrying groves.Token kinds in place of gorgo.Token/gorgo.TokType.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package lexmach

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'groves.lex'.
func tracer() tracing.Trace {
	return tracing.Select("groves.lex")
}
