/*
Package json is a small JSON front-end demonstrating the engine end to end:
a lexmachine-driven tokenizer feeds a minimal recursive-descent builder that
deliberately leaves its output in an ungrouped shape (each object's members
and each array's elements held in a Comma node behind an empty leading Group
marker), then a "groups" pass —
built entirely from package pattern/rewrite/pass — collapses that shape into
a canonical JSON tree. Malformed input becomes an embedded Error node rather
than aborting the parse, so callers can collect every problem in one pass
via tree.GetErrors.

Grounded on the reference engine's json.cc/json.h/parse.cc: the token
vocabulary (Object, Array, String, Number, True, False, Null, Member, Comma,
Group, File) and the shape of the "groups" pass's rewrite rules are carried
over; the incremental push/seq/pop parser-builder DSL those files use is out
of scope (§1) and is replaced here by a direct recursive-descent builder
that produces the same ungrouped intermediate shape outright.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package json

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'groves.samples.json'.
func tracer() tracing.Trace {
	return tracing.Select("groves.samples.json")
}
