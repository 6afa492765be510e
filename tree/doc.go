/*
Package tree implements the typed tree model the rest of groves rewrites:
nodes with a kind (a groves.Token), a Location, an ordered child sequence, a
parent back-reference, and an optional symbol table for nodes whose kind
carries the Symtab flag.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'groves.tree'.
func tracer() tracing.Trace {
	return tracing.Select("groves.tree")
}
