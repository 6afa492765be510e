/*
Package driver sequences a list of named passes over a tree, running a
front-end's well-formedness check between each pair of passes.

Grounded on the reference engine's driver.h (Driver::run, the pass-then-check
loop), with the CLI11 argument parsing and `.trieste` resume-file format left
out, per the specification's scope: those are interfaces-only collaborators.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package driver

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'groves.driver'.
func tracer() tracing.Trace {
	return tracing.Select("groves.driver")
}
