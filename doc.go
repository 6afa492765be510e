/*
Package groves is a term-rewriting engine over typed trees.

Groves lets a compiler, linter, or language tool express a compilation
stage as a declarative set of pattern-to-action rewrite rules, driven
by a tree-traversing pass manager. Package structure is as follows:

■ groves: The base package contains the token catalog and the
Location value type, used throughout all the other packages.

■ tree: Package tree implements the typed tree model: nodes with
parent back-references, per-scope symbol tables, and the outward/
scoped lookup protocol.

■ pattern: Package pattern implements the compositional pattern
language used to match sibling ranges of a tree.

■ rewrite: Package rewrite pairs patterns with actions to form
rewrite rules.

■ pass: Package pass implements the traversal/rule-dispatch/lift
runner that applies rewrite rules to a tree.

■ driver: Package driver sequences named passes and runs
well-formedness checks between them.

■ lex: Package lex defines a scanner interface for front-ends, with a
default implementation backed by the Go standard library and a
DFA-based adapter living in sub-package lexmach.

■ samples: Directory samples holds two illustrative front-ends, package
json (a JSON reader) and package lumen (a small scoped-binding toy
language).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2018–2026 The Groves Authors.

*/
package groves
