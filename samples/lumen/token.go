package lumen

import "github.com/arborly/groves"

// Token vocabulary. Names are prefixed to keep this front end's catalog
// entries distinct from samples/json's, since groves.NewToken interns by
// bare name across the whole process.
var (
	// Program is the single top-level scope every declaration eventually
	// lands in, whether declared there directly or hoisted up from a
	// nested If's Then.
	Program = groves.NewToken("lumen.Program", groves.Symtab|groves.DefBeforeUse)

	// Then is an If's guarded body. It owns a symbol table of its own, but
	// it is never a lift target: every `let` written there is hoisted
	// straight through it to Program, so it never shadows an outer binding.
	Then = groves.NewToken("lumen.Then", groves.Symtab|groves.DefBeforeUse)

	// Decl is a `let name = value` binding occurrence. Shadowing means a
	// name found bound here stops outward lookup from going any further.
	Decl = groves.NewToken("lumen.Decl", groves.Lookup|groves.Shadowing)

	Ident  = groves.NewToken("lumen.Ident", groves.Print)
	Ref    = groves.NewToken("lumen.Ref", groves.Print)
	If     = groves.NewToken("lumen.If", 0)
	Print  = groves.NewToken("lumen.Print", 0)
	Number = groves.NewToken("lumen.Number", groves.Print)
	String = groves.NewToken("lumen.String", groves.Print)

	// Message wraps the human-readable text of an Error node.
	Message = groves.NewToken("lumen.Message", groves.Print)
)
