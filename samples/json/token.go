package json

import "github.com/arborly/groves"

// Token vocabulary, grounded on the reference engine's json.h.
var (
	File   = groves.NewToken("File", 0)
	Object = groves.NewToken("Object", 0)
	Array  = groves.NewToken("Array", 0)
	Member = groves.NewToken("Member", 0)
	Comma  = groves.NewToken("Comma", 0)
	Group  = groves.NewToken("Group", 0)

	String = groves.NewToken("String", groves.Print)
	Number = groves.NewToken("Number", groves.Print)
	True   = groves.NewToken("True", 0)
	False  = groves.NewToken("False", 0)
	Null   = groves.NewToken("Null", 0)

	// Message wraps the human-readable text of an Error node.
	Message = groves.NewToken("Message", groves.Print)
)

// value is the set of token kinds a fully reduced JSON value may have.
var value = []groves.Token{Object, Array, String, Number, True, False, Null}

func isValue(t groves.Token) bool {
	for _, v := range value {
		if v == t {
			return true
		}
	}
	return false
}
