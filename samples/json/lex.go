package json

import (
	"github.com/arborly/groves"
	"github.com/arborly/groves/lex"
	"github.com/arborly/groves/lex/lexmach"

	"github.com/timtadh/lexmachine"
)

// Punctuation tokens are consumed by the builder in parse.go; one reaches the
// tree the groups pass operates on only as the offending leaf of an Error
// node, where a value was expected.
var (
	lbrace   = groves.NewToken("json.lbrace", 0)
	rbrace   = groves.NewToken("json.rbrace", 0)
	lbracket = groves.NewToken("json.lbracket", 0)
	rbracket = groves.NewToken("json.rbracket", 0)
	colon    = groves.NewToken("json.colon", 0)
	comma    = groves.NewToken("json.comma", 0)
)

var literalKinds = map[string]groves.Token{
	"{": lbrace,
	"}": rbrace,
	"[": lbracket,
	"]": rbracket,
	":": colon,
	",": comma,
}

var adapter *lexmach.Adapter

func init() {
	var err error
	adapter, err = lexmach.NewAdapter(func(lx *lexmachine.Lexer) {
		lx.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		lx.Add([]byte(`true`), lexmach.MakeToken(True))
		lx.Add([]byte(`false`), lexmach.MakeToken(False))
		lx.Add([]byte(`null`), lexmach.MakeToken(Null))
		lx.Add([]byte(`-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?`), lexmach.MakeToken(Number))
		lx.Add([]byte(`"([^"\\]|\\.)*"`), lexmach.MakeToken(String))
	}, []string{"{", "}", "[", "]", ":", ","}, nil, literalKinds)
	if err != nil {
		panic("groves/samples/json: failed to compile lexer DFA: " + err.Error())
	}
}

// tokenize runs the JSON DFA lexer over input, collecting the full Item
// stream (sans EOF) for the builder to consume.
func tokenize(sourceID, input string) ([]lex.Item, error) {
	scanner, err := adapter.Scanner(sourceID, input)
	if err != nil {
		return nil, err
	}
	var items []lex.Item
	for {
		item, err := scanner.NextItem()
		if err != nil {
			return nil, err
		}
		if item.Kind == lex.EOF {
			return items, nil
		}
		items = append(items, item)
	}
}
