package lumen

import (
	"strings"
	"text/scanner"

	"github.com/arborly/groves"
	"github.com/arborly/groves/lex"
)

// End closes an if's Then body. Equals separates a let's name from its value.
var (
	End    = groves.NewToken("lumen.End", 0)
	Equals = groves.NewToken("lumen.Equals", 0)
)

var keywords = map[string]groves.Token{
	"let":   Decl,
	"if":    If,
	"then":  Then,
	"end":   End,
	"print": Print,
}

func classify(tok rune, lexeme string) groves.Token {
	switch tok {
	case scanner.Ident:
		if kw, ok := keywords[lexeme]; ok {
			return kw
		}
		return Ref
	case scanner.Int, scanner.Float:
		return Number
	case scanner.String:
		return String
	default:
		if lexeme == "=" {
			return Equals
		}
		return groves.Invalid
	}
}

func tokenize(sourceID, input string) ([]lex.Item, error) {
	tz := lex.GoTokenizer(sourceID, strings.NewReader(input), classify)
	var items []lex.Item
	for {
		item, err := tz.NextItem()
		if err != nil {
			return nil, err
		}
		if item.Kind == lex.EOF {
			return items, nil
		}
		items = append(items, item)
	}
}
