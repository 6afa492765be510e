package lex

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/arborly/groves"
)

// EOF marks end of input. Front-ends are free to ignore it and stop pulling
// items once NextItem reports it, or to fold it into their own grammar.
var EOF = groves.NewToken("EOF", 0)

// Item is a single lexical token: the interned kind a front-end's Classify
// function assigned it, its lexeme, and its source location.
type Item struct {
	Kind groves.Token
	Text string
	Loc  groves.Location
}

// Tokenizer is the scanner interface front-ends are built against.
type Tokenizer interface {
	NextItem() (Item, error)
	SetErrorHandler(func(error))
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Classify maps a raw text/scanner token (a rune, possibly one of
// scanner.Ident/Int/Float/... ) and its lexeme to an interned groves.Token.
// Returning a Token without groves.Print is fine; DefaultTokenizer always
// records the lexeme in Item.Text regardless.
type Classify func(tok rune, lexeme string) groves.Token

// DefaultTokenizer wraps text/scanner.Scanner, translating its rune-keyed
// tokens into groves Items via a Classify function supplied by the front-end.
type DefaultTokenizer struct {
	scanner.Scanner
	source       string
	classify     Classify
	Error        func(error)
	unifyStrings bool
}

// GoTokenizer creates a tokenizer accepting tokens similar to the Go
// language, using classify to translate scanner tokens into groves.Tokens.
func GoTokenizer(sourceID string, input io.Reader, classify Classify, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{source: sourceID, classify: classify}
	t.Error = logError
	t.Init(input)
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	t.Filename = sourceID
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextItem is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextItem() (Item, error) {
	tok := t.Scan()
	if tok == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
		return Item{Kind: EOF, Loc: groves.Location{Source: t.source, Start: t.Pos().Offset}}, nil
	}
	if t.unifyStrings && (tok == scanner.RawString || tok == scanner.Char) {
		tok = scanner.String
	}
	text := t.TokenText()
	start := t.Position.Offset
	return Item{
		Kind: t.classify(tok, text),
		Text: text,
		Loc:  groves.Location{Source: t.source, Start: start, Length: t.Pos().Offset - start},
	}, nil
}

func logError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// Option configures a DefaultTokenizer, mirroring the teacher's
// lr/scanner.Option functional-options idiom.
type Option func(t *DefaultTokenizer)

// SkipComments sets or clears the SkipComments scan mode.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings treats raw strings and single chars as ordinary strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) { t.unifyStrings = b }
}

// Lexeme renders a token value as a string, for front-ends whose Classify
// or Action callbacks receive an interface{} payload.
func Lexeme(token interface{}) string {
	switch v := token.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
