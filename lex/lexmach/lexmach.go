package lexmach

import (
	"strings"

	"github.com/arborly/groves"
	"github.com/arborly/groves/lex"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Adapter wraps a compiled lexmachine DFA, ready to spawn scanners over
// input strings.
type Adapter struct {
	Lexer *lexmachine.Lexer
}

// NewAdapter builds and compiles a lexmachine DFA. init registers the
// front-end's own regex/action pairs (numbers, strings, identifiers, ...);
// literals and keywords are convenience lists added automatically, each
// producing a token of the kind kinds[name] via MakeToken. NewAdapter
// returns an error if compiling the DFA fails.
func NewAdapter(init func(*lexmachine.Lexer), literals, keywords []string, kinds map[string]groves.Token) (*Adapter, error) {
	a := &Adapter{Lexer: lexmachine.NewLexer()}
	init(a.Lexer)
	for _, lit := range literals {
		re := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		a.Lexer.Add([]byte(re), MakeToken(kinds[lit]))
	}
	for _, kw := range keywords {
		a.Lexer.Add([]byte(strings.ToLower(kw)), MakeToken(kinds[kw]))
	}
	if err := a.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return a, nil
}

// Scanner creates a lex.Tokenizer for a single input, tagging every Item's
// location with sourceID.
func (a *Adapter) Scanner(sourceID, input string) (*Scanner, error) {
	s, err := a.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, source: sourceID, Error: logError}, nil
}

// Scanner implements lex.Tokenizer over a compiled lexmachine DFA.
type Scanner struct {
	scanner *lexmachine.Scanner
	source  string
	Error   func(error)
}

var _ lex.Tokenizer = (*Scanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

func logError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// NextItem is part of the lex.Tokenizer interface. Unconsumed-input errors
// are reported to the error handler and skipped past, so a single malformed
// character does not abort the whole scan.
func (s *Scanner) NextItem() (lex.Item, error) {
	tok, err, eof := s.scanner.Next()
	for err != nil {
		s.Error(err)
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			s.scanner.TC = ui.FailTC
		} else {
			return lex.Item{}, err
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		return lex.Item{Kind: lex.EOF}, nil
	}
	token := tok.(*lexmachine.Token)
	kind, _ := token.Value.(groves.Token)
	return lex.Item{
		Kind: kind,
		Text: string(token.Lexeme),
		Loc: groves.Location{
			Source: s.source,
			Start:  token.StartColumn,
			Length: token.EndColumn - token.StartColumn,
		},
	}, nil
}

// Skip is a pre-defined lexmachine action that discards the scanned match
// (for whitespace and comments).
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined lexmachine action wrapping a scanned match
// into a token carrying the given groves.Token kind as its Value.
func MakeToken(kind groves.Token) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		tok := s.Token(0, kind, m)
		return tok, nil
	}
}
