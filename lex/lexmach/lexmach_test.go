package lexmach

import (
	"fmt"
	"testing"

	"github.com/arborly/groves"
	"github.com/arborly/groves/lex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/timtadh/lexmachine"
)

var (
	lmIdent  = groves.NewToken("LMIdent", groves.Print)
	lmNum    = groves.NewToken("LMNum", groves.Print)
	lmString = groves.NewToken("LMString", groves.Print)
	lmPlus   = groves.NewToken("LMPlus", 0)
	lmComma  = groves.NewToken("LMComma", 0)
)

var literalKinds = map[string]groves.Token{
	"+": lmPlus,
	",": lmComma,
}

func buildAdapter(t *testing.T) *Adapter {
	t.Helper()
	init := func(lx *lexmachine.Lexer) {
		lx.Add([]byte(`( |\t|\n|\r)+`), Skip)
		lx.Add([]byte(`[1-9][0-9]*`), MakeToken(lmNum))
		lx.Add([]byte(`\"[^"]*\"`), MakeToken(lmString))
		lx.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken(lmIdent))
	}
	a, err := NewAdapter(init, []string{"+", ","}, nil, literalKinds)
	if err != nil {
		t.Fatalf("failed to build DFA: %v", err)
	}
	return a
}

var lmInputsAndCounts = []struct {
	input string
	count int
}{
	{"1", 1},
	{"1+12", 3},
	{"hello world", 2},
	{`x "mystring"`, 2},
	{"1,22,333", 5},
}

func TestLexmachAdapterCountsItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.lex")
	defer teardown()

	a := buildAdapter(t)
	for i, c := range lmInputsAndCounts {
		name := fmt.Sprintf("input #%d", i)
		s, err := a.Scanner(name, c.input)
		if err != nil {
			t.Fatalf("failed to build scanner: %v", err)
		}
		count := 0
		for {
			item, err := s.NextItem()
			if err != nil {
				t.Fatalf("unexpected scan error: %v", err)
			}
			if item.Kind == lex.EOF {
				break
			}
			if !item.Kind.IsValid() {
				t.Fatalf("item %q produced an invalid kind", item.Text)
			}
			count++
		}
		if count != c.count {
			t.Errorf("input %q: expected %d items, got %d", c.input, c.count, count)
		}
	}
}
