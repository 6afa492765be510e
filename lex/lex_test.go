package lex

import (
	"fmt"
	"strings"
	"testing"
	"text/scanner"

	"github.com/arborly/groves"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var (
	lexIdent  = groves.NewToken("LexIdent", groves.Print)
	lexInt    = groves.NewToken("LexInt", groves.Print)
	lexString = groves.NewToken("LexString", groves.Print)
	lexOther  = groves.NewToken("LexOther", groves.Print)
)

func classify(tok rune, lexeme string) groves.Token {
	switch tok {
	case scanner.Ident:
		return lexIdent
	case scanner.Int:
		return lexInt
	case scanner.String:
		return lexString
	default:
		return lexOther
	}
}

var inputsAndCounts = []struct {
	input string
	count int
}{
	{"1", 1},
	{"1+12", 3},
	{"Hello World", 2},
	{`x="mystring"`, 3},
	{"1,22,333", 5},
}

func TestGoTokenizerCountsItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.lex")
	defer teardown()

	for i, c := range inputsAndCounts {
		name := fmt.Sprintf("input #%d", i)
		tz := GoTokenizer(name, strings.NewReader(c.input), classify)
		count := 0
		for {
			item, err := tz.NextItem()
			if err != nil {
				t.Fatalf("unexpected scan error: %v", err)
			}
			if item.Kind == EOF {
				break
			}
			if item.Loc.Source != name {
				t.Fatalf("expected item location source %q, got %q", name, item.Loc.Source)
			}
			count++
		}
		if count != c.count {
			t.Errorf("input %q: expected %d items, got %d", c.input, c.count, count)
		}
	}
}

func TestUnifyStringsFoldsCharIntoString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.lex")
	defer teardown()

	tz := GoTokenizer("unify", strings.NewReader("'a'"), classify, UnifyStrings(true))
	item, err := tz.NextItem()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Kind != lexString {
		t.Fatalf("expected a single char to unify into LexString, got %s", item.Kind)
	}
}
