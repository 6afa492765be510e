package json

import (
	"fmt"

	"github.com/arborly/groves"
	"github.com/arborly/groves/lex"
	"github.com/arborly/groves/tree"
)

// builder is a minimal recursive-descent consumer of the lexer's flat Item
// stream. It deliberately leaves its output in the ungrouped shape groups.go
// expects: objects and arrays wrap their contents in a Comma node led by an
// empty marker Group, exactly mirroring the reference engine's incremental
// push/seq parser's end state without reproducing that parser's DSL.
type builder struct {
	items []lex.Item
	pos   int
}

func (b *builder) peek() (lex.Item, bool) {
	if b.pos >= len(b.items) {
		return lex.Item{}, false
	}
	return b.items[b.pos], true
}

func (b *builder) next() (lex.Item, bool) {
	it, ok := b.peek()
	if ok {
		b.pos++
	}
	return it, ok
}

// skipToMatching consumes tokens until it passes the next unmatched closer,
// tracking nested opens of either bracket kind so recovery does not stop at
// a closer that belongs to a nested, still-unclosed structure.
func (b *builder) skipToMatching(closer groves.Token) {
	depth := 0
	for {
		it, ok := b.next()
		if !ok {
			return
		}
		switch it.Kind {
		case lbrace, lbracket:
			depth++
		case rbrace, rbracket:
			if depth == 0 {
				return
			}
			depth--
		}
	}
}

func errNode(loc groves.Location, msg string, offender *tree.Node) *tree.Node {
	e := tree.New(groves.Error, loc)
	m := tree.New(Message, groves.NoLocation)
	m.Text = msg
	e.PushBack(m)
	if offender != nil {
		e.PushBack(offender)
	}
	return e
}

func leaf(it lex.Item) *tree.Node {
	n := tree.New(it.Kind, it.Loc)
	n.Text = it.Text
	return n
}

// parseValue parses any JSON value. Malformed input becomes an Error node
// carrying a diagnostic message rather than aborting the whole parse.
func (b *builder) parseValue() *tree.Node {
	it, ok := b.peek()
	if !ok {
		return errNode(groves.NoLocation, "unexpected end of input, expected a value", nil)
	}
	switch it.Kind {
	case String, Number, True, False, Null:
		b.next()
		return leaf(it)
	case lbrace:
		return b.parseObject()
	case lbracket:
		return b.parseArray()
	default:
		b.next()
		return errNode(it.Loc, fmt.Sprintf("unexpected token %q, expected a value", it.Text), leaf(it))
	}
}

func (b *builder) parseObject() *tree.Node {
	open, _ := b.next() // consumes '{'
	obj := tree.New(Object, open.Loc)
	commaNode := tree.New(Comma, groves.NoLocation)
	commaNode.PushBack(tree.New(Group, groves.NoLocation)) // leading empty marker
	obj.PushBack(commaNode)

	if it, ok := b.peek(); ok && it.Kind == rbrace {
		b.next()
		return obj
	}
	for {
		key, ok := b.peek()
		if !ok || key.Kind != String {
			commaNode.PushBack(errNode(key.Loc, "expected a string member name", nil))
			b.skipToMatching(rbrace)
			break
		}
		b.next()
		keyNode := leaf(key)

		if c, ok := b.peek(); !ok || c.Kind != colon {
			commaNode.PushBack(errNode(key.Loc, "expected ':' after member name", keyNode))
			b.skipToMatching(rbrace)
			break
		}
		b.next() // consumes ':'
		val := b.parseValue()
		commaNode.PushBack(tree.NewWithChildren(Member, keyNode, val))

		n, ok := b.peek()
		if !ok {
			commaNode.PushBack(errNode(groves.NoLocation, "unexpected end of input inside object", nil))
			break
		}
		if n.Kind == comma {
			b.next()
			continue
		}
		if n.Kind == rbrace {
			b.next()
			break
		}
		commaNode.PushBack(errNode(n.Loc, fmt.Sprintf("expected ',' or '}', got %q", n.Text), nil))
		b.skipToMatching(rbrace)
		break
	}
	return obj
}

func (b *builder) parseArray() *tree.Node {
	open, _ := b.next() // consumes '['
	arr := tree.New(Array, open.Loc)
	commaNode := tree.New(Comma, groves.NoLocation)
	commaNode.PushBack(tree.New(Group, groves.NoLocation)) // leading empty marker
	arr.PushBack(commaNode)

	if it, ok := b.peek(); ok && it.Kind == rbracket {
		b.next()
		return arr
	}
	for {
		commaNode.PushBack(b.parseValue())

		n, ok := b.peek()
		if !ok {
			commaNode.PushBack(errNode(groves.NoLocation, "unexpected end of input inside array", nil))
			break
		}
		if n.Kind == comma {
			b.next()
			continue
		}
		if n.Kind == rbracket {
			b.next()
			break
		}
		commaNode.PushBack(errNode(n.Loc, fmt.Sprintf("expected ',' or ']', got %q", n.Text), nil))
		b.skipToMatching(rbracket)
		break
	}
	return arr
}
