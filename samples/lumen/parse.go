package lumen

import (
	"fmt"

	"github.com/arborly/groves"
	"github.com/arborly/groves/lex"
	"github.com/arborly/groves/tree"
)

// builder is a minimal recursive-descent consumer of the lexer's flat Item
// stream, in the same shape as samples/json's builder.
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

// parseProgram consumes statements until the item stream is exhausted. The
// returned Program is not yet bound: declaration binding happens in bindAll,
// after hoistPass has relocated any Decl found inside an if's Then.
func parseProgram(items []lex.Item) *tree.Node {
	b := &builder{items: items}
	loc := groves.NoLocation
	if len(items) > 0 {
		loc = items[0].Loc
	}
	prog := tree.New(Program, loc)
	for {
		if _, ok := b.peek(); !ok {
			break
		}
		prog.PushBack(b.parseStmt())
	}
	return prog
}

func (b *builder) parseStmt() *tree.Node {
	it, ok := b.peek()
	if !ok {
		return errNode(groves.NoLocation, "unexpected end of input, expected a statement", nil)
	}
	switch it.Kind {
	case Decl:
		return b.parseDecl()
	case If:
		return b.parseIf()
	case Print:
		return b.parsePrint()
	default:
		b.next()
		return errNode(it.Loc, fmt.Sprintf("unexpected token %q, expected a statement", it.Text), leaf(it))
	}
}

func (b *builder) parseValue() *tree.Node {
	it, ok := b.peek()
	if !ok {
		return errNode(groves.NoLocation, "unexpected end of input, expected a value", nil)
	}
	switch it.Kind {
	case Number, String, Ref:
		b.next()
		return leaf(it)
	default:
		b.next()
		return errNode(it.Loc, fmt.Sprintf("unexpected token %q, expected a value", it.Text), leaf(it))
	}
}

// parseDecl parses `let name = value`, leaving the declared name unbound;
// see bindAll.
func (b *builder) parseDecl() *tree.Node {
	kw, _ := b.next() // consumes 'let'
	name, ok := b.next()
	if !ok || name.Kind != Ref {
		return errNode(kw.Loc, "expected an identifier after 'let'", nil)
	}
	if eq, ok := b.peek(); !ok || eq.Kind != Equals {
		return errNode(name.Loc, "expected '=' after declared name", nil)
	}
	b.next() // consumes '='
	val := b.parseValue()

	ident := tree.New(Ident, name.Loc)
	ident.Text = name.Text
	decl := tree.New(Decl, kw.Loc)
	decl.PushBack(ident)
	decl.PushBack(val)
	return decl
}

// parseIf parses `if cond then stmt* end`. The Then body is its own scope,
// but any Decl directly inside it is hoisted to Program before resolution.
func (b *builder) parseIf() *tree.Node {
	kw, _ := b.next() // consumes 'if'
	cond, ok := b.next()
	if !ok || cond.Kind != Ref {
		return errNode(kw.Loc, "expected a reference after 'if'", nil)
	}
	if th, ok := b.peek(); !ok || th.Kind != Then {
		return errNode(cond.Loc, "expected 'then' after if's condition", nil)
	}
	b.next() // consumes 'then'

	then := tree.New(Then, kw.Loc)
	for {
		it, ok := b.peek()
		if !ok {
			then.PushBack(errNode(groves.NoLocation, "unexpected end of input, expected 'end'", nil))
			break
		}
		if it.Kind == End {
			b.next()
			break
		}
		then.PushBack(b.parseStmt())
	}

	ifNode := tree.New(If, kw.Loc)
	ifNode.PushBack(leaf(cond))
	ifNode.PushBack(then)
	return ifNode
}

func (b *builder) parsePrint() *tree.Node {
	kw, _ := b.next() // consumes 'print'
	ref, ok := b.next()
	if !ok || ref.Kind != Ref {
		return errNode(kw.Loc, "expected a reference after 'print'", nil)
	}
	printNode := tree.New(Print, kw.Loc)
	printNode.PushBack(leaf(ref))
	return printNode
}
