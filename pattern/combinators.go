package pattern

import (
	"regexp"

	"github.com/arborly/groves"
	"github.com/arborly/groves/tree"
	"golang.org/x/exp/slices"
)

// Pattern is the single-method capability every combinator implements: try
// to match at the cursor, publishing captures into m on success and
// restoring the cursor on failure. This is the Go-idiomatic stand-in for
// the reference engine's PatternDef class hierarchy.
type Pattern interface {
	Match(cur *Cursor, m *Match) bool
}

// repSpecial is implemented by patterns whose meaning changes when they are
// the direct operand of Rep (the reference engine's custom_rep dispatch).
// Only In uses this, switching from "immediate parent" to "any ancestor".
type repSpecial interface {
	matchUnderRep(cur *Cursor, m *Match) bool
}

// Builder wraps a Pattern and exposes the chained composition methods that
// stand in for the reference engine's operator overloads.
type Builder struct {
	pat Pattern
}

func wrap(p Pattern) Builder { return Builder{pat: p} }

// Match implements Pattern, so a Builder can be used wherever a Pattern is expected.
func (b Builder) Match(cur *Cursor, m *Match) bool {
	if b.pat == nil {
		return false
	}
	return b.pat.Match(cur, m)
}

// --- primitives --------------------------------------------------------

type anyPat struct{}

func (anyPat) Match(cur *Cursor, m *Match) bool {
	if cur.AtEnd() {
		return false
	}
	cur.It++
	return true
}

// Any matches a single arbitrary child.
func Any() Builder { return wrap(anyPat{}) }

type tokenPat struct{ kind groves.Token }

func (t tokenPat) Match(cur *Cursor, m *Match) bool {
	n := cur.Peek()
	if n == nil || n.Kind != t.kind {
		return false
	}
	cur.It++
	return true
}

// T matches a single child of the given kind.
func T(kind groves.Token) Builder { return wrap(tokenPat{kind: kind}) }

type tokenRegexPat struct {
	kind groves.Token
	re   *regexp.Regexp
}

func (t tokenRegexPat) Match(cur *Cursor, m *Match) bool {
	n := cur.Peek()
	if n == nil || n.Kind != t.kind {
		return false
	}
	loc := t.re.FindStringIndex(n.Text)
	if loc == nil || loc[0] != 0 || loc[1] != len(n.Text) {
		tracer().Debugf("regex match of %s against %q failed", t.kind, n.Text)
		return false
	}
	cur.It++
	return true
}

// TRe matches a single child of the given kind whose location view (Text)
// fully matches re.
func TRe(kind groves.Token, re *regexp.Regexp) Builder {
	return wrap(tokenRegexPat{kind: kind, re: re})
}

type startPat struct{}

func (startPat) Match(cur *Cursor, m *Match) bool { return cur.It == 0 }

// Start succeeds (zero-width) iff the cursor sits at the parent's first child.
func Start() Builder { return wrap(startPat{}) }

type endPat struct{}

func (endPat) Match(cur *Cursor, m *Match) bool { return cur.AtEnd() }

// End succeeds (zero-width) iff the cursor sits at the parent's end.
func End() Builder { return wrap(endPat{}) }

type inPat struct{ kinds []groves.Token }

func (p inPat) Match(cur *Cursor, m *Match) bool {
	if cur.Parent == nil {
		return false
	}
	return slices.Contains(p.kinds, cur.Parent.Kind)
}

func (p inPat) matchUnderRep(cur *Cursor, m *Match) bool {
	for anc := cur.Parent; anc != nil; anc = anc.Parent() {
		if slices.Contains(p.kinds, anc.Kind) {
			return true
		}
	}
	return false
}

// In succeeds (zero-width) iff the cursor's parent has one of the given
// kinds. As the direct operand of Rep, it instead succeeds iff the cursor's
// parent or any of its ancestors has one of the given kinds.
func In(kinds ...groves.Token) Builder { return wrap(inPat{kinds: kinds}) }

// --- compositors ---------------------------------------------------------

type seqPat struct{ a, b Pattern }

func (s seqPat) Match(cur *Cursor, m *Match) bool {
	save := cur.save()
	scratch := NewMatch()
	if !s.a.Match(cur, scratch) {
		cur.restore(save)
		return false
	}
	if !s.b.Match(cur, scratch) {
		cur.restore(save)
		return false
	}
	m.Merge(scratch)
	return true
}

// Then sequences b after a. On failure of either, the cursor is restored
// to where it was before a was attempted and no captures are committed.
func (b Builder) Then(other Builder) Builder { return wrap(seqPat{a: b.pat, b: other.pat}) }

type choicePat struct{ a, b Pattern }

func (c choicePat) Match(cur *Cursor, m *Match) bool {
	save := cur.save()
	scratch := NewMatch()
	if c.a.Match(cur, scratch) {
		m.Merge(scratch)
		return true
	}
	cur.restore(save)
	scratch = NewMatch()
	if c.b.Match(cur, scratch) {
		m.Merge(scratch)
		return true
	}
	cur.restore(save)
	return false
}

// Or tries b only if a fails; the first success's captures are committed.
func (b Builder) Or(other Builder) Builder { return wrap(choicePat{a: b.pat, b: other.pat}) }

type optPat struct{ p Pattern }

func (o optPat) Match(cur *Cursor, m *Match) bool {
	save := cur.save()
	scratch := NewMatch()
	if o.p.Match(cur, scratch) {
		m.Merge(scratch)
		return true
	}
	cur.restore(save)
	return true
}

// Opt matches b or nothing, and always succeeds.
func (b Builder) Opt() Builder { return wrap(optPat{p: b.pat}) }

type repPat struct{ p Pattern }

func (r repPat) Match(cur *Cursor, m *Match) bool {
	if special, ok := r.p.(repSpecial); ok {
		return special.matchUnderRep(cur, m)
	}
	for {
		save := cur.save()
		scratch := NewMatch()
		if !r.p.Match(cur, scratch) {
			cur.restore(save)
			break
		}
		m.Merge(scratch)
		if cur.It == save.It {
			// a zero-width match would loop forever; one success is enough
			break
		}
	}
	return true
}

// Rep greedily matches b zero or more times and always succeeds. If b
// declares custom repetition semantics (currently only In), Rep delegates
// a single invocation to it instead of looping.
func (b Builder) Rep() Builder { return wrap(repPat{p: b.pat}) }

type notPat struct{ p Pattern }

func (n notPat) Match(cur *Cursor, m *Match) bool {
	save := cur.save()
	scratch := NewMatch()
	matched := n.p.Match(cur, scratch)
	cur.restore(save)
	if matched {
		return false
	}
	if cur.AtEnd() {
		return false
	}
	cur.It++
	return true
}

// Not succeeds by consuming exactly one child, but only if b does not
// match at the cursor (a consuming not-followed-by).
func (b Builder) Not() Builder { return wrap(notPat{p: b.pat}) }

type predPat struct {
	p   Pattern
	neg bool
}

func (p predPat) Match(cur *Cursor, m *Match) bool {
	save := cur.save()
	scratch := NewMatch()
	matched := p.p.Match(cur, scratch)
	cur.restore(save)
	if p.neg {
		return !matched
	}
	return matched
}

// Pred is a zero-width positive lookahead: succeeds iff b matches, but
// never consumes input or commits captures.
func (b Builder) Pred() Builder { return wrap(predPat{p: b.pat, neg: false}) }

// NegPred is a zero-width negative lookahead: succeeds iff b does not match.
func (b Builder) NegPred() Builder { return wrap(predPat{p: b.pat, neg: true}) }

type capturePat struct {
	p    Pattern
	name string
}

func (c capturePat) Match(cur *Cursor, m *Match) bool {
	save := cur.save()
	scratch := NewMatch()
	if !c.p.Match(cur, scratch) {
		cur.restore(save)
		return false
	}
	nodes := append([]*tree.Node{}, cur.Parent.Children()[save.It:cur.It]...)
	scratch.capture(c.name, nodes)
	tracer().Debugf("capture %q: %d node(s)", c.name, len(nodes))
	m.Merge(scratch)
	return true
}

// Capture records the range b consumes under name.
func (b Builder) Capture(name string) Builder { return wrap(capturePat{p: b.pat, name: name}) }

type childrenPat struct{ a, b Pattern }

func (c childrenPat) Match(cur *Cursor, m *Match) bool {
	save := cur.save()
	scratch := NewMatch()
	if !c.a.Match(cur, scratch) {
		cur.restore(save)
		return false
	}
	if cur.It == save.It {
		cur.restore(save)
		return false
	}
	firstChild := cur.Parent.At(save.It)
	subCur := NewCursor(firstChild)
	if !c.b.Match(subCur, scratch) {
		tracer().Debugf("descend into %s: children pattern failed", firstChild.Kind)
		cur.restore(save)
		return false
	}
	m.Merge(scratch)
	return true
}

// Children matches a at the current level, then matches sub against the
// children of the first node a consumed. Both must succeed.
func (b Builder) Children(sub Builder) Builder { return wrap(childrenPat{a: b.pat, b: sub.pat}) }

type actionPat struct {
	p  Pattern
	fn func([]*tree.Node) bool
}

func (a actionPat) Match(cur *Cursor, m *Match) bool {
	save := cur.save()
	scratch := NewMatch()
	if !a.p.Match(cur, scratch) {
		cur.restore(save)
		return false
	}
	consumed := append([]*tree.Node{}, cur.Parent.Children()[save.It:cur.It]...)
	if a.fn != nil && !a.fn(consumed) {
		tracer().Debugf("action predicate rejected match of %d node(s)", len(consumed))
		cur.restore(save)
		return false
	}
	m.Merge(scratch)
	return true
}

// Action runs fn over the range b consumes; if fn returns false the whole
// match fails and the cursor is restored.
func (b Builder) Action(fn func(consumed []*tree.Node) bool) Builder {
	return wrap(actionPat{p: b.pat, fn: fn})
}
