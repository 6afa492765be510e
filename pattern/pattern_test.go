package pattern

import (
	"testing"

	"github.com/arborly/groves"
	"github.com/arborly/groves/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var (
	patGroup = groves.NewToken("PatGroup", 0)
	patA     = groves.NewToken("PatA", groves.Print)
	patB     = groves.NewToken("PatB", groves.Print)
)

func children(parent *tree.Node, kinds ...groves.Token) *tree.Node {
	for _, k := range kinds {
		parent.PushBack(tree.New(k, groves.NoLocation))
	}
	return parent
}

func TestThenSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pattern")
	defer teardown()

	parent := children(tree.New(patGroup, groves.NoLocation), patA, patB)
	cur := NewCursor(parent)
	m := NewMatch()
	p := T(patA).Then(T(patB))
	if !p.Match(cur, m) {
		t.Fatalf("expected A then B to match")
	}
	if !cur.AtEnd() {
		t.Fatalf("expected cursor to be fully consumed")
	}
}

func TestThenRestoresOnFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pattern")
	defer teardown()

	parent := children(tree.New(patGroup, groves.NoLocation), patA, patA)
	cur := NewCursor(parent)
	m := NewMatch()
	p := T(patA).Then(T(patB))
	if p.Match(cur, m) {
		t.Fatalf("expected match to fail")
	}
	if cur.It != 0 {
		t.Fatalf("expected cursor to be restored to 0, got %d", cur.It)
	}
}

func TestOrTriesSecondOnFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pattern")
	defer teardown()

	parent := children(tree.New(patGroup, groves.NoLocation), patB)
	cur := NewCursor(parent)
	m := NewMatch()
	p := T(patA).Or(T(patB))
	if !p.Match(cur, m) {
		t.Fatalf("expected B alternative to match")
	}
}

func TestRepGreedy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pattern")
	defer teardown()

	parent := children(tree.New(patGroup, groves.NoLocation), patA, patA, patA, patB)
	cur := NewCursor(parent)
	m := NewMatch()
	p := T(patA).Rep().Then(T(patB))
	if !p.Match(cur, m) {
		t.Fatalf("expected repeated A followed by B to match")
	}
	if !cur.AtEnd() {
		t.Fatalf("expected full consumption")
	}
}

func TestCaptureRecordsRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pattern")
	defer teardown()

	parent := children(tree.New(patGroup, groves.NoLocation), patA, patA, patB)
	cur := NewCursor(parent)
	m := NewMatch()
	p := T(patA).Rep().Capture("as").Then(T(patB))
	if !p.Match(cur, m) {
		t.Fatalf("expected match")
	}
	as := m.Get("as")
	if len(as) != 2 {
		t.Fatalf("expected 2 captured A nodes, got %d", len(as))
	}
}

func TestInUnderRepChecksAnyAncestor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pattern")
	defer teardown()

	outer := groves.NewToken("PatOuter", 0)
	root := tree.New(outer, groves.NoLocation)
	mid := tree.New(patGroup, groves.NoLocation)
	root.PushBack(mid)
	leaf := tree.New(patA, groves.NoLocation)
	mid.PushBack(leaf)

	cur := NewCursor(mid)
	m := NewMatch()
	// In(outer) checking the immediate parent (mid, which is patGroup) fails...
	if In(outer).Match(cur, m) {
		t.Fatalf("expected plain In to fail: immediate parent is not outer")
	}
	// ...but under Rep it walks ancestors and finds outer.
	cur2 := NewCursor(mid)
	if !In(outer).Rep().Match(cur2, m) {
		t.Fatalf("expected In under Rep to find ancestor outer")
	}
}

func TestPredDoesNotConsume(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pattern")
	defer teardown()

	parent := children(tree.New(patGroup, groves.NoLocation), patA)
	cur := NewCursor(parent)
	m := NewMatch()
	if !T(patA).Pred().Match(cur, m) {
		t.Fatalf("expected lookahead to succeed")
	}
	if cur.It != 0 {
		t.Fatalf("expected lookahead to not consume, it=%d", cur.It)
	}
}

func TestChildrenDescends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pattern")
	defer teardown()

	parent := tree.New(patGroup, groves.NoLocation)
	inner := children(tree.New(patGroup, groves.NoLocation), patA, patB)
	parent.PushBack(inner)

	cur := NewCursor(parent)
	m := NewMatch()
	p := T(patGroup).Children(T(patA).Then(T(patB)).Then(End()))
	if !p.Match(cur, m) {
		t.Fatalf("expected Children descend to match inner A B")
	}
}
