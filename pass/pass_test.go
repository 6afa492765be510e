package pass

import (
	"testing"

	"github.com/arborly/groves"
	"github.com/arborly/groves/pattern"
	"github.com/arborly/groves/rewrite"
	"github.com/arborly/groves/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var (
	pTop   = groves.NewToken("PTop", groves.Symtab)
	pFile  = groves.NewToken("PFile", 0)
	pBlock = groves.NewToken("PBlock", 0)
	pGroup = groves.NewToken("PGroup", 0)
	pA     = groves.NewToken("PA", 0)
	pB     = groves.NewToken("PB", 0)
	pC     = groves.NewToken("PC", 0)
	pD     = groves.NewToken("PD", 0)
	pE     = groves.NewToken("PE", 0)
	pF     = groves.NewToken("PF", 0)
)

// liftRule matches any child A whose immediate parent is a Group, and
// replaces it with a Lift node targeting Block, carrying a single C.
func liftRule() rewrite.Rule {
	return rewrite.New(
		pattern.In(pGroup).Then(pattern.T(pA)),
		func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
			lift := tree.New(groves.Lift, groves.NoLocation)
			lift.PushBack(tree.New(pBlock, groves.NoLocation))
			lift.PushBack(tree.New(pC, groves.NoLocation))
			return lift
		},
	)
}

// seqRule matches B D and replaces them with the spliced pair E F.
func seqRule() rewrite.Rule {
	return rewrite.New(
		pattern.T(pB).Then(pattern.T(pD)),
		func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
			seq := tree.NewWithChildren(groves.Seq,
				tree.New(pE, groves.NoLocation),
				tree.New(pF, groves.NoLocation))
			return seq
		},
	)
}

func buildTopFileBlockGroup(groupChildren ...*tree.Node) (*tree.Node, *tree.Node) {
	top := tree.New(pTop, groves.NoLocation)
	file := tree.New(pFile, groves.NoLocation)
	block := tree.New(pBlock, groves.NoLocation)
	group := tree.New(pGroup, groves.NoLocation)
	for _, ch := range groupChildren {
		group.PushBack(ch)
	}
	block.PushBack(group)
	file.PushBack(block)
	top.PushBack(file)
	return top, group
}

func TestLiftResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pass")
	defer teardown()

	top, group := buildTopFileBlockGroup(
		tree.New(pA, groves.NoLocation),
		tree.New(pA, groves.NoLocation),
	)
	_ = group

	rules := rewrite.Set{liftRule(), seqRule()}
	p := New("lift-demo", rules, WithDirection(Bottomup))

	if _, err := p.Run(top); err != nil {
		t.Fatalf("pass run failed: %v", err)
	}

	want, _ := buildTopFileBlockGroup()
	block := want.At(0).At(0)
	block.Insert(0, tree.New(pC, groves.NoLocation), tree.New(pC, groves.NoLocation))

	if !tree.Equals(top, want) {
		t.Fatalf("got %s\nwant %s", tree.Format(top), tree.Format(want))
	}
}

func TestUnresolvedLiftIsFatal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pass")
	defer teardown()

	top, _ := buildTopFileBlockGroup(tree.New(pA, groves.NoLocation))
	noSuchTarget := groves.NewToken("PNoSuchAncestor", 0)
	rules := rewrite.Set{
		rewrite.New(pattern.In(pGroup).Then(pattern.T(pA)), func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
			lift := tree.New(groves.Lift, groves.NoLocation)
			lift.PushBack(tree.New(noSuchTarget, groves.NoLocation))
			lift.PushBack(tree.New(pC, groves.NoLocation))
			return lift
		}),
	}
	p := New("unresolved-lift", rules, WithDirection(Bottomup))
	if _, err := p.Run(top); err == nil {
		t.Fatalf("expected an error for a lift with no matching ancestor")
	}
}

func TestSeqSplice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pass")
	defer teardown()

	top, _ := buildTopFileBlockGroup(
		tree.New(pB, groves.NoLocation),
		tree.New(pD, groves.NoLocation),
	)
	rules := rewrite.Set{seqRule()}
	p := New("seq-demo", rules, WithDirection(Bottomup))
	if _, err := p.Run(top); err != nil {
		t.Fatalf("pass run failed: %v", err)
	}

	want, _ := buildTopFileBlockGroup(
		tree.New(pE, groves.NoLocation),
		tree.New(pF, groves.NoLocation),
	)
	if !tree.Equals(top, want) {
		t.Fatalf("got %s\nwant %s", tree.Format(top), tree.Format(want))
	}
}

func TestOnceModeRunsSingleSweep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.pass")
	defer teardown()

	// A rule that keeps rewriting A -> A would never reach a fixed point;
	// Once mode must still terminate after a single sweep.
	top, _ := buildTopFileBlockGroup(tree.New(pA, groves.NoLocation))
	loops := 0
	rules := rewrite.Set{
		rewrite.New(pattern.T(pA), func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
			loops++
			return tree.New(pA, groves.NoLocation)
		}),
	}
	p := New("once-demo", rules, WithDirection(Once|Topdown|Bottomup))
	changes, err := p.Run(top)
	if err != nil {
		t.Fatalf("pass run failed: %v", err)
	}
	if changes != 1 {
		t.Fatalf("expected exactly one firing in once mode, got %d (loops=%d)", changes, loops)
	}
}
