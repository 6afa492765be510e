package tree

import (
	"testing"

	"github.com/arborly/groves"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var (
	testTop   = groves.NewToken("TestTop", groves.Symtab)
	testBlock = groves.NewToken("TestBlock", groves.Symtab)
	testGroup = groves.NewToken("TestGroup", 0)
	testLeafA = groves.NewToken("TestLeafA", groves.Print)
	testLeafB = groves.NewToken("TestLeafB", groves.Print)
)

func TestPushBackReparents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.tree")
	defer teardown()

	root := New(testTop, groves.NoLocation)
	leaf := New(testLeafA, groves.Location{Source: "t", Start: 0, Length: 1})
	root.PushBack(leaf)
	if leaf.Parent() != root {
		t.Fatalf("expected leaf's parent to be root, got %v", leaf.Parent())
	}
	if root.Len() != 1 || root.At(0) != leaf {
		t.Fatalf("expected root to have leaf as only child")
	}
}

func TestEraseUnparents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.tree")
	defer teardown()

	root := New(testTop, groves.NoLocation)
	a := New(testLeafA, groves.NoLocation)
	b := New(testLeafB, groves.NoLocation)
	root.PushBack(a)
	root.PushBack(b)
	removed := root.Erase(0, 1)
	if len(removed) != 1 || removed[0] != a {
		t.Fatalf("expected to erase a, got %v", removed)
	}
	if a.Parent() != nil {
		t.Fatalf("expected erased node's parent to be cleared")
	}
	if root.Len() != 1 || root.At(0) != b {
		t.Fatalf("expected root to have only b left")
	}
}

func TestMarkerPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.tree")
	defer teardown()

	root := New(testTop, groves.NoLocation)
	block := New(testBlock, groves.NoLocation)
	root.PushBack(block)
	errNode := New(groves.Error, groves.NoLocation)
	block.PushBack(errNode)
	if !root.ContainsError() || !block.ContainsError() {
		t.Fatalf("expected containsError to propagate to root and block")
	}
}

func TestWalkIsIterativeAndOrdered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.tree")
	defer teardown()

	root := New(testTop, groves.NoLocation)
	a := New(testLeafA, groves.NoLocation)
	b := New(testLeafB, groves.NoLocation)
	root.PushBack(a)
	root.PushBack(b)

	var visited []groves.Token
	Walk(root, func(n *Node) bool {
		visited = append(visited, n.Kind)
		return true
	}, nil)
	want := []groves.Token{testTop, testLeafA, testLeafB}
	if len(visited) != len(want) {
		t.Fatalf("expected %d visits, got %d", len(want), len(visited))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visit order mismatch at %d: got %v want %v", i, visited[i], want[i])
		}
	}
}

func TestPrecedesAndCommonParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.tree")
	defer teardown()

	root := New(testTop, groves.NoLocation)
	a := New(testLeafA, groves.NoLocation)
	b := New(testLeafB, groves.NoLocation)
	root.PushBack(a)
	root.PushBack(b)

	if !Precedes(a, b) {
		t.Fatalf("expected a to precede b")
	}
	if Precedes(b, a) {
		t.Fatalf("expected b to not precede a")
	}
	if CommonParent(a, b) != root {
		t.Fatalf("expected common parent to be root")
	}
	if CommonParent(root, a) != root {
		t.Fatalf("expected common parent of ancestor/descendant to be the ancestor")
	}
}

func TestEqualsRespectsPrintFlag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.tree")
	defer teardown()

	loc1 := groves.Location{Source: "f", Start: 0, Length: 3}
	loc2 := groves.Location{Source: "f", Start: 10, Length: 3}

	a := New(testLeafA, loc1)
	b := New(testLeafA, loc2)
	if Equals(a, b) {
		t.Fatalf("expected nodes with different print-flagged locations to differ")
	}

	nonPrint := groves.NewToken("TestNonPrint", 0)
	c := New(nonPrint, loc1)
	d := New(nonPrint, loc2)
	if !Equals(c, d) {
		t.Fatalf("expected nodes without the Print flag to ignore location differences")
	}
}

func TestCloneDropsSymtab(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.tree")
	defer teardown()

	root := New(testTop, groves.NoLocation)
	leaf := New(testLeafA, groves.NoLocation)
	root.PushBack(leaf)
	if _, err := leaf.Bind("x"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	clone := Clone(root)
	if clone.Symtab() != nil {
		t.Fatalf("expected clone to not carry a symbol table")
	}
	if !Equals(root, clone) {
		t.Fatalf("expected clone to be structurally equal to original")
	}
}

func TestGetErrorsOutermostOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.tree")
	defer teardown()

	root := New(testTop, groves.NoLocation)
	outer := New(groves.Error, groves.NoLocation)
	inner := New(groves.Error, groves.NoLocation)
	outer.PushBack(inner)
	root.PushBack(outer)

	errs := GetErrors(root)
	if len(errs) != 1 || errs[0] != outer {
		t.Fatalf("expected exactly the outer error, got %v", errs)
	}
}

func TestDisposeClearsLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.tree")
	defer teardown()

	root := New(testTop, groves.NoLocation)
	leaf := New(testLeafA, groves.NoLocation)
	root.PushBack(leaf)
	Dispose(root)
	if leaf.Parent() != nil {
		t.Fatalf("expected leaf's parent to be cleared after dispose")
	}
	if root.Len() != 0 {
		t.Fatalf("expected root to have no children after dispose")
	}
}
