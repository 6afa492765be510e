package json

import (
	"testing"

	"github.com/arborly/groves/tree"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustParse(t *testing.T, input string) (*tree.Node, []*tree.Node) {
	t.Helper()
	root, errs, err := Parse(t.Name(), input)
	if err != nil {
		t.Fatalf("Parse returned fatal error: %v", err)
	}
	return root, errs
}

func TestParseScalarValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.samples.json")
	defer teardown()

	root, errs := mustParse(t, `42`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if root.At(0).Kind != Number {
		t.Fatalf("expected a bare Number under Top, got %s", root.At(0).Kind)
	}
}

func TestParseEmptyObjectAndArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.samples.json")
	defer teardown()

	root, errs := mustParse(t, `{}`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if root.At(0).Kind != Object || len(root.At(0).Children()) != 0 {
		t.Fatalf("expected an empty Object, got %s with %d children", root.At(0).Kind, len(root.At(0).Children()))
	}

	root, errs = mustParse(t, `[]`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if root.At(0).Kind != Array || len(root.At(0).Children()) != 0 {
		t.Fatalf("expected an empty Array, got %s with %d children", root.At(0).Kind, len(root.At(0).Children()))
	}
}

func TestParseNestedObjectAndArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.samples.json")
	defer teardown()

	input := `{"a": [1, 2, {"b": true}], "c": null}`
	root, errs := mustParse(t, input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if root.At(0).Kind != Object {
		t.Fatalf("expected Object at top, got %s", root.At(0).Kind)
	}
	members := root.At(0).Children()
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	firstVal := members[0].Children()[1]
	if firstVal.Kind != Array {
		t.Fatalf("expected first member's value to be an Array, got %s", firstVal.Kind)
	}
	arrElems := firstVal.Children()
	if len(arrElems) != 3 {
		t.Fatalf("expected 3 array elements, got %d", len(arrElems))
	}
	if arrElems[2].Kind != Object {
		t.Fatalf("expected third array element to be an Object, got %s", arrElems[2].Kind)
	}
}

func TestParseMalformedObjectYieldsEmbeddedError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.samples.json")
	defer teardown()

	root, errs := mustParse(t, `{"a": 1 "b": 2}`)
	if len(errs) == 0 {
		t.Fatalf("expected at least one embedded Error node, got none (tree: %s)", tree.Format(root))
	}
}

func TestParseUnexpectedTokenYieldsEmbeddedError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.samples.json")
	defer teardown()

	_, errs := mustParse(t, `@@@`)
	if len(errs) == 0 {
		t.Fatalf("expected an embedded Error node for garbage input")
	}
}

func TestParseIsIdempotentOnRerun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "groves.samples.json")
	defer teardown()

	input := `{"x": [1, 2, 3]}`
	a, _ := mustParse(t, input)
	b, _ := mustParse(t, input)
	if !tree.Equals(a, b) {
		t.Fatalf("two parses of the same input produced different trees")
	}
}
