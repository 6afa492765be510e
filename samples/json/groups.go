package json

import (
	"github.com/arborly/groves"
	"github.com/arborly/groves/pass"
	"github.com/arborly/groves/pattern"
	"github.com/arborly/groves/rewrite"
	"github.com/arborly/groves/tree"
)

// oneOf builds a choice pattern matching any single child of one of kinds,
// standing in for the reference engine's T(k1, k2, ...) overload.
func oneOf(kinds ...groves.Token) pattern.Builder {
	b := pattern.T(kinds[0])
	for _, k := range kinds[1:] {
		b = b.Or(pattern.T(k))
	}
	return b
}

// groupsPass builds the "groups" pass: a single bottom-up, once-only sweep
// that collapses the builder's deliberately ungrouped output into a
// canonical JSON tree. Grounded on the reference engine's json.cc groups()
// PassDef, translated rule by rule into package pattern/rewrite/pass.
func groupsPass() *pass.Pass {
	// (T(Group) << (Any[x] * End)) >> x
	// A Group wrapping exactly one child is redundant; replace it with
	// that child directly.
	unwrapGroup := rewrite.New(
		pattern.T(Group).Children(pattern.Any().Capture("x").Then(pattern.End())),
		func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
			return m.Get("x")[0]
		},
	)

	// In(Top) * (T(File) << (ValueToken[Value] * End)) >> Value
	// A File wrapping a single reduced value collapses into that value.
	unwrapFile := rewrite.New(
		pattern.In(groves.Top).Then(
			pattern.T(File).Children(oneOf(value...).Capture("Value").Then(pattern.End())),
		),
		func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
			return m.Get("Value")[0]
		},
	)

	// In(Array) * (T(Comma) << ((T(Group) << End) * ValueToken++[Value] * End))
	//   >> Seq(Value...)
	// The builder leaves an array's Comma in the shape [empty leading Group,
	// value, value, ...]; splice the values directly into Array, discarding
	// Comma and the leading marker.
	collapseArray := rewrite.New(
		pattern.In(Array).Then(
			pattern.T(Comma).Children(
				pattern.T(Group).Children(pattern.End()).
					Then(oneOf(value...).Rep().Capture("Value")).
					Then(pattern.End()),
			),
		),
		func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
			return tree.NewWithChildren(groves.Seq, m.Get("Value")...)
		},
	)

	// In(Object) * (T(Comma) << ((T(Group) << End) * T(Member)++[Member] * End))
	//   >> Seq(Member...)
	// Symmetric with collapseArray: Object's members splice in directly.
	collapseObject := rewrite.New(
		pattern.In(Object).Then(
			pattern.T(Comma).Children(
				pattern.T(Group).Children(pattern.End()).
					Then(pattern.T(Member).Rep().Capture("Member")).
					Then(pattern.End()),
			),
		),
		func(consumed []*tree.Node, m *pattern.Match) *tree.Node {
			return tree.NewWithChildren(groves.Seq, m.Get("Member")...)
		},
	)

	return pass.New(
		"groups",
		rewrite.Set{unwrapGroup, unwrapFile, collapseArray, collapseObject},
		pass.WithDirection(pass.Bottomup|pass.Once),
	)
}
