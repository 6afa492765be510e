package lumen

import (
	"fmt"

	"github.com/arborly/groves"
	"github.com/arborly/groves/tree"
)

// Eval runs a resolved program (the tree Parse returns, once it carries no
// embedded errors) and returns one line per print statement executed, in
// execution order. It is a separate concern from the compile-time scoping
// tree.Node's own symbol tables perform via Bind/Lookup: those answer "is
// this name visible here", while Eval needs somewhere to keep the *value* a
// name holds at a given point in execution. Lumen's hoisting flattens every
// scope into Program, so a single frame — a plain name-to-value map — is
// enough; a language with nested runtime scopes would need a stack of
// these, one pushed per call, mirroring the compile-time scope nesting.
func Eval(root *tree.Node) ([]string, error) {
	if root.ContainsError() {
		return nil, fmt.Errorf("groves/samples/lumen: refusing to evaluate a tree with embedded errors")
	}
	program := root
	if root.Kind == groves.Top {
		program = root.At(0)
	}

	frame := make(map[string]string)
	var out []string
	if err := evalBlock(program, frame, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func evalBlock(block *tree.Node, frame map[string]string, out *[]string) error {
	for _, stmt := range block.Children() {
		switch stmt.Kind {
		case Decl:
			name := stmt.At(0).Text
			val, err := evalValue(stmt.At(1), frame)
			if err != nil {
				return err
			}
			frame[name] = val
		case If:
			cond, err := evalValue(stmt.At(0), frame)
			if err != nil {
				return err
			}
			if truthy(cond) {
				if err := evalBlock(stmt.At(1), frame, out); err != nil {
					return err
				}
			}
		case Print:
			val, err := evalValue(stmt.At(0), frame)
			if err != nil {
				return err
			}
			*out = append(*out, val)
		}
	}
	return nil
}

func evalValue(n *tree.Node, frame map[string]string) (string, error) {
	if n.Kind == Ref {
		val, ok := frame[n.Text]
		if !ok {
			return "", fmt.Errorf("groves/samples/lumen: %q has no runtime value (resolved at compile time but never evaluated)", n.Text)
		}
		return val, nil
	}
	return n.Text, nil
}

func truthy(v string) bool {
	return v != "" && v != "0" && v != "false"
}
