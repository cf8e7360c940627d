package color

import "fmt"

// Node represents a palette entry that can be both a color and a namespace.
// Color is nil for namespace-only nodes (groups without a color attribute).
// Children is nil for leaf nodes (flat color attributes).
type Node struct {
	Color    *Color
	Children map[string]*Node
}

// Lookup resolves path segments to a Color. The target may be a leaf or a
// group carrying its own color; anything else is an error.
func (n *Node) Lookup(path []string) (Color, error) {
	current := n
	for _, part := range path {
		if current.Children == nil {
			return Color{}, fmt.Errorf("cannot descend into %q: it is a single color", part)
		}
		child, ok := current.Children[part]
		if !ok {
			return Color{}, fmt.Errorf("no palette entry named %q", part)
		}
		current = child
	}
	if current.Color == nil {
		return Color{}, fmt.Errorf("entry is a group without a color of its own")
	}
	return *current.Color, nil
}

// Walk visits every colored node depth-first, calling fn with the dot-path
// segments leading to the node and its color.
func (n *Node) Walk(fn func(path []string, c Color)) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn func(path []string, c Color)) {
	if n.Color != nil {
		fn(path, *n.Color)
	}
	for name, child := range n.Children {
		child.walk(append(path[:len(path):len(path)], name), fn)
	}
}
