package tree

// VisitFunc is called once per visited node. Returning false skips the
// node's children.
type VisitFunc func(key Key, n Node, depth int) bool

type frame struct {
	key   Key
	node  Node
	depth int
}

// Walk visits root and its descendants depth-first, in input order.
// It keeps its own stack, so tree depth is not bounded by the call stack.
func Walk(root Node, fn VisitFunc) {
	stack := []frame{{key: RootKey(root), node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(f.key, f.node, f.depth) {
			continue
		}
		// push in reverse so the first child is popped first
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			c := f.node.Children[i]
			stack = append(stack, frame{key: f.key.Child(c.Name), node: c, depth: f.depth + 1})
		}
	}
}
