package composite

// WalkFunc is called for every visited component with its depth, where the
// starting component has depth 0. Returning false stops descending into that
// component's children.
type WalkFunc func(c Component, depth int) bool

// Walk visits root and its descendants in pre-order.
func Walk(root Component, fn WalkFunc) {
	walk(root, 0, fn)
}

func walk(c Component, depth int, fn WalkFunc) {
	if c == nil || !fn(c, depth) {
		return
	}
	b, ok := c.(*Branch)
	if !ok {
		return
	}
	for _, child := range b.children {
		walk(child, depth+1, fn)
	}
}

// Count returns the number of leaves and branches under root, root included.
func Count(root Component) (leaves, branches int) {
	Walk(root, func(c Component, _ int) bool {
		if c.IsComposite() {
			branches++
		} else {
			leaves++
		}
		return true
	})
	return leaves, branches
}
