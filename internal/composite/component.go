package composite

import "errors"

// ErrChildNotFound is returned by Remove when the given child is not held by
// the component.
var ErrChildNotFound = errors.New("child not found")

// Component is a single element of the tree.
type Component interface {
	// Operation returns the textual result of the component's subtree.
	Operation() string
	// Add appends a child. It is a no-op on components that are not composite.
	Add(child Component)
	// Remove detaches the first matching child, or returns ErrChildNotFound.
	Remove(child Component) error
	// IsComposite reports whether the component can hold children.
	IsComposite() bool
	// Parent returns the branch holding this component, or nil.
	Parent() Component

	setParent(parent Component)
}

// base carries the parent back-reference shared by every component.
type base struct {
	parent Component
}

func (b *base) Parent() Component {
	return b.parent
}

func (b *base) setParent(parent Component) {
	b.parent = parent
}

// Attach adds second under first when first can hold children, and returns
// the result of first's subtree. It never needs to know the concrete types.
func Attach(first, second Component) string {
	if first.IsComposite() {
		first.Add(second)
	}
	return first.Operation()
}
