package composite

import (
	"slices"
	"strings"
)

const (
	branchOpen      = "Branch("
	branchClose     = ")"
	branchSeparator = "+"
)

// Branch is a component that owns an ordered sequence of children.
type Branch struct {
	base
	children []Component
}

// NewBranch returns an empty branch.
func NewBranch() *Branch {
	return &Branch{}
}

// Operation runs Operation on every child in insertion order and wraps the
// joined results, e.g. "Branch(Leaf+Leaf)". An empty branch yields "Branch()".
func (b *Branch) Operation() string {
	results := make([]string, 0, len(b.children))
	for _, child := range b.children {
		results = append(results, child.Operation())
	}
	return branchOpen + strings.Join(results, branchSeparator) + branchClose
}

// Add appends child and points its parent at b. A child already held by
// another branch is detached from it first. Nil children are ignored.
func (b *Branch) Add(child Component) {
	if child == nil {
		return
	}
	if prev := child.Parent(); prev != nil {
		_ = prev.Remove(child)
	}
	b.children = append(b.children, child)
	child.setParent(b)
}

// Remove detaches the first occurrence of child and clears its parent.
func (b *Branch) Remove(child Component) error {
	for i, c := range b.children {
		if c != child {
			continue
		}
		b.children = slices.Delete(b.children, i, i+1)
		child.setParent(nil)
		return nil
	}
	return ErrChildNotFound
}

// IsComposite reports true; a branch can hold children.
func (b *Branch) IsComposite() bool {
	return true
}

// Children returns a copy of the ordered children.
func (b *Branch) Children() []Component {
	out := make([]Component, len(b.children))
	copy(out, b.children)
	return out
}

// Len returns the number of direct children.
func (b *Branch) Len() int {
	return len(b.children)
}
