package composite

// DefaultLeafLabel is the label returned by leaves created with NewLeaf.
const DefaultLeafLabel = "Leaf"

// Leaf is a component without children.
type Leaf struct {
	base
	label string
}

// NewLeaf returns a leaf with DefaultLeafLabel.
func NewLeaf() *Leaf {
	return &Leaf{label: DefaultLeafLabel}
}

// NewLabeledLeaf returns a leaf with a custom label. An empty label falls back
// to DefaultLeafLabel.
func NewLabeledLeaf(label string) *Leaf {
	if label == "" {
		label = DefaultLeafLabel
	}
	return &Leaf{label: label}
}

// Operation returns the leaf's label.
func (l *Leaf) Operation() string {
	return l.label
}

// Add does nothing; a leaf has no children.
func (l *Leaf) Add(Component) {}

// Remove always fails since a leaf holds no children.
func (l *Leaf) Remove(Component) error {
	return ErrChildNotFound
}

// IsComposite reports false.
func (l *Leaf) IsComposite() bool {
	return false
}
