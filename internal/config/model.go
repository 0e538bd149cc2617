package config

import (
	"errors"
	"fmt"
)

// ErrMultipleTrees is returned when more than one top-level tree is declared.
var ErrMultipleTrees = errors.New("only one top-level tree may be declared")

// NodeKind distinguishes leaves from branches.
type NodeKind string

const (
	LeafKind   NodeKind = "leaf"
	BranchKind NodeKind = "branch"
)

// Model is the unified representation of everything loaded from config files.
type Model struct {
	// Tree is the root of the declared hierarchy, or nil if none was declared.
	Tree  *Node
	Sorts []*Sort
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Node describes one element of the hierarchy.
type Node struct {
	Kind NodeKind
	// Name is the block label; it identifies the node in logs and errors.
	Name string
	// Label overrides the text a leaf returns. Ignored for branches.
	Label    string
	Children []*Node
}

// Sort describes one strategy context to run.
type Sort struct {
	Name      string
	Algorithm string
	// SwitchTo optionally names a second algorithm to run after the first.
	SwitchTo string
	// Input is the fixed sequence to sort; empty means the default input.
	Input []string
}

// SetTree installs root as the model's tree. It fails if a tree is already set.
func (m *Model) SetTree(root *Node, source string) error {
	if m.Tree != nil {
		return fmt.Errorf("%w: %q in %s conflicts with %q", ErrMultipleTrees, root.Name, source, m.Tree.Name)
	}
	m.Tree = root
	return nil
}

// Merge appends other's sorts and adopts its tree.
func (m *Model) Merge(other *Model, source string) error {
	if other.Tree != nil {
		if err := m.SetTree(other.Tree, source); err != nil {
			return err
		}
	}
	m.Sorts = append(m.Sorts, other.Sorts...)
	return nil
}

// Validate checks structural rules that every loader must respect.
func (n *Node) Validate() error {
	switch n.Kind {
	case LeafKind:
		if len(n.Children) > 0 {
			return fmt.Errorf("leaf %q cannot have children", n.Name)
		}
	case BranchKind:
		for _, c := range n.Children {
			if err := c.Validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("node %q has unknown kind %q", n.Name, n.Kind)
	}
	return nil
}
