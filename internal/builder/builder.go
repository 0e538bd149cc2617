package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/patternkit/internal/composite"
	"github.com/specialistvlad/patternkit/internal/config"
	"github.com/specialistvlad/patternkit/internal/ctxlog"
	"github.com/specialistvlad/patternkit/internal/registry"
	"github.com/specialistvlad/patternkit/internal/strategy"
	"github.com/specialistvlad/patternkit/modules/sorting"
)

// SortRun is a prepared strategy context, plus the algorithm to switch to
// after the first run, if any.
type SortRun struct {
	Name     string
	Context  *strategy.Context[string]
	SwitchTo strategy.Algorithm[string]
}

// BuildTree validates root and assembles the matching component tree.
func BuildTree(ctx context.Context, root *config.Node) (composite.Component, error) {
	if root == nil {
		return nil, fmt.Errorf("no tree declared")
	}
	if err := root.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tree: %w", err)
	}
	c := buildNode(root)

	leaves, branches := composite.Count(c)
	ctxlog.FromContext(ctx).Debug("Tree assembled.", "root", root.Name, "leaves", leaves, "branches", branches)
	return c, nil
}

func buildNode(n *config.Node) composite.Component {
	if n.Kind == config.LeafKind {
		return composite.NewLabeledLeaf(n.Label)
	}
	b := composite.NewBranch()
	for _, child := range n.Children {
		b.Add(buildNode(child))
	}
	return b
}

// DefaultTree returns the built-in scenario: a root branch holding two
// branches, the first with two leaves and the second with one.
func DefaultTree() *config.Node {
	return &config.Node{
		Kind: config.BranchKind,
		Name: "tree",
		Children: []*config.Node{
			{Kind: config.BranchKind, Name: "branch1", Children: []*config.Node{
				{Kind: config.LeafKind, Name: "leaf1"},
				{Kind: config.LeafKind, Name: "leaf2"},
			}},
			{Kind: config.BranchKind, Name: "branch2", Children: []*config.Node{
				{Kind: config.LeafKind, Name: "leaf3"},
			}},
		},
	}
}

// BuildSorts resolves every sort against reg.
func BuildSorts(ctx context.Context, sorts []*config.Sort, reg *registry.Registry) ([]*SortRun, error) {
	logger := ctxlog.FromContext(ctx)
	runs := make([]*SortRun, 0, len(sorts))

	for _, s := range sorts {
		alg, err := reg.Lookup(s.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("sort %q: %w", s.Name, err)
		}

		input := s.Input
		if len(input) == 0 {
			input = strategy.DefaultInput
		}
		sctx, err := strategy.NewContext(alg, input...)
		if err != nil {
			return nil, fmt.Errorf("sort %q: %w", s.Name, err)
		}

		run := &SortRun{Name: s.Name, Context: sctx}
		if s.SwitchTo != "" {
			next, err := reg.Lookup(s.SwitchTo)
			if err != nil {
				return nil, fmt.Errorf("sort %q switch_to: %w", s.Name, err)
			}
			run.SwitchTo = next
		}

		logger.Debug("Sort prepared.", "name", s.Name, "algorithm", s.Algorithm, "switch_to", s.SwitchTo, "input_len", len(input))
		runs = append(runs, run)
	}
	return runs, nil
}

// DefaultSort returns the built-in strategy scenario: start with initial,
// then switch to the opposite order.
func DefaultSort(initial string) *config.Sort {
	next := sorting.DescendingName
	if initial == sorting.DescendingName {
		next = sorting.AscendingName
	}
	return &config.Sort{
		Name:      "default",
		Algorithm: initial,
		SwitchTo:  next,
	}
}
