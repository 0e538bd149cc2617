package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/patternkit/internal/config"
	"github.com/specialistvlad/patternkit/internal/ctxlog"
)

// translateNode converts a `branch` or `leaf` block, recursing into children.
// Children keep the order in which they appear in the source.
func (l *Loader) translateNode(ctx context.Context, block *hcl.Block) (*config.Node, error) {
	node := &config.Node{Name: block.Labels[0]}

	switch block.Type {
	case leafBlock:
		node.Kind = config.LeafKind
		content, diags := block.Body.Content(leafSchema)
		if diags.HasErrors() {
			return nil, diags
		}
		if attr, ok := content.Attributes[labelAttr]; ok {
			if diags := gohcl.DecodeExpression(attr.Expr, nil, &node.Label); diags.HasErrors() {
				return nil, diags
			}
		}
	case branchBlock:
		node.Kind = config.BranchKind
		content, diags := block.Body.Content(branchSchema)
		if diags.HasErrors() {
			return nil, diags
		}
		for _, child := range content.Blocks {
			c, err := l.translateNode(ctx, child)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, c)
		}
	default:
		return nil, fmt.Errorf("%s: unexpected block type %q", block.DefRange, block.Type)
	}

	ctxlog.FromContext(ctx).Debug("Translated tree block.", "type", block.Type, "name", node.Name, "children", len(node.Children))
	return node, nil
}

// translateSort decodes a `sort` block into the agnostic model.
func (l *Loader) translateSort(ctx context.Context, block *hcl.Block) (*config.Sort, error) {
	var raw Sort
	if diags := gohcl.DecodeBody(block.Body, nil, &raw); diags.HasErrors() {
		return nil, diags
	}

	input, err := NewConverter().StringList(ctx, raw.Input)
	if err != nil {
		return nil, fmt.Errorf("sort %q: invalid input: %w", block.Labels[0], err)
	}

	return &config.Sort{
		Name:      block.Labels[0],
		Algorithm: raw.Algorithm,
		SwitchTo:  raw.SwitchTo,
		Input:     input,
	}, nil
}
