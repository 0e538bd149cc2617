package hcl

import "github.com/hashicorp/hcl/v2"

const (
	branchBlock = "branch"
	leafBlock   = "leaf"
	sortBlock   = "sort"
	labelAttr   = "label"
)

// rootSchema lists every block allowed at the top level of a file.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: branchBlock, LabelNames: []string{"name"}},
		{Type: leafBlock, LabelNames: []string{"name"}},
		{Type: sortBlock, LabelNames: []string{"name"}},
	},
}

// branchSchema lists what a branch body may contain: nested tree blocks only.
var branchSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: branchBlock, LabelNames: []string{"name"}},
		{Type: leafBlock, LabelNames: []string{"name"}},
	},
}

// leafSchema lists what a leaf body may contain.
var leafSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: labelAttr},
	},
}

// Sort is the gohcl target for a `sort` block body.
type Sort struct {
	Algorithm string         `hcl:"algorithm"`
	SwitchTo  string         `hcl:"switch_to,optional"`
	Input     hcl.Expression `hcl:"input,optional"`
}
