package hcl

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/patternkit/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Encode renders model as canonical HCL that Loader can read back.
func Encode(model *config.Model) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if model.Tree != nil {
		encodeNode(body, model.Tree)
	}
	for _, s := range model.Sorts {
		if len(body.Blocks()) > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock(sortBlock, []string{s.Name})
		sb := block.Body()
		sb.SetAttributeValue("algorithm", cty.StringVal(s.Algorithm))
		if s.SwitchTo != "" {
			sb.SetAttributeValue("switch_to", cty.StringVal(s.SwitchTo))
		}
		if len(s.Input) > 0 {
			vals := make([]cty.Value, 0, len(s.Input))
			for _, v := range s.Input {
				vals = append(vals, cty.StringVal(v))
			}
			sb.SetAttributeValue("input", cty.ListVal(vals))
		}
	}

	return hclwrite.Format(f.Bytes())
}

func encodeNode(body *hclwrite.Body, n *config.Node) {
	switch n.Kind {
	case config.LeafKind:
		block := body.AppendNewBlock(leafBlock, []string{n.Name})
		if n.Label != "" {
			block.Body().SetAttributeValue(labelAttr, cty.StringVal(n.Label))
		}
	case config.BranchKind:
		block := body.AppendNewBlock(branchBlock, []string{n.Name})
		for _, child := range n.Children {
			encodeNode(block.Body(), child)
		}
	}
}
