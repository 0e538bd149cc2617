package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_SetTreeTwiceFails(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.SetTree(&Node{Kind: BranchKind, Name: "a"}, "a.hcl"))

	err := m.SetTree(&Node{Kind: BranchKind, Name: "b"}, "b.hcl")

	assert.ErrorIs(t, err, ErrMultipleTrees)
	assert.Contains(t, err.Error(), "b.hcl")
	assert.Equal(t, "a", m.Tree.Name)
}

func TestModel_Merge(t *testing.T) {
	m := NewModel()
	m.Sorts = []*Sort{{Name: "first"}}
	other := &Model{
		Tree:  &Node{Kind: LeafKind, Name: "only"},
		Sorts: []*Sort{{Name: "second"}},
	}

	require.NoError(t, m.Merge(other, "other.yaml"))

	assert.Equal(t, "only", m.Tree.Name)
	require.Len(t, m.Sorts, 2)
	assert.Equal(t, "second", m.Sorts[1].Name)
}

func TestNode_Validate(t *testing.T) {
	tests := []struct {
		name    string
		node    *Node
		wantErr string
	}{
		{
			name: "valid nested tree",
			node: &Node{Kind: BranchKind, Name: "root", Children: []*Node{
				{Kind: LeafKind, Name: "a"},
				{Kind: BranchKind, Name: "b"},
			}},
		},
		{
			name:    "leaf with children",
			node:    &Node{Kind: LeafKind, Name: "bad", Children: []*Node{{Kind: LeafKind}}},
			wantErr: `leaf "bad" cannot have children`,
		},
		{
			name: "unknown kind deep in tree",
			node: &Node{Kind: BranchKind, Name: "root", Children: []*Node{
				{Kind: "twig", Name: "x"},
			}},
			wantErr: `node "x" has unknown kind "twig"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
