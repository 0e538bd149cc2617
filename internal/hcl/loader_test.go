package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/patternkit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeHCL = `
branch "root" {
  branch "left" {
    leaf "a" {}
    leaf "b" { label = "B" }
  }
  leaf "middle" {}
  branch "right" {
    leaf "c" {}
  }
}
`

const sortHCL = `
sort "demo" {
  algorithm = "ascending"
  switch_to = "descending"
  input     = ["c", "a", 3, true]
}

sort "plain" {
  algorithm = "descending"
}
`

func TestLoadBytes_TreeKeepsSourceOrder(t *testing.T) {
	model, err := NewLoader().LoadBytes(context.Background(), []byte(treeHCL), "tree.hcl")
	require.NoError(t, err)
	require.NotNil(t, model.Tree)

	root := model.Tree
	assert.Equal(t, config.BranchKind, root.Kind)
	assert.Equal(t, "root", root.Name)
	require.Len(t, root.Children, 3)

	assert.Equal(t, "left", root.Children[0].Name)
	assert.Equal(t, config.LeafKind, root.Children[1].Kind)
	assert.Equal(t, "middle", root.Children[1].Name)
	assert.Equal(t, "right", root.Children[2].Name)

	left := root.Children[0]
	require.Len(t, left.Children, 2)
	assert.Equal(t, "", left.Children[0].Label)
	assert.Equal(t, "B", left.Children[1].Label)
}

func TestLoadBytes_Sorts(t *testing.T) {
	model, err := NewLoader().LoadBytes(context.Background(), []byte(sortHCL), "sorts.hcl")
	require.NoError(t, err)

	assert.Nil(t, model.Tree)
	require.Len(t, model.Sorts, 2)

	demo := model.Sorts[0]
	assert.Equal(t, "demo", demo.Name)
	assert.Equal(t, "ascending", demo.Algorithm)
	assert.Equal(t, "descending", demo.SwitchTo)
	assert.Equal(t, []string{"c", "a", "3", "true"}, demo.Input)

	plain := model.Sorts[1]
	assert.Equal(t, "descending", plain.Algorithm)
	assert.Empty(t, plain.SwitchTo)
	assert.Nil(t, plain.Input)
}

func TestLoadBytes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "syntax error",
			src:     `branch "root" {`,
			wantErr: "failed to parse HCL",
		},
		{
			name:    "unknown top-level block",
			src:     `twig "x" {}`,
			wantErr: "Unsupported block type",
		},
		{
			name:    "leaf with nested block",
			src:     "leaf \"x\" {\n  leaf \"y\" {}\n}\n",
			wantErr: "Unsupported block type",
		},
		{
			name:    "branch with attribute",
			src:     `branch "x" { label = "nope" }`,
			wantErr: "Unsupported argument",
		},
		{
			name:    "two trees",
			src:     "leaf \"a\" {}\nleaf \"b\" {}\n",
			wantErr: "only one top-level tree",
		},
		{
			name:    "sort missing algorithm",
			src:     `sort "x" {}`,
			wantErr: "Missing required argument",
		},
		{
			name:    "sort input not a list",
			src:     "sort \"x\" {\n  algorithm = \"ascending\"\n  input = { a = 1 }\n}\n",
			wantErr: "invalid input",
		},
		{
			name:    "sort input with variable",
			src:     "sort \"x\" {\n  algorithm = \"ascending\"\n  input = var.items\n}\n",
			wantErr: "Variables not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().LoadBytes(context.Background(), []byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MergesDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_tree.hcl"), []byte(treeHCL), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_sorts.hcl"), []byte(sortHCL), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.yaml"), []byte("tree: {}"), 0644))

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	require.NotNil(t, model.Tree)
	assert.Equal(t, "root", model.Tree.Name)
	assert.Len(t, model.Sorts, 2)
}

func TestLoad_TreeInTwoFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`leaf "a" {}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`leaf "b" {}`), 0644))

	_, err := NewLoader().Load(context.Background(), dir)

	assert.ErrorIs(t, err, config.ErrMultipleTrees)
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
