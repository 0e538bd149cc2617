package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/patternkit/internal/config"
	"github.com/specialistvlad/patternkit/internal/ctxlog"
	"github.com/specialistvlad/patternkit/internal/fsutil"
)

// Extension is the file extension this loader reads.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and merges them into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.Collect(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := config.NewModel()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		fileModel, err := l.translateFile(ctx, hclFile.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
		}
		if err := model.Merge(fileModel, file); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "has_tree", model.Tree != nil, "sorts", len(model.Sorts))
	return model, nil
}

// LoadBytes parses a single in-memory HCL document. filename is only used
// in diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL %s: %w", filename, diags)
	}
	return l.translateFile(ctx, hclFile.Body)
}

// translateFile converts the top-level blocks of one file.
func (l *Loader) translateFile(ctx context.Context, body hcl.Body) (*config.Model, error) {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	model := config.NewModel()
	for _, block := range content.Blocks {
		switch block.Type {
		case sortBlock:
			s, err := l.translateSort(ctx, block)
			if err != nil {
				return nil, err
			}
			model.Sorts = append(model.Sorts, s)
		default:
			node, err := l.translateNode(ctx, block)
			if err != nil {
				return nil, err
			}
			if err := model.SetTree(node, block.DefRange.String()); err != nil {
				return nil, err
			}
		}
	}
	return model, nil
}
