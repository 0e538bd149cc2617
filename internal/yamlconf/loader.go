package yamlconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/patternkit/internal/config"
	"github.com/specialistvlad/patternkit/internal/ctxlog"
	"github.com/specialistvlad/patternkit/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions this loader reads.
var Extensions = []string{".yaml", ".yml"}

type document struct {
	Tree  *node   `yaml:"tree"`
	Sorts []*sort `yaml:"sorts"`
}

type node struct {
	Branch   string  `yaml:"branch"`
	Leaf     string  `yaml:"leaf"`
	Label    string  `yaml:"label"`
	Children []*node `yaml:"children"`
}

type sort struct {
	Name      string   `yaml:"name"`
	Algorithm string   `yaml:"algorithm"`
	SwitchTo  string   `yaml:"switch_to"`
	Input     []string `yaml:"input"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every YAML file found under paths and merges them into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.Collect(paths, Extensions...)
	if err != nil {
		return nil, err
	}

	model := config.NewModel()
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		fileModel, err := l.LoadBytes(ctx, src, file)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(fileModel, file); err != nil {
			return nil, err
		}
	}

	logger.Debug("YAML loading complete.", "files", len(files), "has_tree", model.Tree != nil, "sorts", len(model.Sorts))
	return model, nil
}

// LoadBytes decodes a single YAML document. Unknown keys are rejected.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	model := config.NewModel()
	if doc.Tree != nil {
		root, err := translateNode(doc.Tree)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		model.Tree = root
	}
	for i, s := range doc.Sorts {
		if s == nil {
			return nil, fmt.Errorf("%s: sort #%d is empty", filename, i)
		}
		if s.Algorithm == "" {
			return nil, fmt.Errorf("%s: sort #%d (%q) is missing algorithm", filename, i, s.Name)
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("sort%d", i)
		}
		model.Sorts = append(model.Sorts, &config.Sort{
			Name:      name,
			Algorithm: s.Algorithm,
			SwitchTo:  s.SwitchTo,
			Input:     s.Input,
		})
	}

	ctxlog.FromContext(ctx).Debug("Decoded YAML document.", "file", filename, "sorts", len(model.Sorts))
	return model, nil
}

func translateNode(n *node) (*config.Node, error) {
	switch {
	case n.Branch != "" && n.Leaf != "":
		return nil, fmt.Errorf("node declares both branch %q and leaf %q", n.Branch, n.Leaf)
	case n.Leaf != "":
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("leaf %q cannot have children", n.Leaf)
		}
		return &config.Node{Kind: config.LeafKind, Name: n.Leaf, Label: n.Label}, nil
	case n.Branch != "":
		if n.Label != "" {
			return nil, fmt.Errorf("branch %q cannot have a label", n.Branch)
		}
		out := &config.Node{Kind: config.BranchKind, Name: n.Branch}
		for i, child := range n.Children {
			if child == nil {
				return nil, fmt.Errorf("branch %q has an empty child entry at #%d", n.Branch, i)
			}
			c, err := translateNode(child)
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, c)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("node must declare either branch or leaf")
	}
}
