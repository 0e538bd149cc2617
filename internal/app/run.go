package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/patternkit/internal/builder"
	"github.com/specialistvlad/patternkit/internal/composite"
	"github.com/specialistvlad/patternkit/internal/config"
	"github.com/specialistvlad/patternkit/internal/ctxlog"
	"github.com/specialistvlad/patternkit/internal/hcl"
)

// Run assembles the tree and the sort contexts and prints their results.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.PrintConfig {
		_, err := a.outW.Write(hcl.Encode(a.effectiveModel()))
		return err
	}

	m := a.effectiveModel()
	if err := a.runComposite(ctx, m.Tree); err != nil {
		return err
	}
	if err := a.runStrategy(ctx, m.Sorts); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// effectiveModel returns the loaded model with the built-in tree and sort
// filling whatever was not configured.
func (a *App) effectiveModel() *config.Model {
	m := &config.Model{Tree: a.model.Tree, Sorts: a.model.Sorts}
	if m.Tree == nil {
		a.logger.Info("No tree configured, using built-in tree.")
		m.Tree = builder.DefaultTree()
	}
	if len(m.Sorts) == 0 {
		a.logger.Info("No sorts configured, using built-in sort.", "algorithm", a.config.Algorithm)
		m.Sorts = []*config.Sort{builder.DefaultSort(a.config.Algorithm)}
	}
	return m
}

func (a *App) runComposite(ctx context.Context, root *config.Node) error {
	tree, err := builder.BuildTree(ctx, root)
	if err != nil {
		return fmt.Errorf("failed to build tree: %w", err)
	}

	simple := composite.NewLeaf()
	fmt.Fprintln(a.outW, "== composite ==")
	fmt.Fprintf(a.outW, "leaf:   %s\n", simple.Operation())
	fmt.Fprintf(a.outW, "tree:   %s\n", tree.Operation())
	fmt.Fprintf(a.outW, "attach: %s\n", composite.Attach(tree, simple))
	return nil
}

func (a *App) runStrategy(ctx context.Context, sorts []*config.Sort) error {
	runs, err := builder.BuildSorts(ctx, sorts, a.registry)
	if err != nil {
		return fmt.Errorf("failed to prepare sorts: %w", err)
	}

	for _, run := range runs {
		logger := ctxlog.FromContext(ctxlog.With(ctx, "sort", run.Name))

		fmt.Fprintf(a.outW, "\n== strategy: %s ==\n", run.Name)
		a.printRun(run.Context.Algorithm().Name(), run.Context.Run())

		if run.SwitchTo == nil {
			continue
		}
		if err := run.Context.SetAlgorithm(run.SwitchTo); err != nil {
			return fmt.Errorf("sort %q: %w", run.Name, err)
		}
		logger.Debug("Switched algorithm.", "to", run.SwitchTo.Name())
		a.printRun(run.Context.Algorithm().Name(), run.Context.Run())
	}
	return nil
}

func (a *App) printRun(algorithm string, result []string) {
	fmt.Fprintf(a.outW, "%s: %s\n", algorithm, strings.Join(result, ","))
}
