package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/patternkit/internal/config"
	"github.com/specialistvlad/patternkit/internal/ctxlog"
	"github.com/specialistvlad/patternkit/internal/hcl"
	"github.com/specialistvlad/patternkit/internal/registry"
	"github.com/specialistvlad/patternkit/internal/yamlconf"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	model    *config.Model
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. It loads every configured path with both the HCL and
// YAML loaders and checks that the initial algorithm, and every algorithm a
// configured sort names, is registered.
//
// When no modules are given the core modules are registered. Registering
// the same algorithm twice panics.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	if err != nil {
		return nil, err
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules), "algorithms", reg.Names())

	if !reg.Has(cfg.Algorithm) {
		return nil, fmt.Errorf("unknown algorithm %q: %w", cfg.Algorithm, registry.ErrAlgorithmNotFound)
	}

	model, err := load(ctx, cfg.ConfigPaths, hcl.NewLoader(), yamlconf.NewLoader())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded.", "has_tree", model.Tree != nil, "sorts", len(model.Sorts))

	if err := reg.ValidateModel(ctx, model); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		model:    model,
	}, nil
}

// load runs every loader over paths and merges their models.
func load(ctx context.Context, paths []string, loaders ...config.Loader) (*config.Model, error) {
	model := config.NewModel()
	if len(paths) == 0 {
		ctxlog.FromContext(ctx).Debug("No configuration paths given, using built-in scenario.")
		return model, nil
	}

	for _, loader := range loaders {
		m, err := loader.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(m, fmt.Sprintf("%T", loader)); err != nil {
			return nil, err
		}
	}
	return model, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
