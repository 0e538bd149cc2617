package registry

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/patternkit/internal/strategy"
)

// Factory builds a new algorithm instance.
type Factory func() strategy.Algorithm[string]

// Register registers a factory under name.
func (r *Registry) Register(name string, factory Factory) {
	if name == "" {
		panic("algorithm name must not be empty")
	}
	if factory == nil {
		panic(fmt.Sprintf("algorithm '%s' registered with nil factory", name))
	}
	if _, exists := r.algorithms[name]; exists {
		panic(fmt.Sprintf("algorithm with name '%s' already registered", name))
	}
	slog.Debug("Registering algorithm.", "name", name)
	r.algorithms[name] = factory
}
