package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/patternkit/internal/strategy"
)

// ErrAlgorithmNotFound is returned by Lookup for names nobody registered.
var ErrAlgorithmNotFound = errors.New("algorithm not found")

// Module is the interface that all algorithm modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered algorithm factories for a single application instance.
type Registry struct {
	algorithms map[string]Factory
}

// New creates a registry and registers every given module into it.
func New(modules ...Module) *Registry {
	r := &Registry{
		algorithms: make(map[string]Factory),
	}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Lookup builds a fresh instance of the named algorithm.
func (r *Registry) Lookup(name string) (strategy.Algorithm[string], error) {
	factory, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrAlgorithmNotFound, name, r.Names())
	}
	return factory(), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.algorithms[name]
	return ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
