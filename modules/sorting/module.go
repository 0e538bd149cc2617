package sorting

import (
	"github.com/specialistvlad/patternkit/internal/registry"
	"github.com/specialistvlad/patternkit/internal/strategy"
)

const (
	// AscendingName selects the normal sort order.
	AscendingName = "ascending"
	// DescendingName selects the reverse sort order.
	DescendingName = "descending"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers both sort orders with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(AscendingName, func() strategy.Algorithm[string] {
		return strategy.Ascending[string]{}
	})
	r.Register(DescendingName, func() strategy.Algorithm[string] {
		return strategy.Descending[string]{}
	})
}
