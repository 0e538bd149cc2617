package app

import (
	"github.com/specialistvlad/patternkit/internal/registry"
	"github.com/specialistvlad/patternkit/modules/sorting"
)

// coreModules is the definitive list of all modules that are compiled into
// the patternkit binary.
var coreModules = []registry.Module{
	&sorting.Module{},
}
