package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/patternkit/internal/config"
	"github.com/specialistvlad/patternkit/internal/ctxlog"
)

// ValidateModel checks that every algorithm named by the model's sorts is
// registered. All problems are reported at once.
func (r *Registry) ValidateModel(ctx context.Context, model *config.Model) error {
	var errs []error
	logger := ctxlog.FromContext(ctx)

	for _, s := range model.Sorts {
		if !r.Has(s.Algorithm) {
			errs = append(errs, fmt.Errorf("sort '%s': %w: %q", s.Name, ErrAlgorithmNotFound, s.Algorithm))
		}
		if s.SwitchTo != "" && !r.Has(s.SwitchTo) {
			errs = append(errs, fmt.Errorf("sort '%s' switch_to: %w: %q", s.Name, ErrAlgorithmNotFound, s.SwitchTo))
		}
		if s.SwitchTo != "" && s.SwitchTo == s.Algorithm {
			logger.Warn("Sort switches to the algorithm it already uses; the second run repeats the first.", "sort", s.Name, "algorithm", s.Algorithm)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed: %w", errors.Join(errs...))
	}
	return nil
}
