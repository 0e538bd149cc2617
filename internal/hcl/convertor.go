package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/patternkit/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter evaluates HCL expressions into Go values.
type Converter struct {
	evalCtx *hcl.EvalContext
}

// NewConverter creates a converter that only accepts literal expressions.
func NewConverter() *Converter {
	return &Converter{}
}

// StringList evaluates expr as a list of strings. A missing or null
// expression yields a nil slice. Numbers and bools are converted to their
// string form, following cty's standard conversions.
func (c *Converter) StringList(ctx context.Context, expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(c.evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	var out []string
	if err := c.decode(ctx, val, cty.List(cty.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decode converts val to want and writes it into target.
func (c *Converter) decode(ctx context.Context, val cty.Value, want cty.Type, target any) error {
	logger := ctxlog.FromContext(ctx)

	if !val.IsWhollyKnown() {
		return fmt.Errorf("value is not known")
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), want.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(converted, target)
}
