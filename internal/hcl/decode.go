package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/csvplot/internal/config"
	"github.com/specialistvlad/csvplot/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeKeys evaluates the keys expression. A string is split on commas; any
// other value must convert to a list of strings. Each key is trimmed.
func decodeKeys(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("keys must be known at load time")
	}

	if val.Type().Equals(cty.String) {
		logger.Debug("Splitting keys string.", "value", val.AsString())
		return config.SplitKeys(val.AsString()), nil
	}

	target := cty.List(cty.String)
	converted, err := convert.Convert(val, target)
	if err != nil {
		return nil, fmt.Errorf("cannot convert keys of type %s to %s: %w", val.Type().FriendlyName(), target.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted keys type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	var keys []string
	if err := gocty.FromCtyValue(converted, &keys); err != nil {
		return nil, fmt.Errorf("failed to decode keys: %w", err)
	}
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	return keys, nil
}
