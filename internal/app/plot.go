package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/csvplot/internal/ctxlog"
	"github.com/specialistvlad/csvplot/internal/summary"
	"github.com/specialistvlad/csvplot/internal/table"
)

// plotAll renders one chart per configured key, in order. The first error
// aborts the run.
func plotAll[T table.Cell](ctx context.Context, a *App, ds *table.Table[T]) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Dataset loaded.", "columns", len(ds.Names), "rows", ds.Rows(), "aligned", ds.Aligned())

	group := a.config.GroupBy
	for _, key := range a.config.Keys {
		series, err := seriesFor(ds, key, group)
		if err != nil {
			return fmt.Errorf("failed to plot %q: %w", key, err)
		}

		if group != "" {
			first := 0
			if len(series) > 0 {
				first = len(series[0].Values)
			}
			fmt.Fprintln(a.outW, len(series), first)
		}

		if len(series) == 0 || len(series[0].Values) == 0 {
			logger.Warn("Nothing to plot.", "key", key)
			continue
		}

		logger.Debug("Rendering chart.", "key", key, "series", len(series))
		if err := a.renderer.Render(key, series); err != nil {
			return fmt.Errorf("failed to plot %q: %w", key, err)
		}

		if a.config.Summary {
			if err := summary.Write(a.outW, summary.Describe(series)); err != nil {
				return fmt.Errorf("failed to write summary for %q: %w", key, err)
			}
		}
	}
	return nil
}

// seriesFor returns the series to draw for key: the whole column as one
// series, or one series per distinct value of the group column.
func seriesFor[T table.Cell](ds *table.Table[T], key, group string) ([]table.Series, error) {
	values, err := ds.Column(key)
	if err != nil {
		return nil, err
	}

	if group == "" {
		floats, err := table.Floats(key, values)
		if err != nil {
			return nil, err
		}
		return []table.Series{{Label: key, Values: floats}}, nil
	}

	keys, err := ds.Column(group)
	if err != nil {
		return nil, err
	}
	series, err := table.Split(keys, values)
	if err != nil {
		var convErr *table.ConversionError
		if errors.As(err, &convErr) && convErr.Column == "" {
			convErr.Column = key
		}
		return nil, fmt.Errorf("splitting by %q: %w", group, err)
	}
	return series, nil
}
