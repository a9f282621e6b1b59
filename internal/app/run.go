package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/csvplot/internal/ctxlog"
	"github.com/specialistvlad/csvplot/internal/fsutil"
	"github.com/specialistvlad/csvplot/internal/table"
)

// Run loads and merges all inputs, then plots every requested key.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	inputs, err := fsutil.ExpandInputs(a.config.Inputs, a.config.Extension)
	if err != nil {
		return err
	}
	a.logger.Debug("Input files resolved.", "count", len(inputs))

	opts := a.config.tableOptions()
	mergeOpts := table.MergeOptions{Strict: a.config.Strict}

	if a.config.Numeric {
		ds, err := table.Merge(table.LoadNumeric(ctx, inputs, opts), mergeOpts)
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}
		return plotAll(ctx, a, ds)
	}

	ds, err := table.Merge(table.Load(ctx, inputs, opts), mergeOpts)
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}
	return plotAll(ctx, a, ds)
}
