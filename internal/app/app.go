package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/csvplot/internal/chart"
	"github.com/specialistvlad/csvplot/internal/config"
	"github.com/specialistvlad/csvplot/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	renderer chart.Renderer
}

// NewApp is the constructor for the main application. Charts and
// diagnostics go to outW, logs to logW. When cfg names a config file it is
// loaded with loader and merged under the command-line values. A nil
// renderer selects the goterm terminal renderer writing to outW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, renderer chart.Renderer) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Work on a copy so the caller's config is left as parsed.
	c := *cfg
	if c.ConfigPath != "" {
		if loader == nil {
			return nil, fmt.Errorf("config path %s given but no loader configured", c.ConfigPath)
		}
		model, err := loader.Load(ctx, c.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		c.Apply(model)
		logger.Debug("Configuration file merged.", "path", c.ConfigPath)
	}
	c.setDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}

	if renderer == nil {
		renderer = chart.NewTerminal(outW, c.chartOptions())
	}

	logger.Debug("App created.", "inputs", c.Inputs, "keys", c.Keys, "group_by", c.GroupBy, "numeric", c.Numeric)
	return &App{
		outW:     outW,
		logger:   logger,
		config:   &c,
		renderer: renderer,
	}, nil
}

// Config returns the effective configuration. This is primarily for testing.
func (a *App) Config() Config {
	return *a.config
}
