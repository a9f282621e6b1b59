package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/csvplot/internal/chart"
	"github.com/specialistvlad/csvplot/internal/config"
	"github.com/specialistvlad/csvplot/internal/lines"
	"github.com/specialistvlad/csvplot/internal/table"
)

// DefaultExtension selects data files when an input is a directory.
const DefaultExtension = ".csv"

// ErrNoKeys is returned when no column to plot was requested.
var ErrNoKeys = errors.New("no keys to plot")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Inputs     []string // data files or directories
	ConfigPath string   // optional plot config file or directory

	Keys    []string
	GroupBy string // empty disables grouping

	Numeric   bool
	Strict    bool
	Summary   bool
	Comment   string
	Delimiter string
	Extension string

	Height int
	Width  int

	LogFormat string
	LogLevel  string
}

// NewConfig validates what can be checked before a config file is read.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("at least one input file is required")
	}
	if len(cfg.Keys) == 0 && cfg.ConfigPath == "" {
		return nil, ErrNoKeys
	}
	return &cfg, nil
}

// Apply fills every field still unset in c from the loaded model.
// Command-line values always win.
func (c *Config) Apply(m *config.Model) {
	if len(c.Keys) == 0 {
		c.Keys = m.Keys
	}
	if c.GroupBy == "" {
		c.GroupBy = m.GroupBy
	}
	c.Numeric = c.Numeric || m.Numeric
	c.Strict = c.Strict || m.Strict
	c.Summary = c.Summary || m.Summary
	if c.Comment == "" {
		c.Comment = m.Comment
	}
	if c.Delimiter == "" {
		c.Delimiter = m.Delimiter
	}
	if c.Extension == "" {
		c.Extension = m.Extension
	}
	if c.Height == 0 {
		c.Height = m.Chart.Height
	}
	if c.Width == 0 {
		c.Width = m.Chart.Width
	}
}

// setDefaults fills the remaining unset fields.
func (c *Config) setDefaults() {
	if c.Comment == "" {
		c.Comment = lines.DefaultCommentMarker
	}
	if c.Delimiter == "" {
		c.Delimiter = table.DefaultDelimiter
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Height == 0 {
		c.Height = chart.DefaultHeight
	}
	if c.Width == 0 {
		c.Width = chart.DefaultWidth
	}
}

// validate checks the fully merged configuration.
func (c *Config) validate() error {
	if len(c.Keys) == 0 {
		return ErrNoKeys
	}
	if err := c.chartOptions().Validate(); err != nil {
		return err
	}
	if c.GroupBy != "" && c.Numeric && c.GroupBy == table.FileColumn {
		return fmt.Errorf("cannot group by %s: the numeric parser does not record source files", table.FileColumn)
	}
	return nil
}

func (c *Config) tableOptions() table.Options {
	return table.Options{
		CommentMarker: c.Comment,
		Delimiter:     c.Delimiter,
		Strict:        c.Strict,
	}
}

func (c *Config) chartOptions() chart.Options {
	return chart.Options{Height: c.Height, Width: c.Width}
}
