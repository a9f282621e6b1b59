package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/csvplot/internal/config"
	"github.com/specialistvlad/csvplot/internal/table"
	"github.com/stretchr/testify/require"
)

// renderCall records one Render invocation.
type renderCall struct {
	Title  string
	Series []table.Series
}

// recordingRenderer is a chart.Renderer that remembers what it was asked to draw.
type recordingRenderer struct {
	calls []renderCall
	err   error
}

func (r *recordingRenderer) Render(title string, series []table.Series) error {
	r.calls = append(r.calls, renderCall{Title: title, Series: series})
	return r.err
}

// staticLoader is a config.Loader returning a fixed model.
type staticLoader struct {
	model *config.Model
	err   error
	paths []string
}

func (l *staticLoader) Load(_ context.Context, paths ...string) (*config.Model, error) {
	l.paths = append(l.paths, paths...)
	return l.model, l.err
}

// writeData creates a data file in dir and returns its path.
func writeData(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

// setupApp builds an App around a recording renderer. Logs are captured and
// printed only when CSVPLOT_TEST_LOGS=true.
func setupApp(t *testing.T, cfg Config, loader config.Loader) (*App, *recordingRenderer, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	cfg.LogLevel = "debug"
	renderer := &recordingRenderer{}

	a, err := NewApp(out, logs, &cfg, loader, renderer)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("CSVPLOT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, renderer, out
}
