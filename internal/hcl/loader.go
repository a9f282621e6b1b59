package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/csvplot/internal/config"
	"github.com/specialistvlad/csvplot/internal/ctxlog"
	"github.com/specialistvlad/csvplot/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	env map[string]string
}

// NewLoader creates a new HCL configuration loader whose `env` variable
// reflects the process environment at construction time.
func NewLoader() *Loader {
	return &Loader{env: environ(osEnviron())}
}

// NewLoaderWithEnv creates a loader with a fixed environment.
func NewLoaderWithEnv(env map[string]string) *Loader {
	return &Loader{env: env}
}

// Load parses every .hcl file found in paths, in order. Directories are
// searched recursively. Set values of later files override earlier ones.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.env)
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		m, err := translate(ctx, &root, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("invalid configuration in %s: %w", file, err)
		}
		model.Merge(m)
	}

	logger.Debug("HCL loading complete.", "keys", model.Keys, "group_by", model.GroupBy)
	return model, nil
}

// translate converts the HCL schema into the agnostic model.
func translate(ctx context.Context, root *fileRoot, evalCtx *hcl.EvalContext) (*config.Model, error) {
	m := &config.Model{
		GroupBy:   root.GroupBy,
		Numeric:   root.Numeric,
		Strict:    root.Strict,
		Summary:   root.Summary,
		Comment:   root.Comment,
		Delimiter: root.Delimiter,
		Extension: root.Extension,
	}
	if root.Keys != nil {
		keys, err := decodeKeys(ctx, root.Keys, evalCtx)
		if err != nil {
			return nil, err
		}
		m.Keys = keys
	}
	if root.Chart != nil {
		if root.Chart.Height < 0 || root.Chart.Width < 0 {
			return nil, fmt.Errorf("chart size must not be negative")
		}
		m.Chart = config.Chart{Height: root.Chart.Height, Width: root.Chart.Width}
	}
	return m, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found. Unlike data inputs, a missing config path is an error.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing config path %s: %w", path, err)
		}

		found := []string{path}
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
		}
		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
