// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths in
// lexical order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// ExpandInputs replaces every directory in paths with the files below it
// ending in extension, keeping the argument order. Every resulting file is
// opened once to make sure it is readable, so unreadable inputs are reported
// before any parsing starts.
func ExpandInputs(paths []string, extension string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("can't open '%s': %w", path, err)
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}
		found, err := FindFilesByExtension(path, extension)
		if err != nil {
			return nil, fmt.Errorf("failed to search '%s': %w", path, err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no %s files found in '%s'", extension, path)
		}
		out = append(out, found...)
	}

	for _, path := range out {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("can't open '%s': %w", path, err)
		}
		f.Close()
	}
	return out, nil
}
