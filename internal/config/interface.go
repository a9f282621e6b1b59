package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, in order, and returns
	// the merged model. Values from later files win.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
