// Package config defines the format-agnostic plot configuration model and
// the Loader interface that fills it from a configuration source.
//
// Concrete loaders, such as the HCL one, live in separate packages. The app
// package merges a loaded Model into the command-line configuration.
package config
