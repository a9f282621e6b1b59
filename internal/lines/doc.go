// Package lines provides lazy, single-pass line sequences over an io.Reader
// and the comment filter applied to them before parsing.
package lines
