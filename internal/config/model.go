package config

import "strings"

// Model is the unified, format-agnostic representation of a plot
// configuration. Zero values mean "not set".
type Model struct {
	Keys      []string
	GroupBy   string
	Numeric   bool
	Strict    bool
	Summary   bool
	Comment   string
	Delimiter string
	Extension string
	Chart     Chart
}

// Chart holds the chart size.
type Chart struct {
	Height int
	Width  int
}

// Merge copies every set field of other over m.
func (m *Model) Merge(other *Model) {
	if len(other.Keys) > 0 {
		m.Keys = other.Keys
	}
	if other.GroupBy != "" {
		m.GroupBy = other.GroupBy
	}
	m.Numeric = m.Numeric || other.Numeric
	m.Strict = m.Strict || other.Strict
	m.Summary = m.Summary || other.Summary
	if other.Comment != "" {
		m.Comment = other.Comment
	}
	if other.Delimiter != "" {
		m.Delimiter = other.Delimiter
	}
	if other.Extension != "" {
		m.Extension = other.Extension
	}
	if other.Chart.Height != 0 {
		m.Chart.Height = other.Chart.Height
	}
	if other.Chart.Width != 0 {
		m.Chart.Width = other.Chart.Width
	}
}

// SplitKeys splits a comma-separated key list, trimming each key and
// dropping empty ones.
func SplitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
