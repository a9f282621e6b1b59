package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the HCL schema of a plot configuration file.
type fileRoot struct {
	// Keys accepts a list of strings or a single comma-separated string.
	Keys      hcl.Expression `hcl:"keys,optional"`
	GroupBy   string         `hcl:"group_by,optional"`
	Numeric   bool           `hcl:"numeric,optional"`
	Strict    bool           `hcl:"strict,optional"`
	Summary   bool           `hcl:"summary,optional"`
	Comment   string         `hcl:"comment,optional"`
	Delimiter string         `hcl:"delimiter,optional"`
	Extension string         `hcl:"extension,optional"`
	Chart     *chartBlock    `hcl:"chart,block"`
}

type chartBlock struct {
	Height int `hcl:"height,optional"`
	Width  int `hcl:"width,optional"`
}
