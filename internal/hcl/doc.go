// Package hcl provides the HCL implementation of the config.Loader
// interface. It parses plot configuration files, evaluates their
// expressions against an eval context exposing the process environment and
// a set of string functions, and translates the result into config.Model.
package hcl
