// Package chart renders numeric series as colored terminal line charts.
//
// Renderer is the seam between the plot driver and the terminal: the driver
// only hands over a title and labelled series, so tests can swap in a fake.
// Terminal is the goterm-backed implementation used by the CLI.
package chart
