// Package report renders the constraints installed on element trees.
//
// Text output is meant for terminals, JSON for tools, and DOT or SVG for
// diagrams. All renderers walk the trees depth first, so the order of
// containers and of constraints within a container is stable.
package report
