// Package main provides the CLI for constraint layout documents.
//
// Usage:
//
//	constrain apply <file>        Run a document and print its constraints
//	constrain check <file...>     Validate documents without printing
//	constrain attrs               List attribute names
//
// Examples:
//
//	constrain apply card.toml                  Print installed constraints
//	constrain apply card.yaml --format json    Print them as JSON
//	constrain apply card.toml -f svg -o c.svg  Render a diagram
//	constrain check layouts/*.toml             Check many documents at once
//	constrain attrs --ops                      List every document step
package main

import (
	"context"
	"os"
)

var (
	version = "0.1.0"
	commit  string
	date    string
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
