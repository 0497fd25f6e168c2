// Package main provides the almanac CLI.
//
// almanac resolves identifiers through a chain of category maps:
//   - lowest: the minimum final identifier over the seeds (or seed spans)
//   - resolve: per-category traces of individual identifiers
//   - check: validation diagnostics for an almanac file
//   - convert: translation between the text, YAML and TOML formats
//   - dump: a structural dump of the parsed document and built stages
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
