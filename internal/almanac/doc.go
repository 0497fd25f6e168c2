// Package almanac provides the almanac document: its schema, text/YAML/TOML
// parsing, validation, section chaining, and the builder that turns a
// document into a resolution pipeline.
//
// # Text format
//
// The text format is the almanac as it is usually written:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Every row is "destination source length". A blank line ends a section.
//
// # YAML format
//
//	version: "1"
//	seeds: [79, 14, 55, 13]
//	maps:
//	  - name: seed-to-soil        # from/to derived from the name
//	    rules:
//	      - [50, 98, 2]           # dest, src, len
//	      - {dest: 52, src: 50, len: 48}
//
// # TOML format
//
//	version = "1"
//	seeds = [79, 14, 55, 13]
//
//	[[maps]]
//	name = "seed-to-soil"
//	rules = [[50, 98, 2], [52, 50, 48]]
//
// # Chaining
//
// Sections are linked by category: a section whose From equals another's
// To follows it. Declared order does not matter; Chain walks the links
// from a source category to a target category, so a document can also be
// resolved partially (seed to water).
package almanac
