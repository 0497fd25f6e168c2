package almanac

import (
	"fmt"
	"path/filepath"
	"strings"
)

//go:generate go tool stringer -type=Format -linecomment -output=format_string.go

// Format is an almanac serialization.
type Format int

const (
	// FormatText is the puzzle layout: a seeds line then "x-to-y map:" blocks.
	FormatText Format = iota // text
	// FormatYAML is the YAML document form.
	FormatYAML // yaml
	// FormatTOML is the TOML document form.
	FormatTOML // toml
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatYAML, FormatTOML}

// ParseFormat parses the textual name of a format. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatText, fmt.Errorf("unknown almanac format %q (want text, yaml or toml)", s)
	}
}

// DetectFormat picks a format from the file extension. Unknown extensions
// are read as text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Extension returns the conventional file extension for f.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatTOML:
		return ".toml"
	default:
		return ".txt"
	}
}
