package almanac

import (
	"bytes"
	"fmt"
	"os"
)

// LoadFile loads and parses an almanac, picking the format from the extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac %s: %w", path, err)
	}

	f, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses data in the given format and applies defaults.
func Parse(data []byte, format Format) (*File, error) {
	var (
		f   *File
		err error
	)

	switch format {
	case FormatText:
		f, err = ParseText(bytes.NewReader(data))
	case FormatYAML:
		f, err = parseYAML(data)
	case FormatTOML:
		f, err = parseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported almanac format %s", format)
	}

	if err != nil {
		return nil, err
	}

	applyDefaults(f)

	return f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Sections {
		s := &f.Sections[i]

		if s.From == "" && s.To == "" {
			s.From, s.To = splitSectionName(s.Name)
		}

		if s.Name == "" && s.From != "" && s.To != "" {
			s.Name = sectionName(s.From, s.To)
		}
	}
}

// Marshal serializes f in the given format.
func Marshal(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		var buf bytes.Buffer
		if err := WriteText(&buf, f); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case FormatYAML:
		return marshalYAML(f)
	case FormatTOML:
		return marshalTOML(f)
	default:
		return nil, fmt.Errorf("unsupported almanac format %s", format)
	}
}

// WriteFile writes f to path in the given format.
func WriteFile(f *File, path string, format Format) error {
	data, err := Marshal(f, format)
	if err != nil {
		return fmt.Errorf("failed to marshal almanac: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write almanac %s: %w", path, err)
	}

	return nil
}
