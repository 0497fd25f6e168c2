package almanac

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// TOML has no per-type unmarshal hook for arrays, so rules travel as
// plain integer rows and are converted here.
type tomlFile struct {
	Version string        `toml:"version"`
	Seeds   []uint64      `toml:"seeds"`
	Maps    []tomlSection `toml:"maps"`
}

type tomlSection struct {
	Name  string     `toml:"name,omitempty"`
	From  string     `toml:"from,omitempty"`
	To    string     `toml:"to,omitempty"`
	Rules [][]uint64 `toml:"rules"`
}

func parseTOML(data []byte) (*File, error) {
	var raw tomlFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse almanac TOML: %w", err)
	}

	f := &File{Version: raw.Version, Seeds: raw.Seeds}

	for i, m := range raw.Maps {
		s := Section{Name: m.Name, From: m.From, To: m.To}

		for j, row := range m.Rules {
			if len(row) != 3 {
				return nil, fmt.Errorf("maps[%d].rules[%d]: rule needs 3 values (dest, src, len), got %d", i, j, len(row))
			}

			s.Rules = append(s.Rules, RuleSpec{Dest: row[0], Src: row[1], Length: row[2]})
		}

		f.Sections = append(f.Sections, s)
	}

	return f, nil
}

func marshalTOML(f *File) ([]byte, error) {
	raw := tomlFile{Version: f.Version, Seeds: f.Seeds}

	for _, s := range f.Sections {
		m := tomlSection{Name: s.Name, From: s.From, To: s.To}
		for _, r := range s.Rules {
			m.Rules = append(m.Rules, []uint64{r.Dest, r.Src, r.Length})
		}

		raw.Maps = append(raw.Maps, m)
	}

	return toml.Marshal(raw)
}
