package almanac

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCategories = []string{
	"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location",
}

func loadSample(t *testing.T, name string) *File {
	t.Helper()

	f, err := LoadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return f
}

func TestLoadFile_Sample(t *testing.T) {
	f := loadSample(t, "sample.txt")

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []uint64{79, 14, 55, 13}, f.Seeds)
	require.Len(t, f.Sections, 7)

	first := f.Sections[0]
	assert.Equal(t, "seed-to-soil", first.Name)
	assert.Equal(t, "seed", first.From)
	assert.Equal(t, "soil", first.To)
	assert.Equal(t, []RuleSpec{{Dest: 50, Src: 98, Length: 2}, {Dest: 52, Src: 50, Length: 48}}, first.Rules)

	assert.Equal(t, sampleCategories, f.Categories())
}

func TestLoadFile_FormatsAgree(t *testing.T) {
	want := loadSample(t, "sample.txt")

	for _, name := range []string{"sample.yaml", "sample.toml"} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, loadSample(t, name))
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read almanac")
}

func TestMarshal_RoundTrip(t *testing.T) {
	want := loadSample(t, "sample.txt")

	for _, format := range Formats {
		t.Run(format.String(), func(t *testing.T) {
			data, err := Marshal(want, format)
			require.NoError(t, err)

			got, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMarshal_TextKeepsCustomNamedCategories(t *testing.T) {
	doc := `
seeds: [5]
maps:
  - name: stage-one
    from: seed
    to: soil
    rules: [[100, 5, 1]]
  - name: stage-two
    from: soil
    to: location
    rules: [[1, 100, 1]]
`

	f, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)

	p, err := Build(f, BuildOptions{})
	require.NoError(t, err)

	want, err := p.Lowest()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), want)

	data, err := Marshal(f, FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seed-to-soil map:")
	assert.Contains(t, string(data), "soil-to-location map:")

	back, err := Parse(data, FormatText)
	require.NoError(t, err)
	require.Len(t, back.Sections, 2)

	for i, s := range back.Sections {
		assert.Equal(t, f.Sections[i].From, s.From)
		assert.Equal(t, f.Sections[i].To, s.To)
		assert.Equal(t, f.Sections[i].Rules, s.Rules)
	}

	rebuilt, err := Build(back, BuildOptions{})
	require.NoError(t, err)
	assert.Len(t, rebuilt.Stages(), 2)

	got, err := rebuilt.Lowest()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMarshal_YAMLRulesAreFlow(t *testing.T) {
	f := &File{
		Version:  "1",
		Seeds:    []uint64{1, 2},
		Sections: []Section{{Name: "a-to-b", From: "a", To: "b", Rules: []RuleSpec{{Dest: 5, Src: 1, Length: 3}}}},
	}

	data, err := Marshal(f, FormatYAML)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "seeds: [1, 2]")
	assert.Contains(t, out, "- [5, 1, 3]")
}

func TestWriteFile(t *testing.T) {
	f := loadSample(t, "sample.txt")
	path := filepath.Join(t.TempDir(), "out.toml")

	require.NoError(t, WriteFile(f, path, DetectFormat(path)))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestParse_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		wantName string
		wantFrom string
		wantTo   string
	}{
		{"from name", "name: seed-to-soil", "seed-to-soil", "seed", "soil"},
		{"from categories", "from: seed\n    to: soil", "seed-to-soil", "seed", "soil"},
		{"explicit", "name: first\n    from: seed\n    to: soil", "first", "seed", "soil"},
		{"unconventional name", "name: first", "first", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := "seeds: [1]\nmaps:\n  - " + tt.section + "\n    rules: [[1, 2, 3]]\n"

			f, err := Parse([]byte(data), FormatYAML)
			require.NoError(t, err)
			require.Len(t, f.Sections, 1)

			s := f.Sections[0]
			assert.Equal(t, tt.wantName, s.Name)
			assert.Equal(t, tt.wantFrom, s.From)
			assert.Equal(t, tt.wantTo, s.To)
		})
	}
}

func TestParse_BadRules(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		errMsg string
	}{
		{
			name:   "yaml short sequence",
			format: FormatYAML,
			data:   "maps:\n  - name: a-to-b\n    rules: [[1, 2]]\n",
			errMsg: "rule needs 3 values",
		},
		{
			name:   "yaml scalar rule",
			format: FormatYAML,
			data:   "maps:\n  - name: a-to-b\n    rules: [7]\n",
			errMsg: "expected rule sequence or mapping",
		},
		{
			name:   "yaml negative",
			format: FormatYAML,
			data:   "seeds: [-1]\n",
			errMsg: "failed to parse almanac YAML",
		},
		{
			name:   "toml long row",
			format: FormatTOML,
			data:   "[[maps]]\nname = \"a-to-b\"\nrules = [[1, 2, 3, 4]]\n",
			errMsg: "maps[0].rules[0]: rule needs 3 values",
		},
		{
			name:   "toml syntax",
			format: FormatTOML,
			data:   "seeds = [1,\n",
			errMsg: "failed to parse almanac TOML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFormat(t *testing.T) {
	for _, f := range Formats {
		parsed, err := ParseFormat(strings.ToUpper(f.String()))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	parsed, err := ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, parsed)

	_, err = ParseFormat("xml")
	require.Error(t, err)

	assert.Equal(t, FormatYAML, DetectFormat("a/b.YML"))
	assert.Equal(t, FormatTOML, DetectFormat("b.toml"))
	assert.Equal(t, FormatText, DetectFormat("input"))
	assert.Equal(t, ".toml", FormatTOML.Extension())
	assert.Equal(t, "Format(9)", Format(9).String())
}
