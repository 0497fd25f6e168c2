package almanac

import (
	"fmt"
	"strings"

	"almanac-resolver/internal/common"
	"almanac-resolver/internal/rangemap"
)

// File is a parsed almanac document.
type File struct {
	// Version of the schema. Defaults to "1".
	Version string `yaml:"version"`
	// Seeds are the starting identifiers.
	Seeds []uint64 `yaml:"seeds,flow"`
	// Sections are the map sections in declared order.
	Sections []Section `yaml:"maps"`
}

// Section is one "<from>-to-<to> map:" block.
type Section struct {
	Name  string     `yaml:"name,omitempty"`
	From  string     `yaml:"from,omitempty"`
	To    string     `yaml:"to,omitempty"`
	Rules []RuleSpec `yaml:"rules"`
}

// RuleSpec is a declared rule in document order: destination, source, length.
type RuleSpec struct {
	Dest   uint64 `yaml:"dest"`
	Src    uint64 `yaml:"src"`
	Length uint64 `yaml:"len"`
}

// Rule converts the declared rule into an engine rule.
func (r RuleSpec) Rule() rangemap.Rule {
	return rangemap.Rule{Dest: r.Dest, Src: r.Src, Length: r.Length}
}

// RangeRules converts every rule of the section.
func (s *Section) RangeRules() []rangemap.Rule {
	rules := make([]rangemap.Rule, len(s.Rules))
	for i, r := range s.Rules {
		rules[i] = r.Rule()
	}

	return rules
}

// Label returns the section name, or its position when unnamed.
func (s *Section) Label(index int) string {
	if s.Name != "" {
		return s.Name
	}

	if s.From != "" || s.To != "" {
		return sectionName(s.From, s.To)
	}

	return fmt.Sprintf("section %d", index+1)
}

// Categories returns every category mentioned by a section, in first-seen
// order.
func (f *File) Categories() []string {
	names := make([]string, 0, 2*len(f.Sections))
	for i := range f.Sections {
		names = append(names, f.Sections[i].From, f.Sections[i].To)
	}

	return common.Unique(names)
}

// sectionName builds the conventional "<from>-to-<to>" name.
func sectionName(from, to string) string {
	return from + "-to-" + to
}

// splitSectionName is the inverse of sectionName. It returns empty strings
// for names without a "-to-" separator.
func splitSectionName(name string) (string, string) {
	from, to, ok := strings.Cut(name, "-to-")
	if !ok || from == "" || to == "" {
		return "", ""
	}

	return from, to
}
