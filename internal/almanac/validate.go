package almanac

import (
	"errors"
	"fmt"
	"slices"

	"almanac-resolver/internal/diagnostic"
	"almanac-resolver/internal/match"
	"almanac-resolver/internal/rangemap"
)

// Validate checks an almanac without building it. Overlapping rules are
// errors under rangemap.Reject and warnings under rangemap.FirstMatch.
func Validate(f *File, policy rangemap.OverlapPolicy) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	if f == nil {
		diags.AddError("file_is_nil", "almanac is nil", "", "")
		return diags
	}

	if len(f.Seeds) == 0 {
		diags.AddWarning("no_seeds", "almanac declares no seeds", "", "")
	}

	if len(f.Sections) == 0 {
		diags.AddWarning("no_sections", "almanac declares no map sections; every id maps to itself", "", "")
		return diags
	}

	validateSections(f, diags)

	for i := range f.Sections {
		validateRules(&f.Sections[i], i, policy, diags)
	}

	validateChain(f, diags)

	return diags
}

func validateSections(f *File, diags *diagnostic.Diagnostics) {
	names := make(map[string]int)
	sources := make(map[string]int)

	for i := range f.Sections {
		s := &f.Sections[i]
		label := s.Label(i)

		if s.From == "" || s.To == "" {
			diags.AddError("missing_category",
				"section needs both a source and a target category", label, "")
		}

		if s.Name != "" {
			if prev, ok := names[s.Name]; ok {
				diags.AddError("duplicate_section",
					fmt.Sprintf("section name already used by section %d", prev+1), label, "")
			} else {
				names[s.Name] = i
			}
		}

		if s.From != "" {
			if prev, ok := sources[s.From]; ok {
				diags.AddError("duplicate_source_category",
					fmt.Sprintf("category already mapped by %s", f.Sections[prev].Label(prev)), label, s.From)
			} else {
				sources[s.From] = i
			}
		}
	}
}

func validateRules(s *Section, index int, policy rangemap.OverlapPolicy, diags *diagnostic.Diagnostics) {
	label := s.Label(index)
	rules := s.RangeRules()

	for j, r := range rules {
		err := r.Check()
		if err == nil {
			continue
		}

		subject := fmt.Sprintf("rule %d", j+1)
		if errors.Is(err, rangemap.ErrOutOfRange) {
			diags.AddError("rule_out_of_range", err.Error(), label, subject)
		} else {
			diags.AddError("empty_rule", "rule has zero length", label, subject)
		}
	}

	for _, o := range rangemap.FindOverlaps(rules) {
		subject := fmt.Sprintf("rules %d and %d", o.FirstIndex+1, o.SecondIndex+1)
		msg := fmt.Sprintf("source intervals of %q and %q intersect", o.First, o.Second)

		if policy == rangemap.FirstMatch {
			diags.AddWarning("overlapping_rules", msg+"; the earlier rule wins", label, subject)
		} else {
			diags.AddError("overlapping_rules", msg, label, subject)
		}
	}
}

func validateChain(f *File, diags *diagnostic.Diagnostics) {
	order, err := f.OrderSections()
	if err != nil {
		diags.AddError("chain_cycle", "sections map categories in a cycle", "", "")
		return
	}

	for k, i := range order {
		if i != k {
			diags.AddInfo("sections_reordered",
				"sections are not declared in chain order; they are resolved in dependency order", "", "")

			break
		}
	}

	produced := make([]string, 0, len(f.Sections))
	for i := range f.Sections {
		if to := f.Sections[i].To; to != "" {
			produced = append(produced, to)
		}
	}

	// The first root starts the chain; any further root is disconnected.
	rootSeen := false

	for _, i := range order {
		s := &f.Sections[i]
		if s.From == "" || slices.Contains(produced, s.From) {
			continue
		}

		if !rootSeen {
			rootSeen = true
			continue
		}

		diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityError,
			Code:        "broken_chain",
			Message:     "no section produces this category",
			Section:     s.Label(i),
			Subject:     s.From,
			Suggestions: match.Suggest(s.From, produced, maxSuggestions),
		})
	}
}
