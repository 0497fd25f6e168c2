package pipeline

import (
	"fmt"

	"almanac-resolver/internal/rangemap"
)

// SpansFromPairs reads values as consecutive (start, length) pairs.
func SpansFromPairs(values []uint64) ([]rangemap.Span, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddPairs, len(values))
	}

	spans := make([]rangemap.Span, 0, len(values)/2)

	for i := 0; i < len(values); i += 2 {
		s, err := rangemap.NewSpan(values[i], values[i+1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i/2, err)
		}

		spans = append(spans, s)
	}

	return spans, nil
}

// ResolveSpan maps every identifier in s through the chain and returns the
// resulting spans. Their total length equals s.Length.
func (p *Pipeline) ResolveSpan(s rangemap.Span) []rangemap.Span {
	if s.Length == 0 {
		return nil
	}

	current := []rangemap.Span{s}

	for _, st := range p.stages {
		next := make([]rangemap.Span, 0, len(current))
		for _, c := range current {
			next = append(next, st.Map.TranslateSpan(c)...)
		}

		current = next
	}

	return current
}

// MinimumOverSpans returns the lowest resolved value over every identifier
// of every span. Empty spans contribute nothing; if no identifier remains
// the query fails with ErrEmptyInput.
func (p *Pipeline) MinimumOverSpans(spans []rangemap.Span) (uint64, error) {
	var (
		lowest uint64
		found  bool
	)

	for _, s := range spans {
		for _, out := range p.ResolveSpan(s) {
			if !found || out.Start < lowest {
				lowest = out.Start
				found = true
			}
		}
	}

	if !found {
		return 0, ErrEmptyInput
	}

	return lowest, nil
}
