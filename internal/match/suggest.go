package match

import (
	"cmp"
	"slices"
)

// DefaultMinScore is the similarity below which a name is not suggested.
const DefaultMinScore = 0.5

// Candidate is a known name scored against a query.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every distinct candidate against name after normalization.
// The result is sorted by score (descending), then by name.
func Rank(name string, candidates []string) []Candidate {
	query := NormalizeIdent(name)
	seen := make(map[string]struct{}, len(candidates))
	ranked := make([]Candidate, 0, len(candidates))

	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}
		ranked = append(ranked, Candidate{
			Name:  c,
			Score: LevenshteinNormalized(query, NormalizeIdent(c)),
		})
	}

	slices.SortFunc(ranked, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return ranked
}

// Suggest returns up to limit candidates scoring at least DefaultMinScore
// against name. limit <= 0 means no limit.
func Suggest(name string, candidates []string, limit int) []string {
	var out []string

	for _, c := range Rank(name, candidates) {
		if c.Score < DefaultMinScore {
			break
		}

		out = append(out, c.Name)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}
