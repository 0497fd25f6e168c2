package rangemap

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// Option configures RangeMap construction.
type Option func(*options)

type options struct {
	policy OverlapPolicy
}

// WithPolicy selects how overlapping rules are handled. The default is Reject.
func WithPolicy(p OverlapPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// RangeMap is the immutable remapping table of one stage.
type RangeMap struct {
	declared []Rule
	// segments are disjoint and sorted by Src. Under Reject they are the
	// declared rules; under FirstMatch they are the declared rules clipped
	// against every earlier one.
	segments []Rule
	policy   OverlapPolicy
}

// New validates rules and builds a RangeMap. Every rule must pass Check;
// overlapping rules are handled according to the configured policy.
func New(rules []Rule, opts ...Option) (*RangeMap, error) {
	o := options{policy: Reject}
	for _, opt := range opts {
		opt(&o)
	}

	for i, r := range rules {
		if err := r.Check(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	declared := slices.Clone(rules)

	var segments []Rule

	switch o.policy {
	case Reject:
		if overlaps := FindOverlaps(declared); len(overlaps) > 0 {
			return nil, &overlaps[0]
		}

		segments = slices.Clone(declared)
	case FirstMatch:
		segments = clip(declared)
	default:
		return nil, fmt.Errorf("%w: unknown overlap policy %s", ErrMalformedRuleSet, o.policy)
	}

	slices.SortFunc(segments, func(a, b Rule) int {
		return cmp.Compare(a.Src, b.Src)
	})

	return &RangeMap{
		declared: declared,
		segments: segments,
		policy:   o.policy,
	}, nil
}

// FromTriples builds a RangeMap from (destination, source, length) triples.
func FromTriples(triples [][3]uint64, opts ...Option) (*RangeMap, error) {
	rules := make([]Rule, len(triples))
	for i, t := range triples {
		rules[i] = FromTriple(t)
	}

	return New(rules, opts...)
}

// Identity returns a RangeMap without rules.
func Identity() *RangeMap {
	return &RangeMap{policy: Reject}
}

// Translate maps id through the stage. Identifiers outside every rule are
// returned unchanged.
func (m *RangeMap) Translate(id uint64) uint64 {
	if seg, ok := m.lookup(id); ok {
		return seg.Apply(id)
	}

	return id
}

// Rules returns the declared rules in declared order.
func (m *RangeMap) Rules() []Rule {
	return slices.Clone(m.declared)
}

// Len returns the number of declared rules.
func (m *RangeMap) Len() int {
	return len(m.declared)
}

// Policy returns the overlap policy the map was built with.
func (m *RangeMap) Policy() OverlapPolicy {
	return m.policy
}

func (m *RangeMap) lookup(id uint64) (Rule, bool) {
	// The only candidate is the last segment starting at or before id.
	i := sort.Search(len(m.segments), func(i int) bool {
		return m.segments[i].Src > id
	})
	if i == 0 {
		return Rule{}, false
	}

	seg := m.segments[i-1]

	return seg, seg.Contains(id)
}

// FindOverlaps returns every pair of rules with intersecting source
// intervals, ordered by the first rule's source start. Rules failing Check
// are ignored.
func FindOverlaps(rules []Rule) []OverlapError {
	idx := make([]int, 0, len(rules))
	for i, r := range rules {
		if r.Check() == nil {
			idx = append(idx, i)
		}
	}

	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(rules[a].Src, rules[b].Src)
	})

	var found []OverlapError

	for k, i := range idx {
		for _, j := range idx[k+1:] {
			if rules[j].Src >= rules[i].End() {
				break
			}

			first, second := min(i, j), max(i, j)
			found = append(found, OverlapError{
				FirstIndex:  first,
				First:       rules[first],
				SecondIndex: second,
				Second:      rules[second],
			})
		}
	}

	return found
}

// clip removes from each rule the sources already claimed by an earlier
// rule. The result is disjoint but unsorted.
func clip(rules []Rule) []Rule {
	var out []Rule

	for _, r := range rules {
		parts := []Rule{r}

		for _, seg := range out {
			var rest []Rule
			for _, p := range parts {
				rest = append(rest, p.without(seg)...)
			}

			parts = rest
		}

		out = append(out, parts...)
	}

	return out
}
