package rangemap

import (
	"fmt"
	"math/bits"
)

// Rule remaps the source interval [Src, Src+Length) onto [Dest, Dest+Length).
// Field order follows the textual form: destination first.
//
// Both exclusive ends must fit in a uint64, so the last coverable identifier
// is math.MaxUint64-1. math.MaxUint64 itself always maps to itself.
type Rule struct {
	Dest   uint64
	Src    uint64
	Length uint64
}

// FromTriple builds a Rule from a (destination, source, length) triple.
func FromTriple(t [3]uint64) Rule {
	return Rule{Dest: t[0], Src: t[1], Length: t[2]}
}

// Check reports whether the rule is usable on its own: non-empty, and both
// exclusive ends at most math.MaxUint64.
func (r Rule) Check() error {
	if r.Length == 0 {
		return fmt.Errorf("%w: rule %s is empty", ErrMalformedRuleSet, r)
	}

	if _, carry := bits.Add64(r.Src, r.Length, 0); carry != 0 {
		return fmt.Errorf("%w: source interval of rule %s", ErrOutOfRange, r)
	}

	if _, carry := bits.Add64(r.Dest, r.Length, 0); carry != 0 {
		return fmt.Errorf("%w: destination interval of rule %s", ErrOutOfRange, r)
	}

	return nil
}

// End returns the exclusive end of the source interval. Only meaningful
// for rules that pass Check.
func (r Rule) End() uint64 {
	return r.Src + r.Length
}

// Contains reports whether id lies in the source interval.
func (r Rule) Contains(id uint64) bool {
	return id >= r.Src && id-r.Src < r.Length
}

// Apply shifts id by the rule offset. The caller guarantees Contains(id).
func (r Rule) Apply(id uint64) uint64 {
	return r.Dest + (id - r.Src)
}

// Overlaps reports whether the source intervals of r and o intersect.
func (r Rule) Overlaps(o Rule) bool {
	return r.Src < o.End() && o.Src < r.End()
}

// String renders the rule in its textual "dest src len" form.
func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.Dest, r.Src, r.Length)
}

// without returns the parts of r whose sources are not covered by o,
// each keeping the original offset.
func (r Rule) without(o Rule) []Rule {
	if !r.Overlaps(o) {
		return []Rule{r}
	}

	var parts []Rule

	if r.Src < o.Src {
		parts = append(parts, Rule{Dest: r.Dest, Src: r.Src, Length: o.Src - r.Src})
	}

	if r.End() > o.End() {
		skip := o.End() - r.Src
		parts = append(parts, Rule{Dest: r.Dest + skip, Src: o.End(), Length: r.End() - o.End()})
	}

	return parts
}
