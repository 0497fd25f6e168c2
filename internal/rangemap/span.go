package rangemap

import (
	"fmt"
	"math/bits"
	"sort"
)

// Span is the half-open interval [Start, Start+Length).
type Span struct {
	Start  uint64
	Length uint64
}

// NewSpan builds a Span, failing with ErrOutOfRange when its end does not
// fit in 64 bits.
func NewSpan(start, length uint64) (Span, error) {
	if _, carry := bits.Add64(start, length, 0); carry != 0 {
		return Span{}, fmt.Errorf("%w: span %d+%d", ErrOutOfRange, start, length)
	}

	return Span{Start: start, Length: length}, nil
}

// End returns the exclusive end of the span.
func (s Span) End() uint64 {
	return s.Start + s.Length
}

// String renders the span as a half-open interval.
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End())
}

// TranslateSpan maps every identifier of s through the stage. The span is
// split at rule boundaries; pieces are returned in source order, so their
// union is exactly the image of s.
func (m *RangeMap) TranslateSpan(s Span) []Span {
	if s.Length == 0 {
		return nil
	}

	var out []Span

	cur, end := s.Start, s.End()
	i := sort.Search(len(m.segments), func(i int) bool {
		return m.segments[i].End() > cur
	})

	for cur < end {
		if i < len(m.segments) && m.segments[i].Src <= cur {
			seg := m.segments[i]
			stop := min(end, seg.End())
			out = append(out, Span{Start: seg.Apply(cur), Length: stop - cur})
			cur = stop
			i++

			continue
		}

		// Gap before the next segment passes through unchanged.
		stop := end
		if i < len(m.segments) && m.segments[i].Src < end {
			stop = m.segments[i].Src
		}

		out = append(out, Span{Start: cur, Length: stop - cur})
		cur = stop
	}

	return out
}
