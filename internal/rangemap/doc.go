// Package rangemap provides the single-stage remapping table of the almanac
// engine.
//
// A RangeMap holds rules of the form (Dest, Src, Length). An identifier
// inside [Src, Src+Length) is shifted to Dest+(id-Src); any other identifier
// passes through unchanged.
//
// Key capabilities:
//   - Eager rejection of overlapping, empty and out-of-range rules
//   - Binary search over rules sorted by source start
//   - Span translation that splits an interval at rule boundaries
//   - An opt-in first-match policy for rule sets that overlap
package rangemap
