package rangemap

import "fmt"

//go:generate go tool stringer -type=OverlapPolicy -linecomment -output=policy_string.go

// OverlapPolicy decides what construction does with overlapping rules.
type OverlapPolicy int

const (
	// Reject fails construction with ErrMalformedRuleSet.
	Reject OverlapPolicy = iota // reject
	// FirstMatch lets the earliest declared rule win wherever rules overlap.
	FirstMatch // first-match
)

// ParseOverlapPolicy parses the textual name of a policy.
func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	switch s {
	case Reject.String(), "":
		return Reject, nil
	case FirstMatch.String():
		return FirstMatch, nil
	default:
		return Reject, fmt.Errorf("unknown overlap policy %q (want %q or %q)", s, Reject, FirstMatch)
	}
}
