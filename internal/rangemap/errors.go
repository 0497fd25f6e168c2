package rangemap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRuleSet indicates rules that cannot form a well-defined stage.
	ErrMalformedRuleSet = errors.New("malformed rule set")

	// ErrOutOfRange indicates an interval that does not fit the identifier width.
	ErrOutOfRange = errors.New("range exceeds identifier width")
)

// OverlapError reports two rules whose source intervals intersect.
// Indices refer to declared positions, FirstIndex < SecondIndex.
type OverlapError struct {
	FirstIndex  int
	First       Rule
	SecondIndex int
	Second      Rule
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("rule %d (%s) overlaps rule %d (%s)",
		e.FirstIndex, e.First, e.SecondIndex, e.Second)
}

func (e *OverlapError) Unwrap() error {
	return ErrMalformedRuleSet
}
