package almanac

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax indicates a malformed text almanac.
	ErrSyntax = errors.New("almanac syntax error")

	// ErrUnknownCategory indicates a category no section produces or consumes.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrBrokenChain indicates sections that do not link into a single path.
	ErrBrokenChain = errors.New("broken section chain")
)

// ParseError reports a syntax error in a text almanac.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// UnknownCategoryError names the missing category and close matches.
type UnknownCategoryError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownCategoryError) Error() string {
	msg := fmt.Sprintf("unknown category %q", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", strings.Join(e.Suggestions, `" or "`))
	}

	return msg
}

func (e *UnknownCategoryError) Unwrap() error {
	return ErrUnknownCategory
}
