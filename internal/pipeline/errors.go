package pipeline

import "errors"

var (
	// ErrEmptyInput indicates a minimum requested over no identifiers.
	ErrEmptyInput = errors.New("no starting identifiers")

	// ErrNilStage indicates a stage constructed without a range map.
	ErrNilStage = errors.New("stage has no range map")

	// ErrOddPairs indicates seed values that cannot be read as (start, length) pairs.
	ErrOddPairs = errors.New("seed values do not form start/length pairs")
)
