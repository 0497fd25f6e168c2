package almanac

import (
	"errors"
	"fmt"

	"almanac-resolver/internal/logging"
	"almanac-resolver/internal/pipeline"
	"almanac-resolver/internal/rangemap"
)

// BuildOptions selects the part of the chain to build.
type BuildOptions struct {
	// From is the starting category; empty means the first source.
	From string
	// To is the final category; empty means the last target.
	To string
	// Policy decides how overlapping rules are handled.
	Policy rangemap.OverlapPolicy
}

// Build turns an almanac into a pipeline seeded with the file's seeds.
func Build(f *File, opts BuildOptions) (*pipeline.Pipeline, error) {
	if f == nil {
		return nil, errors.New("almanac is nil")
	}

	logger := logging.GetLogger("almanac.build")

	path, err := f.Chain(opts.From, opts.To)
	if err != nil {
		return nil, err
	}

	stages := make([]pipeline.Stage, 0, len(path))

	for _, i := range path {
		s := &f.Sections[i]

		m, err := rangemap.New(s.RangeRules(), rangemap.WithPolicy(opts.Policy))
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s.Label(i), err)
		}

		logger.Debug().
			Str("section", s.Label(i)).
			Str("from", s.From).
			Str("to", s.To).
			Int("rules", len(s.Rules)).
			Msg("Built stage")

		stages = append(stages, pipeline.Stage{Name: s.Label(i), From: s.From, To: s.To, Map: m})
	}

	p, err := pipeline.New(stages, f.Seeds, pipeline.WithSource(opts.From))
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("stages", len(stages)).
		Int("seeds", len(f.Seeds)).
		Str("policy", opts.Policy.String()).
		Msg("Built pipeline")

	return p, nil
}
