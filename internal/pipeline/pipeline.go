package pipeline

import (
	"fmt"
	"slices"

	"almanac-resolver/internal/common"
	"almanac-resolver/internal/rangemap"
)

// Stage is one category-to-category translation step.
type Stage struct {
	// Name of the stage, e.g. "seed-to-soil".
	Name string
	// From is the input category.
	From string
	// To is the output category; it is the From of the next stage.
	To string
	// Map is the stage's remapping table.
	Map *rangemap.RangeMap
}

// Step is the value of an identifier in one category of a trace.
type Step struct {
	Category string
	Value    uint64
}

// Pipeline is an ordered chain of stages plus the starting identifiers.
type Pipeline struct {
	stages []Stage
	seeds  []uint64
	// source names the input category of a pipeline without stages.
	source string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSource names the category identifiers start in. It only matters when
// there are no stages; otherwise the first stage's From is the source.
func WithSource(category string) Option {
	return func(p *Pipeline) {
		p.source = category
	}
}

// New creates a Pipeline. Stage order is the resolution order.
func New(stages []Stage, seeds []uint64, opts ...Option) (*Pipeline, error) {
	for i, st := range stages {
		if st.Map == nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, st.Name, ErrNilStage)
		}
	}

	p := &Pipeline{
		stages: slices.Clone(stages),
		seeds:  slices.Clone(seeds),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Stages returns the stages in resolution order.
func (p *Pipeline) Stages() []Stage {
	return slices.Clone(p.stages)
}

// Seeds returns the starting identifiers the pipeline was built with.
func (p *Pipeline) Seeds() []uint64 {
	return slices.Clone(p.seeds)
}

// Source returns the input category of the first stage. Without stages it
// is the category given to WithSource, possibly "".
func (p *Pipeline) Source() string {
	if first, ok := common.First(p.stages); ok {
		return first.From
	}

	return p.source
}

// Target returns the output category of the last stage. Without stages
// identifiers never leave the source category.
func (p *Pipeline) Target() string {
	if last, ok := common.Last(p.stages); ok {
		return last.To
	}

	return p.source
}

// Resolve folds id through every stage in order.
func (p *Pipeline) Resolve(id uint64) uint64 {
	for _, st := range p.stages {
		id = st.Map.Translate(id)
	}

	return id
}

// Trace resolves id and records its value in every category, starting
// with the source category.
func (p *Pipeline) Trace(id uint64) []Step {
	steps := make([]Step, 0, len(p.stages)+1)
	steps = append(steps, Step{Category: p.Source(), Value: id})

	for _, st := range p.stages {
		id = st.Map.Translate(id)
		steps = append(steps, Step{Category: st.To, Value: id})
	}

	return steps
}

// MinimumOver returns the lowest resolved value over ids.
func (p *Pipeline) MinimumOver(ids []uint64) (uint64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyInput
	}

	return p.minimum(ids), nil
}

// Lowest returns the lowest resolved value over the pipeline's seeds.
func (p *Pipeline) Lowest() (uint64, error) {
	return p.MinimumOver(p.seeds)
}

func (p *Pipeline) minimum(ids []uint64) uint64 {
	lowest := p.Resolve(ids[0])
	for _, id := range ids[1:] {
		lowest = min(lowest, p.Resolve(id))
	}

	return lowest
}
