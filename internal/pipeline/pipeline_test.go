package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac-resolver/internal/rangemap"
)

type sampleStage struct {
	from, to string
	triples  [][3]uint64
}

var sampleStages = []sampleStage{
	{"seed", "soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
	{"soil", "fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer", "water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water", "light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
	{"light", "temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature", "humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity", "location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
}

var sampleSeeds = []uint64{79, 14, 55, 13}

func buildSample(t *testing.T) *Pipeline {
	t.Helper()

	stages := make([]Stage, 0, len(sampleStages))

	for _, s := range sampleStages {
		m, err := rangemap.FromTriples(s.triples)
		require.NoError(t, err)

		stages = append(stages, Stage{Name: s.from + "-to-" + s.to, From: s.from, To: s.to, Map: m})
	}

	p, err := New(stages, sampleSeeds)
	require.NoError(t, err)

	return p
}

func TestResolve_Sample(t *testing.T) {
	p := buildSample(t)

	tests := []struct {
		seed     uint64
		location uint64
	}{
		{79, 82},
		{14, 43},
		{55, 86},
		{13, 35},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.location, p.Resolve(tt.seed), "seed %d", tt.seed)
	}
}

func TestMinimumOver_Sample(t *testing.T) {
	p := buildSample(t)

	lowest, err := p.MinimumOver([]uint64{79, 14, 55, 13})
	require.NoError(t, err)
	assert.Equal(t, uint64(35), lowest)

	lowest, err = p.Lowest()
	require.NoError(t, err)
	assert.Equal(t, uint64(35), lowest)
}

func TestMinimumOver_EmptyInput(t *testing.T) {
	p := buildSample(t)

	lowest, err := p.MinimumOver(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.Zero(t, lowest)

	_, err = p.MinimumOver([]uint64{})
	require.ErrorIs(t, err, ErrEmptyInput)

	empty, err := New(p.Stages(), nil)
	require.NoError(t, err)

	_, err = empty.Lowest()
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestResolve_ChainComposition(t *testing.T) {
	first, err := rangemap.FromTriples([][3]uint64{{52, 50, 48}})
	require.NoError(t, err)

	single, err := New([]Stage{{Name: "s1", Map: first}}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(55), single.Resolve(53))

	chained, err := New([]Stage{
		{Name: "s1", Map: first},
		{Name: "noop", Map: rangemap.Identity()},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(55), chained.Resolve(53))
}

func TestResolve_NoStages(t *testing.T) {
	p, err := New(nil, []uint64{9, 4})
	require.NoError(t, err)

	assert.Equal(t, uint64(123), p.Resolve(123))
	assert.Empty(t, p.Source())
	assert.Empty(t, p.Target())

	lowest, err := p.Lowest()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), lowest)
}

func TestTrace_NoStagesKeepsSourceCategory(t *testing.T) {
	p, err := New(nil, []uint64{3}, WithSource("soil"))
	require.NoError(t, err)

	assert.Equal(t, "soil", p.Source())
	assert.Equal(t, "soil", p.Target())
	assert.Equal(t, []Step{{"soil", 3}}, p.Trace(3))

	staged := buildSample(t)
	withSource, err := New(staged.Stages(), nil, WithSource("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "seed", withSource.Source())
	assert.Equal(t, "location", withSource.Target())
}

func TestNew_RejectsNilStage(t *testing.T) {
	_, err := New([]Stage{{Name: "broken"}}, nil)
	require.ErrorIs(t, err, ErrNilStage)
}

func TestNew_CopiesInputs(t *testing.T) {
	seeds := []uint64{1, 2}

	p, err := New(nil, seeds)
	require.NoError(t, err)

	seeds[0] = 99
	assert.Equal(t, []uint64{1, 2}, p.Seeds())
}

func TestConstruction_Deterministic(t *testing.T) {
	a := buildSample(t)
	b := buildSample(t)

	for id := uint64(0); id < 200; id++ {
		require.Equal(t, a.Resolve(id), b.Resolve(id), "id %d", id)
	}

	la, err := a.Lowest()
	require.NoError(t, err)

	lb, err := b.Lowest()
	require.NoError(t, err)
	assert.Equal(t, la, lb)
}

func TestTrace_Sample(t *testing.T) {
	p := buildSample(t)

	steps := p.Trace(79)
	want := []Step{
		{"seed", 79},
		{"soil", 81},
		{"fertilizer", 81},
		{"water", 81},
		{"light", 74},
		{"temperature", 78},
		{"humidity", 78},
		{"location", 82},
	}
	assert.Equal(t, want, steps)

	assert.Equal(t, "seed", p.Source())
	assert.Equal(t, "location", p.Target())
}

func TestTrace_OtherSeeds(t *testing.T) {
	p := buildSample(t)

	values := func(steps []Step) []uint64 {
		out := make([]uint64, len(steps))
		for i, s := range steps {
			out[i] = s.Value
		}

		return out
	}

	assert.Equal(t, []uint64{14, 14, 53, 49, 42, 42, 43, 43}, values(p.Trace(14)))
	assert.Equal(t, []uint64{55, 57, 57, 53, 46, 82, 82, 86}, values(p.Trace(55)))
	assert.Equal(t, []uint64{13, 13, 52, 41, 34, 34, 35, 35}, values(p.Trace(13)))
}

func TestMinimumOverParallel(t *testing.T) {
	p := buildSample(t)

	ids := make([]uint64, 0, 100)
	for id := uint64(0); id < 100; id++ {
		ids = append(ids, id)
	}

	want, err := p.MinimumOver(ids)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 2, 3, 7, 64, 500} {
		got, err := p.MinimumOverParallel(context.Background(), ids, workers)
		require.NoError(t, err, "workers %d", workers)
		assert.Equal(t, want, got, "workers %d", workers)
	}

	got, err := p.MinimumOverParallel(context.Background(), sampleSeeds, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(35), got)
}

func TestMinimumOverParallel_Errors(t *testing.T) {
	p := buildSample(t)

	_, err := p.MinimumOverParallel(context.Background(), nil, 4)
	require.ErrorIs(t, err, ErrEmptyInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.MinimumOverParallel(ctx, sampleSeeds, 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPartition(t *testing.T) {
	ids := []uint64{1, 2, 3, 4, 5, 6, 7}

	chunks := partition(ids, 3)
	assert.Equal(t, [][]uint64{{1, 2, 3}, {4, 5, 6}, {7}}, chunks)

	chunks = partition(ids, 10)
	assert.Len(t, chunks, 7)
}

func TestSpansFromPairs(t *testing.T) {
	spans, err := SpansFromPairs(sampleSeeds)
	require.NoError(t, err)
	assert.Equal(t, []rangemap.Span{{Start: 79, Length: 14}, {Start: 55, Length: 13}}, spans)

	_, err = SpansFromPairs([]uint64{1, 2, 3})
	require.ErrorIs(t, err, ErrOddPairs)

	_, err = SpansFromPairs([]uint64{^uint64(0), 5})
	require.ErrorIs(t, err, rangemap.ErrOutOfRange)
}

func TestMinimumOverSpans_Sample(t *testing.T) {
	p := buildSample(t)

	spans, err := SpansFromPairs(sampleSeeds)
	require.NoError(t, err)

	lowest, err := p.MinimumOverSpans(spans)
	require.NoError(t, err)
	assert.Equal(t, uint64(46), lowest)
}

func TestMinimumOverSpans_MatchesPointwise(t *testing.T) {
	p := buildSample(t)

	spans := []rangemap.Span{{Start: 0, Length: 30}, {Start: 40, Length: 70}}

	var ids []uint64
	for _, s := range spans {
		for id := s.Start; id < s.End(); id++ {
			ids = append(ids, id)
		}

		var total uint64
		for _, out := range p.ResolveSpan(s) {
			total += out.Length
		}

		assert.Equal(t, s.Length, total)
	}

	want, err := p.MinimumOver(ids)
	require.NoError(t, err)

	got, err := p.MinimumOverSpans(spans)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMinimumOverSpans_Empty(t *testing.T) {
	p := buildSample(t)

	_, err := p.MinimumOverSpans(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = p.MinimumOverSpans([]rangemap.Span{{Start: 5, Length: 0}})
	require.ErrorIs(t, err, ErrEmptyInput)
}
