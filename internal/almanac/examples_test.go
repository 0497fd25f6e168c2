package almanac_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"almanac-resolver/internal/almanac"
	"almanac-resolver/internal/pipeline"
	"almanac-resolver/internal/rangemap"
)

// exampleExpectations is the expected.yaml beside each example almanac.
type exampleExpectations struct {
	Policy string        `yaml:"policy"`
	Cases  []exampleCase `yaml:"cases"`
}

type exampleCase struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Lowest uint64  `yaml:"lowest"`
	Spans  *uint64 `yaml:"spans"`
}

func TestExamples(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	dirs, err := filepath.Glob(filepath.Join(repoRoot, "examples", "*"))
	require.NoError(t, err)
	require.NotEmpty(t, dirs)

	for _, dir := range dirs {
		t.Run(filepath.Base(dir), func(t *testing.T) {
			t.Parallel()

			docs, err := filepath.Glob(filepath.Join(dir, "almanac.*"))
			require.NoError(t, err)
			require.Len(t, docs, 1, "expected exactly one almanac file")

			raw, err := os.ReadFile(filepath.Join(dir, "expected.yaml"))
			require.NoError(t, err)

			var want exampleExpectations
			require.NoError(t, yaml.Unmarshal(raw, &want))

			policy, err := rangemap.ParseOverlapPolicy(want.Policy)
			require.NoError(t, err)

			f, err := almanac.LoadFile(docs[0])
			require.NoError(t, err)

			assert.True(t, almanac.Validate(f, policy).IsValid())

			for _, c := range want.Cases {
				p, err := almanac.Build(f, almanac.BuildOptions{From: c.From, To: c.To, Policy: policy})
				require.NoError(t, err)

				lowest, err := p.Lowest()
				require.NoError(t, err)
				assert.Equal(t, c.Lowest, lowest, "lowest from %q to %q", c.From, c.To)

				if c.Spans == nil {
					continue
				}

				spans, err := pipeline.SpansFromPairs(p.Seeds())
				require.NoError(t, err)

				lowestSpan, err := p.MinimumOverSpans(spans)
				require.NoError(t, err)
				assert.Equal(t, *c.Spans, lowestSpan, "spans from %q to %q", c.From, c.To)
			}
		})
	}
}
