package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/scorer"
)

func TestParse(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		yaml := `
gt_dir: data/ground_truth
pred_dir: data/predictions
output: results/run1.json
field_weight: 0.7
line_item_weight: 0.3
match_threshold: 80
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "data/ground_truth", s.GTDir)
		assert.Equal(t, "data/predictions", s.PredDir)
		assert.Equal(t, "results/run1.json", s.Output)
		assert.InDelta(t, 0.7, s.FieldWeight, 1e-9)
		assert.InDelta(t, 0.3, s.LineItemWeight, 1e-9)
		assert.Equal(t, 80, s.MatchThreshold)
	})

	t.Run("no gt_dir", func(t *testing.T) {
		_, err := Parse([]byte(`pred_dir: data/predictions`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no gt_dir")
	})

	t.Run("no pred_dir", func(t *testing.T) {
		_, err := Parse([]byte(`gt_dir: data/ground_truth`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no pred_dir")
	})

	t.Run("defaults applied", func(t *testing.T) {
		yaml := `
gt_dir: data/ground_truth
pred_dir: data/predictions
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, DefaultOutput, s.Output)
		assert.InDelta(t, scorer.DefaultFieldWeight, s.FieldWeight, 1e-9)
		assert.InDelta(t, scorer.DefaultLineItemWeight, s.LineItemWeight, 1e-9)
		assert.Equal(t, scorer.DefaultMatchThreshold, s.MatchThreshold)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		yaml := `
gt_dir: gt
pred_dir: pred
match_threshold: 120
`
		_, err := Parse([]byte(yaml))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("negative weight", func(t *testing.T) {
		yaml := `
gt_dir: gt
pred_dir: pred
field_weight: -0.1
`
		_, err := Parse([]byte(yaml))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "non-negative")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("gt_dir: [unclosed"))
		assert.Error(t, err)
	})
}

func TestScorerConfig(t *testing.T) {
	s := RunSpec{FieldWeight: 0.6, LineItemWeight: 0.4, MatchThreshold: 70}
	cfg := s.ScorerConfig()
	assert.InDelta(t, 0.6, cfg.FieldWeight, 1e-9)
	assert.InDelta(t, 0.4, cfg.LineItemWeight, 1e-9)
	assert.Equal(t, 70, cfg.MatchThreshold)
}
