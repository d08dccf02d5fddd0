package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/apperr"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/scorer"
)

const DefaultOutput = "eval_results.json"

func LoadFromFile(path string) (*RunSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*RunSpec, error) {
	var s RunSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Resolve applies defaults and validates a spec assembled outside the YAML
// loader, e.g. from CLI flags.
func Resolve(s *RunSpec) error {
	return validate(s)
}

func validate(s *RunSpec) error {
	if s.GTDir == "" {
		return apperr.NewValidation("spec has no gt_dir")
	}
	if s.PredDir == "" {
		return apperr.NewValidation("spec has no pred_dir")
	}
	if s.FieldWeight < 0 || s.LineItemWeight < 0 {
		return apperr.NewValidation("weights must be non-negative")
	}
	if s.MatchThreshold < 0 || s.MatchThreshold > 100 {
		return apperr.NewValidation(fmt.Sprintf("match_threshold %d out of range [0,100]", s.MatchThreshold))
	}
	if s.Output == "" {
		s.Output = DefaultOutput
	}
	if s.FieldWeight == 0 && s.LineItemWeight == 0 {
		s.FieldWeight = scorer.DefaultFieldWeight
		s.LineItemWeight = scorer.DefaultLineItemWeight
	}
	if s.MatchThreshold == 0 {
		s.MatchThreshold = scorer.DefaultMatchThreshold
	}
	return nil
}

// ScorerConfig converts the run spec into the scorer's configuration.
func (s *RunSpec) ScorerConfig() scorer.Config {
	return scorer.Config{
		FieldWeight:    s.FieldWeight,
		LineItemWeight: s.LineItemWeight,
		MatchThreshold: s.MatchThreshold,
	}
}
