package runner

import (
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/scorer"
)

type Config struct {
	// GTDir holds one ground-truth JSON file per invoice image.
	GTDir string
	// PredDir holds the extraction outputs, named after their ground-truth
	// counterparts.
	PredDir string
	Scorer  scorer.Config
}
