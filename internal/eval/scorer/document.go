package scorer

import (
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/textmetrics"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/invoice"
)

// TextScores are whole-document metrics over the raw JSON text.
type TextScores struct {
	ExactMatch             bool
	NormalizedEditDistance float64
	WER                    float64
	CER                    float64
}

// OverallScores is the weighted blend of field-level and line-item-level
// scores for one document.
type OverallScores struct {
	Precision              float64
	Recall                 float64
	F1                     float64
	Accuracy               float64
	EditDistance           float64
	NormalizedEditDistance float64
	WER                    float64
	CER                    float64
}

// DocumentResult is the complete evaluation of one ground-truth/prediction
// pair.
type DocumentResult struct {
	ImageID   string
	Text      TextScores
	Fields    FieldResult
	LineItems LineItemResult
	Overall   OverallScores
}

// EvaluatePair parses both JSON payloads and scores the prediction against
// the ground truth. Parsing never fails; malformed input scores as a
// near-total mismatch.
func EvaluatePair(gtJSON, predJSON, imageID string, cfg Config) DocumentResult {
	gtDoc := invoice.Parse(gtJSON)
	predDoc := invoice.Parse(predJSON)

	res := DocumentResult{
		ImageID: imageID,
		Text: TextScores{
			ExactMatch:             textmetrics.ExactMatch(gtDoc.RawText, predDoc.RawText),
			NormalizedEditDistance: textmetrics.NormalizedDistance(gtDoc.RawText, predDoc.RawText),
			WER:                    textmetrics.WordErrorRate(gtDoc.RawText, predDoc.RawText),
			CER:                    textmetrics.CharacterErrorRate(gtDoc.RawText, predDoc.RawText),
		},
		Fields:    ScoreFields(&gtDoc, &predDoc),
		LineItems: ScoreLineItems(gtDoc.LineItems, predDoc.LineItems, cfg.MatchThreshold),
	}

	res.Overall = blendOverall(res.Fields, res.LineItems, cfg)
	return res
}

func blendOverall(fields FieldResult, lineItems LineItemResult, cfg Config) OverallScores {
	fw, lw := cfg.FieldWeight, cfg.LineItemWeight

	o := OverallScores{
		Precision:              fields.Micro.Precision*fw + lineItems.Precision*lw,
		Recall:                 fields.Micro.Recall*fw + lineItems.Recall*lw,
		Accuracy:               fields.Accuracy*fw + lineItems.Accuracy*lw,
		EditDistance:           fields.EditAvg.EditDistance*fw + lineItems.EditAvg.EditDistance*lw,
		NormalizedEditDistance: fields.EditAvg.NormalizedEditDistance*fw + lineItems.EditAvg.NormalizedEditDistance*lw,
		WER:                    fields.EditAvg.WER*fw + lineItems.EditAvg.WER*lw,
		CER:                    fields.EditAvg.CER*fw + lineItems.EditAvg.CER*lw,
	}
	// F1 is recomputed from the blended precision and recall, not blended
	// directly.
	if o.Precision+o.Recall > 0 {
		o.F1 = 2 * o.Precision * o.Recall / (o.Precision + o.Recall)
	}
	return o
}
