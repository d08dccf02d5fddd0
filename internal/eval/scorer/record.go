package scorer

import (
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/textmetrics"
)

// MetricRecord is the full comparison record for one ground-truth/predicted
// value pair: token-set scores, character-alignment scores, and the
// edit-distance family. Every field and sub-field comparison produces
// exactly one of these.
type MetricRecord struct {
	Precision              float64
	Recall                 float64
	F1                     float64
	Accuracy               float64
	CharPrecision          float64
	CharRecall             float64
	CharF1                 float64
	CharAccuracy           float64
	ExactMatch             bool
	EditDistance           int
	NormalizedEditDistance float64
	WER                    float64
	CER                    float64
}

// Compare computes the full metric record for one value pair.
func Compare(groundTruth, predicted string) MetricRecord {
	tok := textmetrics.TokenSet(groundTruth, predicted)
	align := textmetrics.Alignment(groundTruth, predicted)

	return MetricRecord{
		Precision:              tok.Precision,
		Recall:                 tok.Recall,
		F1:                     tok.F1,
		Accuracy:               tok.Accuracy,
		CharPrecision:          align.Precision,
		CharRecall:             align.Recall,
		CharF1:                 align.F1,
		CharAccuracy:           align.Accuracy,
		ExactMatch:             textmetrics.ExactMatch(groundTruth, predicted),
		EditDistance:           textmetrics.Distance(groundTruth, predicted),
		NormalizedEditDistance: textmetrics.NormalizedDistance(groundTruth, predicted),
		WER:                    textmetrics.WordErrorRate(groundTruth, predicted),
		CER:                    textmetrics.CharacterErrorRate(groundTruth, predicted),
	}
}

// CompareNumeric scores a quantity/price value pair on its digit-normalized
// form, so "160.000" and "160000" compare as equal. Callers still report the
// original literals.
func CompareNumeric(groundTruth, predicted string) MetricRecord {
	return Compare(
		textmetrics.NormalizeNumeric(groundTruth),
		textmetrics.NormalizeNumeric(predicted),
	)
}

// worstCaseRecord is the penalty record for a ground-truth value the
// prediction never produced: zero scores and a distance proportional to the
// unrecovered content.
func worstCaseRecord(groundTruth string) MetricRecord {
	return MetricRecord{
		EditDistance:           len([]rune(groundTruth)),
		NormalizedEditDistance: 1.0,
		WER:                    1.0,
		CER:                    1.0,
	}
}
