package scorer

import (
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/textmetrics"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/invoice"
)

// FieldScore is one scored scalar header field with its literals.
type FieldScore struct {
	Name        string
	GroundTruth string
	Predicted   string
	Record      MetricRecord
}

// SetAverages groups the four overlap scores at an aggregate level.
type SetAverages struct {
	Precision float64
	Recall    float64
	F1        float64
	Accuracy  float64
}

// EditAverages groups the edit-distance family at an aggregate level.
type EditAverages struct {
	EditDistance           float64
	NormalizedEditDistance float64
	WER                    float64
	CER                    float64
}

// FieldResult is the per-document summary over the seven header fields.
type FieldResult struct {
	PerField []FieldScore

	// Micro pools token counts across all fields before computing ratios.
	Micro SetAverages
	// MacroF1 is the arithmetic mean of the per-field F1 scores.
	MacroF1 float64
	// Accuracy is the arithmetic mean of the per-field Jaccard accuracies.
	Accuracy float64
	EditAvg  EditAverages
}

// ScoreFields compares every scalar header field of the pair and aggregates
// micro, macro, and edit-distance summaries.
func ScoreFields(groundTruth, predicted *invoice.Document) FieldResult {
	res := FieldResult{}

	var microTP, microFP, microFN int
	var f1Sum, accSum float64

	names := invoice.FieldNames()
	for _, name := range names {
		gtVal := groundTruth.Field(name)
		predVal := predicted.Field(name)

		rec := Compare(gtVal, predVal)
		res.PerField = append(res.PerField, FieldScore{
			Name:        name,
			GroundTruth: gtVal,
			Predicted:   predVal,
			Record:      rec,
		})

		tp, fp, fn := textmetrics.TokenCounts(gtVal, predVal)
		microTP += tp
		microFP += fp
		microFN += fn

		f1Sum += rec.F1
		accSum += rec.Accuracy
		res.EditAvg.EditDistance += float64(rec.EditDistance)
		res.EditAvg.NormalizedEditDistance += rec.NormalizedEditDistance
		res.EditAvg.WER += rec.WER
		res.EditAvg.CER += rec.CER
	}

	if microTP+microFP > 0 {
		res.Micro.Precision = float64(microTP) / float64(microTP+microFP)
	}
	if microTP+microFN > 0 {
		res.Micro.Recall = float64(microTP) / float64(microTP+microFN)
	}
	if res.Micro.Precision+res.Micro.Recall > 0 {
		res.Micro.F1 = 2 * res.Micro.Precision * res.Micro.Recall / (res.Micro.Precision + res.Micro.Recall)
	}
	if microTP+microFP+microFN > 0 {
		res.Micro.Accuracy = float64(microTP) / float64(microTP+microFP+microFN)
	}

	n := float64(len(names))
	res.MacroF1 = f1Sum / n
	res.Accuracy = accSum / n
	res.EditAvg.EditDistance /= n
	res.EditAvg.NormalizedEditDistance /= n
	res.EditAvg.WER /= n
	res.EditAvg.CER /= n

	return res
}
