package report

import (
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/scorer"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/invoice"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/pkg/utils"
)

const decimals = 4

func round(v float64) float64 {
	return utils.RoundDecimal(v, decimals)
}

// Build converts raw per-document results into the wire report. All float
// metrics are rounded here; the scorer keeps full precision.
func Build(meta Meta, results []scorer.DocumentResult) *Report {
	perImage := make([]ImageResult, 0, len(results))
	for i := range results {
		perImage = append(perImage, buildImageResult(&results[i]))
	}
	return &Report{
		Meta:            meta,
		PerImageResults: perImage,
		Summary:         summarize(perImage),
	}
}

func buildImageResult(res *scorer.DocumentResult) ImageResult {
	return ImageResult{
		ImageID: res.ImageID,
		TextMetrics: TextMetrics{
			ExactMatch:             res.Text.ExactMatch,
			NormalizedEditDistance: round(res.Text.NormalizedEditDistance),
			WER:                    round(res.Text.WER),
			CER:                    round(res.Text.CER),
		},
		FieldMetrics: FieldMetricsBlock{
			Fields:   buildHeaderFields(res.Fields),
			LineItem: buildLineItemBlock(res.LineItems),
		},
		OverallImageScore: OverallScore{
			Precision:                 round(res.Overall.Precision),
			Recall:                    round(res.Overall.Recall),
			F1Score:                   round(res.Overall.F1),
			Accuracy:                  round(res.Overall.Accuracy),
			AvgEditDistance:           round(res.Overall.EditDistance),
			AvgNormalizedEditDistance: round(res.Overall.NormalizedEditDistance),
			AvgWER:                    round(res.Overall.WER),
			AvgCER:                    round(res.Overall.CER),
		},
	}
}

func buildHeaderFields(fields scorer.FieldResult) map[string]FieldMetrics {
	out := make(map[string]FieldMetrics, len(fields.PerField))
	for _, fs := range fields.PerField {
		out[fs.Name] = buildFieldMetrics(fs.GroundTruth, fs.Predicted, fs.Record)
	}
	return out
}

func buildFieldMetrics(gt, pred string, rec scorer.MetricRecord) FieldMetrics {
	return FieldMetrics{
		Precision:              round(rec.Precision),
		Recall:                 round(rec.Recall),
		F1Score:                round(rec.F1),
		Accuracy:               round(rec.Accuracy),
		CharPrecision:          round(rec.CharPrecision),
		CharRecall:             round(rec.CharRecall),
		CharF1:                 round(rec.CharF1),
		CharAccuracy:           round(rec.CharAccuracy),
		Predicted:              pred,
		GroundTruth:            gt,
		Match:                  rec.ExactMatch,
		EditDistance:           rec.EditDistance,
		NormalizedEditDistance: round(rec.NormalizedEditDistance),
		WER:                    round(rec.WER),
		CER:                    round(rec.CER),
	}
}

func buildLineItemBlock(li scorer.LineItemResult) LineItemBlock {
	block := LineItemBlock{
		TotalItems:         li.TotalItems,
		CorrectItems:       li.MatchedCount,
		Precision:          round(li.Precision),
		Recall:             round(li.Recall),
		F1Score:            round(li.F1),
		Accuracy:           round(li.Accuracy),
		MatchedCount:       li.MatchedCount,
		UnmatchedGTCount:   li.UnmatchedGTCount,
		UnmatchedPredCount: li.UnmatchedPredCount,
		EditMetrics: EditMetrics{
			AvgEditDistance:           round(li.EditAvg.EditDistance),
			AvgNormalizedEditDistance: round(li.EditAvg.NormalizedEditDistance),
			AvgWER:                    round(li.EditAvg.WER),
			AvgCER:                    round(li.EditAvg.CER),
		},
		ItemDetails: make([]ItemDetail, 0, len(li.Details)),
	}
	for _, d := range li.Details {
		detail := ItemDetail{
			ItemIndex: d.Index,
			SubFields: make(map[string]FieldMetrics, len(d.Fields)),
		}
		for _, fs := range d.Fields {
			detail.SubFields[fs.Name] = buildFieldMetrics(fs.GroundTruth, fs.Predicted, fs.Record)
		}
		block.ItemDetails = append(block.ItemDetails, detail)
	}
	return block
}

// fieldOrder mirrors the scored header fields so the report serializes them
// in a stable order.
func fieldOrder() []string { return invoice.FieldNames() }

func itemFieldOrder() []string { return invoice.ItemFieldNames() }
