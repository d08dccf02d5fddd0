package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/invoice"
)

func TestScoreFieldsIdenticalDocuments(t *testing.T) {
	doc := invoice.Document{
		RetailerName:  "Co.opmart",
		StoreName:     "Co.opmart Rach Mieu",
		StoreAddress:  "48 Phan Dang Luu",
		BillID:        "0001042",
		BillIDBarcode: "890123",
		BuyDate:       "12/03/2024",
		BuyTime:       "18:45",
	}

	res := ScoreFields(&doc, &doc)

	require.Len(t, res.PerField, 7)
	for _, fs := range res.PerField {
		assert.True(t, fs.Record.ExactMatch, fs.Name)
		assert.InDelta(t, 1.0, fs.Record.F1, 1e-9, fs.Name)
	}
	assert.InDelta(t, 1.0, res.Micro.Precision, 1e-9)
	assert.InDelta(t, 1.0, res.Micro.Recall, 1e-9)
	assert.InDelta(t, 1.0, res.Micro.F1, 1e-9)
	assert.InDelta(t, 1.0, res.Micro.Accuracy, 1e-9)
	assert.InDelta(t, 1.0, res.MacroF1, 1e-9)
	assert.InDelta(t, 1.0, res.Accuracy, 1e-9)
	assert.InDelta(t, 0.0, res.EditAvg.EditDistance, 1e-9)
	assert.InDelta(t, 0.0, res.EditAvg.WER, 1e-9)
	assert.InDelta(t, 0.0, res.EditAvg.CER, 1e-9)
}

func TestScoreFieldsEmptyPrediction(t *testing.T) {
	gt := invoice.Document{RetailerName: "Co.opmart"}
	pred := invoice.Document{}

	res := ScoreFields(&gt, &pred)

	// One field carries tokens, the other six are both-empty (perfect).
	retailer := res.PerField[0]
	assert.Equal(t, invoice.FieldRetailerName, retailer.Name)
	assert.Equal(t, "Co.opmart", retailer.GroundTruth)
	assert.Equal(t, "", retailer.Predicted)
	assert.InDelta(t, 0.0, retailer.Record.Precision, 1e-9)
	assert.InDelta(t, 0.0, retailer.Record.Recall, 1e-9)
	assert.False(t, retailer.Record.ExactMatch)

	// Micro pooling sees only the missed tokens: tp=0, fn=2 ("co", "opmart").
	assert.InDelta(t, 0.0, res.Micro.Recall, 1e-9)
	assert.InDelta(t, 0.0, res.Micro.Precision, 1e-9)

	// Macro averages mix one zero with six perfect both-empty fields.
	assert.InDelta(t, 6.0/7.0, res.MacroF1, 1e-9)
	assert.InDelta(t, 6.0/7.0, res.Accuracy, 1e-9)
}

func TestScoreFieldsMicroPoolsCountsNotRatios(t *testing.T) {
	// retailer_name: 1 of 1 token correct. store_name: 1 of 3 tokens correct.
	// Micro precision must be pooled (2/4), not the mean of ratios (2/3).
	gt := invoice.Document{
		RetailerName: "coopmart",
		StoreName:    "sieu thi vinmart",
	}
	pred := invoice.Document{
		RetailerName: "coopmart",
		StoreName:    "cua hang vinmart",
	}

	res := ScoreFields(&gt, &pred)

	assert.InDelta(t, 0.5, res.Micro.Precision, 1e-9)
	assert.InDelta(t, 0.5, res.Micro.Recall, 1e-9)
}
