package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleInvoiceJSON = `{
	"retailer_name": "Co.opmart",
	"store_name": "Co.opmart Rach Mieu",
	"store_address": "48 Phan Dang Luu, Phu Nhuan",
	"bill_id": "0001042",
	"bill_id_barcode": "890123456",
	"buy_date": "12/03/2024",
	"buy_time": "18:45",
	"line_items": [
		{"product_SKU": "SP01", "quantity": "2", "product_name": "Nuoc suoi Aquafina 500ml", "unit_price": "5.000", "product_total": "10.000"},
		{"product_SKU": "SP02", "quantity": "1", "product_name": "Sua tuoi Vinamilk 1L", "unit_price": "32.000", "product_total": "32.000"}
	]
}`

func TestEvaluatePairRoundTrip(t *testing.T) {
	res := EvaluatePair(sampleInvoiceJSON, sampleInvoiceJSON, "invoice_001", DefaultConfig())

	assert.Equal(t, "invoice_001", res.ImageID)

	assert.True(t, res.Text.ExactMatch)
	assert.InDelta(t, 0.0, res.Text.NormalizedEditDistance, 1e-9)
	assert.InDelta(t, 0.0, res.Text.WER, 1e-9)
	assert.InDelta(t, 0.0, res.Text.CER, 1e-9)

	assert.InDelta(t, 1.0, res.Overall.Precision, 1e-9)
	assert.InDelta(t, 1.0, res.Overall.Recall, 1e-9)
	assert.InDelta(t, 1.0, res.Overall.F1, 1e-9)
	assert.InDelta(t, 1.0, res.Overall.Accuracy, 1e-9)
	assert.InDelta(t, 0.0, res.Overall.EditDistance, 1e-9)
	assert.InDelta(t, 0.0, res.Overall.NormalizedEditDistance, 1e-9)
	assert.InDelta(t, 0.0, res.Overall.WER, 1e-9)
	assert.InDelta(t, 0.0, res.Overall.CER, 1e-9)
}

func TestEvaluatePairMalformedPrediction(t *testing.T) {
	res := EvaluatePair(sampleInvoiceJSON, `{not json`, "invoice_002", DefaultConfig())

	// The prediction degrades to an empty document and is still scored.
	assert.False(t, res.Text.ExactMatch)
	assert.InDelta(t, 0.0, res.Fields.Micro.Recall, 1e-9)
	assert.InDelta(t, 0.0, res.LineItems.Recall, 1e-9)
	assert.Equal(t, 2, res.LineItems.UnmatchedGTCount)
	assert.Less(t, res.Overall.Accuracy, 0.01)
}

func TestBlendOverallWeights(t *testing.T) {
	fields := FieldResult{
		Micro:    SetAverages{Precision: 1.0, Recall: 0.5},
		Accuracy: 0.8,
		EditAvg:  EditAverages{EditDistance: 2.0, WER: 0.2},
	}
	lineItems := LineItemResult{
		Precision: 0.5,
		Recall:    1.0,
		Accuracy:  0.3,
		EditAvg:   EditAverages{EditDistance: 4.0, WER: 0.6},
	}

	o := blendOverall(fields, lineItems, DefaultConfig())

	assert.InDelta(t, 1.0*0.6+0.5*0.4, o.Precision, 1e-9)
	assert.InDelta(t, 0.5*0.6+1.0*0.4, o.Recall, 1e-9)
	assert.InDelta(t, 0.8*0.6+0.3*0.4, o.Accuracy, 1e-9)
	assert.InDelta(t, 2.0*0.6+4.0*0.4, o.EditDistance, 1e-9)
	assert.InDelta(t, 0.2*0.6+0.6*0.4, o.WER, 1e-9)

	p, r := o.Precision, o.Recall
	assert.InDelta(t, 2*p*r/(p+r), o.F1, 1e-9, "F1 recomputed from blended P/R")
}
