package scorer

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/invoice"
)

// ItemFieldScore is one scored line-item sub-field with its literals.
type ItemFieldScore struct {
	Name        string
	GroundTruth string
	Predicted   string
	Record      MetricRecord
}

// ItemDetail is one scored row: a matched pair, or an unmatched ground-truth
// item carrying worst-case penalty records.
type ItemDetail struct {
	Index   int
	Matched bool
	Fields  []ItemFieldScore
}

// MetricAverages is a per-sub-field aggregate of the full record.
type MetricAverages struct {
	SetAverages
	EditAverages
}

// LineItemResult is the per-document line-item block: detection scores,
// per-sub-field averages over all rows, and the row details.
type LineItemResult struct {
	Precision float64
	Recall    float64
	F1        float64
	// Accuracy is matched / |ground truth items|, deliberately asymmetric.
	Accuracy float64

	TotalItems         int
	MatchedCount       int
	UnmatchedGTCount   int
	UnmatchedPredCount int

	SubFields map[string]MetricAverages
	EditAvg   EditAverages
	Details   []ItemDetail
}

var numericItemFields = map[string]bool{
	invoice.ItemFieldQuantity: true,
	invoice.ItemFieldPrice:    true,
	invoice.ItemFieldTotal:    true,
}

type matchCandidate struct {
	score   int
	gtIdx   int
	predIdx int
}

// matchItems pairs predicted to ground-truth items by fuzzy name similarity:
// every pair scoring strictly above the threshold is a candidate; candidates
// are taken best-first, each claiming both indices. Greedy, not globally
// optimal; ties keep candidate generation order (gt index, then pred index).
func matchItems(gtItems, predItems []invoice.LineItem, threshold int) (pairs [][2]int, unmatchedGT, unmatchedPred []int) {
	var candidates []matchCandidate
	for gi, gt := range gtItems {
		for pi, pred := range predItems {
			score := fuzzy.Ratio(strings.ToLower(gt.ProductName), strings.ToLower(pred.ProductName))
			if score > threshold {
				candidates = append(candidates, matchCandidate{score: score, gtIdx: gi, predIdx: pi})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	gtClaimed := make(map[int]bool, len(gtItems))
	predClaimed := make(map[int]bool, len(predItems))
	for _, c := range candidates {
		if gtClaimed[c.gtIdx] || predClaimed[c.predIdx] {
			continue
		}
		gtClaimed[c.gtIdx] = true
		predClaimed[c.predIdx] = true
		pairs = append(pairs, [2]int{c.gtIdx, c.predIdx})
	}

	for gi := range gtItems {
		if !gtClaimed[gi] {
			unmatchedGT = append(unmatchedGT, gi)
		}
	}
	for pi := range predItems {
		if !predClaimed[pi] {
			unmatchedPred = append(unmatchedPred, pi)
		}
	}
	return pairs, unmatchedGT, unmatchedPred
}

func compareItemField(name, gtVal, predVal string) MetricRecord {
	if numericItemFields[name] {
		return CompareNumeric(gtVal, predVal)
	}
	return Compare(gtVal, predVal)
}

// ScoreLineItems matches and scores the two item sequences. Both sequences
// empty is a perfect match; exactly one empty is a total mismatch.
func ScoreLineItems(gtItems, predItems []invoice.LineItem, threshold int) LineItemResult {
	if len(gtItems) == 0 && len(predItems) == 0 {
		return emptyMatchResult()
	}
	if len(gtItems) == 0 || len(predItems) == 0 {
		return totalMismatchResult(gtItems, predItems)
	}

	pairs, unmatchedGT, unmatchedPred := matchItems(gtItems, predItems, threshold)

	res := LineItemResult{
		TotalItems:         len(gtItems),
		MatchedCount:       len(pairs),
		UnmatchedGTCount:   len(unmatchedGT),
		UnmatchedPredCount: len(unmatchedPred),
		SubFields:          make(map[string]MetricAverages),
	}

	tp := len(pairs)
	if tp+len(unmatchedPred) > 0 {
		res.Precision = float64(tp) / float64(tp+len(unmatchedPred))
	}
	if tp+len(unmatchedGT) > 0 {
		res.Recall = float64(tp) / float64(tp+len(unmatchedGT))
	}
	if res.Precision+res.Recall > 0 {
		res.F1 = 2 * res.Precision * res.Recall / (res.Precision + res.Recall)
	}
	res.Accuracy = float64(tp) / float64(len(gtItems))

	for _, pair := range pairs {
		res.Details = append(res.Details, scoreMatchedRow(gtItems[pair[0]], predItems[pair[1]]))
	}
	for _, gi := range unmatchedGT {
		res.Details = append(res.Details, worstCaseRow(gtItems[gi]))
	}
	for i := range res.Details {
		res.Details[i].Index = i
	}

	res.SubFields, res.EditAvg = averageSubFields(res.Details)
	return res
}

func scoreMatchedRow(gt, pred invoice.LineItem) ItemDetail {
	detail := ItemDetail{Matched: true}
	for _, name := range invoice.ItemFieldNames() {
		gtVal := gt.Field(name)
		predVal := pred.Field(name)
		detail.Fields = append(detail.Fields, ItemFieldScore{
			Name:        name,
			GroundTruth: gtVal,
			Predicted:   predVal,
			Record:      compareItemField(name, gtVal, predVal),
		})
	}
	return detail
}

func worstCaseRow(gt invoice.LineItem) ItemDetail {
	detail := ItemDetail{}
	for _, name := range invoice.ItemFieldNames() {
		gtVal := gt.Field(name)
		detail.Fields = append(detail.Fields, ItemFieldScore{
			Name:        name,
			GroundTruth: gtVal,
			Record:      worstCaseRecord(gtVal),
		})
	}
	return detail
}

func averageSubFields(details []ItemDetail) (map[string]MetricAverages, EditAverages) {
	subFields := make(map[string]MetricAverages, len(invoice.ItemFieldNames()))
	var editAvg EditAverages
	if len(details) == 0 {
		return subFields, editAvg
	}

	sums := make(map[string]*MetricAverages)
	for _, name := range invoice.ItemFieldNames() {
		sums[name] = &MetricAverages{}
	}

	comparisons := 0
	for _, detail := range details {
		for _, fs := range detail.Fields {
			agg := sums[fs.Name]
			agg.Precision += fs.Record.Precision
			agg.Recall += fs.Record.Recall
			agg.F1 += fs.Record.F1
			agg.Accuracy += fs.Record.Accuracy
			agg.EditDistance += float64(fs.Record.EditDistance)
			agg.NormalizedEditDistance += fs.Record.NormalizedEditDistance
			agg.WER += fs.Record.WER
			agg.CER += fs.Record.CER

			editAvg.EditDistance += float64(fs.Record.EditDistance)
			editAvg.NormalizedEditDistance += fs.Record.NormalizedEditDistance
			editAvg.WER += fs.Record.WER
			editAvg.CER += fs.Record.CER
			comparisons++
		}
	}

	rows := float64(len(details))
	for name, agg := range sums {
		agg.Precision /= rows
		agg.Recall /= rows
		agg.F1 /= rows
		agg.Accuracy /= rows
		agg.EditDistance /= rows
		agg.NormalizedEditDistance /= rows
		agg.WER /= rows
		agg.CER /= rows
		subFields[name] = *agg
	}

	n := float64(comparisons)
	editAvg.EditDistance /= n
	editAvg.NormalizedEditDistance /= n
	editAvg.WER /= n
	editAvg.CER /= n

	return subFields, editAvg
}

func emptyMatchResult() LineItemResult {
	res := LineItemResult{
		Precision: 1.0,
		Recall:    1.0,
		F1:        1.0,
		Accuracy:  1.0,
		SubFields: make(map[string]MetricAverages),
	}
	for _, name := range invoice.ItemFieldNames() {
		res.SubFields[name] = MetricAverages{
			SetAverages: SetAverages{Precision: 1.0, Recall: 1.0, F1: 1.0, Accuracy: 1.0},
		}
	}
	return res
}

func totalMismatchResult(gtItems, predItems []invoice.LineItem) LineItemResult {
	res := LineItemResult{
		TotalItems:         len(gtItems),
		UnmatchedGTCount:   len(gtItems),
		UnmatchedPredCount: len(predItems),
		SubFields:          make(map[string]MetricAverages),
		EditAvg: EditAverages{
			EditDistance:           1.0,
			NormalizedEditDistance: 1.0,
			WER:                    1.0,
			CER:                    1.0,
		},
	}
	for _, name := range invoice.ItemFieldNames() {
		res.SubFields[name] = MetricAverages{
			EditAverages: EditAverages{
				EditDistance:           1.0,
				NormalizedEditDistance: 1.0,
				WER:                    1.0,
				CER:                    1.0,
			},
		}
	}
	for i, gt := range gtItems {
		row := worstCaseRow(gt)
		row.Index = i
		res.Details = append(res.Details, row)
	}
	return res
}
