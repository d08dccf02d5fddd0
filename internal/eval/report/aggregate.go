package report

// summarize aggregates per-image wire results into the corpus summary. It
// averages the already-rounded per-image values; every document weighs the
// same regardless of its size.
func summarize(perImage []ImageResult) Summary {
	summary := Summary{
		TotalImages:       len(perImage),
		FieldLevelSummary: make(map[string]FieldSummary),
		LineItem: LineItemSummary{
			SubFields: make(map[string]SubFieldSummary),
		},
	}
	if len(perImage) == 0 {
		return summary
	}
	n := float64(len(perImage))

	summary.TextMetricsSummary = summarizeText(perImage, n)
	summary.FieldLevelSummary = summarizeFields(perImage, n)
	summary.LineItem = summarizeLineItems(perImage, n)
	summary.OverallSummary = summarizeOverall(perImage, n)
	return summary
}

func summarizeText(perImage []ImageResult, n float64) TextSummary {
	var ts TextSummary
	for _, img := range perImage {
		if img.TextMetrics.ExactMatch {
			ts.ExactMatchRate++
		}
		ts.AvgNormalizedEditDistance += img.TextMetrics.NormalizedEditDistance
		ts.AvgWER += img.TextMetrics.WER
		ts.AvgCER += img.TextMetrics.CER
	}
	ts.ExactMatchRate = round(ts.ExactMatchRate / n)
	ts.AvgNormalizedEditDistance = round(ts.AvgNormalizedEditDistance / n)
	ts.AvgWER = round(ts.AvgWER / n)
	ts.AvgCER = round(ts.AvgCER / n)
	return ts
}

func summarizeFields(perImage []ImageResult, n float64) map[string]FieldSummary {
	out := make(map[string]FieldSummary, len(fieldOrder()))
	for _, name := range fieldOrder() {
		var fs FieldSummary
		for _, img := range perImage {
			fm, ok := img.FieldMetrics.Fields[name]
			if !ok {
				continue
			}
			fs.AvgPrecision += fm.Precision
			fs.AvgRecall += fm.Recall
			fs.AvgF1Score += fm.F1Score
			fs.AvgAccuracy += fm.Accuracy
			fs.AvgEditDistance += float64(fm.EditDistance)
			fs.AvgNormalizedEditDistance += fm.NormalizedEditDistance
			fs.AvgWER += fm.WER
			fs.AvgCER += fm.CER
			if fm.Match {
				fs.TotalCorrect++
			}
		}
		fs.AvgPrecision = round(fs.AvgPrecision / n)
		fs.AvgRecall = round(fs.AvgRecall / n)
		fs.AvgF1Score = round(fs.AvgF1Score / n)
		fs.AvgAccuracy = round(fs.AvgAccuracy / n)
		fs.AvgEditDistance = round(fs.AvgEditDistance / n)
		fs.AvgNormalizedEditDistance = round(fs.AvgNormalizedEditDistance / n)
		fs.AvgWER = round(fs.AvgWER / n)
		fs.AvgCER = round(fs.AvgCER / n)
		fs.TotalSamples = len(perImage)
		out[name] = fs
	}
	return out
}

func summarizeLineItems(perImage []ImageResult, n float64) LineItemSummary {
	var ls LineItemSummary
	for _, img := range perImage {
		block := img.FieldMetrics.LineItem
		ls.AvgPrecision += block.Precision
		ls.AvgRecall += block.Recall
		ls.AvgF1Score += block.F1Score
		ls.AvgAccuracy += block.Accuracy
		ls.AvgEditDistance += block.EditMetrics.AvgEditDistance
		ls.AvgNormalizedEditDistance += block.EditMetrics.AvgNormalizedEditDistance
		ls.AvgWER += block.EditMetrics.AvgWER
		ls.AvgCER += block.EditMetrics.AvgCER
	}
	ls.AvgPrecision = round(ls.AvgPrecision / n)
	ls.AvgRecall = round(ls.AvgRecall / n)
	ls.AvgF1Score = round(ls.AvgF1Score / n)
	ls.AvgAccuracy = round(ls.AvgAccuracy / n)
	ls.AvgEditDistance = round(ls.AvgEditDistance / n)
	ls.AvgNormalizedEditDistance = round(ls.AvgNormalizedEditDistance / n)
	ls.AvgWER = round(ls.AvgWER / n)
	ls.AvgCER = round(ls.AvgCER / n)

	ls.SubFields = summarizeSubFields(perImage, n)
	return ls
}

// summarizeSubFields averages each sub-field over the item rows of each
// image, then over all images. An image with no item rows contributes zero to
// the sums but still counts in the denominator.
func summarizeSubFields(perImage []ImageResult, n float64) map[string]SubFieldSummary {
	out := make(map[string]SubFieldSummary, len(itemFieldOrder()))
	for _, name := range itemFieldOrder() {
		var sf SubFieldSummary
		for _, img := range perImage {
			details := img.FieldMetrics.LineItem.ItemDetails
			if len(details) == 0 {
				continue
			}
			var per SubFieldSummary
			rows := 0
			for _, d := range details {
				fm, ok := d.SubFields[name]
				if !ok {
					continue
				}
				per.AvgPrecision += fm.Precision
				per.AvgRecall += fm.Recall
				per.AvgF1Score += fm.F1Score
				per.AvgAccuracy += fm.Accuracy
				per.AvgEditDistance += float64(fm.EditDistance)
				per.AvgNormalizedEditDistance += fm.NormalizedEditDistance
				per.AvgWER += fm.WER
				per.AvgCER += fm.CER
				rows++
			}
			if rows == 0 {
				continue
			}
			r := float64(rows)
			sf.AvgPrecision += per.AvgPrecision / r
			sf.AvgRecall += per.AvgRecall / r
			sf.AvgF1Score += per.AvgF1Score / r
			sf.AvgAccuracy += per.AvgAccuracy / r
			sf.AvgEditDistance += per.AvgEditDistance / r
			sf.AvgNormalizedEditDistance += per.AvgNormalizedEditDistance / r
			sf.AvgWER += per.AvgWER / r
			sf.AvgCER += per.AvgCER / r
		}
		sf.AvgPrecision = round(sf.AvgPrecision / n)
		sf.AvgRecall = round(sf.AvgRecall / n)
		sf.AvgF1Score = round(sf.AvgF1Score / n)
		sf.AvgAccuracy = round(sf.AvgAccuracy / n)
		sf.AvgEditDistance = round(sf.AvgEditDistance / n)
		sf.AvgNormalizedEditDistance = round(sf.AvgNormalizedEditDistance / n)
		sf.AvgWER = round(sf.AvgWER / n)
		sf.AvgCER = round(sf.AvgCER / n)
		out[name] = sf
	}
	return out
}

func summarizeOverall(perImage []ImageResult, n float64) OverallScore {
	var os OverallScore
	for _, img := range perImage {
		os.Precision += img.OverallImageScore.Precision
		os.Recall += img.OverallImageScore.Recall
		os.F1Score += img.OverallImageScore.F1Score
		os.Accuracy += img.OverallImageScore.Accuracy
		os.AvgEditDistance += img.OverallImageScore.AvgEditDistance
		os.AvgNormalizedEditDistance += img.OverallImageScore.AvgNormalizedEditDistance
		os.AvgWER += img.OverallImageScore.AvgWER
		os.AvgCER += img.OverallImageScore.AvgCER
	}
	os.Precision = round(os.Precision / n)
	os.Recall = round(os.Recall / n)
	os.F1Score = round(os.F1Score / n)
	os.Accuracy = round(os.Accuracy / n)
	os.AvgEditDistance = round(os.AvgEditDistance / n)
	os.AvgNormalizedEditDistance = round(os.AvgNormalizedEditDistance / n)
	os.AvgWER = round(os.AvgWER / n)
	os.AvgCER = round(os.AvgCER / n)
	return os
}
