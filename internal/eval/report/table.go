package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Invoice Extraction Evaluation ===\n")
	fmt.Fprintf(tw, "\nRun %s over %d image(s)\n", r.Meta.RunID, r.Summary.TotalImages)

	if r.Summary.TotalImages > 0 {
		writeOverallTable(tw, r)
		writeFieldTable(tw, r)
		writeLineItemTable(tw, r)
	}

	tw.Flush()
}

func writeOverallTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "\nOverall (field-level weighted with line items)\n\n")

	header := []string{"Precision", "Recall", "F1", "Accuracy", "AvgEdit", "AvgNormEdit", "AvgWER", "AvgCER"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, separator(len(header)))

	os := r.Summary.OverallSummary
	fmt.Fprintln(tw, strings.Join([]string{
		fmt.Sprintf("%.4f", os.Precision),
		fmt.Sprintf("%.4f", os.Recall),
		fmt.Sprintf("%.4f", os.F1Score),
		fmt.Sprintf("%.4f", os.Accuracy),
		fmt.Sprintf("%.4f", os.AvgEditDistance),
		fmt.Sprintf("%.4f", os.AvgNormalizedEditDistance),
		fmt.Sprintf("%.4f", os.AvgWER),
		fmt.Sprintf("%.4f", os.AvgCER),
	}, "\t"))

	ts := r.Summary.TextMetricsSummary
	fmt.Fprintf(tw, "\nRaw text: exact match rate %.4f, norm edit %.4f, WER %.4f, CER %.4f\n",
		ts.ExactMatchRate, ts.AvgNormalizedEditDistance, ts.AvgWER, ts.AvgCER)
}

func writeFieldTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "\nHeader Fields (mean across %d image(s))\n\n", r.Summary.TotalImages)

	header := []string{"Field", "Precision", "Recall", "F1", "Accuracy", "AvgEdit", "Correct"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, separator(len(header)))

	for _, name := range fieldOrder() {
		fs, ok := r.Summary.FieldLevelSummary[name]
		if !ok {
			continue
		}
		fmt.Fprintln(tw, strings.Join([]string{
			name,
			fmt.Sprintf("%.4f", fs.AvgPrecision),
			fmt.Sprintf("%.4f", fs.AvgRecall),
			fmt.Sprintf("%.4f", fs.AvgF1Score),
			fmt.Sprintf("%.4f", fs.AvgAccuracy),
			fmt.Sprintf("%.4f", fs.AvgEditDistance),
			fmt.Sprintf("%d/%d", fs.TotalCorrect, fs.TotalSamples),
		}, "\t"))
	}
}

func writeLineItemTable(tw *tabwriter.Writer, r *Report) {
	li := r.Summary.LineItem
	fmt.Fprintf(tw, "\nLine Items\n\n")
	fmt.Fprintf(tw, "Detection: precision %.4f, recall %.4f, F1 %.4f, accuracy %.4f\n\n",
		li.AvgPrecision, li.AvgRecall, li.AvgF1Score, li.AvgAccuracy)

	header := []string{"Sub-field", "Precision", "Recall", "F1", "Accuracy", "AvgEdit", "AvgWER", "AvgCER"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, separator(len(header)))

	for _, name := range itemFieldOrder() {
		sf, ok := li.SubFields[name]
		if !ok {
			continue
		}
		fmt.Fprintln(tw, strings.Join([]string{
			name,
			fmt.Sprintf("%.4f", sf.AvgPrecision),
			fmt.Sprintf("%.4f", sf.AvgRecall),
			fmt.Sprintf("%.4f", sf.AvgF1Score),
			fmt.Sprintf("%.4f", sf.AvgAccuracy),
			fmt.Sprintf("%.4f", sf.AvgEditDistance),
			fmt.Sprintf("%.4f", sf.AvgWER),
			fmt.Sprintf("%.4f", sf.AvgCER),
		}, "\t"))
	}

	fmt.Fprintln(tw)
}

func separator(cols int) string {
	sep := make([]string, cols)
	for i := range sep {
		sep[i] = "---"
	}
	return strings.Join(sep, "\t")
}
