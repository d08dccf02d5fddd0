package textmetrics

import "strings"

// editOps are the operation counts along one optimal edit path from
// reference to hypothesis.
type editOps struct {
	insertions    int
	deletions     int
	substitutions int
}

// Alignment derives precision/recall/F1/accuracy from a full edit-operation
// trace over the case-folded pair. Characters the hypothesis recovered count
// as true positives; insertions and substitutions as false positives;
// deletions and substitutions as false negatives.
func Alignment(groundTruth, predicted string) SetScores {
	ref := []rune(strings.ToLower(groundTruth))
	hyp := []rune(strings.ToLower(predicted))

	if len(ref) == 0 && len(hyp) == 0 {
		return perfect()
	}
	if len(ref) == 0 || len(hyp) == 0 {
		return SetScores{}
	}

	ops := traceEditOps(ref, hyp)
	tp := len(ref) - ops.deletions - ops.substitutions
	fp := ops.insertions + ops.substitutions
	fn := ops.deletions + ops.substitutions

	s := SetScores{}
	if tp+fp > 0 {
		s.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		s.Recall = float64(tp) / float64(tp+fn)
	}
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	if tp+fp+fn > 0 {
		s.Accuracy = float64(tp) / float64(tp+fp+fn)
	}
	return s
}

// traceEditOps runs the full Levenshtein DP and walks one optimal path back,
// counting operations. The distance library only reports the distance, so
// the trace needs its own matrix.
func traceEditOps(ref, hyp []rune) editOps {
	rows, cols := len(ref)+1, len(hyp)+1

	d := make([][]int, rows)
	for i := range d {
		d[i] = make([]int, cols)
		d[i][0] = i
	}
	for j := 0; j < cols; j++ {
		d[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if ref[i-1] == hyp[j-1] {
				cost = 0
			}
			d[i][j] = min(
				d[i-1][j-1]+cost, // match or substitute
				d[i-1][j]+1,      // delete from reference
				d[i][j-1]+1,      // insert from hypothesis
			)
		}
	}

	var ops editOps
	i, j := len(ref), len(hyp)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && ref[i-1] == hyp[j-1] && d[i][j] == d[i-1][j-1]:
			i, j = i-1, j-1
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			ops.substitutions++
			i, j = i-1, j-1
		case i > 0 && d[i][j] == d[i-1][j]+1:
			ops.deletions++
			i--
		default:
			ops.insertions++
			j--
		}
	}
	return ops
}
