package textmetrics

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// SetScores groups the four overlap-derived scores shared by the token-set
// and character-alignment lenses. Accuracy here is intersection-over-union
// (token sets) or tp/(tp+fp+fn) (alignment), not classification accuracy.
type SetScores struct {
	Precision float64
	Recall    float64
	F1        float64
	Accuracy  float64
}

// Perfect is the both-empty identity: nothing expected, nothing predicted.
func perfect() SetScores {
	return SetScores{Precision: 1.0, Recall: 1.0, F1: 1.0, Accuracy: 1.0}
}

// TokenSet compares case-folded word-boundary token sets. Duplicates
// collapse: this is set semantics, so a token predicted twice scores the
// same as predicted once.
func TokenSet(groundTruth, predicted string) SetScores {
	gtTokens := tokenize(groundTruth)
	predTokens := tokenize(predicted)

	if len(gtTokens) == 0 && len(predTokens) == 0 {
		return perfect()
	}

	var tp int
	for tok := range gtTokens {
		if _, ok := predTokens[tok]; ok {
			tp++
		}
	}
	fp := len(predTokens) - tp
	fn := len(gtTokens) - tp
	union := tp + fp + fn

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
	if union > 0 {
		s.Accuracy = float64(tp) / float64(union)
	}
	return s
}

// TokenCounts returns the raw true/false positive/negative token counts for
// one pair, so callers can pool counts across fields before computing ratios
// (micro-averaging).
func TokenCounts(groundTruth, predicted string) (tp, fp, fn int) {
	gtTokens := tokenize(groundTruth)
	predTokens := tokenize(predicted)
	for tok := range gtTokens {
		if _, ok := predTokens[tok]; ok {
			tp++
		} else {
			fn++
		}
	}
	fp = len(predTokens) - tp
	return tp, fp, fn
}

func tokenize(s string) map[string]struct{} {
	tokens := wordPattern.FindAllString(strings.ToLower(s), -1)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
