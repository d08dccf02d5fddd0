package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactMatch(t *testing.T) {
	assert.True(t, ExactMatch("Co.opmart", "Co.opmart"))
	assert.True(t, ExactMatch("  Co.opmart ", "Co.opmart"))
	assert.True(t, ExactMatch("", ""))
	assert.False(t, ExactMatch("Co.opmart", "Coopmart"))
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "invoice", "invoice", 0},
		{"both empty", "", "", 0},
		{"one empty", "abc", "", 3},
		{"substitution", "kitten", "sitten", 1},
		{"classic", "kitten", "sitting", 3},
		{"multibyte runes", "phở", "pho", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestNormalizedDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "abc", "abc", 0.0},
		{"both empty", "", "", 0.0},
		{"one empty", "abcd", "", 1.0},
		{"half different", "ab", "ax", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizedDistance(tt.a, tt.b), 1e-9)
		})
	}
}

func TestWordErrorRate(t *testing.T) {
	tests := []struct {
		name     string
		ref, hyp string
		want     float64
	}{
		{"both empty", "", "", 0.0},
		{"whitespace only", "   ", "\t", 0.0},
		{"identical", "nuoc suoi aquafina", "nuoc suoi aquafina", 0.0},
		{"identical after whitespace collapse", "nuoc  suoi", "nuoc suoi", 0.0},
		{"one empty", "nuoc", "", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WordErrorRate(tt.ref, tt.hyp), 1e-9)
		})
	}

	t.Run("symmetry", func(t *testing.T) {
		a, b := "sua tuoi vinamilk", "sua chua vinamilk"
		assert.InDelta(t, WordErrorRate(a, b), WordErrorRate(b, a), 1e-9)
	})
}

func TestCharacterErrorRate(t *testing.T) {
	tests := []struct {
		name     string
		ref, hyp string
		want     float64
	}{
		{"both empty", "", "", 0.0},
		{"identical ignoring spaces", "ab cd", "abcd", 0.0},
		{"one empty", "abcd", "", 1.0},
		{"one of four", "abcd", "abxd", 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CharacterErrorRate(tt.ref, tt.hyp), 1e-9)
		})
	}

	t.Run("symmetry", func(t *testing.T) {
		a, b := "0001042", "0001043"
		assert.InDelta(t, CharacterErrorRate(a, b), CharacterErrorRate(b, a), 1e-9)
	})
}

func TestTokenSet(t *testing.T) {
	tests := []struct {
		name     string
		gt, pred string
		want     SetScores
	}{
		{
			name: "both empty",
			want: SetScores{Precision: 1, Recall: 1, F1: 1, Accuracy: 1},
		},
		{
			name: "identical after case folding",
			gt:   "Co.opmart Rach Mieu",
			pred: "co.opmart rach mieu",
			want: SetScores{Precision: 1, Recall: 1, F1: 1, Accuracy: 1},
		},
		{
			name: "prediction empty",
			gt:   "Co.opmart",
			pred: "",
			want: SetScores{},
		},
		{
			name: "ground truth empty",
			gt:   "",
			pred: "Co.opmart",
			want: SetScores{},
		},
		{
			name: "partial overlap",
			gt:   "nuoc suoi aquafina",
			pred: "nuoc ngot aquafina",
			// tp=2 fp=1 fn=1: P=2/3 R=2/3 F1=2/3, Jaccard=2/4
			want: SetScores{Precision: 2.0 / 3, Recall: 2.0 / 3, F1: 2.0 / 3, Accuracy: 0.5},
		},
		{
			name: "duplicates collapse",
			gt:   "sua sua tuoi",
			pred: "sua tuoi",
			want: SetScores{Precision: 1, Recall: 1, F1: 1, Accuracy: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenSet(tt.gt, tt.pred)
			assert.InDelta(t, tt.want.Precision, got.Precision, 1e-9)
			assert.InDelta(t, tt.want.Recall, got.Recall, 1e-9)
			assert.InDelta(t, tt.want.F1, got.F1, 1e-9)
			assert.InDelta(t, tt.want.Accuracy, got.Accuracy, 1e-9)
		})
	}
}

func TestAlignment(t *testing.T) {
	tests := []struct {
		name     string
		gt, pred string
		want     SetScores
	}{
		{
			name: "both empty",
			want: SetScores{Precision: 1, Recall: 1, F1: 1, Accuracy: 1},
		},
		{
			name: "prediction empty",
			gt:   "abc",
			want: SetScores{},
		},
		{
			name: "ground truth empty",
			pred: "abc",
			want: SetScores{},
		},
		{
			name: "identical after case folding",
			gt:   "Aquafina",
			pred: "aquafina",
			want: SetScores{Precision: 1, Recall: 1, F1: 1, Accuracy: 1},
		},
		{
			name: "one substitution in four",
			gt:   "abcd",
			pred: "abxd",
			// tp=3 fp=1 fn=1: P=3/4 R=3/4 F1=3/4, acc=3/5
			want: SetScores{Precision: 0.75, Recall: 0.75, F1: 0.75, Accuracy: 0.6},
		},
		{
			name: "pure insertion",
			gt:   "abc",
			pred: "abcd",
			// tp=3 fp=1 fn=0: P=3/4 R=1 F1=6/7, acc=3/4
			want: SetScores{Precision: 0.75, Recall: 1, F1: 6.0 / 7, Accuracy: 0.75},
		},
		{
			name: "pure deletion",
			gt:   "abcd",
			pred: "abc",
			// tp=3 fp=0 fn=1: P=1 R=3/4 F1=6/7, acc=3/4
			want: SetScores{Precision: 1, Recall: 0.75, F1: 6.0 / 7, Accuracy: 0.75},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Alignment(tt.gt, tt.pred)
			assert.InDelta(t, tt.want.Precision, got.Precision, 1e-9)
			assert.InDelta(t, tt.want.Recall, got.Recall, 1e-9)
			assert.InDelta(t, tt.want.F1, got.F1, 1e-9)
			assert.InDelta(t, tt.want.Accuracy, got.Accuracy, 1e-9)
		})
	}
}

func TestTraceEditOpsMatchesDistance(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"168000", "168.000"},
		{"co.opmart", "coopmart"},
		{"abcdef", "fedcba"},
	}
	for _, p := range pairs {
		ops := traceEditOps([]rune(p[0]), []rune(p[1]))
		total := ops.insertions + ops.deletions + ops.substitutions
		assert.Equal(t, Distance(p[0], p[1]), total,
			"op counts along the trace must sum to the edit distance for %q vs %q", p[0], p[1])
	}
}

func TestNormalizeNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"168.000", "168000"},
		{"168,000", "168000"},
		{"168000đ", "168000"},
		{"168.000đ", "168000"},
		{" 2 x 5.000 ", "25000"},
		{"", ""},
		{"đ,.- ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeNumeric(tt.in))
		assert.Equal(t, NormalizeNumeric(tt.in), NormalizeNumeric(NormalizeNumeric(tt.in)),
			"normalization must be idempotent for %q", tt.in)
	}
}
