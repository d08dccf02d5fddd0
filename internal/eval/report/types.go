package report

import (
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Report is the full evaluation report written to disk. Key names follow the
// published output contract; consumers parse them by name.
type Report struct {
	Meta            Meta          `json:"meta"`
	PerImageResults []ImageResult `json:"per_image_results"`
	Summary         Summary       `json:"summary"`
}

// Version identifies the evaluator that produced a report.
const Version = "1.0.0"

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Version     string          `json:"version"`
	GTDir       string          `json:"gt_dir"`
	PredDir     string          `json:"pred_dir"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewMeta(gtDir, predDir string) Meta {
	return Meta{
		RunID:     uuid.New(),
		Timestamp: time.Now().UTC(),
		Version:   Version,
		GTDir:     gtDir,
		PredDir:   predDir,
		Environment: EnvironmentInfo{
			GoVersion: runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			NumCPU:    runtime.NumCPU(),
		},
	}
}

type ImageResult struct {
	ImageID           string            `json:"image_id"`
	TextMetrics       TextMetrics       `json:"text_metrics"`
	FieldMetrics      FieldMetricsBlock `json:"field_metrics"`
	OverallImageScore OverallScore      `json:"overall_image_score"`
}

type TextMetrics struct {
	ExactMatch             bool    `json:"exact_match"`
	NormalizedEditDistance float64 `json:"normalized_edit_distance"`
	WER                    float64 `json:"wer"`
	CER                    float64 `json:"cer"`
}

// FieldMetricsBlock holds the seven scored header fields plus the nested
// line-item block. It serializes as one flat object with the field names as
// keys and "line_item" alongside them.
type FieldMetricsBlock struct {
	Fields   map[string]FieldMetrics
	LineItem LineItemBlock
}

// FieldMetrics is one scored value pair on the wire, used for header fields
// and line-item sub-fields alike.
type FieldMetrics struct {
	Precision              float64 `json:"precision"`
	Recall                 float64 `json:"recall"`
	F1Score                float64 `json:"f1_score"`
	Accuracy               float64 `json:"accuracy"`
	CharPrecision          float64 `json:"char_precision"`
	CharRecall             float64 `json:"char_recall"`
	CharF1                 float64 `json:"char_f1"`
	CharAccuracy           float64 `json:"char_accuracy"`
	Predicted              string  `json:"predicted"`
	GroundTruth            string  `json:"ground_truth"`
	Match                  bool    `json:"match"`
	EditDistance           int     `json:"edit_distance"`
	NormalizedEditDistance float64 `json:"normalized_edit_distance"`
	WER                    float64 `json:"wer"`
	CER                    float64 `json:"cer"`
}

type LineItemBlock struct {
	TotalItems         int          `json:"total_items"`
	CorrectItems       int          `json:"correct_items"`
	Precision          float64      `json:"precision"`
	Recall             float64      `json:"recall"`
	F1Score            float64      `json:"f1_score"`
	Accuracy           float64      `json:"accuracy"`
	MatchedCount       int          `json:"matched_count"`
	UnmatchedGTCount   int          `json:"unmatched_gt_count"`
	UnmatchedPredCount int          `json:"unmatched_pred_count"`
	EditMetrics        EditMetrics  `json:"edit_metrics"`
	ItemDetails        []ItemDetail `json:"item_details"`
}

type EditMetrics struct {
	AvgEditDistance           float64 `json:"avg_edit_distance"`
	AvgNormalizedEditDistance float64 `json:"avg_normalized_edit_distance"`
	AvgWER                    float64 `json:"avg_wer"`
	AvgCER                    float64 `json:"avg_cer"`
}

// ItemDetail is one scored line-item row. It serializes as an object with
// "item_index" plus one key per sub-field.
type ItemDetail struct {
	ItemIndex int
	SubFields map[string]FieldMetrics
}

type OverallScore struct {
	Precision                 float64 `json:"precision"`
	Recall                    float64 `json:"recall"`
	F1Score                   float64 `json:"f1_score"`
	Accuracy                  float64 `json:"accuracy"`
	AvgEditDistance           float64 `json:"avg_edit_distance"`
	AvgNormalizedEditDistance float64 `json:"avg_normalized_edit_distance"`
	AvgWER                    float64 `json:"avg_wer"`
	AvgCER                    float64 `json:"avg_cer"`
}

type Summary struct {
	TotalImages        int                     `json:"total_images"`
	TextMetricsSummary TextSummary             `json:"text_metrics_summary"`
	FieldLevelSummary  map[string]FieldSummary `json:"field_level_summary"`
	LineItem           LineItemSummary         `json:"line_item"`
	OverallSummary     OverallScore            `json:"overall_summary"`
}

type TextSummary struct {
	ExactMatchRate            float64 `json:"exact_match_rate"`
	AvgNormalizedEditDistance float64 `json:"avg_normalized_edit_distance"`
	AvgWER                    float64 `json:"avg_wer"`
	AvgCER                    float64 `json:"avg_cer"`
}

type FieldSummary struct {
	AvgPrecision              float64 `json:"avg_precision"`
	AvgRecall                 float64 `json:"avg_recall"`
	AvgF1Score                float64 `json:"avg_f1_score"`
	AvgAccuracy               float64 `json:"avg_accuracy"`
	AvgEditDistance           float64 `json:"avg_edit_distance"`
	AvgNormalizedEditDistance float64 `json:"avg_normalized_edit_distance"`
	AvgWER                    float64 `json:"avg_wer"`
	AvgCER                    float64 `json:"avg_cer"`
	TotalCorrect              int     `json:"total_correct"`
	TotalSamples              int     `json:"total_samples"`
}

type LineItemSummary struct {
	AvgPrecision              float64                    `json:"avg_precision"`
	AvgRecall                 float64                    `json:"avg_recall"`
	AvgF1Score                float64                    `json:"avg_f1_score"`
	AvgAccuracy               float64                    `json:"avg_accuracy"`
	AvgEditDistance           float64                    `json:"avg_edit_distance"`
	AvgNormalizedEditDistance float64                    `json:"avg_normalized_edit_distance"`
	AvgWER                    float64                    `json:"avg_wer"`
	AvgCER                    float64                    `json:"avg_cer"`
	SubFields                 map[string]SubFieldSummary `json:"sub_fields"`
}

type SubFieldSummary struct {
	AvgPrecision              float64 `json:"avg_precision"`
	AvgRecall                 float64 `json:"avg_recall"`
	AvgF1Score                float64 `json:"avg_f1_score"`
	AvgAccuracy               float64 `json:"avg_accuracy"`
	AvgEditDistance           float64 `json:"avg_edit_distance"`
	AvgNormalizedEditDistance float64 `json:"avg_normalized_edit_distance"`
	AvgWER                    float64 `json:"avg_wer"`
	AvgCER                    float64 `json:"avg_cer"`
}
