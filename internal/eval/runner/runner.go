package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/scorer"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	return &Runner{config: cfg}
}

// Run scores every prediction file against its ground-truth counterpart.
// Files are paired by name; a prediction without ground truth is skipped
// with a warning. Results come back in file-name order.
func (r *Runner) Run(ctx context.Context) ([]scorer.DocumentResult, error) {
	if _, err := os.Stat(r.config.GTDir); err != nil {
		return nil, fmt.Errorf("ground truth dir: %w", err)
	}

	entries, err := os.ReadDir(r.config.PredDir)
	if err != nil {
		return nil, fmt.Errorf("predictions dir: %w", err)
	}

	var results []scorer.DocumentResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		gtData, err := os.ReadFile(filepath.Join(r.config.GTDir, name))
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("no ground truth for prediction, skipping", "file", name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read ground truth %q: %w", name, err)
		}

		predData, err := os.ReadFile(filepath.Join(r.config.PredDir, name))
		if err != nil {
			return nil, fmt.Errorf("read prediction %q: %w", name, err)
		}

		imageID := strings.TrimSuffix(name, ".json")
		res := scorer.EvaluatePair(string(gtData), string(predData), imageID, r.config.Scorer)
		results = append(results, res)

		slog.Debug("scored image",
			"image_id", imageID,
			"overall_f1", res.Overall.F1,
			"matched_items", res.LineItems.MatchedCount,
		)
	}

	slog.Info("evaluation complete", "images", len(results))
	return results, nil
}
