package pg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/report"
)

// RunStorer keeps a history of evaluation runs in Postgres. One row per run,
// with the summary columns denormalized for quick querying and the full
// report as JSONB.
type RunStorer struct {
	db *pgxpool.Pool
}

func NewRunStorer(pool *ConnectionPool) *RunStorer {
	return &RunStorer{db: pool.GetConn()}
}

func (s *RunStorer) EnsureSchema(ctx context.Context) error {
	cmd := `
		CREATE TABLE IF NOT EXISTS eval_runs (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			gt_dir TEXT NOT NULL,
			pred_dir TEXT NOT NULL,
			total_images INT NOT NULL,
			overall_f1 DOUBLE PRECISION NOT NULL,
			overall_accuracy DOUBLE PRECISION NOT NULL,
			report JSONB NOT NULL
		)
	`
	if _, err := s.db.Exec(ctx, cmd); err != nil {
		return fmt.Errorf("failed to create eval_runs table: %w", err)
	}
	return nil
}

func (s *RunStorer) Save(ctx context.Context, r *report.Report) (uuid.UUID, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	cmd := `
		INSERT INTO eval_runs (id, created_at, gt_dir, pred_dir, total_images, overall_f1, overall_accuracy, report)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.Exec(
		ctx,
		cmd,
		r.Meta.RunID,
		r.Meta.Timestamp,
		r.Meta.GTDir,
		r.Meta.PredDir,
		r.Summary.TotalImages,
		r.Summary.OverallSummary.F1Score,
		r.Summary.OverallSummary.Accuracy,
		data,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert eval run: %w", err)
	}

	return r.Meta.RunID, nil
}
