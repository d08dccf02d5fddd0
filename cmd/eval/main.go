package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/report"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/runner"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/spec"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/storage/pg"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/pkg/config/env"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	if cfg.Quiet {
		slog.SetLogLoggerLevel(slog.LevelError)
	}

	_ = env.LoadDotEnv(os.Getenv("ENV"), "cmd/eval/.env")

	rs, err := resolveSpec(cfg)
	if err != nil {
		slog.Error("Invalid run configuration", "error", err)
		os.Exit(1)
	}

	r := runner.New(runner.Config{
		GTDir:   rs.GTDir,
		PredDir: rs.PredDir,
		Scorer:  rs.ScorerConfig(),
	})

	results, err := r.Run(ctx)
	if err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}

	rpt := report.Build(report.NewMeta(rs.GTDir, rs.PredDir), results)

	if !cfg.Quiet {
		report.WriteTable(rpt, os.Stdout)
	}

	if err := report.WriteJSON(rpt, rs.Output); err != nil {
		slog.Error("Failed to write JSON report", "error", err)
		os.Exit(1)
	}
	slog.Info("Report written", "path", rs.Output, "run_id", rpt.Meta.RunID)

	saveRunHistory(ctx, cfg, rpt)
}

// resolveSpec merges the optional spec file with CLI flags; flags win.
func resolveSpec(cfg cliConfig) (*spec.RunSpec, error) {
	rs := &spec.RunSpec{}
	if cfg.SpecPath != "" {
		loaded, err := spec.LoadFromFile(cfg.SpecPath)
		if err != nil {
			return nil, err
		}
		rs = loaded
	}

	if cfg.GTDir != "" {
		rs.GTDir = cfg.GTDir
	}
	if cfg.PredDir != "" {
		rs.PredDir = cfg.PredDir
	}
	if cfg.Output != "" {
		rs.Output = cfg.Output
	}
	if cfg.FieldWeight > 0 {
		rs.FieldWeight = cfg.FieldWeight
	}
	if cfg.LineItemWeight > 0 {
		rs.LineItemWeight = cfg.LineItemWeight
	}
	if cfg.MatchThreshold > 0 {
		rs.MatchThreshold = cfg.MatchThreshold
	}

	if err := spec.Resolve(rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// saveRunHistory persists the run to Postgres when a connection string is
// configured. Failures are logged, never fatal: the report on disk is the
// source of truth.
func saveRunHistory(ctx context.Context, cfg cliConfig, rpt *report.Report) {
	connStr := cfg.PgConnStr
	if connStr == "" {
		connStr = os.Getenv("EVAL_PG_CONN")
	}
	if connStr == "" {
		return
	}

	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: connStr})
	if err != nil {
		slog.Warn("Run history disabled, cannot connect to Postgres", "error", err)
		return
	}
	defer pool.Close()

	storer := pg.NewRunStorer(pool)
	if err := storer.EnsureSchema(ctx); err != nil {
		slog.Warn("Run history disabled, cannot ensure schema", "error", err)
		return
	}
	if _, err := storer.Save(ctx, rpt); err != nil {
		slog.Warn("Failed to save run history", "error", err)
		return
	}
	slog.Info("Run history saved", "run_id", rpt.Meta.RunID)
}
