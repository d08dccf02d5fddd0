package main

import (
	"flag"
)

type cliConfig struct {
	SpecPath       string
	GTDir          string
	PredDir        string
	Output         string
	PgConnStr      string
	FieldWeight    float64
	LineItemWeight float64
	MatchThreshold int
	Quiet          bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SpecPath, "spec", "", "Path to run spec YAML (flags override its values)")
	flag.StringVar(&cfg.GTDir, "gt_dir", "", "Directory of ground-truth JSON files")
	flag.StringVar(&cfg.PredDir, "pred_dir", "", "Directory of predicted JSON files")
	flag.StringVar(&cfg.Output, "out", "", "Output path for the JSON report")
	flag.StringVar(&cfg.PgConnStr, "pg", "", "PostgreSQL connection string for run history (optional, or EVAL_PG_CONN)")
	flag.Float64Var(&cfg.FieldWeight, "field-weight", 0, "Weight of field-level scores in the overall blend")
	flag.Float64Var(&cfg.LineItemWeight, "line-item-weight", 0, "Weight of line-item scores in the overall blend")
	flag.IntVar(&cfg.MatchThreshold, "match-threshold", 0, "Fuzzy name ratio a line-item pair must exceed to match")
	flag.BoolVar(&cfg.Quiet, "quiet", false, "Suppress the console summary table")

	flag.Parse()
	return cfg
}
