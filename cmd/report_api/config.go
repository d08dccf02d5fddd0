package main

import (
	"flag"
)

type cliConfig struct {
	ReportPath string
	Port       string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.ReportPath, "report", "eval_results.json", "Path to an evaluation report JSON file")
	flag.StringVar(&cfg.Port, "port", "", "Listen port (overrides PORT env)")

	flag.Parse()
	return cfg
}
