package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/report"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/router"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/server"
	pkgserver "github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/pkg/server"
)

func main() {
	cfg := parseFlags()

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Port != "" {
		sCfg.Port = cfg.Port
	}

	rpt, err := report.ReadJSON(cfg.ReportPath)
	if err != nil {
		slog.Error("Failed to load report", "path", cfg.ReportPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Report loaded", "path", cfg.ReportPath, "images", rpt.Summary.TotalImages)

	s := server.NewServer(echo.New(), sCfg)

	healthChecker := pkgserver.NewOkHealthChecker()
	router.NewReportRouter(s.Echo, rpt, healthChecker).Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
