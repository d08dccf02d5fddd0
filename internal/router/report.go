package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/report"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/pkg/server"
)

// ReportRouter serves a finished evaluation report over HTTP.
type ReportRouter struct {
	e       *echo.Echo
	report  *report.Report
	checker server.HealthChecker
}

func NewReportRouter(e *echo.Echo, r *report.Report, checker server.HealthChecker) *ReportRouter {
	return &ReportRouter{
		e:       e,
		report:  r,
		checker: checker,
	}
}

func (r *ReportRouter) Bind() {
	r.e.GET("/report", r.reportHandler)
	r.e.GET("/summary", r.summaryHandler)
	r.e.GET("/healthz", r.healthHandler)
}

func (r *ReportRouter) reportHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.report)
}

func (r *ReportRouter) summaryHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.report.Summary)
}

func (r *ReportRouter) healthHandler(c echo.Context) error {
	if !r.checker.Healthy(c.Request().Context()) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
