// Package handler implements the HTTP surface of the SecureCheck service:
// the JSON API, CSV downloads, chart pages and the HTML dashboard.
// All handlers are methods on Server. They are split into topic files
// (health.go, insight.go, chart.go, page.go, log.go) but share one struct so
// they can reach its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/securecheck/internal/domain"
	"github.com/pkordes/securecheck/internal/query"
)

// InsightServicer defines the read operations the dashboard handlers depend
// on. Defining the interface here, in the consumer package, lets handler
// tests inject a mock without loading a dataset.
type InsightServicer interface {
	Summary(ctx context.Context) (domain.KPISummary, error)
	Queries(ctx context.Context) []query.Definition
	Run(ctx context.Context, id string) (domain.ResultTable, error)
}

// LogServicer accepts police logs from the entry form.
type LogServicer interface {
	Submit(ctx context.Context, entry domain.LogEntry) (domain.SubmittedLog, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	insights    InsightServicer
	logs        LogServicer
	chartAssets string
}

// NewServer constructs the Server with all its dependencies.
// chartAssets is the base URL the chart pages load ECharts from; empty
// uses the go-echarts default.
func NewServer(insights InsightServicer, logs LogServicer, chartAssets string) *Server {
	return &Server{insights: insights, logs: logs, chartAssets: chartAssets}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, "")
}

// Routes returns a chi router with every endpoint registered.
// Middleware is the caller's concern.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	// HTML pages.
	r.Get("/", s.GetDashboard)
	r.Get("/insights", s.GetInsights)
	r.Get("/logs/new", s.GetLogForm)
	r.Post("/logs/new", s.PostLogForm)

	r.Get("/charts/queries/{queryId}", s.GetQueryChart)

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.GetSummary)
		r.Get("/queries", s.ListQueries)
		r.Get("/queries/{queryId}", s.GetQuery)
		r.Post("/logs", s.CreateLog)
	})

	return r
}
