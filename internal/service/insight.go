// Package service holds the business operations the HTTP handlers and the
// CLI call. It sits between the presentation layer and the query package
// and owns error wrapping and logging for those operations.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/securecheck/internal/dataset"
	"github.com/pkordes/securecheck/internal/domain"
	"github.com/pkordes/securecheck/internal/query"
)

// TableSource yields the loaded traffic-stop table.
// *dataset.Source satisfies it; tests can pass a fixed table.
type TableSource interface {
	Table() (*dataset.Table, error)
}

// InsightService runs dashboard KPIs and catalog queries over the loaded
// table.
type InsightService struct {
	tables TableSource
}

// NewInsightService constructs an InsightService reading from tables.
func NewInsightService(tables TableSource) *InsightService {
	return &InsightService{tables: tables}
}

// Summary returns the four dashboard KPIs.
func (s *InsightService) Summary(ctx context.Context) (domain.KPISummary, error) {
	t, err := s.tables.Table()
	if err != nil {
		return domain.KPISummary{}, fmt.Errorf("service.InsightService.Summary: %w", err)
	}
	kpi, err := query.Summarize(t)
	if err != nil {
		return domain.KPISummary{}, fmt.Errorf("service.InsightService.Summary: %w", err)
	}
	return kpi, nil
}

// Queries lists the query catalog.
func (s *InsightService) Queries(_ context.Context) []query.Definition {
	return query.Catalog()
}

// Run executes the catalog query named id.
// Returns domain.ErrNotFound for an unknown id and domain.ErrMissingField
// when the table lacks a column the query reads.
func (s *InsightService) Run(ctx context.Context, id string) (domain.ResultTable, error) {
	def, err := query.Lookup(id)
	if err != nil {
		return domain.ResultTable{}, fmt.Errorf("service.InsightService.Run: %w", err)
	}
	t, err := s.tables.Table()
	if err != nil {
		return domain.ResultTable{}, fmt.Errorf("service.InsightService.Run: %w", err)
	}
	res, err := def.Run(t)
	if err != nil {
		return domain.ResultTable{}, fmt.Errorf("service.InsightService.Run %s: %w", id, err)
	}
	slog.DebugContext(ctx, "query executed", "query_id", id, "rows", len(res.Rows), "table_rows", t.Len())
	return res, nil
}

// StaticTables is a TableSource over a table already in memory.
type StaticTables struct {
	T *dataset.Table
}

// Table returns the wrapped table.
func (s StaticTables) Table() (*dataset.Table, error) { return s.T, nil }
