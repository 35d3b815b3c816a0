package handler_test

import (
	"context"
	"net/http"

	"github.com/pkordes/securecheck/internal/domain"
	"github.com/pkordes/securecheck/internal/handler"
	"github.com/pkordes/securecheck/internal/query"
)

// ---- mock InsightServicer ----------------------------------------------------

type mockInsightServicer struct {
	summary func(ctx context.Context) (domain.KPISummary, error)
	queries func(ctx context.Context) []query.Definition
	run     func(ctx context.Context, id string) (domain.ResultTable, error)
}

func (m *mockInsightServicer) Summary(ctx context.Context) (domain.KPISummary, error) {
	return m.summary(ctx)
}

func (m *mockInsightServicer) Queries(ctx context.Context) []query.Definition {
	if m.queries == nil {
		return query.Catalog()
	}
	return m.queries(ctx)
}

func (m *mockInsightServicer) Run(ctx context.Context, id string) (domain.ResultTable, error) {
	return m.run(ctx, id)
}

// compile-time check: mockInsightServicer must satisfy handler.InsightServicer.
var _ handler.InsightServicer = (*mockInsightServicer)(nil)

// ---- mock LogServicer --------------------------------------------------------

type mockLogServicer struct {
	submit func(ctx context.Context, entry domain.LogEntry) (domain.SubmittedLog, error)
}

func (m *mockLogServicer) Submit(ctx context.Context, entry domain.LogEntry) (domain.SubmittedLog, error) {
	return m.submit(ctx, entry)
}

var _ handler.LogServicer = (*mockLogServicer)(nil)

// ---- helpers -----------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks. Either may be nil when
// the test does not reach it.
func newHTTPHandler(insights handler.InsightServicer, logs handler.LogServicer) http.Handler {
	return handler.NewServer(insights, logs, "").Routes()
}

// genderResult is a small gender distribution used across handler tests.
func genderResult() domain.ResultTable {
	return domain.ResultTable{
		QueryID: query.GenderDistributionID,
		Title:   "Driver Gender Distribution",
		Columns: [2]string{"Gender", "Count"},
		Rows: []domain.CountRow{
			{Label: "male", Count: 1200},
			{Label: "female", Count: 800},
		},
	}
}

// searchTypeResult is a small bar-chart shaped result.
func searchTypeResult() domain.ResultTable {
	return domain.ResultTable{
		QueryID: query.TopSearchTypesID,
		Title:   "Top 5 Most Frequent Search Types",
		Columns: [2]string{"Search Type", "Count"},
		Rows: []domain.CountRow{
			{Label: "Incident to Arrest", Count: 3},
			{Label: "Probable Cause", Count: 2},
		},
	}
}

// runReturning builds a run func that answers every id with res.
func runReturning(res domain.ResultTable, err error) func(context.Context, string) (domain.ResultTable, error) {
	return func(_ context.Context, _ string) (domain.ResultTable, error) {
		return res, err
	}
}
