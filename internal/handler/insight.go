package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/securecheck/internal/domain"
)

// Format selects the representation of a query result.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// QueryInfo is one entry of GET /api/queries.
type QueryInfo struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Columns [2]string `json:"columns"`
	Href    string    `json:"href"`
	Chart   string    `json:"chart"`
}

// GetSummary handles GET /api/summary.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	kpi, err := s.insights.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, kpi)
}

// ListQueries handles GET /api/queries.
func (s *Server) ListQueries(w http.ResponseWriter, r *http.Request) {
	defs := s.insights.Queries(r.Context())
	out := make([]QueryInfo, 0, len(defs))
	for _, d := range defs {
		out = append(out, QueryInfo{
			ID:      d.ID,
			Title:   d.Title,
			Columns: d.Columns,
			Href:    "/api/queries/" + d.ID,
			Chart:   "/charts/queries/" + d.ID,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetQuery handles GET /api/queries/{queryId}.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetQuery(w http.ResponseWriter, r *http.Request) {
	var format *Format
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(fmt.Sprintf("invalid format parameter: %v", err)))
		return
	}
	if format != nil && *format != FormatJSON && *format != FormatCSV {
		writeJSON(w, http.StatusBadRequest, requestBody(fmt.Sprintf("unsupported format %q", *format)))
		return
	}

	res, err := s.insights.Run(r.Context(), chi.URLParam(r, "queryId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if format != nil && *format == FormatCSV {
		writeCSV(w, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// writeCSV encodes a result table as CSV with its column names as header.
func writeCSV(w http.ResponseWriter, res domain.ResultTable) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(res.Columns[:])
	for _, row := range res.Rows {
		//nolint:errcheck
		cw.Write([]string{row.Label, strconv.Itoa(row.Count)})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.QueryID+".csv"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
