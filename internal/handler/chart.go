package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pkordes/securecheck/internal/domain"
	"github.com/pkordes/securecheck/internal/query"
)

// GetQueryChart handles GET /charts/queries/{queryId}.
// The gender distribution renders as a pie; every other query as a bar chart.
func (s *Server) GetQueryChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "queryId")
	res, err := s.insights.Run(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	page := components.NewPage()
	if s.chartAssets != "" {
		page.SetAssetsHost(s.chartAssets)
	}
	if id == query.GenderDistributionID {
		page.AddCharts(s.pieChart(res))
	} else {
		page.AddCharts(s.barChart(res))
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		writeServiceError(w, r, fmt.Errorf("handler.GetQueryChart: render: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) initOpts(title string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle:  title,
		Width:      "100%",
		Height:     "480px",
		AssetsHost: s.chartAssets,
	})
}

// pieChart draws a proportional chart of a result, one slice per row.
func (s *Server) pieChart(res domain.ResultTable) *charts.Pie {
	data := make([]opts.PieData, 0, len(res.Rows))
	for _, row := range res.Rows {
		data = append(data, opts.PieData{Name: row.Label, Value: row.Count})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		s.initOpts(res.Title),
		charts.WithTitleOpts(opts.Title{Title: res.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)
	pie.AddSeries(res.Columns[1], data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)
	return pie
}

// barChart draws one bar per row, labels on the x axis.
func (s *Server) barChart(res domain.ResultTable) *charts.Bar {
	data := make([]opts.BarData, 0, len(res.Rows))
	for _, row := range res.Rows {
		data = append(data, opts.BarData{Value: row.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		s.initOpts(res.Title),
		charts.WithTitleOpts(opts.Title{Title: res.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: res.Columns[0]}),
		charts.WithYAxisOpts(opts.YAxis{Name: res.Columns[1]}),
	)
	bar.SetXAxis(res.Labels()).
		AddSeries(res.Columns[1], data,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}
