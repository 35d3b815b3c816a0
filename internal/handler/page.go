package handler

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/pkordes/securecheck/internal/domain"
	"github.com/pkordes/securecheck/internal/query"
	"github.com/pkordes/securecheck/internal/service"
)

var pages = template.Must(template.New("layout").Funcs(template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
}).Parse(layoutHTML))

type kpiCard struct {
	Label string
	Value int
}

type dashboardView struct {
	Cards       []kpiCard
	GenderChart string
}

type insightsView struct {
	Queries  []query.Definition
	Selected string
	Result   *domain.ResultTable
	Chart    string
	Error    string
}

type logFormView struct {
	Genders   []string
	Durations []string
	MinAge    int
	MaxAge    int
	Error     string
	Ack       *LogAckResponse
}

// GetDashboard handles GET /: KPI cards and the gender distribution chart.
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	kpi, err := s.insights.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, "dashboard", dashboardView{
		Cards: []kpiCard{
			{"Total Stops", kpi.TotalStops},
			{"Total Searches", kpi.TotalSearches},
			{"Total Arrests", kpi.TotalArrests},
			{"Drug-Related Stops", kpi.DrugRelated},
		},
		GenderChart: "/charts/queries/" + query.GenderDistributionID,
	})
}

// GetInsights handles GET /insights?query={id}: the query picker and, when a
// query is selected, its result table and bar chart.
func (s *Server) GetInsights(w http.ResponseWriter, r *http.Request) {
	view := insightsView{
		Queries:  s.insights.Queries(r.Context()),
		Selected: r.URL.Query().Get("query"),
	}
	status := http.StatusOK

	if view.Selected != "" {
		res, err := s.insights.Run(r.Context(), view.Selected)
		switch {
		case err == nil:
			view.Result = &res
			view.Chart = "/charts/queries/" + res.QueryID
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
			view.Error = "Unknown query."
		case errors.Is(err, domain.ErrMissingField):
			status = http.StatusUnprocessableEntity
			view.Error = missingFieldBody(err).Error.Message
		default:
			writeServiceError(w, r, err)
			return
		}
	}
	render(w, r, status, "insights", view)
}

// GetLogForm handles GET /logs/new.
func (s *Server) GetLogForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "log", newLogFormView())
}

// PostLogForm handles POST /logs/new from the HTML form. The entry is
// acknowledged on the page and then discarded.
func (s *Server) PostLogForm(w http.ResponseWriter, r *http.Request) {
	view := newLogFormView()

	req, err := decodeLogEntry(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeDecodeError(w, err)
			return
		}
		view.Error = "The form could not be read: " + err.Error()
		render(w, r, http.StatusBadRequest, "log", view)
		return
	}

	ack, err := s.logs.Submit(r.Context(), requestToLogEntry(req))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			view.Error = unwrapMessage(err)
			render(w, r, http.StatusUnprocessableEntity, "log", view)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	resp := ackToResponse(ack)
	view.Ack = &resp
	render(w, r, http.StatusOK, "log", view)
}

func newLogFormView() logFormView {
	v := logFormView{
		Genders: []string{domain.GenderMale.String(), domain.GenderFemale.String()},
		MinAge:  service.MinDriverAge,
		MaxAge:  service.MaxDriverAge,
	}
	for _, d := range domain.StopDurations {
		v.Durations = append(v.Durations, d.String())
	}
	return v
}

// render executes the named template into a buffer first so a template
// error still produces a clean 500.
func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.ErrorContext(r.Context(), "render page", "page", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

const layoutHTML = `
{{define "head"}}<!doctype html>
<html lang="en"><head><meta charset="utf-8"><title>SecureCheck: Police Post Dashboard</title>
<style>
body{font-family:sans-serif;margin:0;display:flex}
nav{width:200px;padding:1rem;background:#1e293b;min-height:100vh}
nav a{display:block;color:#e2e8f0;margin:.5rem 0;text-decoration:none}
main{flex:1;padding:1rem 2rem}
.cards{display:flex;gap:1rem}
.card{flex:1;border:1px solid #cbd5e1;border-radius:6px;padding:1rem}
.card b{display:block;font-size:2rem}
iframe{width:100%;height:520px;border:0}
table{border-collapse:collapse}td,th{border:1px solid #cbd5e1;padding:.3rem .8rem}
.error{color:#b91c1c}.ok{color:#15803d}
label{display:block;margin:.4rem 0}
</style></head><body>
<nav><strong style="color:#fff">SecureCheck</strong>
<a href="/">Dashboard</a><a href="/logs/new">Add Police Log</a><a href="/insights">Advanced Insights</a></nav>
<main>{{end}}

{{define "foot"}}</main></body></html>{{end}}

{{define "dashboard"}}{{template "head"}}
<h1>Police Check Post Dashboard</h1>
<div class="cards">{{range .Cards}}<div class="card">{{.Label}}<b>{{comma .Value}}</b></div>{{end}}</div>
<h2>Driver Gender Distribution</h2>
<iframe src="{{.GenderChart}}"></iframe>
{{template "foot"}}{{end}}

{{define "insights"}}{{template "head"}}
<h1>Advanced Insights</h1>
<form method="get" action="/insights">
<select name="query">{{range .Queries}}<option value="{{.ID}}"{{if eq .ID $.Selected}} selected{{end}}>{{.Title}}</option>{{end}}</select>
<button type="submit">Run Query</button>
</form>
{{with .Error}}<p class="error">{{.}}</p>{{end}}
{{with .Result}}
<h2>{{.Title}}</h2>
<table><tr><th>{{index .Columns 0}}</th><th>{{index .Columns 1}}</th></tr>
{{range .Rows}}<tr><td>{{.Label}}</td><td>{{comma .Count}}</td></tr>{{else}}<tr><td colspan="2">No rows.</td></tr>{{end}}
</table>
<p><a href="/api/queries/{{.QueryID}}?format=csv">Download CSV</a></p>
<iframe src="{{$.Chart}}"></iframe>
{{end}}
{{template "foot"}}{{end}}

{{define "log"}}{{template "head"}}
<h1>Add New Police Log</h1>
{{with .Error}}<p class="error">{{.}}</p>{{end}}
{{with .Ack}}<p class="ok">{{.Message}} Reference {{.ID}}.</p>{{end}}
<form method="post" action="/logs/new">
<label>Stop Date <input type="date" name="stop_date" required></label>
<label>Stop Time <input type="time" name="stop_time"></label>
<label>County Name <input name="county_name"></label>
<label>Driver Gender <select name="driver_gender">{{range .Genders}}<option>{{.}}</option>{{end}}</select></label>
<label>Driver Age <input type="number" name="driver_age" min="{{.MinAge}}" max="{{.MaxAge}}" step="1" value="{{.MinAge}}"></label>
<label>Driver Race <input name="driver_race"></label>
<label>Was a Search Conducted? <select name="search_conducted"><option>0</option><option>1</option></select></label>
<label>Search Type <input name="search_type"></label>
<label>Was it Drug Related? <select name="drugs_related_stop"><option>0</option><option>1</option></select></label>
<label>Stop Duration <select name="stop_duration">{{range .Durations}}<option>{{.}}</option>{{end}}</select></label>
<label>Vehicle Number <input name="vehicle_number"></label>
<button type="submit">Submit Log</button>
</form>
{{template "foot"}}{{end}}
`
