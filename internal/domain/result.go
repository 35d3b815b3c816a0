package domain

// KPISummary holds the four headline counts shown on the dashboard.
type KPISummary struct {
	TotalStops    int `json:"total_stops"`
	TotalSearches int `json:"total_searches"`
	TotalArrests  int `json:"total_arrests"`
	DrugRelated   int `json:"drug_related"`
}

// CountRow is one (label, count) row of a grouped result.
type CountRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ResultTable is the output of a catalog query: an ordered list of rows
// plus the display names of its two columns.
//
// Rows is never nil so callers can range over it and JSON encodes it as [].
type ResultTable struct {
	QueryID string     `json:"query_id"`
	Title   string     `json:"title"`
	Columns [2]string  `json:"columns"`
	Rows    []CountRow `json:"rows"`
}

// Labels returns the first column of every row, in order.
func (t ResultTable) Labels() []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Label
	}
	return out
}

// Counts returns the second column of every row, in order.
func (t ResultTable) Counts() []int {
	out := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Count
	}
	return out
}
