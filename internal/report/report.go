// Package report renders query results and KPIs as plain-text tables for
// the command line.
package report

import (
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/pkordes/securecheck/internal/domain"
	"github.com/pkordes/securecheck/internal/query"
)

func newTable(out io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

// WriteTable renders res with its column names as header and its title as
// caption. Counts are right-aligned with thousands separators.
func WriteTable(out io.Writer, res domain.ResultTable) {
	table := newTable(out)
	table.SetHeader(res.Columns[:])
	table.SetCaption(true, res.Title)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, row := range res.Rows {
		table.Append([]string{row.Label, humanize.Comma(int64(row.Count))})
	}
	table.Render()
}

// WriteSummary renders the four headline KPIs, one per row.
func WriteSummary(out io.Writer, kpi domain.KPISummary) {
	table := newTable(out)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, m := range []struct {
		label string
		value int
	}{
		{"Total Stops", kpi.TotalStops},
		{"Total Searches", kpi.TotalSearches},
		{"Total Arrests", kpi.TotalArrests},
		{"Drug-Related Stops", kpi.DrugRelated},
	} {
		table.Append([]string{m.label, humanize.Comma(int64(m.value))})
	}
	table.Render()
}

// WriteCatalog lists the named queries with their IDs.
func WriteCatalog(out io.Writer, defs []query.Definition) {
	table := newTable(out)
	table.SetHeader([]string{"#", "ID", "Title"})

	for i, d := range defs {
		table.Append([]string{strconv.Itoa(i + 1), d.ID, d.Title})
	}
	table.Render()
}
