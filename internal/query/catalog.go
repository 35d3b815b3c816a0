package query

import (
	"fmt"

	"github.com/pkordes/securecheck/internal/dataset"
	"github.com/pkordes/securecheck/internal/domain"
)

// Catalog query IDs. They appear in URLs and CLI arguments.
const (
	GenderDistributionID = "gender-distribution"
	TopSearchTypesID     = "top-search-types"
	TopDrugVehiclesID    = "top-drug-vehicles"
	AgeGroupArrestsID    = "age-group-arrests"
)

// Definition describes one named query in the catalog.
type Definition struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Columns [2]string `json:"columns"`

	run func(*dataset.Table) (domain.ResultTable, error)
}

// Run executes the query against t.
func (d Definition) Run(t *dataset.Table) (domain.ResultTable, error) {
	return d.run(t)
}

type header struct {
	title   string
	columns [2]string
}

var headers = map[string]header{
	GenderDistributionID: {"Driver Gender Distribution", [2]string{"Gender", "Count"}},
	TopSearchTypesID:     {"Top 5 Most Frequent Search Types", [2]string{"Search Type", "Count"}},
	TopDrugVehiclesID:    {"Top 10 Vehicles in Drug-Related Stops", [2]string{"Vehicle Number", "Count"}},
	AgeGroupArrestsID:    {"Driver Age Group with Highest Arrest Rate", [2]string{"Age Group", "Arrest Count"}},
}

func define(id string, run func(*dataset.Table) (domain.ResultTable, error)) Definition {
	h := headers[id]
	return Definition{ID: id, Title: h.title, Columns: h.columns, run: run}
}

var catalog = []Definition{
	define(GenderDistributionID, GenderDistribution),
	define(TopSearchTypesID, func(t *dataset.Table) (domain.ResultTable, error) { return TopSearchTypes(t, 5) }),
	define(TopDrugVehiclesID, func(t *dataset.Table) (domain.ResultTable, error) { return TopDrugVehicles(t, 10) }),
	define(AgeGroupArrestsID, AgeGroupArrests),
}

// Catalog returns every named query in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the query with the given ID, or domain.ErrNotFound.
func Lookup(id string) (Definition, error) {
	for _, d := range catalog {
		if d.ID == id {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("query %q: %w", id, domain.ErrNotFound)
}

// newResult returns an empty result shaped for the catalog entry id.
func newResult(id string) domain.ResultTable {
	h := headers[id]
	return domain.ResultTable{QueryID: id, Title: h.title, Columns: h.columns, Rows: []domain.CountRow{}}
}
