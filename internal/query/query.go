// Package query is the aggregation layer over a loaded traffic-stop table.
// Every function is a pure, deterministic pass over a *dataset.Table: the
// same table always yields the same result, and nothing is cached or
// mutated between calls.
package query

import (
	"cmp"
	"slices"

	"github.com/pkordes/securecheck/internal/dataset"
	"github.com/pkordes/securecheck/internal/domain"
)

// Summarize computes the four dashboard KPIs in one pass.
func Summarize(t *dataset.Table) (domain.KPISummary, error) {
	if err := t.Require(domain.FieldSearchConducted, domain.FieldStopOutcome, domain.FieldDrugsRelatedStop); err != nil {
		return domain.KPISummary{}, err
	}

	var s domain.KPISummary
	for r := range t.All() {
		s.TotalStops++
		if r.SearchConducted.IsSet() {
			s.TotalSearches++
		}
		if r.IsArrest() {
			s.TotalArrests++
		}
		if r.DrugsRelatedStop.IsSet() {
			s.DrugRelated++
		}
	}
	return s, nil
}

// GenderDistribution counts stops per driver gender. Rows with no gender
// are not counted.
func GenderDistribution(t *dataset.Table) (domain.ResultTable, error) {
	res := newResult(GenderDistributionID)
	if err := t.Require(domain.FieldDriverGender); err != nil {
		return res, err
	}

	c := newCounter()
	for r := range t.All() {
		c.add(r.DriverGender.String())
	}
	res.Rows = c.rows(0)
	return res, nil
}

// TopSearchTypes returns the n most frequent search types.
func TopSearchTypes(t *dataset.Table, n int) (domain.ResultTable, error) {
	res := newResult(TopSearchTypesID)
	if err := t.Require(domain.FieldSearchType); err != nil {
		return res, err
	}
	if n <= 0 {
		return res, nil
	}

	c := newCounter()
	for r := range t.All() {
		c.add(r.SearchType)
	}
	res.Rows = c.rows(n)
	return res, nil
}

// TopDrugVehicles returns the n vehicles that appear most often in
// drug-related stops.
func TopDrugVehicles(t *dataset.Table, n int) (domain.ResultTable, error) {
	res := newResult(TopDrugVehiclesID)
	if err := t.Require(domain.FieldDrugsRelatedStop, domain.FieldVehicleNumber); err != nil {
		return res, err
	}
	if n <= 0 {
		return res, nil
	}

	c := newCounter()
	for r := range t.All() {
		if r.DrugsRelatedStop.IsSet() {
			c.add(r.VehicleNumber)
		}
	}
	res.Rows = c.rows(n)
	return res, nil
}

// AgeGroupArrests counts arrests per driver age group, most arrests first.
// Groups with no arrests are omitted; equal counts keep age order.
func AgeGroupArrests(t *dataset.Table) (domain.ResultTable, error) {
	res := newResult(AgeGroupArrestsID)
	if err := t.Require(domain.FieldDriverAge, domain.FieldStopOutcome); err != nil {
		return res, err
	}

	counts := make(map[domain.AgeGroup]int, len(domain.AgeGroups))
	for r := range t.All() {
		if !r.IsArrest() {
			continue
		}
		if g, ok := r.AgeGroup(); ok {
			counts[g]++
		}
	}

	for _, g := range domain.AgeGroups {
		if n := counts[g]; n > 0 {
			res.Rows = append(res.Rows, domain.CountRow{Label: string(g), Count: n})
		}
	}
	slices.SortStableFunc(res.Rows, func(a, b domain.CountRow) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return res, nil
}
