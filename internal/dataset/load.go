package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/pkordes/securecheck/internal/domain"
)

// Options controls how the source file is parsed.
type Options struct {
	// Delimiter separates cells. Zero means ','.
	Delimiter rune
}

// Load opens path and parses it with Parse.
// Every failure wraps domain.ErrLoad; a missing file is never an empty table.
func Load(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: %w: %v", domain.ErrLoad, err)
	}
	defer f.Close()

	t, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load %s: %w", path, err)
	}
	return t, nil
}

// Parse reads a delimited stream whose first row is a header of StopRecord
// column names. Header names are trimmed and lower-cased; unknown columns
// are ignored. Known columns that are absent are simply not reported by
// Table.Has, so queries that need them fail with a missing-field error.
//
// Parse stops at the first ragged row or malformed typed cell.
func Parse(r io.Reader, opts Options) (*Table, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file, no header row", domain.ErrLoad)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", domain.ErrLoad, err)
	}

	cols, fields, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []domain.StopRecord
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrLoad, err)
		}
		line, _ := cr.FieldPos(0)

		row, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrLoad, line, err)
		}
		rows = append(rows, row)
	}

	return New(fields, rows), nil
}

// mapHeader returns the cell index of every known column found in header,
// and the known columns in header order.
func mapHeader(header []string) (map[string]int, []string, error) {
	known := make(map[string]bool, len(domain.AllFields))
	for _, f := range domain.AllFields {
		known[f] = true
	}

	cols := make(map[string]int)
	var fields []string
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		name := strings.ToLower(strings.TrimSpace(h))
		if !known[name] {
			continue
		}
		if _, dup := cols[name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate column %q", domain.ErrLoad, name)
		}
		cols[name] = i
		fields = append(fields, name)
	}
	if len(fields) == 0 {
		return nil, nil, fmt.Errorf("%w: header has none of the expected columns", domain.ErrLoad)
	}
	return cols, fields, nil
}

// parseRow decodes one record. Cells for absent columns stay at their zero
// value.
func parseRow(record []string, cols map[string]int) (domain.StopRecord, error) {
	cell := func(field string) string {
		i, ok := cols[field]
		if !ok {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var (
		row domain.StopRecord
		err error
	)

	if row.StopDate, err = parseDate(cell(domain.FieldStopDate)); err != nil {
		return row, fmt.Errorf("%s: %w", domain.FieldStopDate, err)
	}
	if row.StopTime, err = parseClock(cell(domain.FieldStopTime)); err != nil {
		return row, fmt.Errorf("%s: %w", domain.FieldStopTime, err)
	}
	if row.DriverGender, err = domain.ParseGender(cell(domain.FieldDriverGender)); err != nil {
		return row, fmt.Errorf("%s: %w", domain.FieldDriverGender, err)
	}
	if row.DriverAge, err = parseAge(cell(domain.FieldDriverAge)); err != nil {
		return row, fmt.Errorf("%s: %w", domain.FieldDriverAge, err)
	}
	if row.SearchConducted, err = domain.ParseFlag(cell(domain.FieldSearchConducted)); err != nil {
		return row, fmt.Errorf("%s: %w", domain.FieldSearchConducted, err)
	}
	if row.DrugsRelatedStop, err = domain.ParseFlag(cell(domain.FieldDrugsRelatedStop)); err != nil {
		return row, fmt.Errorf("%s: %w", domain.FieldDrugsRelatedStop, err)
	}
	if row.StopDuration, err = domain.ParseStopDuration(cell(domain.FieldStopDuration)); err != nil {
		return row, fmt.Errorf("%s: %w", domain.FieldStopDuration, err)
	}

	row.CountyName = cell(domain.FieldCountyName)
	row.DriverRace = cell(domain.FieldDriverRace)
	row.SearchType = cell(domain.FieldSearchType)
	row.StopOutcome = cell(domain.FieldStopOutcome)
	row.VehicleNumber = cell(domain.FieldVehicleNumber)
	return row, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return dateparse.ParseIn(s, time.UTC)
}

// parseClock accepts "15:04" or "15:04:05" and normalises to "15:04".
func parseClock(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time %q", s)
}

// parseAge accepts integers and integral floats ("23.0"), which is how
// spreadsheet exports write an integer column that has gaps.
func parseAge(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return nil, fmt.Errorf("invalid age %q", s)
	}
	n := int(f)
	return &n, nil
}
