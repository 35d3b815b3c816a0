// Package domain contains the core data types for the SecureCheck service.
// It is imported by every other internal package (dataset, query, service,
// handler) and depends on nothing inside the module.
package domain

import (
	"strings"
	"time"
)

// Column names of the traffic-stop dataset. The header of the source file
// must use these names; renaming a column breaks every query that reads it.
const (
	FieldStopDate         = "stop_date"
	FieldStopTime         = "stop_time"
	FieldCountyName       = "county_name"
	FieldDriverGender     = "driver_gender"
	FieldDriverAge        = "driver_age"
	FieldDriverRace       = "driver_race"
	FieldSearchConducted  = "search_conducted"
	FieldSearchType       = "search_type"
	FieldDrugsRelatedStop = "drugs_related_stop"
	FieldStopOutcome      = "stop_outcome"
	FieldStopDuration     = "stop_duration"
	FieldVehicleNumber    = "vehicle_number"
)

// AllFields lists every StopRecord column in file order.
var AllFields = []string{
	FieldStopDate,
	FieldStopTime,
	FieldCountyName,
	FieldDriverGender,
	FieldDriverAge,
	FieldDriverRace,
	FieldSearchConducted,
	FieldSearchType,
	FieldDrugsRelatedStop,
	FieldStopOutcome,
	FieldStopDuration,
	FieldVehicleNumber,
}

// StopRecord is one row of the traffic-stop table.
// Free-text fields use the empty string for a missing value.
type StopRecord struct {
	StopDate         time.Time // zero when missing
	StopTime         string    // "15:04", empty when missing
	CountyName       string
	DriverGender     Gender
	DriverAge        *int // nil when missing
	DriverRace       string
	SearchConducted  Flag
	SearchType       string
	DrugsRelatedStop Flag
	StopOutcome      string
	StopDuration     StopDuration
	VehicleNumber    string
}

// Clone returns a copy of r that shares no memory with it.
func (r StopRecord) Clone() StopRecord {
	if r.DriverAge != nil {
		age := *r.DriverAge
		r.DriverAge = &age
	}
	return r
}

// IsArrest reports whether the stop outcome mentions an arrest, ignoring case.
// A missing outcome never matches.
func (r StopRecord) IsArrest() bool {
	if r.StopOutcome == "" {
		return false
	}
	return strings.Contains(strings.ToLower(r.StopOutcome), "arrest")
}

// AgeGroup returns the driver's age bucket. ok is false when the age is
// missing or outside [0, 100].
func (r StopRecord) AgeGroup() (AgeGroup, bool) {
	if r.DriverAge == nil {
		return "", false
	}
	return AgeGroupOf(*r.DriverAge)
}
