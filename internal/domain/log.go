package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is a police log as typed into the entry form, before validation.
// Enumerated fields are still raw strings and flags are still ints here;
// service.BuildCandidate turns a valid entry into a StopRecord.
type LogEntry struct {
	StopDate         time.Time
	StopTime         string
	CountyName       string
	DriverGender     string
	DriverAge        int
	DriverRace       string
	SearchConducted  int
	SearchType       string
	DrugsRelatedStop int
	StopDuration     string
	VehicleNumber    string
}

// SubmittedLog acknowledges a validated LogEntry.
// Persisted is always false: submissions are not written to any store.
type SubmittedLog struct {
	ID         uuid.UUID
	Record     StopRecord
	ReceivedAt time.Time
	Persisted  bool
}
