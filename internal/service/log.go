package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/securecheck/internal/domain"
)

// Driver ages accepted by the entry form. Loaded data is not held to this.
const (
	MinDriverAge = 16
	MaxDriverAge = 100
)

// LogService acknowledges police logs submitted through the entry form.
// Submissions are validated and echoed back; they are never stored.
type LogService struct {
	now   func() time.Time
	newID func() uuid.UUID
}

// NewLogService constructs a LogService.
func NewLogService() *LogService {
	return &LogService{now: time.Now, newID: uuid.New}
}

// Submit validates entry and returns an acknowledgement.
// Returns domain.ErrValidation if any field is outside the form's domain.
func (s *LogService) Submit(ctx context.Context, entry domain.LogEntry) (domain.SubmittedLog, error) {
	record, err := BuildCandidate(entry)
	if err != nil {
		return domain.SubmittedLog{}, fmt.Errorf("service.LogService.Submit: %w", err)
	}

	ack := domain.SubmittedLog{
		ID:         s.newID(),
		Record:     record,
		ReceivedAt: s.now().UTC(),
		Persisted:  false,
	}
	slog.InfoContext(ctx, "police log received",
		"log_id", ack.ID.String(),
		"county", record.CountyName,
		"vehicle_number", record.VehicleNumber,
		"persisted", ack.Persisted,
	)
	return ack, nil
}

// BuildCandidate turns a form entry into a StopRecord without storing it.
// The rules mirror the entry form:
//   - stop_date is required.
//   - stop_time, if set, must be HH:MM.
//   - driver_gender must be male or female.
//   - driver_age must be within [MinDriverAge, MaxDriverAge].
//   - search_conducted and drugs_related_stop must be 0 or 1.
//   - stop_duration must be one of the known labels.
func BuildCandidate(e domain.LogEntry) (domain.StopRecord, error) {
	if e.StopDate.IsZero() {
		return domain.StopRecord{}, fmt.Errorf("%w: stop_date is required", domain.ErrValidation)
	}

	stopTime := strings.TrimSpace(e.StopTime)
	if stopTime != "" {
		t, err := time.Parse("15:04", stopTime)
		if err != nil {
			return domain.StopRecord{}, fmt.Errorf("%w: stop_time must be HH:MM", domain.ErrValidation)
		}
		stopTime = t.Format("15:04")
	}

	gender, err := domain.ParseGender(e.DriverGender)
	if err != nil || gender == domain.GenderUnknown {
		return domain.StopRecord{}, fmt.Errorf("%w: driver_gender must be male or female", domain.ErrValidation)
	}

	if e.DriverAge < MinDriverAge || e.DriverAge > MaxDriverAge {
		return domain.StopRecord{}, fmt.Errorf("%w: driver_age must be between %d and %d", domain.ErrValidation, MinDriverAge, MaxDriverAge)
	}

	searched, err := domain.FlagOf(e.SearchConducted)
	if err != nil {
		return domain.StopRecord{}, fmt.Errorf("%w: search_conducted must be 0 or 1", domain.ErrValidation)
	}
	drugs, err := domain.FlagOf(e.DrugsRelatedStop)
	if err != nil {
		return domain.StopRecord{}, fmt.Errorf("%w: drugs_related_stop must be 0 or 1", domain.ErrValidation)
	}

	duration, err := domain.ParseStopDuration(e.StopDuration)
	if err != nil || duration == domain.DurationUnknown {
		return domain.StopRecord{}, fmt.Errorf("%w: stop_duration must be one of 0-15 Min, 16-30 Min, 30+ Min", domain.ErrValidation)
	}

	age := e.DriverAge
	return domain.StopRecord{
		StopDate:         e.StopDate,
		StopTime:         stopTime,
		CountyName:       strings.TrimSpace(e.CountyName),
		DriverGender:     gender,
		DriverAge:        &age,
		DriverRace:       strings.TrimSpace(e.DriverRace),
		SearchConducted:  searched,
		SearchType:       strings.TrimSpace(e.SearchType),
		DrugsRelatedStop: drugs,
		StopDuration:     duration,
		VehicleNumber:    strings.TrimSpace(e.VehicleNumber),
	}, nil
}
