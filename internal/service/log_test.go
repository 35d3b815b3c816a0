package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/securecheck/internal/domain"
	"github.com/pkordes/securecheck/internal/service"
)

func validEntry() domain.LogEntry {
	return domain.LogEntry{
		StopDate:         time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		StopTime:         "21:30",
		CountyName:       " Cook ",
		DriverGender:     "female",
		DriverAge:        34,
		DriverRace:       "Asian",
		SearchConducted:  1,
		SearchType:       "Consent",
		DrugsRelatedStop: 0,
		StopDuration:     "16-30 Min",
		VehicleNumber:    "KA01AB1234",
	}
}

// ---- Submit ----------------------------------------------------------------

func TestLogService_Submit_Valid(t *testing.T) {
	svc := service.NewLogService()

	got, err := svc.Submit(context.Background(), validEntry())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.Persisted)
	assert.False(t, got.ReceivedAt.IsZero())
	assert.Equal(t, "Cook", got.Record.CountyName)
	assert.Equal(t, domain.GenderFemale, got.Record.DriverGender)
	require.NotNil(t, got.Record.DriverAge)
	assert.Equal(t, 34, *got.Record.DriverAge)
	assert.True(t, got.Record.SearchConducted.IsSet())
	assert.False(t, got.Record.DrugsRelatedStop.IsSet())
	assert.Equal(t, domain.Duration16To30, got.Record.StopDuration)
}

func TestLogService_Submit_Invalid(t *testing.T) {
	svc := service.NewLogService()
	entry := validEntry()
	entry.DriverAge = 15

	_, err := svc.Submit(context.Background(), entry)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "driver_age")
}

func TestLogService_Submit_UniqueIDs(t *testing.T) {
	svc := service.NewLogService()

	a, err := svc.Submit(context.Background(), validEntry())
	require.NoError(t, err)
	b, err := svc.Submit(context.Background(), validEntry())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

// ---- BuildCandidate --------------------------------------------------------

func TestBuildCandidate_Rules(t *testing.T) {
	cases := map[string]func(e *domain.LogEntry){
		"missing date":     func(e *domain.LogEntry) { e.StopDate = time.Time{} },
		"bad time":         func(e *domain.LogEntry) { e.StopTime = "9pm" },
		"unknown gender":   func(e *domain.LogEntry) { e.DriverGender = "other" },
		"empty gender":     func(e *domain.LogEntry) { e.DriverGender = "" },
		"age too high":     func(e *domain.LogEntry) { e.DriverAge = 101 },
		"search flag":      func(e *domain.LogEntry) { e.SearchConducted = 2 },
		"drugs flag":       func(e *domain.LogEntry) { e.DrugsRelatedStop = -1 },
		"unknown duration": func(e *domain.LogEntry) { e.StopDuration = "45 Min" },
		"empty duration":   func(e *domain.LogEntry) { e.StopDuration = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			e := validEntry()
			mutate(&e)

			_, err := service.BuildCandidate(e)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBuildCandidate_AgeBounds(t *testing.T) {
	for _, a := range []int{service.MinDriverAge, service.MaxDriverAge} {
		e := validEntry()
		e.DriverAge = a

		_, err := service.BuildCandidate(e)

		assert.NoError(t, err, "age %d", a)
	}
}

func TestBuildCandidate_OptionalFields(t *testing.T) {
	e := validEntry()
	e.StopTime = ""
	e.SearchType = ""
	e.VehicleNumber = ""

	got, err := service.BuildCandidate(e)

	require.NoError(t, err)
	assert.Empty(t, got.StopTime)
	assert.Empty(t, got.SearchType)
	assert.Empty(t, got.StopOutcome)
}
