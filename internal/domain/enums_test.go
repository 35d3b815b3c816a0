package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/securecheck/internal/domain"
)

func TestParseGender(t *testing.T) {
	for in, want := range map[string]domain.Gender{
		"male":   domain.GenderMale,
		"M":      domain.GenderMale,
		"Female": domain.GenderFemale,
		" f ":    domain.GenderFemale,
		"":       domain.GenderUnknown,
	} {
		got, err := domain.ParseGender(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseGender("x")
	assert.Error(t, err)
}

func TestParseFlag(t *testing.T) {
	for in, want := range map[string]domain.Flag{
		"1":     domain.FlagSet,
		"1.0":   domain.FlagSet,
		"True":  domain.FlagSet,
		"0":     domain.FlagUnset,
		"false": domain.FlagUnset,
		"":      domain.FlagUnset,
	} {
		got, err := domain.ParseFlag(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseFlag("2")
	assert.Error(t, err)
}

func TestFlagOf(t *testing.T) {
	f, err := domain.FlagOf(1)
	require.NoError(t, err)
	assert.True(t, f.IsSet())

	_, err = domain.FlagOf(-1)
	assert.Error(t, err)
}

func TestParseStopDuration(t *testing.T) {
	d, err := domain.ParseStopDuration("16-30 min")
	require.NoError(t, err)
	assert.Equal(t, domain.Duration16To30, d)
	assert.Equal(t, "16-30 Min", d.String())

	d, err = domain.ParseStopDuration("")
	require.NoError(t, err)
	assert.Equal(t, domain.DurationUnknown, d)

	_, err = domain.ParseStopDuration("2")
	assert.Error(t, err)
}
