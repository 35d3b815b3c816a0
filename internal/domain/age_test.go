package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/securecheck/internal/domain"
)

func TestAgeGroupOf_Boundaries(t *testing.T) {
	cases := []struct {
		age  int
		want domain.AgeGroup
	}{
		{0, domain.AgeUnder18},
		{17, domain.AgeUnder18},
		{18, domain.Age18To30},
		{30, domain.Age18To30},
		{31, domain.Age31To45},
		{45, domain.Age31To45},
		{46, domain.Age46To60},
		{60, domain.Age46To60},
		{61, domain.Age60Plus},
		{100, domain.Age60Plus},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.age), func(t *testing.T) {
			got, ok := domain.AgeGroupOf(tc.age)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAgeGroupOf_OutOfRange(t *testing.T) {
	for _, age := range []int{-1, 101, 250} {
		_, ok := domain.AgeGroupOf(age)
		assert.False(t, ok, "age %d should have no bucket", age)
	}
}

// Every age in [0,100] lands in exactly one bucket.
func TestAgeGroupOf_Total(t *testing.T) {
	seen := map[domain.AgeGroup]int{}
	for age := 0; age <= 100; age++ {
		g, ok := domain.AgeGroupOf(age)
		require.True(t, ok, "age %d", age)
		seen[g]++
	}
	assert.Len(t, seen, len(domain.AgeGroups))
	assert.Equal(t, 18, seen[domain.AgeUnder18])
	assert.Equal(t, 13, seen[domain.Age18To30])
	assert.Equal(t, 15, seen[domain.Age31To45])
	assert.Equal(t, 15, seen[domain.Age46To60])
	assert.Equal(t, 40, seen[domain.Age60Plus])
}

func TestStopRecord_IsArrest(t *testing.T) {
	cases := map[string]bool{
		"ARRESTED":       true,
		"Arrest Warrant": true,
		"Arrest Driver":  true,
		"Citation":       false,
		"":               false,
	}
	for outcome, want := range cases {
		r := domain.StopRecord{StopOutcome: outcome}
		assert.Equal(t, want, r.IsArrest(), "outcome %q", outcome)
	}
}

func TestStopRecord_AgeGroup_MissingAge(t *testing.T) {
	_, ok := domain.StopRecord{}.AgeGroup()
	assert.False(t, ok)
}

func TestMissingFieldError_Is(t *testing.T) {
	err := fmt.Errorf("query: %w", &domain.MissingFieldError{Field: domain.FieldSearchType})

	assert.True(t, errors.Is(err, domain.ErrMissingField))
	assert.ErrorContains(t, err, "search_type")

	var mf *domain.MissingFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, domain.FieldSearchType, mf.Field)
}
