package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Gender is the driver's recorded gender. The dataset's domain is closed.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

// ParseGender accepts "male"/"m" and "female"/"f" in any case.
// An empty string is GenderUnknown; anything else is an error.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return GenderUnknown, nil
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	}
	return GenderUnknown, fmt.Errorf("unknown gender %q", s)
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	}
	return ""
}

// Flag is a 0/1 indicator column such as search_conducted.
type Flag int

const (
	FlagUnset Flag = 0
	FlagSet   Flag = 1
)

// ParseFlag accepts 0/1, 0.0/1.0 and true/false. An empty cell is FlagUnset.
func ParseFlag(s string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "0.0", "false":
		return FlagUnset, nil
	case "1", "1.0", "true":
		return FlagSet, nil
	}
	return FlagUnset, fmt.Errorf("invalid flag %q", s)
}

// FlagOf converts a form value (0 or 1) to a Flag.
func FlagOf(v int) (Flag, error) {
	switch v {
	case 0:
		return FlagUnset, nil
	case 1:
		return FlagSet, nil
	}
	return FlagUnset, fmt.Errorf("flag must be 0 or 1, got %d", v)
}

// IsSet reports whether the flag equals 1.
func (f Flag) IsSet() bool { return f == FlagSet }

func (f Flag) String() string { return strconv.Itoa(int(f)) }

// StopDuration is the categorical length of a stop.
type StopDuration int

const (
	DurationUnknown StopDuration = iota
	Duration0To15
	Duration16To30
	Duration30Plus
)

var durationLabels = map[StopDuration]string{
	Duration0To15:  "0-15 Min",
	Duration16To30: "16-30 Min",
	Duration30Plus: "30+ Min",
}

// StopDurations lists the known durations in display order.
var StopDurations = []StopDuration{Duration0To15, Duration16To30, Duration30Plus}

// ParseStopDuration matches the labels "0-15 Min", "16-30 Min" and "30+ Min"
// ignoring case and surrounding space. Empty is DurationUnknown.
func ParseStopDuration(s string) (StopDuration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DurationUnknown, nil
	}
	for _, d := range StopDurations {
		if strings.EqualFold(durationLabels[d], s) {
			return d, nil
		}
	}
	return DurationUnknown, fmt.Errorf("unknown stop duration %q", s)
}

func (d StopDuration) String() string { return durationLabels[d] }
