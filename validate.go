package main

import "strconv"

// DefaultHourRules: start 5PM-11PM, bed 6PM-midnight, end midnight-4AM.
var DefaultHourRules = HourRules{
	Start: HourRange{Min: 17, Max: 23},
	Bed:   HourRange{Min: 18, Max: 24},
	End:   HourRange{Min: 0, Max: 4},
}

// ValidateHours checks the raw hours in order and stops at the first broken
// rule. Bed time is compared to start time on the raw clock.
func ValidateHours(raw RawInput, rules HourRules) error {
	fail := func(reason string) error {
		return &InvalidInputError{Input: raw, Rules: rules, Reason: reason}
	}

	if raw.Start == nil || raw.Bed == nil || raw.End == nil {
		return fail(ErrHourMissing)
	}
	if !rules.Start.Contains(*raw.Start) {
		return fail(ErrStartOutOfRange)
	}
	if !rules.Bed.Contains(*raw.Bed) {
		return fail(ErrBedOutOfRange)
	}
	if *raw.Bed < *raw.Start {
		return fail(ErrBedBeforeStart)
	}
	if !rules.End.Contains(*raw.End) {
		return fail(ErrEndOutOfRange)
	}

	return nil
}

// ParseHour mirrors a lenient console read: anything that is not an integer
// is treated as missing.
func ParseHour(s string) *int {
	h, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &h
}

func formatRawHour(h *int) string {
	if h == nil {
		return "null"
	}
	return strconv.Itoa(*h)
}
