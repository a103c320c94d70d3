package main

import (
	"errors"
	"fmt"
	"time"
)

const (
	ErrHourMissing      = "all hours must be numeric"
	ErrStartOutOfRange  = "start hour is out of range"
	ErrBedOutOfRange    = "bed hour is out of range"
	ErrBedBeforeStart   = "bed hour is before start hour"
	ErrEndOutOfRange    = "end hour is out of range"
	ErrRateTableInvalid = "rate table is invalid"
)

var ErrEmptyRateTable = errors.New("rate table has no bands")

// InvalidInputError is returned for any hours that break the business rules.
// Its message lists all three inputs together with the accepted ranges.
type InvalidInputError struct {
	Input  RawInput
	Rules  HourRules
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid input. All hours must be numeric "+
		"and bed time must be after start time.\n"+
		"Start Time (%02d-%02d) = %s \n"+
		"Bed Time (%02d-%02d) = %s \n"+
		"End Time (%02d-%02d) = %s ",
		e.Rules.Start.Min, e.Rules.Start.Max, formatRawHour(e.Input.Start),
		e.Rules.Bed.Min, e.Rules.Bed.Max, formatRawHour(e.Input.Bed),
		e.Rules.End.Min, e.Rules.End.Max, formatRawHour(e.Input.End),
	)
}

type ContiguityError struct {
	Index     int
	End       time.Time
	NextStart time.Time
}

func (e *ContiguityError) Error() string {
	return fmt.Sprintf("%s: band %d ends at %s but band %d starts at %s",
		ErrRateTableInvalid, e.Index, FormatClock(e.End), e.Index+1, FormatClock(e.NextStart))
}
