package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type validateSuite struct {
	suite.Suite
	rules HourRules
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, &validateSuite{rules: DefaultHourRules})
}

func hours(start, bed, end int) RawInput {
	return RawInput{Start: &start, Bed: &bed, End: &end}
}

func (s *validateSuite) reasonOf(err error) string {
	var inputErr *InvalidInputError
	s.Require().True(errors.As(err, &inputErr), "expected *InvalidInputError, got %v", err)
	return inputErr.Reason
}

func (s *validateSuite) TestValidateHours() {
	seven := 7

	testCases := []struct {
		name      string
		input     RawInput
		expReason string
	}{
		{
			name:  "valid night",
			input: hours(17, 20, 2),
		},
		{
			name:  "bed at midnight written as 24",
			input: hours(23, 24, 4),
		},
		{
			name:  "bed equal to start",
			input: hours(18, 18, 0),
		},
		{
			name:      "start before 5PM",
			input:     hours(16, 20, 2),
			expReason: ErrStartOutOfRange,
		},
		{
			name:      "end after 4AM",
			input:     hours(17, 20, 5),
			expReason: ErrEndOutOfRange,
		},
		{
			name:      "bed before start",
			input:     hours(20, 19, 2),
			expReason: ErrBedBeforeStart,
		},
		{
			name:      "end before midnight",
			input:     hours(17, 19, 22),
			expReason: ErrEndOutOfRange,
		},
		{
			name:      "bed after midnight",
			input:     hours(17, 1, 2),
			expReason: ErrBedOutOfRange,
		},
		{
			name:      "missing start",
			input:     RawInput{Bed: &seven, End: &seven},
			expReason: ErrHourMissing,
		},
		{
			name:      "nothing entered",
			input:     RawInput{},
			expReason: ErrHourMissing,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := ValidateHours(tc.input, s.rules)
			if tc.expReason == "" {
				s.NoError(err)
				return
			}

			s.Error(err)
			s.Equal(tc.expReason, s.reasonOf(err))
		})
	}
}

func (s *validateSuite) TestStartOutsideRangeFails() {
	for start := -3; start <= 30; start++ {
		if start >= 17 && start <= 23 {
			continue
		}

		err := ValidateHours(hours(start, 24, 0), s.rules)
		s.Error(err, "start %d", start)
		s.Equal(ErrStartOutOfRange, s.reasonOf(err), "start %d", start)
	}
}

func (s *validateSuite) TestBedOutsideRangeFails() {
	for bed := -3; bed <= 30; bed++ {
		if bed >= 18 && bed <= 24 {
			continue
		}

		err := ValidateHours(hours(17, bed, 0), s.rules)
		s.Error(err, "bed %d", bed)
		s.Equal(ErrBedOutOfRange, s.reasonOf(err), "bed %d", bed)
	}
}

func (s *validateSuite) TestBedBeforeStartFails() {
	for start := 19; start <= 23; start++ {
		for bed := 18; bed < start; bed++ {
			err := ValidateHours(hours(start, bed, 0), s.rules)
			s.Error(err)
			s.Equal(ErrBedBeforeStart, s.reasonOf(err))
		}
	}
}

func (s *validateSuite) TestEndOutsideRangeFails() {
	for end := -3; end <= 30; end++ {
		if end >= 0 && end <= 4 {
			continue
		}

		err := ValidateHours(hours(17, 18, end), s.rules)
		s.Error(err, "end %d", end)
		s.Equal(ErrEndOutOfRange, s.reasonOf(err), "end %d", end)
	}
}

func (s *validateSuite) TestErrorMessageListsAllInputs() {
	bed := 20
	err := ValidateHours(RawInput{Bed: &bed}, s.rules)
	s.Require().Error(err)

	msg := err.Error()
	s.Contains(msg, "Invalid input. All hours must be numeric")
	s.Contains(msg, "Start Time (17-23) = null \n")
	s.Contains(msg, "Bed Time (18-24) = 20 \n")
	s.Contains(msg, "End Time (00-04) = null ")
}

func (s *validateSuite) TestCustomRules() {
	rules := HourRules{
		Start: HourRange{Min: 18, Max: 22},
		Bed:   HourRange{Min: 19, Max: 24},
		End:   HourRange{Min: 0, Max: 2},
	}

	s.NoError(ValidateHours(hours(18, 19, 2), rules))
	s.Error(ValidateHours(hours(17, 19, 2), rules))
	s.Error(ValidateHours(hours(18, 19, 3), rules))
}

func (s *validateSuite) TestParseHour() {
	testCases := []struct {
		name  string
		input string
		exp   *int
	}{
		{name: "plain", input: "17", exp: intPtr(17)},
		{name: "leading zero", input: "04", exp: intPtr(4)},
		{name: "negative", input: "-1", exp: intPtr(-1)},
		{name: "empty", input: ""},
		{name: "word", input: "five"},
		{name: "fraction", input: "17.5"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.exp, ParseHour(tc.input))
		})
	}
}

func intPtr(i int) *int {
	return &i
}
