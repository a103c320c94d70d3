package main

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawInput holds the hours as typed by the user. A nil field means the value
// was missing or not an integer.
type RawInput struct {
	Start *int
	Bed   *int
	End   *int
}

// WorkDay is a night expressed on the babysitter clock, where 00:00 is 5PM.
type WorkDay struct {
	Start time.Time
	Bed   time.Time
	End   time.Time
}

type RateBand struct {
	Start time.Time
	End   time.Time
	Rate  decimal.Decimal
}

type HourRange struct {
	Min int
	Max int
}

func (r HourRange) Contains(h int) bool {
	return h >= r.Min && h <= r.Max
}

// HourRules are the business rules applied to raw hours before normalization.
type HourRules struct {
	Start HourRange
	Bed   HourRange
	End   HourRange
}

// NightHours is a validated triple of hours, either raw clock hours or offsets.
type NightHours struct {
	Start int `json:"start"`
	Bed   int `json:"bed"`
	End   int `json:"end"`
}

type BandLine struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Hours  int             `json:"hours"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// Report is everything printed for one successful calculation.
type Report struct {
	Input   NightHours      `json:"input"`
	Offsets NightHours      `json:"offsets"`
	WorkDay [3]string       `json:"work_day"`
	Bands   []BandLine      `json:"bands"`
	Total   decimal.Decimal `json:"total"`
}

type OutputOptions struct {
	JSON      bool
	Breakdown bool
}
