package main

import (
	"github.com/shopspring/decimal"
)

// Rates are the hourly rates for the three parts of a night.
type Rates struct {
	BeforeBed   decimal.Decimal
	AfterBed    decimal.Decimal
	AfterCutoff decimal.Decimal
}

var DefaultRates = Rates{
	BeforeBed:   decimal.NewFromInt(12),
	AfterBed:    decimal.NewFromInt(8),
	AfterCutoff: decimal.NewFromInt(16),
}

// DefaultCutoffHour is where the after-bed band ends. It is a plain hour of
// day and does not go through Offset.
const DefaultCutoffHour = 7

// RateTable is an ordered list of contiguous bands.
type RateTable []RateBand

// NewRateTable checks that every band ends where the next one starts.
func NewRateTable(bands ...RateBand) (RateTable, error) {
	if len(bands) == 0 {
		return nil, ErrEmptyRateTable
	}

	for i := 0; i < len(bands)-1; i++ {
		if !bands[i].End.Equal(bands[i+1].Start) {
			return nil, &ContiguityError{Index: i, End: bands[i].End, NextStart: bands[i+1].Start}
		}
	}

	table := make(RateTable, len(bands))
	copy(table, bands)
	return table, nil
}

func (b RateBand) Hours() int {
	return HoursBetween(b.Start, b.End)
}

func (b RateBand) Amount() decimal.Decimal {
	return decimal.NewFromInt(int64(b.Hours())).Mul(b.Rate)
}

// TotalPay sums hours x rate over all bands. Negative bands are kept as is.
func (t RateTable) TotalPay() decimal.Decimal {
	total := decimal.Zero
	for _, band := range t {
		total = total.Add(band.Amount())
	}
	return total
}

func (t RateTable) Lines() []BandLine {
	lines := make([]BandLine, 0, len(t))
	for _, band := range t {
		lines = append(lines, BandLine{
			From:   FormatClock(band.Start),
			To:     FormatClock(band.End),
			Hours:  band.Hours(),
			Rate:   band.Rate,
			Amount: band.Amount(),
		})
	}
	return lines
}

type Calculator struct {
	rates      Rates
	cutoffHour int
}

func NewCalculator(rates Rates, cutoffHour int) *Calculator {
	return &Calculator{
		rates:      rates,
		cutoffHour: cutoffHour,
	}
}

// Bands builds start->bed, bed->cutoff and cutoff->end for the given night.
func (c *Calculator) Bands(w WorkDay) (RateTable, error) {
	cutoff := HourOfDay(c.cutoffHour)

	return NewRateTable(
		RateBand{Start: HourOfDay(w.Start.Hour()), End: HourOfDay(w.Bed.Hour()), Rate: c.rates.BeforeBed},
		RateBand{Start: HourOfDay(w.Bed.Hour()), End: cutoff, Rate: c.rates.AfterBed},
		RateBand{Start: cutoff, End: HourOfDay(w.End.Hour()), Rate: c.rates.AfterCutoff},
	)
}

func (c *Calculator) Pay(w WorkDay) (decimal.Decimal, error) {
	bands, err := c.Bands(w)
	if err != nil {
		return decimal.Zero, err
	}
	return bands.TotalPay(), nil
}
