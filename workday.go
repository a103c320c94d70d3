package main

import "time"

// DayStartHour is the clock hour that maps to offset 0 on the babysitter clock.
const DayStartHour = 17

// Offset maps a clock hour onto the babysitter clock:
//
//	17 (5PM)  -> 0
//	23 (11PM) -> 6
//	24 / 0    -> 7
//	4 (4AM)   -> 11
func Offset(h int) int {
	if h >= DayStartHour {
		return h - DayStartHour
	}
	return h + 24 - DayStartHour
}

// Normalize converts validated clock hours into a WorkDay. It has no side
// effects, so callers validate first and then normalize.
func Normalize(startHour, bedHour, endHour int) WorkDay {
	return WorkDay{
		Start: HourOfDay(Offset(startHour)),
		Bed:   HourOfDay(Offset(bedHour)),
		End:   HourOfDay(Offset(endHour)),
	}
}

// HourOfDay returns the time-of-day h:00:00 on a fixed reference date.
func HourOfDay(h int) time.Time {
	return time.Date(0, time.January, 1, h%24, 0, 0, 0, time.UTC)
}

// HoursBetween counts whole hours from start to end. The result is negative
// when end is before start.
func HoursBetween(start, end time.Time) int {
	return int(end.Sub(start) / time.Hour)
}

func (w WorkDay) Offsets() NightHours {
	return NightHours{Start: w.Start.Hour(), Bed: w.Bed.Hour(), End: w.End.Hour()}
}
