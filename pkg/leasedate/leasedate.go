// Package leasedate provides calendar-correct lease period arithmetic.
package leasedate

import "time"

// AddMonths returns the date months after start, clamping the day of month
// when the target month is shorter. Adding one month to Jan 31 lands on the
// last day of February, honoring leap years. The returned time keeps the
// start's location at midnight.
func AddMonths(start time.Time, months int) time.Time {
	y, m, d := start.Date()

	total := int(m) - 1 + months
	ty := y + total/12
	tm := time.Month(total%12 + 1)
	if total < 0 {
		// Go integer division truncates toward zero, shift for negatives.
		ty = y + (total-11)/12
		tm = time.Month((total%12+12)%12 + 1)
	}

	if max := daysIn(ty, tm); d > max {
		d = max
	}
	return time.Date(ty, tm, d, 0, 0, 0, 0, start.Location())
}

// Period computes the [start, end] lease span for a duration in months.
func Period(start time.Time, months int) (time.Time, time.Time) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	return s, AddMonths(s, months)
}

func daysIn(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
