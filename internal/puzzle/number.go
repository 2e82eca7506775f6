// Package puzzle maps calendar dates to sequential puzzle numbers.
package puzzle

import (
	"errors"
	"fmt"
	"time"
)

// The numbering is anchored at one known (date, number) pair and advances
// by exactly one per calendar day.
var baseDate = time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)

const baseNumber = 1479

// DateLayout is the wire format for puzzle dates.
const DateLayout = "2006-01-02"

// ErrInvalidDate indicates a date string that could not be parsed.
var ErrInvalidDate = errors.New("invalid date")

// Number returns the puzzle number for the given date. The calculation is
// pure: identical input always yields identical output.
func Number(date time.Time) int {
	d := midnightUTC(date)
	return baseNumber + int(d.Sub(baseDate).Hours()/24)
}

// Date returns the puzzle date for the given number, the inverse of Number.
func Date(number int) time.Time {
	return baseDate.AddDate(0, 0, number-baseNumber)
}

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders a date in the YYYY-MM-DD wire format.
func FormatDate(t time.Time) string {
	return midnightUTC(t).Format(DateLayout)
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
