package progress

import (
	"math"
	"time"
)

// Progress describes how far through the year a given instant falls.
type Progress struct {
	Year       int
	DayOfYear  int // 1..366
	TotalDays  int // 365 or 366
	DaysLeft   int
	Percentage int // 0..100, rounded half away from zero
}

// Compute resolves now into a calendar date in loc and derives the year
// progress. A nil loc means the server's local timezone.
//
// The day-of-year is taken from the midnight-normalized date, not from raw
// instant arithmetic, so daylight-saving transitions cannot shift the count.
func Compute(now time.Time, loc *time.Location) Progress {
	if loc == nil {
		loc = time.Local
	}

	t := now.In(loc)
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, loc)

	dayOfYear := midnight.YearDay()
	totalDays := TotalDays(year)

	return Progress{
		Year:       year,
		DayOfYear:  dayOfYear,
		TotalDays:  totalDays,
		DaysLeft:   totalDays - dayOfYear,
		Percentage: int(math.Round(float64(dayOfYear) / float64(totalDays) * 100)),
	}
}

// IsLeap reports whether year is a leap year in the Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// TotalDays returns the number of days in year (365 or 366).
func TotalDays(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// MonthLengths returns the number of days in each month of year,
// January first.
func MonthLengths(year int) [12]int {
	lengths := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if IsLeap(year) {
		lengths[1] = 29
	}
	return lengths
}
