package progress

import (
	"testing"
	"time"
)

func TestIsLeap(t *testing.T) {
	testCases := []struct {
		year int
		leap bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100 but not 400
		{2100, false},
		{1996, true},
		{2026, false},
	}

	for _, tc := range testCases {
		if got := IsLeap(tc.year); got != tc.leap {
			t.Errorf("IsLeap(%d) = %v, expected %v", tc.year, got, tc.leap)
		}
	}
}

func TestTotalDays(t *testing.T) {
	if got := TotalDays(2024); got != 366 {
		t.Errorf("TotalDays(2024) = %d, expected 366", got)
	}
	if got := TotalDays(2023); got != 365 {
		t.Errorf("TotalDays(2023) = %d, expected 365", got)
	}
}

func TestCompute_LeapYearDay100(t *testing.T) {
	// April 9, 2024 is day 100 of a leap year
	now := time.Date(2024, time.April, 9, 15, 30, 0, 0, time.UTC)
	prog := Compute(now, time.UTC)

	if prog.Year != 2024 {
		t.Errorf("expected year 2024, got %d", prog.Year)
	}
	if prog.DayOfYear != 100 {
		t.Errorf("expected day 100, got %d", prog.DayOfYear)
	}
	if prog.TotalDays != 366 {
		t.Errorf("expected 366 total days, got %d", prog.TotalDays)
	}
	if prog.DaysLeft != 266 {
		t.Errorf("expected 266 days left, got %d", prog.DaysLeft)
	}
	if prog.Percentage != 27 {
		t.Errorf("expected 27%%, got %d%%", prog.Percentage)
	}
}

func TestCompute_LastDayOfYear(t *testing.T) {
	// December 31, 2023 is day 365 of a non-leap year
	now := time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)
	prog := Compute(now, time.UTC)

	if prog.DayOfYear != 365 {
		t.Errorf("expected day 365, got %d", prog.DayOfYear)
	}
	if prog.DaysLeft != 0 {
		t.Errorf("expected 0 days left, got %d", prog.DaysLeft)
	}
	if prog.Percentage != 100 {
		t.Errorf("expected 100%%, got %d%%", prog.Percentage)
	}
}

func TestCompute_FirstDayOfYear(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 0, 1, 0, time.UTC)
	prog := Compute(now, time.UTC)

	if prog.DayOfYear != 1 {
		t.Errorf("expected day 1, got %d", prog.DayOfYear)
	}
	if prog.DaysLeft != 364 {
		t.Errorf("expected 364 days left, got %d", prog.DaysLeft)
	}
	// 1/365 = 0.27%, rounds to 0
	if prog.Percentage != 0 {
		t.Errorf("expected 0%%, got %d%%", prog.Percentage)
	}
}

func TestCompute_TimezoneShiftsDay(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatal(err)
	}

	// 20:00 UTC on Dec 31 is already Jan 1 in Sydney (UTC+11 in summer)
	now := time.Date(2024, time.December, 31, 20, 0, 0, 0, time.UTC)

	utcProg := Compute(now, time.UTC)
	sydProg := Compute(now, sydney)

	if utcProg.DayOfYear != 366 {
		t.Errorf("UTC: expected day 366, got %d", utcProg.DayOfYear)
	}
	if sydProg.Year != 2025 {
		t.Errorf("Sydney: expected year 2025, got %d", sydProg.Year)
	}
	if sydProg.DayOfYear != 1 {
		t.Errorf("Sydney: expected day 1, got %d", sydProg.DayOfYear)
	}
}

func TestCompute_Invariant(t *testing.T) {
	// DayOfYear + DaysLeft == TotalDays on every day of both year kinds
	for _, year := range []int{2023, 2024} {
		start := time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC)
		for d := 0; d < TotalDays(year); d++ {
			prog := Compute(start.AddDate(0, 0, d), time.UTC)
			if prog.DayOfYear+prog.DaysLeft != prog.TotalDays {
				t.Fatalf("invariant broken on %d day %d: %d + %d != %d",
					year, d+1, prog.DayOfYear, prog.DaysLeft, prog.TotalDays)
			}
			if prog.Percentage < 0 || prog.Percentage > 100 {
				t.Fatalf("percentage out of range on %d day %d: %d", year, d+1, prog.Percentage)
			}
		}
	}
}

func TestCompute_NilLocationUsesLocal(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	prog := Compute(now, nil)

	want := Compute(now, time.Local)
	if prog != want {
		t.Errorf("nil location: got %+v, expected %+v", prog, want)
	}
}

func TestMonthLengths(t *testing.T) {
	leap := MonthLengths(2024)
	if leap[1] != 29 {
		t.Errorf("expected 29 days in Feb 2024, got %d", leap[1])
	}

	normal := MonthLengths(2023)
	if normal[1] != 28 {
		t.Errorf("expected 28 days in Feb 2023, got %d", normal[1])
	}

	for _, year := range []int{2023, 2024} {
		sum := 0
		for _, days := range MonthLengths(year) {
			sum += days
		}
		if sum != TotalDays(year) {
			t.Errorf("month lengths for %d sum to %d, expected %d", year, sum, TotalDays(year))
		}
	}
}
