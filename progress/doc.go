/*
Package progress implements the calendar math behind the wallpapers.

Compute resolves an instant into a calendar date in a given timezone and
returns the day-of-year, total days in the year, days remaining, and the
rounded percentage complete:

	prog := progress.Compute(time.Now(), loc)

Invariant: prog.DayOfYear + prog.DaysLeft == prog.TotalDays.

The timezone matters: one variant pins the "day" to Australia/Sydney so
the wallpaper ticks over at Sydney midnight regardless of where the
server runs. Everything here is pure and has no failure modes.
*/
package progress
