// Package calendar partitions a historical lookback window into contiguous,
// month-aligned billing periods. Invoice generation buckets its output by
// these periods, one batch job per period.
package calendar

import "time"

// Period is one calendar-month-aligned date range. Both ends are inclusive.
// The first period of a range may start mid-month and the last period is
// truncated at the caller's end date rather than the end of its month.
type Period struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive number of days covered by the period.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// midnight truncates t to a date at UTC midnight. All period arithmetic
// operates on whole days.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PeriodEnd returns the last day of the month containing start. December is
// special-cased; every other month is computed as the first of the next
// month minus one day.
func PeriodEnd(start time.Time) time.Time {
	if start.Month() == time.December {
		return time.Date(start.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// MonthRanges splits [start, end] into one period per calendar month. The
// first period begins at start, the last ends at end, and consecutive
// periods are contiguous. A start after the end yields an empty slice, not
// an error.
func MonthRanges(start, end time.Time) []Period {
	start = midnight(start)
	end = midnight(end)
	if start.After(end) {
		return nil
	}

	var periods []Period
	periodBegin := start
	for {
		if periodBegin.Year() == end.Year() && periodBegin.Month() == end.Month() {
			periods = append(periods, Period{Start: periodBegin, End: end})
			return periods
		}
		periods = append(periods, Period{Start: periodBegin, End: PeriodEnd(periodBegin)})
		periodBegin = time.Date(periodBegin.Year(), periodBegin.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	}
}

// YearRanges produces the month periods for yearsBack full historical years
// plus the current year truncated at today. Years are partitioned
// independently and concatenated; callers fanning the result out in
// parallel must not assume the merged sequence is globally sorted.
func YearRanges(yearsBack int, today time.Time) []Period {
	today = midnight(today)

	var periods []Period
	for y := 0; y < yearsBack; y++ {
		year := today.Year() - yearsBack + y
		periods = append(periods, MonthRanges(
			time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		)...)
	}
	periods = append(periods, MonthRanges(
		time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
		today,
	)...)
	return periods
}
