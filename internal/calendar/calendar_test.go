package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodEnd(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  time.Time
	}{
		{"mid january", date(2023, time.January, 15), date(2023, time.January, 31)},
		{"february non-leap", date(2023, time.February, 1), date(2023, time.February, 28)},
		{"february leap", date(2024, time.February, 10), date(2024, time.February, 29)},
		{"april thirty days", date(2023, time.April, 1), date(2023, time.April, 30)},
		{"december special case", date(2023, time.December, 5), date(2023, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodEnd(tt.start))
		})
	}
}

func TestMonthRangesSingleYear(t *testing.T) {
	periods := MonthRanges(date(2023, time.January, 1), date(2023, time.December, 31))
	require.Len(t, periods, 12)

	assert.Equal(t, date(2023, time.January, 1), periods[0].Start)
	assert.Equal(t, date(2023, time.December, 31), periods[len(periods)-1].End)

	for i, p := range periods {
		assert.False(t, p.Start.After(p.End), "period %d start after end", i)
		if i > 0 {
			prev := periods[i-1]
			assert.Equal(t, prev.End.AddDate(0, 0, 1), p.Start,
				"period %d not contiguous with its predecessor", i)
		}
	}
}

func TestMonthRangesTruncatedLastPeriod(t *testing.T) {
	periods := MonthRanges(date(2024, time.January, 1), date(2024, time.March, 15))
	require.Len(t, periods, 3)

	assert.Equal(t, Period{date(2024, time.January, 1), date(2024, time.January, 31)}, periods[0])
	assert.Equal(t, Period{date(2024, time.February, 1), date(2024, time.February, 29)}, periods[1])
	assert.Equal(t, Period{date(2024, time.March, 1), date(2024, time.March, 15)}, periods[2])
}

func TestMonthRangesMidMonthStart(t *testing.T) {
	periods := MonthRanges(date(2023, time.November, 20), date(2024, time.January, 10))
	require.Len(t, periods, 3)

	assert.Equal(t, date(2023, time.November, 20), periods[0].Start)
	assert.Equal(t, date(2023, time.November, 30), periods[0].End)
	assert.Equal(t, date(2023, time.December, 31), periods[1].End)
	assert.Equal(t, date(2024, time.January, 10), periods[2].End)
}

func TestMonthRangesSameMonth(t *testing.T) {
	periods := MonthRanges(date(2023, time.June, 5), date(2023, time.June, 20))
	require.Len(t, periods, 1)
	assert.Equal(t, Period{date(2023, time.June, 5), date(2023, time.June, 20)}, periods[0])
}

func TestMonthRangesReversedRangeIsEmpty(t *testing.T) {
	periods := MonthRanges(date(2024, time.March, 1), date(2023, time.March, 1))
	assert.Empty(t, periods)
}

func TestYearRangesOneYearBack(t *testing.T) {
	periods := YearRanges(1, date(2024, time.March, 15))
	require.Len(t, periods, 15)

	// Twelve full months of 2023.
	for i := 0; i < 12; i++ {
		assert.Equal(t, 2023, periods[i].Start.Year())
		assert.Equal(t, time.Month(i+1), periods[i].Start.Month())
		assert.Equal(t, 1, periods[i].Start.Day())
	}
	assert.Equal(t, date(2023, time.December, 31), periods[11].End)

	// Current year truncated at today.
	assert.Equal(t, date(2024, time.January, 1), periods[12].Start)
	assert.Equal(t, date(2024, time.March, 15), periods[14].End)
}

func TestYearRangesZeroYearsBack(t *testing.T) {
	periods := YearRanges(0, date(2024, time.February, 10))
	require.Len(t, periods, 2)
	assert.Equal(t, date(2024, time.January, 1), periods[0].Start)
	assert.Equal(t, date(2024, time.February, 10), periods[1].End)
}

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 31, Period{date(2023, time.January, 1), date(2023, time.January, 31)}.Days())
	assert.Equal(t, 1, Period{date(2023, time.January, 1), date(2023, time.January, 1)}.Days())
}
