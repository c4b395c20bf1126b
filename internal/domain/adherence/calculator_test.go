package adherence

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestExpectedDoses_Positive(t *testing.T) {
	cases := []struct {
		perDay, days, want int
	}{
		{2, 7, 14},
		{3, 7, 21},
		{1, 1, 1},
		{12, 30, 360},
		{1, 100000, 100000},
	}
	for _, c := range cases {
		got, err := ExpectedDoses(c.perDay, c.days)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "perDay=%d days=%d", c.perDay, c.days)
	}
}

func TestExpectedDoses_RejectsNonPositive(t *testing.T) {
	cases := []struct{ perDay, days int }{
		{3, 0},
		{3, -5},
		{0, 5},
		{-1, 5},
		{0, 0},
	}
	for _, c := range cases {
		got, err := ExpectedDoses(c.perDay, c.days)
		assert.ErrorIs(t, err, ErrInvalidSchedule, "perDay=%d days=%d", c.perDay, c.days)
		assert.Zero(t, got)
	}
}

func TestRate_NoLogs(t *testing.T) {
	assert.Equal(t, 0.0, Rate(nil))
	assert.Equal(t, 0.0, Rate([]Dose{}))
}

func TestRate_TakenOverLogged(t *testing.T) {
	now := time.Now()

	all := []Dose{{TakenAt: now, WasTaken: true}, {TakenAt: now, WasTaken: true}}
	assert.Equal(t, 100.0, Rate(all))

	none := []Dose{{TakenAt: now}, {TakenAt: now}, {TakenAt: now}}
	assert.Equal(t, 0.0, Rate(none))

	mixed := []Dose{
		{TakenAt: now, WasTaken: true},
		{TakenAt: now, WasTaken: false},
		{TakenAt: now, WasTaken: true},
		{TakenAt: now, WasTaken: true},
	}
	assert.Equal(t, 75.0, Rate(mixed))
}

func TestRateOverPeriod_HalfOfExpected(t *testing.T) {
	doses := []Dose{
		{TakenAt: day(2025, 1, 1, 8), WasTaken: true},
		{TakenAt: day(2025, 1, 2, 8), WasTaken: true},
		{TakenAt: day(2025, 1, 3, 8), WasTaken: true},
		{TakenAt: day(2025, 1, 1, 20), WasTaken: false},
	}

	got, err := RateOverPeriod(2, doses, day(2025, 1, 1, 0), day(2025, 1, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 50.0, got)
}

func TestRateOverPeriod_IgnoresDosesOutsideRange(t *testing.T) {
	doses := []Dose{
		{TakenAt: day(2024, 12, 31, 23), WasTaken: true},
		{TakenAt: day(2025, 1, 1, 0), WasTaken: true},
		{TakenAt: day(2025, 1, 2, 23), WasTaken: true},
		{TakenAt: day(2025, 1, 3, 0), WasTaken: true},
	}

	got, err := RateOverPeriod(1, doses, day(2025, 1, 1, 0), day(2025, 1, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}

func TestRateOverPeriod_NoLogsIsZero(t *testing.T) {
	got, err := RateOverPeriod(2, nil, day(2025, 1, 1, 0), day(2025, 1, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestRateOverPeriod_InvalidRange(t *testing.T) {
	_, err := RateOverPeriod(2, nil, day(2025, 1, 3, 0), day(2025, 1, 1, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)

	// el rango se valida antes que el schedule
	_, err = RateOverPeriod(0, nil, day(2025, 1, 3, 0), day(2025, 1, 1, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRateOverPeriod_UnscheduledSwallowsError(t *testing.T) {
	doses := []Dose{{TakenAt: day(2025, 1, 1, 8), WasTaken: true}}

	got, err := RateOverPeriod(0, doses, day(2025, 1, 1, 0), day(2025, 1, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestRateOverPeriod_SingleDay(t *testing.T) {
	doses := []Dose{{TakenAt: day(2025, 3, 10, 9), WasTaken: true}}

	got, err := RateOverPeriod(4, doses, day(2025, 3, 10, 0), day(2025, 3, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, 25.0, got)
}

func TestDaysInRange(t *testing.T) {
	assert.Equal(t, 1, DaysInRange(day(2025, 1, 1, 0), day(2025, 1, 1, 0)))
	assert.Equal(t, 3, DaysInRange(day(2025, 1, 1, 0), day(2025, 1, 3, 0)))
	assert.Equal(t, 366, DaysInRange(day(2024, 1, 1, 0), day(2024, 12, 31, 0)))
}

func TestExpectedDoses_Overflow(t *testing.T) {
	// el mayor days que todavía entra
	got, err := ExpectedDoses(2, math.MaxInt/2)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt/2*2, got)

	_, err = ExpectedDoses(2, math.MaxInt/2+1)
	assert.ErrorIs(t, err, ErrScheduleOverflow)

	_, err = ExpectedDoses(math.MaxInt, 2)
	assert.ErrorIs(t, err, ErrScheduleOverflow)
}

func TestDaysInRange_LongSpans(t *testing.T) {
	assert.Equal(t, 118705, DaysInRange(day(1700, 1, 1, 0), day(2025, 1, 1, 0)))
	assert.Equal(t, 3652059, DaysInRange(day(1, 1, 1, 0), day(9999, 12, 31, 0)))
}

func TestRateOverPeriod_LongSpanUsesFullDayCount(t *testing.T) {
	doses := []Dose{{TakenAt: day(1800, 6, 1, 8), WasTaken: true}}

	got, err := RateOverPeriod(1, doses, day(1700, 1, 1, 0), day(2025, 1, 1, 0))
	require.NoError(t, err)
	assert.InDelta(t, 100.0/118705, got, 1e-12)
}
