package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNext_RollsForwardToNextStep(t *testing.T) {
	s := mustParse(t, "*/5 * * * *")
	next, err := s.Next(ts("2024-06-15T10:30:00Z"))
	require.NoError(t, err)
	assert.Equal(t, ts("2024-06-15T10:35:00Z"), next)
}

func TestNext_IsStrictlyAfterFrom(t *testing.T) {
	s := mustParse(t, "35 10 * * *")

	// from exactly on a fire time: the result is the next day, not from itself
	next, err := s.Next(ts("2024-06-15T10:35:00Z"))
	require.NoError(t, err)
	assert.Equal(t, ts("2024-06-16T10:35:00Z"), next)
}

func TestNext_TruncatesSecondsBeforeBumping(t *testing.T) {
	s := mustParse(t, "*/5 * * * *")

	// 10:34:59 truncates to 10:34, bumps to 10:35 which matches
	next, err := s.Next(ts("2024-06-15T10:34:59Z"))
	require.NoError(t, err)
	assert.Equal(t, ts("2024-06-15T10:35:00Z"), next)

	// the returned instant is always a whole minute
	assert.Zero(t, next.Second())
	assert.Zero(t, next.Nanosecond())
}

func TestNext_SkipsWeekendForWeekdayExpression(t *testing.T) {
	// 2024-06-15 is a Saturday
	s := mustParse(t, "0 9 * * 1-5")
	next, err := s.Next(ts("2024-06-15T10:30:00Z"))
	require.NoError(t, err)
	assert.Equal(t, ts("2024-06-17T09:00:00Z"), next)
	assert.Equal(t, time.Monday, next.Weekday())
}

func TestNext_DayOfMonthAndWeekdayIntersect(t *testing.T) {
	// Friday the 13th: both the day-of-month and day-of-week restriction
	// must hold on the same day.
	s := mustParse(t, "0 0 13 * 5")
	next, err := s.Next(ts("2024-06-15T00:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, ts("2024-09-13T00:00:00Z"), next)
	assert.Equal(t, time.Friday, next.Weekday())
}

func TestNext_CrossesYearBoundary(t *testing.T) {
	s := mustParse(t, "0 0 1 1 *")
	next, err := s.Next(ts("2024-06-15T10:30:00Z"))
	require.NoError(t, err)
	assert.Equal(t, ts("2025-01-01T00:00:00Z"), next)
}

func TestNext_FindsLeapDayWithinBudget(t *testing.T) {
	s := mustParse(t, "0 0 29 2 *")
	next, err := s.Next(ts("2027-06-15T00:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, ts("2028-02-29T00:00:00Z"), next)
}

func TestNext_UnreachableWhenBudgetExhausted(t *testing.T) {
	// February 30 does not exist in any year.
	s := mustParse(t, "0 0 30 2 *")
	_, err := s.Next(ts("2024-01-01T00:00:00Z"))
	assert.ErrorIs(t, err, ErrUnreachable)

	// February 29 exists, but not within one year of 2025.
	s = mustParse(t, "0 0 29 2 *")
	_, err = s.Next(ts("2025-01-01T00:00:00Z"))
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestNext_HandlesShortMonths(t *testing.T) {
	s := mustParse(t, "59 23 31 * *")
	// April has 30 days, so the next 31st after April 1st is May 31st.
	next, err := s.Next(ts("2024-04-01T00:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, ts("2024-05-31T23:59:00Z"), next)
}

func TestNext_ChainIsStrictlyIncreasingAndAlwaysMatches(t *testing.T) {
	s := mustParse(t, "*/7 9-17 * * 1-5")
	cur := ts("2024-06-14T08:11:23Z")
	for i := 0; i < 200; i++ {
		next, err := s.Next(cur)
		require.NoError(t, err)
		require.True(t, next.After(cur), "iteration %d: %s not after %s", i, next, cur)
		require.True(t, s.Matches(next), "iteration %d: %s does not match", i, next)
		cur = next
	}
}

func TestNext_PreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	s := mustParse(t, "0 9 * * *")
	from := time.Date(2024, 6, 15, 10, 30, 0, 0, loc)
	next, err := s.Next(from)
	require.NoError(t, err)
	assert.Equal(t, loc, next.Location())
	assert.Equal(t, 9, next.Hour())
	assert.Equal(t, 16, next.Day())
}

func TestNextAfter_ParsesAndComputes(t *testing.T) {
	next, err := NextAfter("*/5 * * * *", ts("2024-06-15T10:30:00Z"))
	require.NoError(t, err)
	assert.Equal(t, ts("2024-06-15T10:35:00Z"), next)

	_, err = NextAfter("bogus", ts("2024-06-15T10:30:00Z"))
	assert.ErrorIs(t, err, ErrBadExpression)
}
