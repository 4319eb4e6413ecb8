package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotify/models"
)

var seriesStart = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC) // a Wednesday

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func TestExpandOccurrences_DailyWithInterval(t *testing.T) {
	out, err := ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
		Frequency: models.FrequencyDaily,
		Interval:  2,
		Count:     intPtr(3),
	})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, seriesStart, out[0])
	assert.Equal(t, seriesStart.AddDate(0, 0, 2), out[1])
	assert.Equal(t, seriesStart.AddDate(0, 0, 4), out[2])
}

func TestExpandOccurrences_WeeklyByWeekday(t *testing.T) {
	// Starting on a Wednesday but only Mondays are allowed: the cursor steps
	// weekly and never lands on a Monday, so nothing is included.
	out, err := ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
		Frequency: models.FrequencyWeekly,
		ByWeekday: []int{1},
		Until:     timePtr(seriesStart.AddDate(0, 0, 28)),
	})
	require.NoError(t, err)
	assert.Empty(t, out)

	// Wednesday included: four weekly steps fit inside the until window.
	out, err = ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
		Frequency: models.FrequencyWeekly,
		ByWeekday: []int{3},
		Until:     timePtr(seriesStart.AddDate(0, 0, 28)),
	})
	require.NoError(t, err)
	require.Len(t, out, 5)
	for i, occ := range out {
		assert.Equal(t, time.Wednesday, occ.Weekday())
		assert.Equal(t, seriesStart.AddDate(0, 0, 7*i), occ)
	}
}

func TestExpandOccurrences_Monthly(t *testing.T) {
	out, err := ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
		Frequency: models.FrequencyMonthly,
		Count:     intPtr(4),
	})
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, time.Month(1), out[0].Month())
	assert.Equal(t, time.Month(4), out[3].Month())
	for _, occ := range out {
		assert.Equal(t, 1, occ.Day())
		assert.Equal(t, 10, occ.Hour())
	}
}

func TestExpandOccurrences_UntilCheckedBeforeInclusion(t *testing.T) {
	// Until falls exactly on the third occurrence, which is still included;
	// the cursor one step past it is not.
	until := seriesStart.AddDate(0, 0, 2)
	out, err := ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
		Frequency: models.FrequencyDaily,
		Until:     &until,
	})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, until, out[2])
}

func TestExpandOccurrences_IntervalClampedToOne(t *testing.T) {
	for _, interval := range []int{0, -5} {
		out, err := ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
			Frequency: models.FrequencyDaily,
			Interval:  interval,
			Count:     intPtr(2),
		})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, seriesStart.AddDate(0, 0, 1), out[1])
	}
}

func TestExpandOccurrences_InvalidInput(t *testing.T) {
	_, err := ExpandOccurrences(seriesStart, 0, models.RecurrencePattern{
		Frequency: models.FrequencyDaily,
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
		Frequency: "YEARLY",
	})
	assert.Error(t, err)
}

func TestExpandOccurrences_UnboundedPatternIsCapped(t *testing.T) {
	out, err := ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
		Frequency: models.FrequencyDaily,
	})
	require.NoError(t, err)
	assert.Len(t, out, maxUnboundedSteps)
}

func TestExpandOccurrences_BoundedPatternsOutrunUnboundedCap(t *testing.T) {
	t.Run("count past the cap", func(t *testing.T) {
		out, err := ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
			Frequency: models.FrequencyDaily,
			Count:     intPtr(400),
		})
		require.NoError(t, err)
		require.Len(t, out, 400)
		assert.Equal(t, seriesStart.AddDate(0, 0, 399), out[399])
	})

	t.Run("until past the cap", func(t *testing.T) {
		out, err := ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
			Frequency: models.FrequencyDaily,
			Until:     timePtr(seriesStart.AddDate(0, 0, 400)),
		})
		require.NoError(t, err)
		assert.Len(t, out, 401)
	})
}

func TestExpandOccurrences_UnsatisfiableBoundErrors(t *testing.T) {
	// Weekly steps from a Wednesday can never land on a Monday, so the count
	// is unreachable and the walk must give up instead of spinning.
	_, err := ExpandOccurrences(seriesStart, 60, models.RecurrencePattern{
		Frequency: models.FrequencyWeekly,
		ByWeekday: []int{1},
		Count:     intPtr(5),
	})
	assert.ErrorIs(t, err, ErrExpansionLimit)
}
