package recurrence

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotify/models"
)

// fakeDetector marks the configured starts as conflicting and fails outright
// on the configured error starts. A random sleep shuffles goroutine completion
// order so ordering bugs surface.
type fakeDetector struct {
	conflicts map[time.Time]string
	errOn     map[time.Time]error
}

func (d *fakeDetector) Check(ctx context.Context, params ConflictCheckParams) (ConflictCheckResult, error) {
	time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
	if err, ok := d.errOn[params.Start]; ok {
		return ConflictCheckResult{}, err
	}
	if reason, ok := d.conflicts[params.Start]; ok {
		return ConflictCheckResult{Conflict: true, Reason: reason}, nil
	}
	return ConflictCheckResult{}, nil
}

func dailyRequest(count int) PlanRequest {
	return PlanRequest{
		ServiceID:       "svc-1",
		DurationMinutes: 60,
		Start:           seriesStart,
		Pattern: models.RecurrencePattern{
			Frequency: models.FrequencyDaily,
			Count:     intPtr(count),
		},
	}
}

func TestPlan_OneItemPerOccurrenceInOrder(t *testing.T) {
	planner := &Planner{Detector: &fakeDetector{}}

	items, err := planner.Plan(context.Background(), dailyRequest(10))
	require.NoError(t, err)
	require.Len(t, items, 10)
	for i, item := range items {
		assert.Equal(t, seriesStart.AddDate(0, 0, i), item.Start)
		assert.Equal(t, item.Start.Add(time.Hour), item.End)
		assert.False(t, item.Conflict)
		assert.Empty(t, item.Reason)
	}
}

func TestPlan_ConflictsReportedPerOccurrence(t *testing.T) {
	second := seriesStart.AddDate(0, 0, 1)
	planner := &Planner{Detector: &fakeDetector{
		conflicts: map[time.Time]string{second: "staff already booked"},
	}}

	items, err := planner.Plan(context.Background(), dailyRequest(3))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.False(t, items[0].Conflict)
	assert.True(t, items[1].Conflict)
	assert.Equal(t, "staff already booked", items[1].Reason)
	assert.False(t, items[2].Conflict)
}

func TestPlan_DetectorFailureIsolatedToOccurrence(t *testing.T) {
	failing := seriesStart.AddDate(0, 0, 2)
	planner := &Planner{Detector: &fakeDetector{
		errOn: map[time.Time]error{failing: errors.New("store unreachable")},
	}}

	items, err := planner.Plan(context.Background(), dailyRequest(4))
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.True(t, items[2].Conflict)
	assert.Equal(t, fmt.Sprintf("conflict check failed: %v", errors.New("store unreachable")), items[2].Reason)
	for _, i := range []int{0, 1, 3} {
		assert.False(t, items[i].Conflict, "occurrence %d must not inherit the failure", i)
	}
}

func TestPlan_InvalidPatternPropagates(t *testing.T) {
	planner := &Planner{Detector: &fakeDetector{}}

	req := dailyRequest(3)
	req.DurationMinutes = 0
	_, err := planner.Plan(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
