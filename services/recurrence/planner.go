package recurrence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"slotify/models"
	"slotify/utils"
)

// ConflictCheckParams describes one proposed occurrence.
type ConflictCheckParams struct {
	ServiceID       string
	StaffID         *string
	TenantID        *string
	Start           time.Time
	DurationMinutes int
}

// ConflictCheckResult is the detector's verdict for one occurrence.
type ConflictCheckResult struct {
	Conflict             bool
	Reason               string
	ConflictingBookingID string
}

// ConflictDetector decides whether one proposed booking time collides with
// existing commitments. It is external and authoritative; the planner treats
// it as opaque.
type ConflictDetector interface {
	Check(ctx context.Context, params ConflictCheckParams) (ConflictCheckResult, error)
}

// PlanRequest describes a recurring series to plan.
type PlanRequest struct {
	ServiceID       string
	StaffID         *string
	TenantID        *string
	DurationMinutes int
	Start           time.Time
	Pattern         models.RecurrencePattern
}

// Planner expands a recurring pattern and checks every occurrence for
// conflicts. It performs no writes; materializing the accepted occurrences is
// the caller's job.
type Planner struct {
	Detector ConflictDetector
}

// Plan returns exactly one item per expanded occurrence, in chronological
// order. The per-occurrence checks run concurrently; a failed check marks
// only its own occurrence as conflicting, with the failure as reason, so one
// bad occurrence never aborts the series.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) ([]models.RecurringPlanItem, error) {
	occurrences, err := ExpandOccurrences(req.Start, req.DurationMinutes, req.Pattern)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	items := make([]models.RecurringPlanItem, len(occurrences))

	var wg sync.WaitGroup
	for i, start := range occurrences {
		wg.Add(1)
		go func(i int, start time.Time) {
			defer wg.Done()

			item := models.RecurringPlanItem{Start: start, End: start.Add(duration)}
			result, err := p.Detector.Check(ctx, ConflictCheckParams{
				ServiceID:       req.ServiceID,
				StaffID:         req.StaffID,
				TenantID:        req.TenantID,
				Start:           start,
				DurationMinutes: req.DurationMinutes,
			})
			if err != nil {
				utils.GetLogger().Warn("recurrence: conflict check failed for occurrence",
					zap.Time("start", start), zap.Error(err))
				item.Conflict = true
				item.Reason = fmt.Sprintf("conflict check failed: %v", err)
			} else {
				item.Conflict = result.Conflict
				item.Reason = result.Reason
			}
			items[i] = item
		}(i, start)
	}
	wg.Wait()

	return items, nil
}
