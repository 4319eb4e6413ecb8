package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"slotify/models"
	"slotify/utils"
)

const fallbackSlotMinutes = 60

// GetAvailability resolves the bookable slots for one query. A missing or
// inactive service, and a missing or unavailable staff member, all resolve to
// an empty slot list rather than an error; only invalid input and a failed
// service/staff read surface as errors.
func (e *Engine) GetAvailability(ctx context.Context, q Query) ([]models.AvailabilitySlot, error) {
	logger := utils.GetLogger()

	if q.To.Before(q.From) {
		return nil, ErrInvalidDateRange
	}
	if q.SlotMinutes < 0 {
		return nil, ErrInvalidSlotDuration
	}

	now := q.Now
	useCache := now.IsZero() && e.Cache != nil
	if now.IsZero() {
		now = time.Now()
	}

	if useCache {
		if slots, ok := e.cachedSlots(ctx, q); ok {
			return slots, nil
		}
	}

	// The service and staff lookups are independent reads.
	var (
		wg       sync.WaitGroup
		svc      *models.Service
		staff    *models.StaffMember
		svcErr   error
		staffErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc, svcErr = e.ServiceRepo.GetByID(ctx, q.ServiceID)
	}()
	if q.StaffID != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			staff, staffErr = e.StaffRepo.GetByID(ctx, *q.StaffID)
		}()
	}
	wg.Wait()

	if svcErr != nil {
		return nil, fmt.Errorf("load service %s: %w", q.ServiceID, svcErr)
	}
	if svc == nil || !svc.Active || (svc.BookingEnabled != nil && !*svc.BookingEnabled) {
		logger.Info("availability: service missing or not bookable",
			zap.String("serviceId", q.ServiceID))
		return []models.AvailabilitySlot{}, nil
	}
	if q.StaffID != nil {
		if staffErr != nil {
			return nil, fmt.Errorf("load staff %s: %w", *q.StaffID, staffErr)
		}
		if staff == nil || !staff.Available {
			logger.Info("availability: staff missing or unavailable",
				zap.String("staffId", *q.StaffID))
			return []models.AvailabilitySlot{}, nil
		}
	}

	slotMinutes := q.SlotMinutes
	if slotMinutes == 0 {
		slotMinutes = svc.DurationMinutes
	}
	if slotMinutes <= 0 {
		slotMinutes = fallbackSlotMinutes
	}

	from, to := clampToBookingWindow(q.From, q.To, svc, now)
	if from.After(to) {
		return []models.AvailabilitySlot{}, nil
	}

	policy := ResolvePolicy(svc, staff)
	policy.SkipWeekends = q.SkipWeekends
	policy.Now = now

	busy := e.collectBusyIntervals(ctx, q.ServiceID, q.StaffID, from, to, svc.DurationMinutes)

	slots, err := GenerateSlots(from, to, slotMinutes, busy, policy)
	if err != nil {
		return nil, err
	}
	slots = dropBlackoutDays(slots, svc.BlackoutDates)

	if useCache {
		e.storeSlots(ctx, q, slots)
	}
	return slots, nil
}

// clampToBookingWindow narrows the requested range to the service's
// advance-booking window: bookings may open MinAdvanceHours from now and
// close AdvanceDays out.
func clampToBookingWindow(from, to time.Time, svc *models.Service, now time.Time) (time.Time, time.Time) {
	if svc.MinAdvanceHours > 0 {
		earliest := now.Add(time.Duration(svc.MinAdvanceHours) * time.Hour)
		if from.Before(earliest) {
			from = earliest
		}
	}
	if svc.AdvanceDays > 0 {
		latest := now.AddDate(0, 0, svc.AdvanceDays)
		if to.After(latest) {
			to = latest
		}
	}
	return from, to
}

// dropBlackoutDays removes slots falling on any of the service's blackout
// dates. Filtering happens at the day level.
func dropBlackoutDays(slots []models.AvailabilitySlot, blackout []time.Time) []models.AvailabilitySlot {
	if len(blackout) == 0 {
		return slots
	}
	days := make(map[string]struct{}, len(blackout))
	for _, d := range blackout {
		days[d.Format("2006-01-02")] = struct{}{}
	}
	out := slots[:0]
	for _, s := range slots {
		if _, blocked := days[s.Start.Format("2006-01-02")]; blocked {
			continue
		}
		out = append(out, s)
	}
	return out
}
