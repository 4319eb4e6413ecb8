package availability

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"slotify/models"
	"slotify/utils"
)

// collectBusyIntervals gathers everything that blocks new bookings in
// [from, to]: active bookings, explicit administrative blocks, and overrides
// whose capacity is already exhausted. Both reads fan out concurrently and
// are best-effort; the override read additionally races a short deadline.
// Failures degrade to an empty contribution so a flaky lookup never turns
// into falsely-zero availability.
func (e *Engine) collectBusyIntervals(ctx context.Context, serviceID string, staffID *string, from, to time.Time, defaultDurationMinutes int) []models.TimeInterval {
	logger := utils.GetLogger()

	var (
		wg        sync.WaitGroup
		bookings  []models.Booking
		overrides []models.AvailabilityOverride
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		list, err := e.BookingRepo.GetActiveInRange(ctx, serviceID, staffID, from, to)
		if err != nil {
			logger.Warn("availability: booking lookup failed, continuing without bookings",
				zap.String("serviceId", serviceID), zap.Error(err))
			return
		}
		bookings = list
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		octx, cancel := context.WithTimeout(ctx, e.overrideTimeout())
		defer cancel()
		list, err := e.OverrideRepo.GetInRange(octx, serviceID, staffID, from, to)
		if err != nil {
			logger.Warn("availability: override lookup degraded to no overrides",
				zap.String("serviceId", serviceID), zap.Error(err))
			return
		}
		overrides = list
	}()

	wg.Wait()

	busy := make([]models.TimeInterval, 0, len(bookings)+len(overrides))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		busy = append(busy, b.Interval(defaultDurationMinutes))
	}
	for _, o := range overrides {
		if !o.BlocksBooking() {
			continue
		}
		interval, err := o.Interval()
		if err != nil {
			logger.Warn("availability: skipping malformed override",
				zap.String("overrideId", o.ID), zap.Error(err))
			continue
		}
		busy = append(busy, interval)
	}

	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })
	return busy
}
