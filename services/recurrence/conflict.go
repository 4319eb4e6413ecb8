package recurrence

import (
	"context"
	"fmt"
	"time"

	bookingRepo "slotify/database/repository/booking"
)

// BookingConflictDetector is the default detector: an occurrence conflicts
// when any active booking overlaps its interval.
type BookingConflictDetector struct {
	Bookings bookingRepo.BookingRepository
}

func (d *BookingConflictDetector) Check(ctx context.Context, params ConflictCheckParams) (ConflictCheckResult, error) {
	end := params.Start.Add(time.Duration(params.DurationMinutes) * time.Minute)
	count, err := d.Bookings.CountActiveOverlapping(ctx, params.ServiceID, params.StaffID, params.Start, end)
	if err != nil {
		return ConflictCheckResult{}, fmt.Errorf("count overlapping bookings: %w", err)
	}
	if count > 0 {
		return ConflictCheckResult{
			Conflict: true,
			Reason:   fmt.Sprintf("overlaps %d existing booking(s)", count),
		}, nil
	}
	return ConflictCheckResult{}, nil
}
