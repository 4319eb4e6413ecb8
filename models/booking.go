package models

import "time"

// Booking statuses. Only PENDING and CONFIRMED block availability.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
)

// ActiveBookingStatuses are the statuses that occupy a time interval.
var ActiveBookingStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

// Booking is an existing appointment for a service, optionally pinned to a
// staff member.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	ServiceID       string    `bson:"serviceId" json:"serviceId"`
	StaffID         *string   `bson:"staffId,omitempty" json:"staffId,omitempty"`
	ClientID        string    `bson:"clientId,omitempty" json:"clientId,omitempty"`
	TenantID        *string   `bson:"tenantId,omitempty" json:"tenantId,omitempty"`
	Status          string    `bson:"status" json:"status"`
	ScheduledAt     time.Time `bson:"scheduledAt" json:"scheduledAt"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
}

// IsActive reports whether the booking still occupies its time interval.
func (b Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Interval returns the booking's occupied window. Bookings stored without a
// duration inherit the given default.
func (b Booking) Interval(defaultDurationMinutes int) TimeInterval {
	minutes := b.DurationMinutes
	if minutes <= 0 {
		minutes = defaultDurationMinutes
	}
	return TimeInterval{
		Start: b.ScheduledAt,
		End:   b.ScheduledAt.Add(time.Duration(minutes) * time.Minute),
	}
}
