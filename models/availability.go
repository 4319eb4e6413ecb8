package models

import "time"

// TimeInterval is a half-open busy window [Start, End).
type TimeInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// HoursWindow is an open window within a single day, in minutes from midnight
// (e.g., 540 for 9:00 AM, 1020 for 5:00 PM).
type HoursWindow struct {
	StartMinutes int `bson:"startMinutes" json:"startMinutes"`
	EndMinutes   int `bson:"endMinutes" json:"endMinutes"`
}

// BusinessHours maps a weekday to its open window. A missing entry means the
// service or staff member is closed that day.
type BusinessHours map[time.Weekday]HoursWindow

// AvailabilityPolicy is the effective set of rules the slot generator applies.
// It is resolved per query from service and staff settings; staff settings win.
type AvailabilityPolicy struct {
	BufferMinutes    int           // padding blocked before/after each busy interval
	MaxDailyBookings int           // 0 = unlimited; day-level cap, not per-slot
	SkipWeekends     bool
	BusinessHours    BusinessHours
	Now              time.Time // reference time used to drop past slots
}

// AvailabilitySlot is one candidate bookable window of fixed duration.
type AvailabilitySlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}
