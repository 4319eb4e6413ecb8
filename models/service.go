package models

import "time"

// Service is a bookable service from the catalog. Read-only here; the catalog
// admin surface owns writes.
type Service struct {
	ID             string `bson:"id" json:"id"`
	Name           string `bson:"name" json:"name"`
	Active         bool   `bson:"active" json:"active"`
	BookingEnabled *bool  `bson:"bookingEnabled,omitempty" json:"bookingEnabled,omitempty"` // nil means enabled

	DurationMinutes  int         `bson:"durationMinutes" json:"durationMinutes"` // default slot length
	BufferMinutes    int         `bson:"bufferMinutes" json:"bufferMinutes"`
	MaxDailyBookings int         `bson:"maxDailyBookings" json:"maxDailyBookings"` // 0 = unlimited
	MinAdvanceHours  int         `bson:"minAdvanceHours,omitempty" json:"minAdvanceHours,omitempty"`
	AdvanceDays      int         `bson:"advanceDays,omitempty" json:"advanceDays,omitempty"` // how far ahead booking opens; 0 = no limit
	BusinessHours    interface{} `bson:"businessHours,omitempty" json:"businessHours,omitempty"`
	BlackoutDates    []time.Time `bson:"blackoutDates,omitempty" json:"blackoutDates,omitempty"`
}

// StaffMember is an optional concrete resource a booking can be pinned to.
// Any of its scheduling settings, when present, override the service's.
type StaffMember struct {
	ID                    string      `bson:"id" json:"id"`
	Name                  string      `bson:"name" json:"name"`
	Available             bool        `bson:"available" json:"available"`
	WorkingHours          interface{} `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	BufferMinutes         *int        `bson:"bufferMinutes,omitempty" json:"bufferMinutes,omitempty"`
	MaxConcurrentBookings int         `bson:"maxConcurrentBookings,omitempty" json:"maxConcurrentBookings,omitempty"`
}
