package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AvailabilityOverride is an administrative block on a specific date/time span.
// It contributes a busy interval when explicitly marked unavailable, or when
// its booking capacity is already exhausted.
type AvailabilityOverride struct {
	ID              string    `bson:"id" json:"id"`
	ServiceID       string    `bson:"serviceId" json:"serviceId"`
	StaffID         *string   `bson:"staffId,omitempty" json:"staffId,omitempty"`
	Date            time.Time `bson:"date" json:"date"`
	StartTime       string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime         string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	Available       bool      `bson:"available" json:"available"`
	Reason          string    `bson:"reason,omitempty" json:"reason,omitempty"`
	MaxBookings     *int      `bson:"maxBookings,omitempty" json:"maxBookings,omitempty"`
	CurrentBookings int       `bson:"currentBookings,omitempty" json:"currentBookings,omitempty"`
}

// BlocksBooking reports whether the override's span should be treated as busy:
// either an explicit block, or a capacity-exhausted slot.
func (o AvailabilityOverride) BlocksBooking() bool {
	if !o.Available {
		return true
	}
	return o.MaxBookings != nil && *o.MaxBookings > 0 && o.CurrentBookings >= *o.MaxBookings
}

// Interval resolves the override's date plus its HH:MM bounds into a concrete
// time interval. Fails on malformed clock strings or an inverted span.
func (o AvailabilityOverride) Interval() (TimeInterval, error) {
	day := time.Date(o.Date.Year(), o.Date.Month(), o.Date.Day(), 0, 0, 0, 0, o.Date.Location())
	startMin, err := ClockToMinutes(o.StartTime)
	if err != nil {
		return TimeInterval{}, err
	}
	endMin, err := ClockToMinutes(o.EndTime)
	if err != nil {
		return TimeInterval{}, err
	}
	if endMin <= startMin {
		return TimeInterval{}, fmt.Errorf("override %s: end %q not after start %q", o.ID, o.EndTime, o.StartTime)
	}
	return TimeInterval{
		Start: day.Add(time.Duration(startMin) * time.Minute),
		End:   day.Add(time.Duration(endMin) * time.Minute),
	}, nil
}

// ClockToMinutes parses an "H:MM" or "HH:MM" clock string into minutes from
// midnight.
func ClockToMinutes(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock string %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q", clock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock string %q out of range", clock)
	}
	return h*60 + m, nil
}
