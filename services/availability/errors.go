package availability

import "errors"

var (
	// ErrInvalidSlotDuration is returned for a non-positive slot duration.
	ErrInvalidSlotDuration = errors.New("slot duration must be positive")

	// ErrInvalidDateRange is returned when the range end precedes its start.
	ErrInvalidDateRange = errors.New("date range end precedes start")
)
