package recurrence

import (
	"errors"
	"fmt"
	"time"

	"slotify/models"
)

// maxUnboundedSteps caps the cursor walk for patterns with neither count nor
// until, which would otherwise never terminate.
const maxUnboundedSteps = 366

// maxBoundedSteps is a hard safety limit for bounded patterns whose filter
// never matches (a ByWeekday set the cursor can never land on). Legitimate
// bounded patterns stay far under it.
const maxBoundedSteps = 5000

var (
	// ErrInvalidDuration is returned for a non-positive occurrence duration.
	ErrInvalidDuration = errors.New("occurrence duration must be positive")

	// ErrExpansionLimit is returned when a bounded pattern walks past the
	// safety limit without satisfying its count or until.
	ErrExpansionLimit = errors.New("recurrence pattern expansion exceeded step limit")
)

// ExpandOccurrences turns a start time and recurrence pattern into concrete
// occurrence timestamps, in chronological order.
//
// The cursor starts at start and advances by interval days (DAILY), 7×interval
// days (WEEKLY), or interval months (MONTHLY) on every step, whether or not
// the current date is included: ByWeekday filters inclusion only. Until is
// checked before inclusion; Count counts included occurrences. Interval
// defaults to 1 and is clamped to a minimum of 1.
//
// A pattern with neither count nor until stops after maxUnboundedSteps and
// returns what was accumulated. Bounded patterns expand until their bound is
// met, erring out only past maxBoundedSteps.
func ExpandOccurrences(start time.Time, durationMinutes int, pattern models.RecurrencePattern) ([]time.Time, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	switch pattern.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
	default:
		return nil, fmt.Errorf("unknown recurrence frequency %q", pattern.Frequency)
	}

	interval := pattern.Interval
	if interval < 1 {
		interval = 1
	}

	var weekdays map[int]struct{}
	if len(pattern.ByWeekday) > 0 {
		weekdays = make(map[int]struct{}, len(pattern.ByWeekday))
		for _, wd := range pattern.ByWeekday {
			weekdays[wd] = struct{}{}
		}
	}

	bounded := pattern.Count != nil || pattern.Until != nil
	limit := maxUnboundedSteps
	if bounded {
		limit = maxBoundedSteps
	}

	occurrences := []time.Time{}
	cursor := start
	for step := 0; ; step++ {
		if step >= limit {
			if bounded {
				return nil, ErrExpansionLimit
			}
			break
		}
		if pattern.Until != nil && cursor.After(*pattern.Until) {
			break
		}

		include := true
		if weekdays != nil {
			_, include = weekdays[int(cursor.Weekday())]
		}
		if include {
			occurrences = append(occurrences, cursor)
			if pattern.Count != nil && len(occurrences) >= *pattern.Count {
				break
			}
		}

		switch pattern.Frequency {
		case models.FrequencyDaily:
			cursor = cursor.AddDate(0, 0, interval)
		case models.FrequencyWeekly:
			cursor = cursor.AddDate(0, 0, 7*interval)
		case models.FrequencyMonthly:
			cursor = cursor.AddDate(0, interval, 0)
		}
	}

	return occurrences, nil
}
