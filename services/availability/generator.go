package availability

import (
	"time"

	"slotify/models"
)

// GenerateSlots walks every calendar day in [from, to] and emits candidate
// slots of slotMinutes length inside that day's business-hours window, marked
// available or not against the given busy intervals.
//
// Rules, in the order they apply per day:
//   - no business-hours entry for the weekday (or SkipWeekends on a weekend)
//     means zero slots for that day;
//   - when MaxDailyBookings > 0 and the day already carries that many busy
//     intervals, the whole day is skipped, not just the colliding slots;
//   - slots starting before policy.Now are silently dropped;
//   - a slot is unavailable when its start lands inside any busy interval
//     padded by BufferMinutes on both sides. Only the start is checked: a slot
//     whose tail crosses into a padded interval is still available.
func GenerateSlots(from, to time.Time, slotMinutes int, busy []models.TimeInterval, policy models.AvailabilityPolicy) ([]models.AvailabilitySlot, error) {
	if slotMinutes <= 0 {
		return nil, ErrInvalidSlotDuration
	}
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	slotLen := time.Duration(slotMinutes) * time.Minute
	buffer := time.Duration(policy.BufferMinutes) * time.Minute
	slots := make([]models.AvailabilitySlot, 0)

	for day := startOfDay(from); !day.After(to); day = day.AddDate(0, 0, 1) {
		weekday := day.Weekday()

		window, open := policy.BusinessHours[weekday]
		if !open {
			continue
		}
		if policy.SkipWeekends && (weekday == time.Saturday || weekday == time.Sunday) {
			continue
		}

		windowStart := day.Add(time.Duration(window.StartMinutes) * time.Minute)
		windowEnd := day.Add(time.Duration(window.EndMinutes) * time.Minute)
		if !windowEnd.After(windowStart) {
			continue
		}

		dayBusy := busyForDay(busy, day)
		if policy.MaxDailyBookings > 0 && len(dayBusy) >= policy.MaxDailyBookings {
			continue
		}

		for slotStart := windowStart; !slotStart.Add(slotLen).After(windowEnd); slotStart = slotStart.Add(slotLen) {
			if slotStart.Before(policy.Now) {
				continue
			}

			blocked := false
			for _, b := range dayBusy {
				if !slotStart.Before(b.Start.Add(-buffer)) && slotStart.Before(b.End.Add(buffer)) {
					blocked = true
					break
				}
			}

			slots = append(slots, models.AvailabilitySlot{
				Start:     slotStart,
				End:       slotStart.Add(slotLen),
				Available: !blocked,
			})
		}
	}

	return slots, nil
}

// busyForDay filters busy intervals down to those overlapping the given
// calendar day.
func busyForDay(busy []models.TimeInterval, day time.Time) []models.TimeInterval {
	dayEnd := day.AddDate(0, 0, 1)
	var out []models.TimeInterval
	for _, b := range busy {
		if b.Start.Before(dayEnd) && b.End.After(day) {
			out = append(out, b)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
