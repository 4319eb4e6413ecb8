package availability

import (
	"strconv"
	"strings"
	"time"

	"slotify/models"
)

// NormalizeBusinessHours converts the heterogeneous business-hours encodings
// found in catalog documents into the single HoursWindow shape the generator
// consumes. Three encodings are accepted per weekday entry:
//
//	"9:00-17:00"                               a clock-range string
//	{"startMinutes": 540, "endMinutes": 1020}  a minutes pair (also {"start","end"})
//	{"startTime": "9:00", "endTime": "17:00"}  a clock-string pair
//
// Unparseable entries are dropped rather than errored; an entry that survives
// but has end ≤ start is dropped too. A nil result means closed every day.
func NormalizeBusinessHours(raw interface{}) models.BusinessHours {
	if raw == nil {
		return nil
	}

	out := models.BusinessHours{}

	switch v := raw.(type) {
	case models.BusinessHours:
		for wd, window := range v {
			putWindow(out, int(wd), window.StartMinutes, window.EndMinutes)
		}
	case map[string]interface{}:
		for key, entry := range v {
			wd, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			normalizeEntry(out, wd, entry)
		}
	case []interface{}:
		// Some catalog rows store hours as a 7-element array indexed by weekday.
		for wd, entry := range v {
			normalizeEntry(out, wd, entry)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeEntry(out models.BusinessHours, weekday int, entry interface{}) {
	if entry == nil {
		return
	}

	switch val := entry.(type) {
	case string:
		parts := strings.Split(val, "-")
		if len(parts) != 2 {
			return
		}
		s, err := models.ClockToMinutes(parts[0])
		if err != nil {
			return
		}
		e, err := models.ClockToMinutes(parts[1])
		if err != nil {
			return
		}
		putWindow(out, weekday, s, e)

	case map[string]interface{}:
		if s, sok := asMinutes(val["startMinutes"]); sok {
			if e, eok := asMinutes(val["endMinutes"]); eok {
				putWindow(out, weekday, s, e)
				return
			}
		}
		if s, sok := asMinutes(val["start"]); sok {
			if e, eok := asMinutes(val["end"]); eok {
				putWindow(out, weekday, s, e)
				return
			}
		}
		startStr, sok := val["startTime"].(string)
		endStr, eok := val["endTime"].(string)
		if sok && eok {
			s, serr := models.ClockToMinutes(startStr)
			e, eerr := models.ClockToMinutes(endStr)
			if serr == nil && eerr == nil {
				putWindow(out, weekday, s, e)
			}
		}
	}
}

func putWindow(out models.BusinessHours, weekday, startMinutes, endMinutes int) {
	if weekday < 0 || weekday > 6 {
		return
	}
	if endMinutes <= startMinutes {
		return
	}
	out[time.Weekday(weekday)] = models.HoursWindow{
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
	}
}

// asMinutes accepts the numeric types BSON and JSON decoding produce.
func asMinutes(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
