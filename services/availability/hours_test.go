package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotify/models"
)

func TestNormalizeBusinessHours_StringRanges(t *testing.T) {
	raw := map[string]interface{}{
		"1": "9:00-17:00",
		"2": "08:30-12:15",
	}

	hours := NormalizeBusinessHours(raw)
	require.Len(t, hours, 2)
	assert.Equal(t, models.HoursWindow{StartMinutes: 540, EndMinutes: 1020}, hours[time.Monday])
	assert.Equal(t, models.HoursWindow{StartMinutes: 510, EndMinutes: 735}, hours[time.Tuesday])
}

func TestNormalizeBusinessHours_MinutePairs(t *testing.T) {
	raw := map[string]interface{}{
		// BSON decodes numbers as int32/int64, JSON as float64; both must work.
		"1": map[string]interface{}{"startMinutes": int32(540), "endMinutes": int64(1020)},
		"3": map[string]interface{}{"start": float64(600), "end": float64(720)},
	}

	hours := NormalizeBusinessHours(raw)
	require.Len(t, hours, 2)
	assert.Equal(t, models.HoursWindow{StartMinutes: 540, EndMinutes: 1020}, hours[time.Monday])
	assert.Equal(t, models.HoursWindow{StartMinutes: 600, EndMinutes: 720}, hours[time.Wednesday])
}

func TestNormalizeBusinessHours_ClockStringPairs(t *testing.T) {
	raw := map[string]interface{}{
		"5": map[string]interface{}{"startTime": "10:00", "endTime": "16:30"},
	}

	hours := NormalizeBusinessHours(raw)
	require.Len(t, hours, 1)
	assert.Equal(t, models.HoursWindow{StartMinutes: 600, EndMinutes: 990}, hours[time.Friday])
}

func TestNormalizeBusinessHours_DropsGarbage(t *testing.T) {
	cases := map[string]interface{}{
		"bad weekday key":   map[string]interface{}{"monday": "9:00-17:00"},
		"weekday range":     map[string]interface{}{"9": "9:00-17:00"},
		"malformed range":   map[string]interface{}{"1": "9am to 5pm"},
		"inverted window":   map[string]interface{}{"1": "17:00-9:00"},
		"zero-width window": map[string]interface{}{"1": map[string]interface{}{"startMinutes": 540, "endMinutes": 540}},
		"nil entry":         map[string]interface{}{"1": nil},
		"not a map":         42,
		"nil input":         nil,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, NormalizeBusinessHours(raw))
		})
	}
}

func TestNormalizeBusinessHours_ArrayEncoding(t *testing.T) {
	raw := []interface{}{
		nil,           // Sunday closed
		"9:00-17:00",  // Monday
		"9:00-17:00",  // Tuesday
		nil, nil, nil, // Wed-Fri closed
		"10:00-14:00", // Saturday
	}

	hours := NormalizeBusinessHours(raw)
	require.Len(t, hours, 3)
	assert.Contains(t, hours, time.Monday)
	assert.Contains(t, hours, time.Tuesday)
	assert.Equal(t, models.HoursWindow{StartMinutes: 600, EndMinutes: 840}, hours[time.Saturday])
}

func TestNormalizeBusinessHours_PassThroughTyped(t *testing.T) {
	in := models.BusinessHours{
		time.Monday: {StartMinutes: 540, EndMinutes: 1020},
	}
	assert.Equal(t, in, NormalizeBusinessHours(in))
}
