package models

import "time"

// Recurrence frequencies.
const (
	FrequencyDaily   = "DAILY"
	FrequencyWeekly  = "WEEKLY"
	FrequencyMonthly = "MONTHLY"
)

// RecurrencePattern describes repeated occurrences from a start time.
// Count and Until each bound the expansion; ByWeekday filters which dates are
// included without affecting how the cursor steps.
type RecurrencePattern struct {
	Frequency string     `json:"frequency"`
	Interval  int        `json:"interval,omitempty"` // defaults to 1, clamped to ≥ 1
	Count     *int       `json:"count,omitempty"`
	Until     *time.Time `json:"until,omitempty"`
	ByWeekday []int      `json:"byWeekday,omitempty"` // 0 = Sunday .. 6 = Saturday
}

// RecurringPlanItem is the planner's verdict for one occurrence of a series.
type RecurringPlanItem struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Conflict bool      `json:"conflict"`
	Reason   string    `json:"reason,omitempty"`
}
