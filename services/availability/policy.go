package availability

import "slotify/models"

// ResolvePolicy merges service-level settings with staff-level overrides into
// the effective policy. Staff settings win wherever present: an explicit
// buffer, a positive concurrent-booking cap, and working hours that survive
// normalization each replace the service's value. The range and reference
// time are the caller's to fill in.
func ResolvePolicy(svc *models.Service, staff *models.StaffMember) models.AvailabilityPolicy {
	policy := models.AvailabilityPolicy{}

	if svc != nil {
		policy.BufferMinutes = svc.BufferMinutes
		policy.MaxDailyBookings = svc.MaxDailyBookings
		policy.BusinessHours = NormalizeBusinessHours(svc.BusinessHours)
	}

	if staff != nil {
		if staff.BufferMinutes != nil {
			policy.BufferMinutes = *staff.BufferMinutes
		}
		if staff.MaxConcurrentBookings > 0 {
			policy.MaxDailyBookings = staff.MaxConcurrentBookings
		}
		if hours := NormalizeBusinessHours(staff.WorkingHours); len(hours) > 0 {
			policy.BusinessHours = hours
		}
	}

	if policy.BufferMinutes < 0 {
		policy.BufferMinutes = 0
	}
	if policy.MaxDailyBookings < 0 {
		policy.MaxDailyBookings = 0
	}
	return policy
}
