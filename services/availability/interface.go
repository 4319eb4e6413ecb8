package availability

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	bookingRepo "slotify/database/repository/booking"
	overrideRepo "slotify/database/repository/override"
	serviceRepo "slotify/database/repository/service"
	staffRepo "slotify/database/repository/staff"
	"slotify/models"
)

const defaultOverrideLookupTimeout = 300 * time.Millisecond

// AvailabilityService resolves bookable slots for a service and optional
// staff member over a date range.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, q Query) ([]models.AvailabilitySlot, error)
}

// Query is one availability request.
type Query struct {
	ServiceID    string
	StaffID      *string   // optional: pin the query to one staff member
	From, To     time.Time // inclusive calendar-day range
	SlotMinutes  int       // 0 = use the service's default duration
	SkipWeekends bool
	Now          time.Time // zero = wall clock; injected by tests and the prewarm worker
}

// Engine is the production availability resolver. All repository reads are
// best-effort except the service/staff lookups; see resolver.go.
type Engine struct {
	ServiceRepo  serviceRepo.ServiceRepository
	StaffRepo    staffRepo.StaffRepository
	BookingRepo  bookingRepo.BookingRepository
	OverrideRepo overrideRepo.OverrideRepository

	// Cache, when set, memoizes whole responses for CacheTTL.
	Cache    *redis.Client
	CacheTTL time.Duration

	// OverrideLookupTimeout bounds the administrative-override fetch; on
	// expiry the query proceeds with no override contribution.
	OverrideLookupTimeout time.Duration
}

func (e *Engine) overrideTimeout() time.Duration {
	if e.OverrideLookupTimeout > 0 {
		return e.OverrideLookupTimeout
	}
	return defaultOverrideLookupTimeout
}
