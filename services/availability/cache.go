package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"slotify/models"
	"slotify/utils"
)

const defaultCacheTTL = 60 * time.Second

func (e *Engine) cacheTTL() time.Duration {
	if e.CacheTTL > 0 {
		return e.CacheTTL
	}
	return defaultCacheTTL
}

// cacheKey identifies a response by everything that shapes it except the
// reference time, which cached queries always take from the wall clock. A
// cached response may therefore still list slots whose start has passed since
// it was computed; the staleness is bounded by the TTL.
func cacheKey(q Query) string {
	staff := ""
	if q.StaffID != nil {
		staff = *q.StaffID
	}
	return fmt.Sprintf("availability:%s:%s:%s:%s:%d:%t",
		q.ServiceID, staff,
		q.From.UTC().Format(time.RFC3339), q.To.UTC().Format(time.RFC3339),
		q.SlotMinutes, q.SkipWeekends)
}

// cachedSlots returns a previously computed response, if one is still fresh.
func (e *Engine) cachedSlots(ctx context.Context, q Query) ([]models.AvailabilitySlot, bool) {
	raw, err := e.Cache.Get(ctx, cacheKey(q)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []models.AvailabilitySlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// storeSlots caches a computed response. Best-effort: cache failures are
// logged and ignored.
func (e *Engine) storeSlots(ctx context.Context, q Query, slots []models.AvailabilitySlot) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := e.Cache.Set(ctx, cacheKey(q), raw, e.cacheTTL()).Err(); err != nil {
		utils.GetLogger().Warn("availability: failed to cache response",
			zap.String("serviceId", q.ServiceID), zap.Error(err))
	}
}
