package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"slotify/services/availability"
	"slotify/utils"
)

// AvailabilityHandler serves slot-availability queries.
type AvailabilityHandler struct {
	Engine availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(engine availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GetAvailability handles GET /api/availability.
//
// Query parameters: serviceId (required), from, to (RFC 3339 or yyyy-mm-dd,
// required), duration (minutes, optional), staffId (optional), skipWeekends
// (optional bool).
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", "serviceId is required")
		return
	}

	from, err := parseDateParam(c.Query("from"), false)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", "from: "+err.Error())
		return
	}
	to, err := parseDateParam(c.Query("to"), true)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", "to: "+err.Error())
		return
	}

	var slotMinutes int
	if raw := c.Query("duration"); raw != "" {
		slotMinutes, err = strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid query", "duration must be an integer")
			return
		}
	}

	var staffID *string
	if raw := c.Query("staffId"); raw != "" {
		staffID = &raw
	}
	skipWeekends, _ := strconv.ParseBool(c.Query("skipWeekends"))

	slots, err := h.Engine.GetAvailability(c.Request.Context(), availability.Query{
		ServiceID:    serviceID,
		StaffID:      staffID,
		From:         from,
		To:           to,
		SlotMinutes:  slotMinutes,
		SkipWeekends: skipWeekends,
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDateRange) || errors.Is(err, availability.ErrInvalidSlotDuration) {
			utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"serviceId": serviceID,
		"slots":     slots,
	})
}

// parseDateParam accepts RFC 3339 timestamps and bare dates. Bare dates snap
// to start-of-day, or end-of-day for range-end parameters.
func parseDateParam(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("missing")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("must be RFC 3339 or yyyy-mm-dd")
	}
	if endOfDay {
		return t.Add(24*time.Hour - time.Second), nil
	}
	return t, nil
}
