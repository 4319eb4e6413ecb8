package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"slotify/models"
	"slotify/services/recurrence"
	"slotify/utils"
)

// RecurringHandler serves recurring-booking plan previews.
type RecurringHandler struct {
	Planner *recurrence.Planner
}

// NewRecurringHandler constructs a RecurringHandler.
func NewRecurringHandler(planner *recurrence.Planner) *RecurringHandler {
	return &RecurringHandler{Planner: planner}
}

type previewRequest struct {
	ServiceID       string                   `json:"serviceId" binding:"required"`
	StaffID         *string                  `json:"staffId,omitempty"`
	TenantID        *string                  `json:"tenantId,omitempty"`
	Start           time.Time                `json:"start" binding:"required"`
	DurationMinutes int                      `json:"duration" binding:"required"`
	Pattern         models.RecurrencePattern `json:"pattern" binding:"required"`
}

// PreviewPlan handles POST /api/recurring/preview. The response carries the
// per-occurrence plan plus a summary; nothing is persisted.
func (h *RecurringHandler) PreviewPlan(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	plan, err := h.Planner.Plan(c.Request.Context(), recurrence.PlanRequest{
		ServiceID:       req.ServiceID,
		StaffID:         req.StaffID,
		TenantID:        req.TenantID,
		DurationMinutes: req.DurationMinutes,
		Start:           req.Start,
		Pattern:         req.Pattern,
	})
	if err != nil {
		if errors.Is(err, recurrence.ErrInvalidDuration) {
			utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to plan recurring series", err.Error())
		return
	}

	created := 0
	for _, item := range plan {
		if !item.Conflict {
			created++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"plan": plan,
		"summary": gin.H{
			"total":   len(plan),
			"created": created,
			"skipped": len(plan) - created,
		},
	})
}
