package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/services"
)

// createSlotHandler handles POST /api/v1/slots. A recurrence descriptor
// materializes the whole series; the response lists every created slot.
func (s *Server) createSlotHandler(c *gin.Context) {
	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	slots, err := s.slots.CreateSlot(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	views := make([]models.SlotView, 0, len(slots))
	for _, sl := range slots {
		views = append(views, services.SlotToView(sl))
	}
	c.JSON(http.StatusCreated, gin.H{"slots": views, "created_count": len(views)})
}

// listSlotsHandler handles GET /api/v1/slots.
func (s *Server) listSlotsHandler(c *gin.Context) {
	filters := models.SlotFilters{
		JobID:            c.Query("job_id"),
		Date:             c.Query("date"),
		AvailableOnly:    c.Query("available_only") == "true",
		IncludeCancelled: c.Query("include_cancelled") == "true",
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	resp, err := s.slots.ListSlots(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// cancelSlotHandler handles POST /api/v1/slots/:id/cancel. Cancellation is
// the only removal path; slots with schedules are never deleted.
func (s *Server) cancelSlotHandler(c *gin.Context) {
	if err := s.slots.CancelSlot(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
