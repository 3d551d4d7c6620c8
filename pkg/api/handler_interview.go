package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/pkg/models"
)

// createInterviewHandler handles POST /api/v1/interviews.
func (s *Server) createInterviewHandler(c *gin.Context) {
	var req models.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	iv, err := s.interviews.CreateInterview(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toInterviewView(iv))
}

// getInterviewHandler handles GET /api/v1/interviews/:id — interview plus
// its live schedule, session summary, and advisory conflicts.
func (s *Server) getInterviewHandler(c *gin.Context) {
	detail, err := s.interviews.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// bookInterviewHandler handles POST /api/v1/interviews/:id/book.
func (s *Server) bookInterviewHandler(c *gin.Context) {
	var req models.BookInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	out, err := s.interviews.Book(c.Request.Context(), c.Param("id"), req.SlotID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(out))
}

// rescheduleInterviewHandler handles POST /api/v1/interviews/:id/reschedule.
// The response carries the fresh token; every previously minted token fails
// verification from this point.
func (s *Server) rescheduleInterviewHandler(c *gin.Context) {
	var req models.RescheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	out, err := s.interviews.Reschedule(c.Request.Context(), c.Param("id"), req.NewSlotID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(out))
}

// cancelInterviewHandler handles POST /api/v1/interviews/:id/cancel.
// Releases the slot booking; the interview parks in ON_HOLD and can be
// rebooked later.
func (s *Server) cancelInterviewHandler(c *gin.Context) {
	if err := s.interviews.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// getResultHandler handles GET /api/v1/sessions/:id/result.
func (s *Server) getResultHandler(c *gin.Context) {
	view, err := s.results.GetBySession(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
