package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/pkg/models"
)

// startHandler handles POST /public/ai-interview/start.
func (s *Server) startHandler(c *gin.Context) {
	var req models.StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.LinkToken == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": publicInvalidLink})
		return
	}

	resp, err := s.orchestrator.Start(c.Request.Context(), req)
	if err != nil {
		mapPublicError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// submitResponseHandler handles POST /public/ai-interview/submit-response.
func (s *Server) submitResponseHandler(c *gin.Context) {
	var req models.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := s.orchestrator.SubmitResponse(c.Request.Context(), req)
	if err != nil {
		mapPublicError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// completeHandler handles POST /public/ai-interview/complete.
func (s *Server) completeHandler(c *gin.Context) {
	var req models.CompleteInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := s.orchestrator.Complete(c.Request.Context(), req)
	if err != nil {
		mapPublicError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// verifyIDHandler handles POST /public/ai-interview/verify-id.
func (s *Server) verifyIDHandler(c *gin.Context) {
	var req models.VerifyIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := s.orchestrator.VerifyID(c.Request.Context(), req)
	if err != nil {
		mapPublicError(c, err)
		return
	}
	if resp.Status != "success" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": resp.Status,
			"error":  "could not verify ID — please retry",
			"reason": resp.Reason,
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// heartbeatHandler handles POST /public/ai-interview/heartbeat.
func (s *Server) heartbeatHandler(c *gin.Context) {
	var req models.HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := s.orchestrator.Heartbeat(c.Request.Context(), req)
	if err != nil {
		mapPublicError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// portalBootstrapHandler handles GET /public/interview/?session_key=….
// The session key from the invite email is the secret that authorizes the
// exchange for the link token the client shell calls start with.
func (s *Server) portalBootstrapHandler(c *gin.Context) {
	key := c.Query("session_key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_key is required"})
		return
	}

	boot, err := s.orchestrator.Bootstrap(c.Request.Context(), key)
	if err != nil {
		mapPublicError(c, err)
		return
	}
	c.JSON(http.StatusOK, boot)
}
