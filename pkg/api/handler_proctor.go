package api

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/proctor"
)

// Proctor ingest never fails the candidate client: a session without a
// monitor (proctoring disabled, or the monitor already stopped) answers
// monitored=false so the client stops streaming, and malformed chunks are
// dropped with a 400. Authorization failures stay opaque like every other
// public endpoint.

func (s *Server) ingestAuthorized(c *gin.Context, sessionID, linkToken string) bool {
	if _, err := s.orchestrator.Resolve(c.Request.Context(), sessionID, linkToken); err != nil {
		mapPublicError(c, err)
		return false
	}
	return true
}

func ingestReply(c *gin.Context, err error) {
	if errors.Is(err, proctor.ErrNotMonitored) {
		c.JSON(http.StatusAccepted, gin.H{"monitored": false})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"monitored": true})
}

// proctorFrameHandler handles POST /public/ai-interview/proctor/frame.
func (s *Server) proctorFrameHandler(c *gin.Context) {
	var req models.FrameIngest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.ingestAuthorized(c, req.SessionID, req.LinkToken) {
		return
	}
	if s.monitors == nil {
		c.JSON(http.StatusAccepted, gin.H{"monitored": false})
		return
	}

	frame, err := base64.StdEncoding.DecodeString(req.FrameB64)
	if err != nil || len(frame) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "frame_b64 must be non-empty base64"})
		return
	}

	ingestReply(c, s.monitors.SubmitFrame(req.SessionID, frame))
}

// proctorAudioHandler handles POST /public/ai-interview/proctor/audio.
func (s *Server) proctorAudioHandler(c *gin.Context) {
	var req models.AudioIngest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.ingestAuthorized(c, req.SessionID, req.LinkToken) {
		return
	}
	if s.monitors == nil {
		c.JSON(http.StatusAccepted, gin.H{"monitored": false})
		return
	}

	pcm, err := base64.StdEncoding.DecodeString(req.PCMB64)
	if err != nil || len(pcm) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pcm_b64 must be non-empty base64"})
		return
	}
	if req.SampleRate <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sample_rate must be positive"})
		return
	}

	ingestReply(c, s.monitors.SubmitAudio(req.SessionID, pcm, req.SampleRate))
}

// proctorEventHandler handles POST /public/ai-interview/proctor/event.
func (s *Server) proctorEventHandler(c *gin.Context) {
	var req models.ClientEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.ingestAuthorized(c, req.SessionID, req.LinkToken) {
		return
	}
	if s.monitors == nil {
		c.JSON(http.StatusAccepted, gin.H{"monitored": false})
		return
	}

	event := strings.ToUpper(strings.TrimSpace(req.Event))
	if event == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event is required"})
		return
	}

	ingestReply(c, s.monitors.SubmitEvent(req.SessionID, event))
}
