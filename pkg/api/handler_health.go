package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/pkg/version"
)

// livenessHandler handles GET /healthz.
func (s *Server) livenessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Full()})
}

// readyCheck is one named readiness probe.
type readyCheck struct {
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// readinessHandler handles GET /readyz. Only the database gates readiness;
// the AI provider, vision sidecar, and sandbox are reported so operators
// see which detectors and capabilities are live, but their absence is a
// degradation, not an outage.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make([]readyCheck, 0, 4)
	ready := true

	dbCheck := readyCheck{Name: "database", Ready: true}
	if err := s.db.DB().PingContext(ctx); err != nil {
		dbCheck.Ready = false
		dbCheck.Error = err.Error()
		ready = false
	}
	checks = append(checks, dbCheck)

	aiCheck := readyCheck{Name: "ai_provider", Ready: s.gateway != nil && s.gateway.Health().Configured}
	if !aiCheck.Ready {
		aiCheck.Error = "provider not configured; fallback content in use"
	}
	checks = append(checks, aiCheck)

	visionCheck := readyCheck{Name: "vision_sidecar", Ready: false}
	if s.monitors != nil {
		if err := s.monitors.SidecarReady(); err != nil {
			visionCheck.Error = err.Error()
		} else {
			visionCheck.Ready = true
		}
	} else {
		visionCheck.Error = "proctoring disabled"
	}
	checks = append(checks, visionCheck)

	sandboxCheck := readyCheck{Name: "sandbox", Ready: false}
	if s.runner != nil {
		if err := s.runner.Ready(); err != nil {
			sandboxCheck.Error = err.Error()
		} else {
			sandboxCheck.Ready = true
		}
	} else {
		sandboxCheck.Error = "code runner disabled"
	}
	checks = append(checks, sandboxCheck)

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "not_ready"
	}
	c.JSON(status, gin.H{"status": state, "checks": checks})
}
