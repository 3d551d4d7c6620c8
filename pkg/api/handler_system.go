package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/pkg/coderunner"
	"github.com/hireloop/hireloop/pkg/database"
)

// systemHealthHandler handles GET /api/v1/system/health: the operator
// detail view across database, AI gateway, proctoring, runner, and the
// evaluation pool.
func (s *Server) systemHealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{}
	healthy := true

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		healthy = false
	}

	if s.gateway != nil {
		ai := s.gateway.Health()
		body["ai"] = ai
		if !ai.Configured || ai.QuotaExhausted {
			healthy = false
		}
	}

	if s.monitors != nil {
		proctorBody := gin.H{
			"active_monitors": s.monitors.ActiveMonitors(),
			"detectors":       s.monitors.Detectors(),
		}
		if err := s.monitors.SidecarReady(); err != nil {
			proctorBody["sidecar_error"] = err.Error()
		}
		body["proctor"] = proctorBody
	}

	if s.runner != nil {
		runnerBody := gin.H{
			"sandboxed": s.runner.Sandboxed(),
			"languages": coderunner.Languages(),
		}
		if err := s.runner.Ready(); err != nil {
			runnerBody["error"] = err.Error()
		}
		body["runner"] = runnerBody
	}

	if s.pool != nil {
		pool := s.pool.Health()
		body["evaluation_pool"] = pool
		if !pool.IsHealthy {
			healthy = false
		}
	}

	if healthy {
		body["status"] = "healthy"
		c.JSON(http.StatusOK, body)
		return
	}
	body["status"] = "degraded"
	c.JSON(http.StatusServiceUnavailable, body)
}

// systemWarningsHandler handles GET /api/v1/system/warnings.
func (s *Server) systemWarningsHandler(c *gin.Context) {
	if s.warnings == nil {
		c.JSON(http.StatusOK, gin.H{"warnings": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"warnings": s.warnings.GetWarnings()})
}

// runnerStatusHandler handles GET /api/v1/system/runner.
func (s *Server) runnerStatusHandler(c *gin.Context) {
	if s.runner == nil {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}

	body := gin.H{
		"available": s.runner.Ready() == nil,
		"sandboxed": s.runner.Sandboxed(),
		"languages": coderunner.Languages(),
	}
	if err := s.runner.Ready(); err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusOK, body)
}

// quotaResetHandler handles POST /api/v1/system/ai/quota/reset: the
// operator action that clears the process-wide quota-exhausted flag so LLM
// operations stop short-circuiting to fallbacks.
func (s *Server) quotaResetHandler(c *gin.Context) {
	if s.gateway == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "ai gateway is not configured"})
		return
	}

	wasExhausted := s.gateway.ResetQuota()
	c.JSON(http.StatusOK, gin.H{"reset": wasExhausted, "quota_exhausted": false})
}
