// Package api is the HTTP edge: the authenticated recruiter API under
// /api/v1 and the public candidate endpoints under /public. Handlers bind
// and validate input, delegate to the services layer or the session
// orchestrator, and map errors in one place; no business rules live here.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/pkg/ai"
	"github.com/hireloop/hireloop/pkg/coderunner"
	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/database"
	"github.com/hireloop/hireloop/pkg/proctor"
	"github.com/hireloop/hireloop/pkg/queue"
	"github.com/hireloop/hireloop/pkg/services"
	"github.com/hireloop/hireloop/pkg/session"
	"github.com/hireloop/hireloop/pkg/storage"
)

// Deps collects the server's collaborators. Monitors, Runner, Pool, and
// SystemWarnings are optional; a nil value disables the matching surface.
type Deps struct {
	Config       *config.Config
	DB           *database.Client
	Jobs         *services.JobService
	Candidates   *services.CandidateService
	Slots        *services.SlotService
	Interviews   *services.InterviewService
	Sessions     *services.SessionService
	Results      *services.ResultService
	Orchestrator *session.Orchestrator
	Gateway      ai.Service
	Monitors     *proctor.Manager
	Runner       *coderunner.Runner
	Pool         *queue.Pool
	Warnings     *services.SystemWarningsService
	Store        *storage.Store
}

// Server is the HTTP API server.
type Server struct {
	cfg          *config.Config
	db           *database.Client
	jobs         *services.JobService
	candidates   *services.CandidateService
	slots        *services.SlotService
	interviews   *services.InterviewService
	sessions     *services.SessionService
	results      *services.ResultService
	orchestrator *session.Orchestrator
	gateway      ai.Service
	monitors     *proctor.Manager
	runner       *coderunner.Runner
	pool         *queue.Pool
	warnings     *services.SystemWarningsService
	store        *storage.Store

	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(d Deps) *Server {
	s := &Server{
		cfg:          d.Config,
		db:           d.DB,
		jobs:         d.Jobs,
		candidates:   d.Candidates,
		slots:        d.Slots,
		interviews:   d.Interviews,
		sessions:     d.Sessions,
		results:      d.Results,
		orchestrator: d.Orchestrator,
		gateway:      d.Gateway,
		monitors:     d.Monitors,
		runner:       d.Runner,
		pool:         d.Pool,
		warnings:     d.Warnings,
		store:        d.Store,
	}

	if s.cfg.Server.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), securityHeaders())
	s.engine = engine
	s.registerRoutes()
	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.livenessHandler)
	s.engine.GET("/readyz", s.readinessHandler)

	v1 := s.engine.Group("/api/v1", bearerAuth(s.cfg.Server.APIToken))
	{
		v1.POST("/jobs", s.createJobHandler)
		v1.GET("/jobs", s.listJobsHandler)
		v1.GET("/jobs/:id", s.getJobHandler)

		v1.POST("/candidates", s.createCandidateHandler)
		v1.GET("/candidates/:id", s.getCandidateHandler)

		v1.POST("/slots", s.createSlotHandler)
		v1.GET("/slots", s.listSlotsHandler)
		v1.POST("/slots/:id/cancel", s.cancelSlotHandler)

		v1.POST("/interviews", s.createInterviewHandler)
		v1.GET("/interviews/:id", s.getInterviewHandler)
		v1.POST("/interviews/:id/book", s.bookInterviewHandler)
		v1.POST("/interviews/:id/reschedule", s.rescheduleInterviewHandler)
		v1.POST("/interviews/:id/cancel", s.cancelInterviewHandler)

		v1.GET("/sessions/:id/result", s.getResultHandler)

		v1.GET("/system/health", s.systemHealthHandler)
		v1.GET("/system/warnings", s.systemWarningsHandler)
		v1.GET("/system/runner", s.runnerStatusHandler)
		v1.POST("/system/ai/quota/reset", s.quotaResetHandler)
	}

	public := s.engine.Group("/public")
	{
		public.GET("/interview/", s.portalBootstrapHandler)

		iv := public.Group("/ai-interview")
		iv.POST("/start", s.startHandler)
		iv.POST("/submit-response", s.submitResponseHandler)
		iv.POST("/complete", s.completeHandler)
		iv.POST("/verify-id", s.verifyIDHandler)
		iv.POST("/heartbeat", s.heartbeatHandler)

		iv.POST("/proctor/frame", s.proctorFrameHandler)
		iv.POST("/proctor/audio", s.proctorAudioHandler)
		iv.POST("/proctor/event", s.proctorEventHandler)
	}
}

// Start begins serving on addr. Blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
