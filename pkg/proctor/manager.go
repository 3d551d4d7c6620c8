package proctor

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/hireloop/hireloop/pkg/ai"
	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/masking"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/storage"
	"github.com/hireloop/hireloop/pkg/vision"
)

// Manager owns the monitor registry. The orchestrator attaches a monitor
// when a session goes active and detaches it on termination; ingest
// handlers route frames, audio and events through the manager to the
// session's monitor.
type Manager struct {
	cfg      *config.ProctorConfig
	analyzer vision.Analyzer // nil when no sidecar is configured
	ai       ai.Service
	masker   *masking.Service
	store    *storage.Store
	sink     Sink
	now      func() time.Time
	ffmpeg   string

	mu       sync.Mutex
	monitors map[string]*Monitor
}

// NewManager creates the proctor manager. A nil analyzer disables the
// vision-backed detectors and ID verification; audio energy and tab events
// still work.
func NewManager(cfg *config.ProctorConfig, analyzer vision.Analyzer, aiSvc ai.Service, masker *masking.Service, store *storage.Store, sink Sink) *Manager {
	m := &Manager{
		cfg:      cfg,
		analyzer: analyzer,
		ai:       aiSvc,
		masker:   masker,
		store:    store,
		sink:     sink,
		now:      time.Now,
		ffmpeg:   resolveFFmpeg(cfg.FFmpegPath),
		monitors: make(map[string]*Monitor),
	}
	if m.ffmpeg == "" {
		slog.Warn("ffmpeg not found, session recordings will be discarded")
	}
	return m
}

func resolveFFmpeg(configured string) string {
	if configured != "" {
		return configured
	}
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return ""
	}
	return path
}

// Attach starts monitoring a session. Attaching an already monitored
// session is a no-op.
func (mg *Manager) Attach(sessionID string) {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	if _, ok := mg.monitors[sessionID]; ok {
		return
	}
	m := newMonitor(sessionID, mg.cfg, mg.analyzer, mg.store, mg.sink, mg.ffmpeg, mg.now)
	mg.monitors[sessionID] = m
	m.start(context.Background())
	slog.Info("Proctor monitor attached", "session_id", sessionID)
}

// Detach stops a session's monitor and waits up to StopTimeout for its
// loops to wind down. Recording finalization continues in the background
// when it outlives the wait.
func (mg *Manager) Detach(sessionID string) {
	mg.mu.Lock()
	m, ok := mg.monitors[sessionID]
	if ok {
		delete(mg.monitors, sessionID)
	}
	mg.mu.Unlock()
	if !ok {
		return
	}

	m.cancel()
	select {
	case <-m.done:
		slog.Info("Proctor monitor detached", "session_id", sessionID)
	case <-time.After(mg.cfg.StopTimeout):
		slog.Warn("Proctor monitor slow to stop", "session_id", sessionID)
	}
}

// StopAll detaches every monitor. Called at shutdown.
func (mg *Manager) StopAll() {
	mg.mu.Lock()
	ids := make([]string, 0, len(mg.monitors))
	for id := range mg.monitors {
		ids = append(ids, id)
	}
	mg.mu.Unlock()

	for _, id := range ids {
		mg.Detach(id)
	}
}

// Monitoring reports whether a session currently has a monitor.
func (mg *Manager) Monitoring(sessionID string) bool {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	_, ok := mg.monitors[sessionID]
	return ok
}

// ActiveMonitors returns the number of running monitors.
func (mg *Manager) ActiveMonitors() int {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	return len(mg.monitors)
}

func (mg *Manager) monitor(sessionID string) (*Monitor, error) {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	m, ok := mg.monitors[sessionID]
	if !ok {
		return nil, ErrNotMonitored
	}
	return m, nil
}

// SubmitFrame routes one camera frame to the session's monitor.
func (mg *Manager) SubmitFrame(sessionID string, jpeg []byte) error {
	m, err := mg.monitor(sessionID)
	if err != nil {
		return err
	}
	m.SubmitFrame(jpeg)
	return nil
}

// SubmitAudio routes one 1-second PCM chunk to the session's monitor.
func (mg *Manager) SubmitAudio(sessionID string, pcm []byte, sampleRate int) error {
	m, err := mg.monitor(sessionID)
	if err != nil {
		return err
	}
	m.SubmitAudio(pcm, sampleRate)
	return nil
}

// SubmitEvent routes one client event to the session's monitor.
func (mg *Manager) SubmitEvent(sessionID, name string) error {
	m, err := mg.monitor(sessionID)
	if err != nil {
		return err
	}
	m.SubmitEvent(name)
	return nil
}

// Detectors reports which warning detectors can currently fire.
// Vision-backed detectors need the sidecar; audio energy and tab events
// are computed in process.
func (mg *Manager) Detectors() []DetectorStatus {
	v := mg.analyzer != nil
	return []DetectorStatus{
		{Name: models.WarningNoPerson, Available: v},
		{Name: models.WarningMultiplePeople, Available: v},
		{Name: models.WarningPhoneDetected, Available: v},
		{Name: models.WarningLowConcentration, Available: v},
		{Name: models.WarningTabSwitched, Available: true},
		{Name: models.WarningExcessiveNoise, Available: true},
		{Name: models.WarningMultipleSpeakers, Available: v},
	}
}

// SidecarReady probes the vision connection for the readiness endpoint.
func (mg *Manager) SidecarReady() error {
	if mg.analyzer == nil {
		return fmt.Errorf("vision sidecar not configured")
	}
	type readier interface{ Ready() error }
	if r, ok := mg.analyzer.(readier); ok {
		return r.Ready()
	}
	return nil
}

// Failure reason codes returned by VerifyID.
const (
	ReasonWrongFaceCount     = "WRONG_FACE_COUNT"
	ReasonOCRFailed          = "OCR_FAILED"
	ReasonNameMismatch       = "NAME_MISMATCH"
	ReasonProctorUnavailable = "PROCTOR_UNAVAILABLE"
)

// IDVerification is the outcome of the one-shot identity check.
type IDVerification struct {
	Verified bool
	Reason   string // failure code when not verified
	Details  string // masked OCR extract, safe to persist
}

// VerifyID runs the one-shot identity check: the frame must show exactly
// two faces (the candidate plus the photo on the held ID card), the card
// must OCR, and the extracted name must contain the candidate's first name
// token. OCR details are masked before they leave this method.
func (mg *Manager) VerifyID(ctx context.Context, sessionID, candidateName string, frameJPEG []byte) *IDVerification {
	if mg.analyzer == nil {
		return &IDVerification{Reason: ReasonProctorUnavailable}
	}

	analysis, err := mg.analyzer.AnalyzeFrame(ctx, sessionID, frameJPEG)
	if err != nil {
		slog.Error("ID verification frame analysis failed", "session_id", sessionID, "error", err)
		return &IDVerification{Reason: ReasonProctorUnavailable}
	}
	if len(analysis.Faces) != 2 {
		return &IDVerification{
			Reason:  ReasonWrongFaceCount,
			Details: fmt.Sprintf("expected 2 faces, found %d", len(analysis.Faces)),
		}
	}

	card, err := mg.ai.OCRIDCard(ctx, frameJPEG)
	if err != nil {
		slog.Error("ID card OCR failed", "session_id", sessionID, "error", err)
		return &IDVerification{Reason: ReasonOCRFailed}
	}

	masked := mg.masker.MaskIDDetails(card.Name, card.IDNumber)
	if !nameMatches(candidateName, card.Name) {
		slog.Info("ID verification name mismatch", "session_id", sessionID)
		return &IDVerification{Reason: ReasonNameMismatch, Details: masked}
	}
	return &IDVerification{Verified: true, Details: masked}
}

// nameMatches checks that the OCR name contains the candidate's first name
// token, case-insensitively.
func nameMatches(candidateName, extracted string) bool {
	fields := strings.Fields(candidateName)
	if len(fields) == 0 {
		return false
	}
	return strings.Contains(strings.ToLower(extracted), strings.ToLower(fields[0]))
}
