// Package proctor runs the per-session monitoring pipeline: camera frames,
// microphone audio and page-visibility events flow in from the candidate
// client, detector verdicts are grace-filtered into warning activations, and
// each activation is recorded exactly once with optional annotated evidence.
//
// Perception (faces, phone, diarization) lives in the vision sidecar; this
// package owns all policy. The monitor shares nothing with the session
// orchestrator except the append-only warning log and the stored video path.
package proctor

import (
	"context"
	"errors"
)

// ErrNotMonitored is returned when ingest arrives for a session that has no
// running monitor.
var ErrNotMonitored = errors.New("session is not being monitored")

// Sink persists monitor output. Implemented on top of the warning and
// session services; monitors never touch ent directly.
type Sink interface {
	// RecordWarning appends one warning activation.
	RecordWarning(ctx context.Context, sessionID, warningType, message, evidencePath string) error

	// SetVideoPath stores the finalized recording key on the session.
	SetVideoPath(ctx context.Context, sessionID, path string) error
}

// DetectorStatus reports whether one warning detector can currently fire.
// Vision-backed detectors are unavailable when no sidecar is configured.
type DetectorStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// Client event names accepted by SubmitEvent.
const (
	EventTabSwitched = "TAB_SWITCHED"
	EventTabFocused  = "TAB_FOCUSED"
)
