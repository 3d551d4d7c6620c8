package services

import (
	"context"
)

// MonitorSink adapts the persistence services to what the proctor monitor
// needs: the warning log and the recording path. It keeps the monitor free
// of any database types.
type MonitorSink struct {
	warnings *WarningService
	sessions *SessionService
}

// NewMonitorSink creates a new MonitorSink
func NewMonitorSink(warnings *WarningService, sessions *SessionService) *MonitorSink {
	return &MonitorSink{warnings: warnings, sessions: sessions}
}

// RecordWarning appends one warning activation.
func (s *MonitorSink) RecordWarning(ctx context.Context, sessionID, warningType, message, evidencePath string) error {
	return s.warnings.Record(ctx, sessionID, warningType, message, evidencePath)
}

// SetVideoPath stores the finalized recording's storage key.
func (s *MonitorSink) SetVideoPath(ctx context.Context, sessionID, path string) error {
	return s.sessions.SetVideoPath(ctx, sessionID, path)
}
