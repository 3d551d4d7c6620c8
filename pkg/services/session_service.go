package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/session"
)

// SessionService owns the session state machine. Every transition is a
// conditional UPDATE guarded on the current status, so racing callers
// resolve to exactly one winner without advisory locks.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// GetSessionByKey retrieves a session by its opaque portal key, with the
// owning interview loaded.
func (s *SessionService) GetSessionByKey(ctx context.Context, sessionKey string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().
		Where(session.SessionKeyEQ(sessionKey)).
		WithInterview().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session by key: %w", err)
	}
	return sess, nil
}

// GetSessionForInterview retrieves the session bound to an interview
func (s *SessionService) GetSessionForInterview(ctx context.Context, interviewID string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().
		Where(session.InterviewIDEQ(interviewID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session for interview: %w", err)
	}
	return sess, nil
}

// Terminal reports whether a status admits no further transitions.
func Terminal(status session.Status) bool {
	switch status {
	case session.StatusCompleted, session.StatusExpired, session.StatusError:
		return true
	default:
		return false
	}
}

// ActivateSession moves a session into ACTIVE. Returns true when this call
// performed the SCHEDULED -> ACTIVE transition (the caller that gets true
// owns first-run work such as question generation ordering); false when the
// session was already active or resumed from PAUSED. Terminal sessions are
// rejected.
func (s *SessionService) ActivateSession(ctx context.Context, sessionID string) (bool, error) {
	now := time.Now()

	n, err := s.client.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.StatusEQ(session.StatusScheduled),
		).
		SetStatus(session.StatusActive).
		SetSessionStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to activate session: %w", err)
	}
	if n == 1 {
		return true, nil
	}

	// Not scheduled: resume from paused, or accept an already-active row.
	n, err = s.client.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.StatusEQ(session.StatusPaused),
		).
		SetStatus(session.StatusActive).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to resume session: %w", err)
	}
	if n == 1 {
		return false, nil
	}

	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if Terminal(sess.Status) {
		return false, NewStateError(CodeSessionTerminal, "session %s is %s", sessionID, sess.Status)
	}
	return false, nil
}

// TouchSession records candidate liveness. Returns the current status so
// clients polling against a finished session can stop.
func (s *SessionService) TouchSession(ctx context.Context, sessionID string) (session.Status, error) {
	n, err := s.client.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.StatusEQ(session.StatusActive),
		).
		SetLastInteractionAt(time.Now()).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to touch session: %w", err)
	}
	if n == 1 {
		return session.StatusActive, nil
	}

	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return sess.Status, nil
}

// CompleteSession moves an ACTIVE or PAUSED session to COMPLETED and stamps
// session_ended_at. Completing an already-completed session is a no-op;
// EXPIRED and ERROR are rejected.
func (s *SessionService) CompleteSession(ctx context.Context, sessionID string) error {
	n, err := s.client.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.StatusIn(session.StatusActive, session.StatusPaused),
		).
		SetStatus(session.StatusCompleted).
		SetSessionEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	if n == 1 {
		return nil
	}

	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	switch sess.Status {
	case session.StatusCompleted:
		return nil
	case session.StatusScheduled:
		return NewStateError(CodeSessionTerminal, "session %s was never started", sessionID)
	default:
		return NewStateError(CodeSessionTerminal, "session %s is %s", sessionID, sess.Status)
	}
}

// PauseSession parks an ACTIVE session for manual intervention
func (s *SessionService) PauseSession(ctx context.Context, sessionID string) error {
	n, err := s.client.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.StatusEQ(session.StatusActive),
		).
		SetStatus(session.StatusPaused).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to pause session: %w", err)
	}
	if n == 0 {
		return NewStateError(CodeSessionTerminal, "session %s is not active", sessionID)
	}
	return nil
}

// MarkSessionError records an unrecoverable fault. Terminal rows are left
// alone so an error never overwrites a completed session.
func (s *SessionService) MarkSessionError(ctx context.Context, sessionID, message string) error {
	_, err := s.client.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.StatusNotIn(session.StatusCompleted, session.StatusExpired, session.StatusError),
		).
		SetStatus(session.StatusError).
		SetErrorMessage(message).
		SetSessionEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark session error: %w", err)
	}
	return nil
}

// ExpireLapsedSessions is the sweep behind the background expirer. Two
// populations lapse:
//
//   - SCHEDULED sessions whose interview link window has fully closed: the
//     candidate never joined.
//   - ACTIVE sessions idle past idleTimeout whose interview window has also
//     passed: the candidate abandoned mid-run. Idleness alone never expires
//     a session inside its window.
//
// Returns the IDs of the expired sessions so the caller can release any
// per-session resources (proctoring attachments, recordings).
func (s *SessionService) ExpireLapsedSessions(ctx context.Context, idleTimeout time.Duration) ([]string, error) {
	now := time.Now()

	neverJoined, err := s.client.Session.Query().
		Where(
			session.StatusEQ(session.StatusScheduled),
			session.HasInterviewWith(interview.LinkExpiresAtLT(now)),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find unjoined sessions: %w", err)
	}
	if len(neverJoined) > 0 {
		// Re-check status inside the update so a session that started
		// between query and write survives.
		if _, err := s.client.Session.Update().
			Where(
				session.IDIn(neverJoined...),
				session.StatusEQ(session.StatusScheduled),
			).
			SetStatus(session.StatusExpired).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to expire unjoined sessions: %w", err)
		}
	}

	abandoned, err := s.client.Session.Query().
		Where(
			session.StatusEQ(session.StatusActive),
			session.LastInteractionAtLT(now.Add(-idleTimeout)),
			session.HasInterviewWith(interview.EndedAtLT(now)),
		).
		IDs(ctx)
	if err != nil {
		return neverJoined, fmt.Errorf("failed to find abandoned sessions: %w", err)
	}
	if len(abandoned) > 0 {
		if _, err := s.client.Session.Update().
			Where(
				session.IDIn(abandoned...),
				session.StatusEQ(session.StatusActive),
				session.LastInteractionAtLT(now.Add(-idleTimeout)),
			).
			SetStatus(session.StatusExpired).
			SetSessionEndedAt(now).
			Save(ctx); err != nil {
			return neverJoined, fmt.Errorf("failed to expire abandoned sessions: %w", err)
		}
	}

	return append(neverJoined, abandoned...), nil
}

// SetIDVerification records the outcome of the pre-interview identity check.
// details must already be masked; this layer never sees raw ID numbers.
func (s *SessionService) SetIDVerification(ctx context.Context, sessionID string, verified bool, details string) error {
	status := session.IDVerificationStatusFailed
	if verified {
		status = session.IDVerificationStatusVerified
	}

	builder := s.client.Session.UpdateOneID(sessionID).
		SetIDVerificationStatus(status)
	if details != "" {
		builder.SetIDDetails(details)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set id verification: %w", err)
	}
	return nil
}

// SetQuestionPlan records the size of the generated question set and the
// model configuration that produced it. Called once, by the activation
// winner.
func (s *SessionService) SetQuestionPlan(ctx context.Context, sessionID string, total int, modelConfig map[string]interface{}) error {
	builder := s.client.Session.UpdateOneID(sessionID).
		SetTotalQuestions(total).
		SetCurrentQuestionIndex(0)
	if modelConfig != nil {
		builder.SetModelConfig(modelConfig)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set question plan: %w", err)
	}
	return nil
}

// AdvanceQuestionIndex moves the main-question cursor forward. The index
// only ever grows; a stale writer loses silently.
func (s *SessionService) AdvanceQuestionIndex(ctx context.Context, sessionID string, index int) error {
	_, err := s.client.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.CurrentQuestionIndexLT(index),
		).
		SetCurrentQuestionIndex(index).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance question index: %w", err)
	}
	return nil
}

// AddFollowUpToPlan bumps total_questions when a follow-up is inserted
func (s *SessionService) AddFollowUpToPlan(ctx context.Context, sessionID string) error {
	err := s.client.Session.UpdateOneID(sessionID).
		AddTotalQuestions(1).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to grow question plan: %w", err)
	}
	return nil
}

// SetVideoPath records the finalized proctoring recording location
func (s *SessionService) SetVideoPath(ctx context.Context, sessionID, path string) error {
	err := s.client.Session.UpdateOneID(sessionID).
		SetVideoPath(path).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set video path: %w", err)
	}
	return nil
}
