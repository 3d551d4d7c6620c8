package session

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/question"
	entsession "github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/proctor"
	"github.com/hireloop/hireloop/pkg/services"
)

// evaluationPendingSummary is returned when the synchronous evaluation
// attempt missed its budget or was skipped; the queue worker finishes it.
const evaluationPendingSummary = "Your interview is complete. The evaluation is being processed."

// Complete finishes the interview: the session moves to COMPLETED, the
// interview record follows, proctoring detaches, and evaluation runs
// synchronously within a bounded budget. Evaluation failures never surface
// to the candidate; the queue worker retries them.
func (o *Orchestrator) Complete(ctx context.Context, req models.CompleteInterviewRequest) (*models.CompleteInterviewResponse, error) {
	sess, err := o.resolve(ctx, req.SessionID, req.LinkToken)
	if err != nil {
		return nil, err
	}

	release := o.locks.Acquire(sess.ID)
	defer release()

	sess, err = o.sessions.GetSession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	return o.finish(ctx, sess)
}

// finish transitions the session to COMPLETED and runs the bounded
// synchronous evaluation. The caller holds the session lock; the same flow
// backs the explicit complete call and the automatic completion when the
// final answer lands.
func (o *Orchestrator) finish(ctx context.Context, sess *ent.Session) (*models.CompleteInterviewResponse, error) {
	completed := models.ToWire(entsession.StatusCompleted)

	// A repeated complete on an evaluated session replays the outcome.
	if sess.IsEvaluated {
		view, err := o.results.GetBySession(ctx, sess.ID)
		if err != nil {
			return &models.CompleteInterviewResponse{Status: completed, Summary: evaluationPendingSummary}, nil
		}
		return &models.CompleteInterviewResponse{
			Status:  completed,
			Summary: summaryLine(view.OverallScore, view.Recommendation),
		}, nil
	}

	if err := o.sessions.CompleteSession(ctx, sess.ID); err != nil {
		return nil, err
	}
	if err := o.interviews.MarkCompleted(ctx, sess.InterviewID); err != nil {
		slog.Warn("Failed to mark interview completed", "interview_id", sess.InterviewID, "error", err)
	}
	if o.monitor != nil {
		o.monitor.Detach(sess.ID)
	}
	slog.Info("Session completed", "session_id", sess.ID)

	if o.evaluator == nil {
		return &models.CompleteInterviewResponse{Status: completed, Summary: evaluationPendingSummary}, nil
	}

	// The evaluation must survive the candidate hanging up, but not hold
	// the request open indefinitely.
	evalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.cfg.CompleteEvalBudget)
	defer cancel()

	res, err := o.evaluator.Evaluate(evalCtx, sess.ID)
	if err != nil {
		slog.Warn("Synchronous evaluation deferred to worker", "session_id", sess.ID, "error", err)
		return &models.CompleteInterviewResponse{Status: completed, Summary: evaluationPendingSummary}, nil
	}

	return &models.CompleteInterviewResponse{
		Status:  completed,
		Summary: summaryLine(res.OverallScore, res.Recommendation),
	}, nil
}

// readyToComplete reports whether the question plan is exhausted: every
// question holds a real answer and every coding question has at least one
// judged submission. An empty transcript left by a degraded transcription
// keeps the session open.
func (o *Orchestrator) readyToComplete(ctx context.Context, sessionID string) (bool, error) {
	qs, err := o.questions.ListQuestions(ctx, sessionID)
	if err != nil {
		return false, err
	}
	rs, err := o.responses.ListBySession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	answered := make(map[string]bool, len(rs))
	for _, r := range rs {
		if r.Content != "" {
			answered[r.QuestionID] = true
		}
	}
	subs, err := o.submissions.ListBySession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	submitted := make(map[string]bool, len(subs))
	for _, sub := range subs {
		submitted[sub.QuestionID] = true
	}
	for _, q := range qs {
		if !answered[q.ID] {
			return false, nil
		}
		if q.Type == question.TypeCoding && !submitted[q.ID] {
			return false, nil
		}
	}
	return true, nil
}

func summaryLine(overall float64, recommendation string) string {
	if recommendation == "" {
		return fmt.Sprintf("Overall score %.1f/10.", overall)
	}
	return fmt.Sprintf("Overall score %.1f/10. %s", overall, recommendation)
}

// VerifyID runs the one-shot identity check against the submitted frame.
// Failures come back as data, not errors, and the candidate may retry until
// the check passes. Only definitive rejections (wrong face count, name
// mismatch) are persisted as FAILED; infrastructure faults leave the status
// PENDING so a later attempt starts clean.
func (o *Orchestrator) VerifyID(ctx context.Context, req models.VerifyIDRequest) (*models.VerifyIDResponse, error) {
	sess, err := o.resolve(ctx, req.SessionID, req.LinkToken)
	if err != nil {
		return nil, err
	}
	if services.Terminal(sess.Status) {
		return nil, services.NewStateError(services.CodeSessionTerminal, "session %s is %s", sess.ID, sess.Status)
	}
	if sess.IDVerificationStatus == entsession.IDVerificationStatusVerified {
		return &models.VerifyIDResponse{Status: "success"}, nil
	}

	frame, err := base64.StdEncoding.DecodeString(req.ImageB64)
	if err != nil || len(frame) == 0 {
		return nil, services.NewValidationError("image_b64", "frame must be non-empty base64 JPEG")
	}

	if o.monitor == nil {
		return &models.VerifyIDResponse{Status: "failed", Reason: proctor.ReasonProctorUnavailable}, nil
	}

	v := o.monitor.VerifyID(ctx, sess.ID, sess.CandidateName, frame)
	if v.Verified {
		if err := o.sessions.SetIDVerification(ctx, sess.ID, true, v.Details); err != nil {
			return nil, err
		}
		slog.Info("Identity verified", "session_id", sess.ID)
		return &models.VerifyIDResponse{Status: "success"}, nil
	}

	switch v.Reason {
	case proctor.ReasonWrongFaceCount, proctor.ReasonNameMismatch:
		if err := o.sessions.SetIDVerification(ctx, sess.ID, false, v.Details); err != nil {
			slog.Warn("Failed to record verification attempt", "session_id", sess.ID, "error", err)
		}
	}

	slog.Info("Identity verification failed", "session_id", sess.ID, "reason", v.Reason)
	return &models.VerifyIDResponse{Status: "failed", Reason: v.Reason}, nil
}
