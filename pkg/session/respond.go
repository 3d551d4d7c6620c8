package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/question"
	entsession "github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/ai"
	"github.com/hireloop/hireloop/pkg/coderunner"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/services"
	"github.com/hireloop/hireloop/pkg/storage"
)

// SubmitResponse records one answer and moves the interview forward. Text
// and audio answers are write-once per question; an empty answer left by a
// degraded transcription may be replaced. Code answers may be resubmitted
// freely, each run recorded, the response row tracking the latest source.
func (o *Orchestrator) SubmitResponse(ctx context.Context, req models.SubmitResponseRequest) (*models.SubmitResponseResult, error) {
	sess, err := o.resolve(ctx, req.SessionID, req.LinkToken)
	if err != nil {
		return nil, err
	}

	release := o.locks.Acquire(sess.ID)
	defer release()

	sess, err = o.requireActive(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if sess.IDVerificationStatus != entsession.IDVerificationStatusVerified {
		return nil, services.NewStateError(services.CodeNotVerified, "identity is not verified for session %s", sess.ID)
	}
	if _, err := o.sessions.TouchSession(ctx, sess.ID); err != nil {
		slog.Warn("Failed to touch session", "session_id", sess.ID, "error", err)
	}

	q, err := o.ownedQuestion(ctx, sess, req.QuestionID)
	if err != nil {
		return nil, err
	}

	// A follow-up only opens once its parent holds a real answer.
	if q.Level == question.LevelFollowUp && q.ParentID != nil {
		answered, err := o.questions.HasResponse(ctx, *q.ParentID)
		if err != nil {
			return nil, err
		}
		if !answered {
			return nil, services.NewStateError(services.CodeParentUnanswered, "question %s is not open until its parent is answered", q.ID)
		}
	}

	prior, err := o.responses.GetByQuestion(ctx, q.ID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return nil, err
	}

	kind := models.FromWire(req.Payload.Kind)
	switch kind {
	case "text", "audio", "code":
	default:
		return nil, services.NewValidationError("payload.kind", "kind must be TEXT, AUDIO, or CODE")
	}
	if prior != nil && prior.Content != "" && kind != "code" {
		return nil, services.NewStateError(services.CodeAlreadyAnswered, "question %s is already answered", q.ID)
	}

	var (
		content   string
		audioPath *string
		duration  float64
		degraded  []string
		codeView  *models.CodeRunView
	)

	switch kind {
	case "text":
		content = strings.TrimSpace(req.Payload.Text)
		if content == "" {
			return nil, services.NewValidationError("payload.text", "text answer must not be empty")
		}

	case "audio":
		raw, decodeErr := base64.StdEncoding.DecodeString(req.Payload.AudioB64)
		if decodeErr != nil || len(raw) == 0 {
			return nil, services.NewValidationError("payload.audio_b64", "audio answer must be non-empty base64")
		}
		content, audioPath, degraded = o.transcribeAnswer(ctx, sess.ID, q.ID, raw, req.Payload.MimeType)
		duration = req.Payload.DurationSeconds

	case "code":
		sub, runErr := o.runCode(ctx, sess, q, req.Payload)
		if runErr != nil {
			return nil, runErr
		}
		content = req.Payload.SourceCode
		codeView = &models.CodeRunView{
			SubmissionID:   sub.ID,
			PassedAllTests: sub.PassedAllTests,
			OutputLog:      sub.OutputLog,
		}
	}

	if prior != nil {
		_, err = o.responses.ReplaceContent(ctx, prior.ID, kind, content, audioPath, duration)
	} else {
		_, err = o.responses.RecordResponse(ctx, services.RecordResponseInput{
			SessionID:       sess.ID,
			QuestionID:      q.ID,
			Kind:            kind,
			Content:         content,
			AudioPath:       audioPath,
			DurationSeconds: duration,
		})
		if errors.Is(err, services.ErrAlreadyExists) {
			err = services.NewStateError(services.CodeAlreadyAnswered, "question %s is already answered", q.ID)
		}
	}
	if err != nil {
		return nil, err
	}

	if q.Level == question.LevelMain {
		if err := o.sessions.AdvanceQuestionIndex(ctx, sess.ID, q.Order+1); err != nil {
			slog.Warn("Failed to advance question index", "session_id", sess.ID, "error", err)
		}
	}

	var followUp *models.QuestionView
	if q.Level == question.LevelMain && q.Type != question.TypeCoding {
		var fuDegraded bool
		followUp, fuDegraded = o.maybeFollowUp(ctx, sess, q, content)
		if fuDegraded {
			degraded = append(degraded, ai.CapabilityFollowUp)
		}
	}

	result := &models.SubmitResponseResult{
		FollowUp:   followUp,
		CodeResult: codeView,
		Degraded:   degraded,
	}

	if followUp != nil {
		result.NextQuestionID = followUp.ID
	} else {
		// Follow-ups share the parent's order, so the next main question
		// sits at order+1 regardless of which level was just answered.
		next, err := o.questions.MainQuestionByOrder(ctx, sess.ID, q.Order+1)
		switch {
		case err == nil:
			result.NextQuestionID = next.ID
		case !errors.Is(err, services.ErrNotFound):
			return nil, err
		}
	}

	sess, err = o.sessions.GetSession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	result.Current = sess.CurrentQuestionIndex
	result.Total = sess.TotalQuestions

	// Once nothing is left to answer the interview closes itself; a later
	// explicit complete just replays the outcome. A freshly minted follow-up
	// is by construction unanswered, so the check is skipped.
	if result.FollowUp == nil {
		ready, err := o.readyToComplete(ctx, sess.ID)
		if err != nil {
			slog.Warn("Failed to check completion readiness", "session_id", sess.ID, "error", err)
		} else if ready {
			done, err := o.finish(ctx, sess)
			if err != nil {
				slog.Warn("Auto-completion failed, awaiting explicit complete", "session_id", sess.ID, "error", err)
			} else {
				result.Completed = true
				result.Summary = done.Summary
				result.NextQuestionID = ""
			}
		}
	}

	return result, nil
}

// transcribeAnswer stores the original recording and converts it to text.
// Both steps degrade rather than fail: the attempt is recorded either way so
// the candidate is never stuck on one question, and an empty transcript
// leaves the question answerable again.
func (o *Orchestrator) transcribeAnswer(ctx context.Context, sessionID, questionID string, raw []byte, mimeType string) (string, *string, []string) {
	var audioPath *string
	key := responseAudioKey(sessionID, questionID, mimeType)
	if _, err := o.store.Save(key, raw); err != nil {
		slog.Warn("Failed to store answer audio", "session_id", sessionID, "question_id", questionID, "error", err)
	} else {
		audioPath = &key
	}

	transcript, err := o.gateway.Transcribe(ctx, raw, mimeType)
	if err != nil {
		slog.Warn("Transcription degraded", "session_id", sessionID, "question_id", questionID, "error", err)
		return "", audioPath, []string{ai.CapabilityTranscription}
	}
	return strings.TrimSpace(transcript), audioPath, nil
}

// runCode judges a code payload against the question's test cases and
// records the run. Sandbox and language problems come back as tagged state
// errors so the client can tell the candidate what happened.
func (o *Orchestrator) runCode(ctx context.Context, sess *ent.Session, q *ent.Question, payload models.ResponsePayload) (*ent.CodeSubmission, error) {
	if q.Type != question.TypeCoding || q.CodingLanguage == nil {
		return nil, services.NewValidationError("question_id", "question does not accept code")
	}

	lang := models.FromWire(payload.Language)
	if lang == "" {
		lang = string(*q.CodingLanguage)
	}
	if lang != string(*q.CodingLanguage) {
		return nil, services.NewValidationError("payload.language", "language does not match the question")
	}
	if strings.TrimSpace(payload.SourceCode) == "" {
		return nil, services.NewValidationError("payload.source_code", "source code must not be empty")
	}
	if o.runner == nil {
		return nil, services.NewStateError(services.CodeSandboxUnavailable, "code execution is unavailable")
	}

	tcs, err := o.questions.TestCasesFor(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if len(tcs) == 0 {
		return nil, services.NewStateError(services.CodeQuestionHasNoTests, "question %s has no test cases", q.ID)
	}
	tests := make([]coderunner.TestCase, 0, len(tcs))
	for _, tc := range tcs {
		tests = append(tests, coderunner.TestCase{
			Input:    tc.Input,
			Expected: tc.ExpectedOutput,
			Hidden:   tc.IsHidden,
			Ordinal:  tc.Ordinal,
		})
	}

	res, err := o.runner.Run(ctx, lang, payload.SourceCode, tests)
	if err != nil {
		switch {
		case errors.Is(err, coderunner.ErrSandboxUnavailable):
			return nil, services.NewStateError(services.CodeSandboxUnavailable, "code execution is unavailable")
		case errors.Is(err, coderunner.ErrLanguageUnsupported):
			return nil, services.NewStateError(services.CodeLanguageUnsupported, "language %s is not supported", lang)
		case errors.Is(err, coderunner.ErrNoTests):
			return nil, services.NewStateError(services.CodeQuestionHasNoTests, "question %s has no test cases", q.ID)
		default:
			return nil, fmt.Errorf("failed to run code submission: %w", err)
		}
	}

	sub, err := o.submissions.RecordSubmission(ctx, services.RecordSubmissionInput{
		SessionID:      sess.ID,
		QuestionID:     q.ID,
		Language:       lang,
		SourceCode:     payload.SourceCode,
		PassedAllTests: res.PassedAll,
		OutputLog:      res.Log,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Code submission judged",
		"session_id", sess.ID,
		"question_id", q.ID,
		"language", lang,
		"passed", res.PassedAll)
	return sub, nil
}

// maybeFollowUp asks the gateway for one probe when the answer expresses
// uncertainty. At most one follow-up per main question; generation failure
// degrades the capability instead of blocking the answer.
func (o *Orchestrator) maybeFollowUp(ctx context.Context, sess *ent.Session, q *ent.Question, transcript string) (*models.QuestionView, bool) {
	if transcript == "" || !ai.NeedsFollowUp(transcript) {
		return nil, false
	}

	has, err := o.questions.HasFollowUp(ctx, q.ID)
	if err != nil {
		slog.Warn("Failed to check for existing follow-up", "question_id", q.ID, "error", err)
		return nil, false
	}
	if has {
		return nil, false
	}

	text, err := o.gateway.GenerateFollowUp(ctx, q.Text, transcript)
	if err != nil {
		slog.Warn("Follow-up generation degraded", "session_id", sess.ID, "question_id", q.ID, "error", err)
		return nil, true
	}
	if text == "" {
		return nil, false
	}

	audioPath, ttsDegraded := o.synthesize(ctx, questionAudioKey(sess.ID, q.Order, true), text)
	fu, err := o.questions.AddFollowUp(ctx, q, text, audioPath, ttsDegraded)
	if err != nil {
		slog.Error("Failed to persist follow-up", "session_id", sess.ID, "question_id", q.ID, "error", err)
		return nil, true
	}
	if err := o.sessions.AddFollowUpToPlan(ctx, sess.ID); err != nil {
		slog.Warn("Failed to grow question plan", "session_id", sess.ID, "error", err)
	}

	slog.Info("Follow-up inserted", "session_id", sess.ID, "parent_id", q.ID, "follow_up_id", fu.ID)
	view := o.questionView(fu)
	return &view, false
}

// responseAudioKey is the storage key for a candidate's answer recording.
func responseAudioKey(sessionID, questionID, mimeType string) string {
	return path.Join(storage.PrefixAudio, "responses", sessionID, questionID+audioExt(mimeType))
}

func audioExt(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "audio/wav", "audio/x-wav", "audio/wave":
		return ".wav"
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/ogg":
		return ".ogg"
	case "audio/webm", "video/webm":
		return ".webm"
	default:
		return ".bin"
	}
}
