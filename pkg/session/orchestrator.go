// Package session orchestrates the candidate-facing interview flow: start,
// answer, complete, identity verification, and liveness. It owns the
// per-session locking and the wiring between link verification, question
// generation, proctoring, code execution, and evaluation; all persistence
// goes through the services layer.
package session

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path"

	"github.com/hireloop/hireloop/ent"
	entsession "github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/ai"
	"github.com/hireloop/hireloop/pkg/coderunner"
	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/evaluation"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/proctor"
	"github.com/hireloop/hireloop/pkg/services"
	"github.com/hireloop/hireloop/pkg/storage"
	"github.com/hireloop/hireloop/pkg/token"
)

// Monitor is the proctoring surface the orchestrator drives. Implemented by
// proctor.Manager. A nil Monitor disables proctoring: sessions run
// unmonitored and identity verification reports PROCTOR_UNAVAILABLE.
type Monitor interface {
	Attach(sessionID string)
	Detach(sessionID string)
	VerifyID(ctx context.Context, sessionID, candidateName string, frameJPEG []byte) *proctor.IDVerification
}

// CodeRunner judges code submissions. Implemented by coderunner.Runner. A
// nil CodeRunner rejects code payloads with SANDBOX_UNAVAILABLE.
type CodeRunner interface {
	Run(ctx context.Context, language, source string, tests []coderunner.TestCase) (*coderunner.Result, error)
}

// Evaluator produces the final evaluation result. Implemented by
// evaluation.Engine. A nil Evaluator defers all evaluation to the queue
// worker.
type Evaluator interface {
	Evaluate(ctx context.Context, sessionID string) (*ent.EvaluationResult, error)
}

// Deps collects the orchestrator's collaborators. Monitor, Runner, and
// Evaluator are optional; everything else is required.
type Deps struct {
	Sessions    *services.SessionService
	Questions   *services.QuestionService
	Responses   *services.ResponseService
	Submissions *services.CodeSubmissionService
	Interviews  *services.InterviewService
	Jobs        *services.JobService
	Results     *services.ResultService
	Links       *services.LinkService
	Gateway     ai.Service
	Monitor     Monitor
	Runner      CodeRunner
	Evaluator   Evaluator
	Store       *storage.Store
	Config      *config.SessionConfig
}

// Orchestrator drives one interview session per candidate. Mutating calls
// are serialized per session, so racing clients (double-clicks, reconnects,
// duplicated tabs) resolve to one winner instead of torn state.
type Orchestrator struct {
	sessions    *services.SessionService
	questions   *services.QuestionService
	responses   *services.ResponseService
	submissions *services.CodeSubmissionService
	interviews  *services.InterviewService
	jobs        *services.JobService
	results     *services.ResultService
	links       *services.LinkService
	gateway     ai.Service
	monitor     Monitor
	runner      CodeRunner
	evaluator   Evaluator
	store       *storage.Store
	cfg         *config.SessionConfig

	locks *lockTable
}

// New creates the orchestrator.
func New(d Deps) *Orchestrator {
	cfg := d.Config
	if cfg == nil {
		cfg = config.DefaultSessionConfig()
	}
	return &Orchestrator{
		sessions:    d.Sessions,
		questions:   d.Questions,
		responses:   d.Responses,
		submissions: d.Submissions,
		interviews:  d.Interviews,
		jobs:        d.Jobs,
		results:     d.Results,
		links:       d.Links,
		gateway:     d.Gateway,
		monitor:     d.Monitor,
		runner:      d.Runner,
		evaluator:   d.Evaluator,
		store:       d.Store,
		cfg:         cfg,
		locks:       newLockTable(),
	}
}

// authorized verifies a link token for session entry. Window failures come
// back as tagged state errors; everything else collapses to ErrNotFound so
// the public surface never distinguishes a bad signature from an unknown
// interview.
func (o *Orchestrator) authorized(ctx context.Context, linkToken string) (*ent.Interview, error) {
	v, err := o.links.Verify(ctx, linkToken)
	if err != nil {
		return nil, err
	}
	switch v.Reason {
	case token.ReasonOK:
		return v.Interview, nil
	case token.ReasonNotYetActive:
		return nil, services.NewStateError(services.CodeLinkNotYetActive, "interview link is not active yet")
	case token.ReasonExpired:
		return nil, services.NewStateError(services.CodeLinkExpired, "interview link has expired")
	default:
		return nil, services.ErrNotFound
	}
}

// resolve authorizes a mid-session call. The token binds by identity, not
// validity: once a session is running, a reschedule or window lapse must not
// kill it, so only the token's interview claim is checked against the
// session. Full verification is reserved for Start.
func (o *Orchestrator) resolve(ctx context.Context, sessionID, linkToken string) (*ent.Session, error) {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	interviewID, err := o.links.InterviewID(linkToken)
	if err != nil || interviewID != sess.InterviewID {
		return nil, services.ErrNotFound
	}
	return sess, nil
}

// Resolve authorizes a read-only or ingest call against a running session.
// Same identity-binding rule as mid-session mutations.
func (o *Orchestrator) Resolve(ctx context.Context, sessionID, linkToken string) (*ent.Session, error) {
	return o.resolve(ctx, sessionID, linkToken)
}

// Start opens or re-enters the candidate session behind a valid link token.
// The call that wins the SCHEDULED -> ACTIVE transition generates the
// question set; every call, including reconnects, re-attaches proctoring
// and returns the same session snapshot.
func (o *Orchestrator) Start(ctx context.Context, req models.StartInterviewRequest) (*models.StartInterviewResponse, error) {
	iv, err := o.authorized(ctx, req.LinkToken)
	if err != nil {
		return nil, err
	}
	if req.InterviewID != "" && req.InterviewID != iv.ID {
		return nil, services.ErrNotFound
	}

	sess, err := o.sessions.GetSessionForInterview(ctx, iv.ID)
	if err != nil {
		return nil, err
	}

	release := o.locks.Acquire(sess.ID)
	defer release()

	first, err := o.sessions.ActivateSession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if first {
		if err := o.interviews.MarkInProgress(ctx, iv.ID); err != nil {
			slog.Warn("Failed to mark interview in progress", "interview_id", iv.ID, "error", err)
		}
		slog.Info("Session activated", "session_id", sess.ID, "interview_id", iv.ID)
	}

	if err := o.ensureQuestionSet(ctx, sess, iv); err != nil {
		return nil, err
	}

	if o.monitor != nil {
		o.monitor.Attach(sess.ID)
	}

	return o.snapshot(ctx, sess.ID)
}

// ensureQuestionSet generates and persists the question plan if the session
// has none. Running under the session lock with an existence check first
// also heals a session whose activation winner crashed before persisting.
func (o *Orchestrator) ensureQuestionSet(ctx context.Context, sess *ent.Session, iv *ent.Interview) error {
	existing, err := o.questions.ListQuestions(ctx, sess.ID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	j, err := o.jobs.GetJob(ctx, iv.JobID)
	if err != nil {
		return fmt.Errorf("failed to load job for question generation: %w", err)
	}

	in := ai.QuestionInput{
		CandidateName:  sess.CandidateName,
		JobTitle:       j.Title,
		JobDescription: sess.JobDescription,
		ResumeText:     sess.ResumeText,
	}
	if j.CodingLanguage != nil {
		in.CodingLanguage = string(*j.CodingLanguage)
	}

	plan, err := o.gateway.GenerateQuestions(ctx, in)
	if err != nil {
		if markErr := o.sessions.MarkSessionError(ctx, sess.ID, "question generation failed"); markErr != nil {
			slog.Error("Failed to mark session error", "session_id", sess.ID, "error", markErr)
		}
		return fmt.Errorf("failed to generate questions: %w", err)
	}

	seeds := make([]services.QuestionSeed, 0, len(plan.Questions))
	for _, d := range plan.Questions {
		audioPath, ttsDegraded := o.synthesize(ctx, questionAudioKey(sess.ID, d.Order, false), d.Text)
		seeds = append(seeds, services.QuestionSeed{Draft: d, AudioPath: audioPath, TTSDegraded: ttsDegraded})
	}

	created, err := o.questions.CreateQuestionSet(ctx, sess.ID, seeds)
	if err != nil {
		return fmt.Errorf("failed to persist question set: %w", err)
	}

	modelConfig := map[string]interface{}{
		"chat_model": plan.ModelUsed,
		"fallback":   plan.Fallback,
	}
	if err := o.sessions.SetQuestionPlan(ctx, sess.ID, len(created), modelConfig); err != nil {
		return fmt.Errorf("failed to record question plan: %w", err)
	}

	slog.Info("Question set generated",
		"session_id", sess.ID,
		"questions", len(created),
		"fallback", plan.Fallback,
		"model", plan.ModelUsed)
	return nil
}

// synthesize renders question text to speech and stores it under key. TTS
// failures degrade the question to text-only; they never block the flow.
func (o *Orchestrator) synthesize(ctx context.Context, key, text string) (*string, bool) {
	audio, err := o.gateway.Synthesize(ctx, text)
	if err != nil {
		slog.Warn("Question synthesis degraded", "key", key, "error", err)
		return nil, true
	}
	if _, err := o.store.Save(key, audio); err != nil {
		slog.Warn("Failed to store question audio", "key", key, "error", err)
		return nil, true
	}
	return &key, false
}

// snapshot assembles the session state returned by Start. Question audio is
// inlined from storage; a missing file degrades that question, nothing more.
func (o *Orchestrator) snapshot(ctx context.Context, sessionID string) (*models.StartInterviewResponse, error) {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	qs, err := o.questions.ListQuestions(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	views := make([]models.QuestionView, 0, len(qs))
	degraded := false
	for _, q := range qs {
		if q.GeneratedFallback {
			degraded = true
		}
		views = append(views, o.questionView(q))
	}

	return &models.StartInterviewResponse{
		SessionID:         sess.ID,
		Status:            models.ToWire(sess.Status),
		Questions:         views,
		Current:           sess.CurrentQuestionIndex,
		Total:             sess.TotalQuestions,
		IDVerified:        sess.IDVerificationStatus == entsession.IDVerificationStatusVerified,
		QuestionsDegraded: degraded,
	}, nil
}

func (o *Orchestrator) questionView(q *ent.Question) models.QuestionView {
	view := models.QuestionView{
		ID:          q.ID,
		Order:       q.Order,
		Type:        models.ToWire(q.Type),
		Level:       models.ToWire(q.Level),
		Text:        q.Text,
		TTSDegraded: q.TtsDegraded,
		Fallback:    q.GeneratedFallback,
	}
	if q.CodingLanguage != nil {
		view.CodingLanguage = models.ToWire(*q.CodingLanguage)
	}
	if q.AudioPath != nil {
		audio, err := o.store.Read(*q.AudioPath)
		if err != nil {
			slog.Warn("Failed to read question audio", "question_id", q.ID, "error", err)
			view.TTSDegraded = true
		} else {
			view.AudioB64 = base64.StdEncoding.EncodeToString(audio)
		}
	}
	return view
}

// Heartbeat refreshes the session's idle timer. Returns the current status
// so a client polling against a finished session can stop.
func (o *Orchestrator) Heartbeat(ctx context.Context, req models.HeartbeatRequest) (*models.HeartbeatResponse, error) {
	sess, err := o.resolve(ctx, req.SessionID, req.LinkToken)
	if err != nil {
		return nil, err
	}
	status, err := o.sessions.TouchSession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	return &models.HeartbeatResponse{Status: models.ToWire(status)}, nil
}

// Bootstrap exchanges the opaque portal key for what the client shell needs
// to call Start. The link token is minted from the interview's current
// window, so a rescheduled interview hands out a working token here.
func (o *Orchestrator) Bootstrap(ctx context.Context, sessionKey string) (*models.PortalBootstrap, error) {
	sess, err := o.sessions.GetSessionByKey(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	iv := sess.Edges.Interview
	if iv == nil {
		return nil, fmt.Errorf("session %s loaded without its interview", sess.ID)
	}

	tok, _, err := o.links.Mint(iv, sess.CandidateEmail)
	if err != nil {
		return nil, err
	}

	return &models.PortalBootstrap{
		InterviewID:   iv.ID,
		LinkToken:     tok,
		CandidateName: sess.CandidateName,
		Status:        models.ToWire(sess.Status),
	}, nil
}

// requireActive re-reads the session under the caller's lock and rejects
// anything but ACTIVE.
func (o *Orchestrator) requireActive(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != entsession.StatusActive {
		return nil, services.NewStateError(services.CodeSessionNotActive, "session %s is %s", sess.ID, sess.Status)
	}
	return sess, nil
}

// ownedQuestion loads a question and checks it belongs to the session.
func (o *Orchestrator) ownedQuestion(ctx context.Context, sess *ent.Session, questionID string) (*ent.Question, error) {
	q, err := o.questions.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q.SessionID != sess.ID {
		return nil, services.ErrNotFound
	}
	return q, nil
}

// questionAudioKey is the storage key for synthesized question speech.
func questionAudioKey(sessionID string, order int, followUp bool) string {
	name := fmt.Sprintf("q-%d.mp3", order)
	if followUp {
		name = fmt.Sprintf("fu-%d.mp3", order)
	}
	return path.Join(storage.PrefixAudio, "questions", sessionID, name)
}

// Compile-time assertions that the production implementations satisfy the
// orchestrator's interfaces.
var (
	_ Monitor    = (*proctor.Manager)(nil)
	_ CodeRunner = (*coderunner.Runner)(nil)
	_ Evaluator  = (*evaluation.Engine)(nil)
)
