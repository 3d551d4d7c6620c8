package session

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/interview"
	entsession "github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/ai"
	"github.com/hireloop/hireloop/pkg/ai/mock"
	"github.com/hireloop/hireloop/pkg/coderunner"
	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/database"
	"github.com/hireloop/hireloop/pkg/evaluation"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/proctor"
	"github.com/hireloop/hireloop/pkg/services"
	"github.com/hireloop/hireloop/pkg/storage"
	"github.com/hireloop/hireloop/pkg/token"
	testdb "github.com/hireloop/hireloop/test/database"
)

// fakeMonitor counts attach/detach calls and returns a scripted verdict.
type fakeMonitor struct {
	mu       sync.Mutex
	attach   map[string]int
	detach   map[string]int
	verifies int
	verdict  *proctor.IDVerification
}

func newFakeMonitor() *fakeMonitor {
	return &fakeMonitor{
		attach:  make(map[string]int),
		detach:  make(map[string]int),
		verdict: &proctor.IDVerification{Verified: true, Details: "Name: D*** S***; ID: ********9012"},
	}
}

func (f *fakeMonitor) Attach(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attach[sessionID]++
}

func (f *fakeMonitor) Detach(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detach[sessionID]++
}

func (f *fakeMonitor) VerifyID(ctx context.Context, sessionID, candidateName string, frameJPEG []byte) *proctor.IDVerification {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifies++
	return f.verdict
}

func (f *fakeMonitor) setVerdict(v *proctor.IDVerification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verdict = v
}

func (f *fakeMonitor) attachCount(sessionID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attach[sessionID]
}

func (f *fakeMonitor) detachCount(sessionID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.detach[sessionID]
}

func (f *fakeMonitor) verifyCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.verifies
}

// fakeRunner returns a scripted judgement without spawning processes.
type fakeRunner struct {
	mu     sync.Mutex
	result *coderunner.Result
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, language, source string, tests []coderunner.TestCase) (*coderunner.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeRunner) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

type failingEvaluator struct{}

func (failingEvaluator) Evaluate(ctx context.Context, sessionID string) (*ent.EvaluationResult, error) {
	return nil, errors.New("llm timeout")
}

type testEnv struct {
	client      *database.Client
	zone        *time.Location
	links       *services.LinkService
	sessions    *services.SessionService
	questions   *services.QuestionService
	responses   *services.ResponseService
	submissions *services.CodeSubmissionService
	interviews  *services.InterviewService
	gateway     *mock.Gateway
	monitor     *fakeMonitor
	runner      *fakeRunner
	store       *storage.Store
	deps        Deps
	orch        *Orchestrator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	zone, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	bank, err := config.LoadQuestionBank("")
	require.NoError(t, err)

	links := services.NewLinkService(client.Client, token.NewCodec("test-link-secret"), 15*time.Minute, 2*time.Hour)
	env := &testEnv{
		client:      client,
		zone:        zone,
		links:       links,
		sessions:    services.NewSessionService(client.Client),
		questions:   services.NewQuestionService(client.Client),
		responses:   services.NewResponseService(client.Client),
		submissions: services.NewCodeSubmissionService(client.Client),
		interviews:  services.NewInterviewService(client.Client, links, zone, nil, "http://localhost:5173", false),
		gateway:     mock.New(bank),
		monitor:     newFakeMonitor(),
		runner:      &fakeRunner{result: &coderunner.Result{PassedAll: true, Log: "Test 1: PASSED\nTest 2 (hidden): PASSED"}},
		store:       store,
	}

	env.deps = Deps{
		Sessions:    env.sessions,
		Questions:   env.questions,
		Responses:   env.responses,
		Submissions: env.submissions,
		Interviews:  env.interviews,
		Jobs:        services.NewJobService(client.Client),
		Results:     services.NewResultService(client.Client),
		Links:       env.links,
		Gateway:     env.gateway,
		Monitor:     env.monitor,
		Runner:      env.runner,
		Evaluator:   evaluation.NewEngine(client.Client, env.gateway, "mock"),
		Store:       env.store,
		Config:      config.DefaultSessionConfig(),
	}
	env.orch = New(env.deps)
	return env
}

// book creates a fresh job, candidate, and interview and books it into a
// slot a week out. Each booking gets its own job, so identical civil windows
// never collide.
func (e *testEnv) book(t *testing.T) *services.BookingOutcome {
	t.Helper()
	ctx := context.Background()

	j, err := services.NewJobService(e.client.Client).CreateJob(ctx, models.CreateJobRequest{
		Title:          "Backend Engineer",
		CompanyName:    "Acme Systems",
		Description:    "Design and operate the ingestion services.",
		TechStack:      []string{"go", "postgres"},
		CodingLanguage: "PYTHON",
	})
	require.NoError(t, err)

	c, err := services.NewCandidateService(e.client.Client).CreateCandidate(ctx, models.CreateCandidateRequest{
		FullName:   "Dana Smith",
		Email:      uuid.NewString() + "@example.com",
		ResumeText: "Five years building data pipelines.",
	})
	require.NoError(t, err)

	iv, err := e.client.Interview.Create().
		SetID(uuid.NewString()).
		SetCandidateID(c.ID).
		SetJobID(j.ID).
		SetStatus(interview.StatusPendingScheduling).
		Save(ctx)
	require.NoError(t, err)

	date := time.Now().In(e.zone).AddDate(0, 0, 7).Format("2006-01-02")
	slots, err := services.NewSlotService(e.client.Client, e.zone).CreateSlot(ctx, models.CreateSlotRequest{
		JobID:     j.ID,
		Date:      date,
		StartTime: "10:00",
		EndTime:   "10:45",
		Capacity:  1,
	})
	require.NoError(t, err)
	require.Len(t, slots, 1)

	outcome, err := e.interviews.Book(ctx, iv.ID, slots[0].ID)
	require.NoError(t, err)
	return outcome
}

// clockInside positions the link clock five minutes into the window.
func (e *testEnv) clockInside(t *testing.T, outcome *services.BookingOutcome) {
	t.Helper()
	require.NotNil(t, outcome.Interview.StartedAt)
	e.clockAt(outcome.Interview.StartedAt.Add(5 * time.Minute))
}

func (e *testEnv) clockAt(now time.Time) {
	e.links.WithNow(func() time.Time { return now })
}

// start books, enters the window, and opens the session.
func (e *testEnv) start(t *testing.T) (*services.BookingOutcome, *models.StartInterviewResponse) {
	t.Helper()
	outcome := e.book(t)
	e.clockInside(t, outcome)
	resp, err := e.orch.Start(context.Background(), models.StartInterviewRequest{
		InterviewID: outcome.Interview.ID,
		LinkToken:   outcome.Token,
	})
	require.NoError(t, err)
	return outcome, resp
}

// verify flips the session to VERIFIED through the scripted monitor.
func (e *testEnv) verify(t *testing.T, outcome *services.BookingOutcome, sessionID string) {
	t.Helper()
	resp, err := e.orch.VerifyID(context.Background(), models.VerifyIDRequest{
		SessionID: sessionID,
		LinkToken: outcome.Token,
		ImageB64:  base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff}),
	})
	require.NoError(t, err)
	require.Equal(t, "success", resp.Status)
}

func TestOrchestrator_Start(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("activates the session and generates the plan", func(t *testing.T) {
		outcome := env.book(t)
		env.clockInside(t, outcome)

		resp, err := env.orch.Start(ctx, models.StartInterviewRequest{
			InterviewID: outcome.Interview.ID,
			LinkToken:   outcome.Token,
		})
		require.NoError(t, err)

		assert.Equal(t, outcome.Session.ID, resp.SessionID)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Equal(t, 0, resp.Current)
		assert.Equal(t, 5, resp.Total)
		assert.False(t, resp.IDVerified)
		assert.False(t, resp.QuestionsDegraded)

		require.Len(t, resp.Questions, 5)
		assert.Equal(t, "ICE_BREAKER", resp.Questions[0].Type)
		assert.Equal(t, "CODING", resp.Questions[4].Type)
		assert.Equal(t, "PYTHON", resp.Questions[4].CodingLanguage)
		assert.NotEmpty(t, resp.Questions[0].AudioB64)
		assert.False(t, resp.Questions[0].TTSDegraded)

		assert.Equal(t, 1, env.monitor.attachCount(outcome.Session.ID))

		iv, err := env.client.Interview.Get(ctx, outcome.Interview.ID)
		require.NoError(t, err)
		assert.Equal(t, interview.StatusInProgress, iv.Status)
	})

	t.Run("repeated start returns the same snapshot", func(t *testing.T) {
		outcome := env.book(t)
		env.clockInside(t, outcome)

		before := env.gateway.CallCount("generate_questions")
		first, err := env.orch.Start(ctx, models.StartInterviewRequest{InterviewID: outcome.Interview.ID, LinkToken: outcome.Token})
		require.NoError(t, err)
		second, err := env.orch.Start(ctx, models.StartInterviewRequest{InterviewID: outcome.Interview.ID, LinkToken: outcome.Token})
		require.NoError(t, err)

		assert.Equal(t, first.SessionID, second.SessionID)
		require.Len(t, second.Questions, 5)
		assert.Equal(t, first.Questions[0].ID, second.Questions[0].ID)
		assert.Equal(t, before+1, env.gateway.CallCount("generate_questions"))
		assert.Equal(t, 2, env.monitor.attachCount(outcome.Session.ID))
	})

	t.Run("quota exhaustion degrades to the bank plan", func(t *testing.T) {
		outcome := env.book(t)
		env.clockInside(t, outcome)

		env.gateway.SetQuotaExhausted(true)
		defer env.gateway.SetQuotaExhausted(false)

		resp, err := env.orch.Start(ctx, models.StartInterviewRequest{InterviewID: outcome.Interview.ID, LinkToken: outcome.Token})
		require.NoError(t, err)

		assert.True(t, resp.QuestionsDegraded)
		assert.True(t, resp.Questions[1].Fallback)
		// Deterministic content never carries the fallback mark.
		assert.False(t, resp.Questions[0].Fallback)
		assert.False(t, resp.Questions[4].Fallback)
	})

	t.Run("rejects a start before the window opens", func(t *testing.T) {
		outcome := env.book(t)
		env.clockAt(outcome.Interview.StartedAt.Add(-16 * time.Minute))

		_, err := env.orch.Start(ctx, models.StartInterviewRequest{InterviewID: outcome.Interview.ID, LinkToken: outcome.Token})
		assert.True(t, services.IsStateError(err, services.CodeLinkNotYetActive))
	})

	t.Run("rejects a start after the link expires", func(t *testing.T) {
		outcome := env.book(t)
		env.clockAt(outcome.ExpiresAt.Add(time.Minute))

		_, err := env.orch.Start(ctx, models.StartInterviewRequest{InterviewID: outcome.Interview.ID, LinkToken: outcome.Token})
		assert.True(t, services.IsStateError(err, services.CodeLinkExpired))
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		_, err := env.orch.Start(ctx, models.StartInterviewRequest{LinkToken: "!!!not-a-token!!!"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("rejects a token for a different interview", func(t *testing.T) {
		outcome := env.book(t)
		other := env.book(t)
		env.clockInside(t, outcome)

		_, err := env.orch.Start(ctx, models.StartInterviewRequest{
			InterviewID: other.Interview.ID,
			LinkToken:   outcome.Token,
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("terminal session refuses to restart", func(t *testing.T) {
		outcome, started := env.start(t)

		require.NoError(t, env.sessions.CompleteSession(ctx, started.SessionID))

		_, err := env.orch.Start(ctx, models.StartInterviewRequest{InterviewID: outcome.Interview.ID, LinkToken: outcome.Token})
		assert.True(t, services.IsStateError(err, services.CodeSessionTerminal))
	})
}

func TestOrchestrator_SubmitResponse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	outcome, started := env.start(t)

	submit := func(questionID string, payload models.ResponsePayload) (*models.SubmitResponseResult, error) {
		return env.orch.SubmitResponse(ctx, models.SubmitResponseRequest{
			SessionID:  started.SessionID,
			LinkToken:  outcome.Token,
			QuestionID: questionID,
			Payload:    payload,
		})
	}

	audioPayload := models.ResponsePayload{
		Kind:            models.PayloadAudio,
		AudioB64:        base64.StdEncoding.EncodeToString([]byte("pcm-bytes")),
		MimeType:        "audio/webm",
		DurationSeconds: 12.5,
	}

	t.Run("submission before identity verification is rejected", func(t *testing.T) {
		_, err := submit(started.Questions[0].ID, models.ResponsePayload{
			Kind: "TEXT",
			Text: "I enjoy building backend systems.",
		})
		assert.True(t, services.IsStateError(err, services.CodeNotVerified))

		stored, err := env.responses.GetByQuestion(ctx, started.Questions[0].ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, stored)
	})

	env.verify(t, outcome, started.SessionID)

	t.Run("empty text answer is rejected", func(t *testing.T) {
		_, err := submit(started.Questions[0].ID, models.ResponsePayload{Kind: "TEXT", Text: "   "})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown payload kind is rejected", func(t *testing.T) {
		_, err := submit(started.Questions[0].ID, models.ResponsePayload{Kind: "VIDEO"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("text answer advances to the next question", func(t *testing.T) {
		res, err := submit(started.Questions[0].ID, models.ResponsePayload{
			Kind: models.PayloadText,
			Text: "I enjoy building backend systems.",
		})
		require.NoError(t, err)

		assert.Equal(t, started.Questions[1].ID, res.NextQuestionID)
		assert.Nil(t, res.FollowUp)
		assert.Nil(t, res.CodeResult)
		assert.Equal(t, 1, res.Current)
		assert.Equal(t, 5, res.Total)
		assert.Empty(t, res.Degraded)
	})

	t.Run("second answer to the same question is rejected", func(t *testing.T) {
		_, err := submit(started.Questions[0].ID, models.ResponsePayload{Kind: "TEXT", Text: "again"})
		assert.True(t, services.IsStateError(err, services.CodeAlreadyAnswered))
	})

	t.Run("audio answer is stored and transcribed", func(t *testing.T) {
		res, err := submit(started.Questions[1].ID, audioPayload)
		require.NoError(t, err)
		assert.Equal(t, started.Questions[2].ID, res.NextQuestionID)
		assert.Empty(t, res.Degraded)

		stored, err := env.responses.GetByQuestion(ctx, started.Questions[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "This is a transcribed answer.", stored.Content)
		assert.Equal(t, 12.5, stored.DurationSeconds)
		require.NotNil(t, stored.AudioPath)
		assert.True(t, env.store.Exists(*stored.AudioPath))
	})

	t.Run("degraded transcription leaves the question answerable", func(t *testing.T) {
		env.gateway.FailTranscription = true
		res, err := submit(started.Questions[2].ID, audioPayload)
		require.NoError(t, err)
		assert.Equal(t, []string{ai.CapabilityTranscription}, res.Degraded)

		stored, err := env.responses.GetByQuestion(ctx, started.Questions[2].ID)
		require.NoError(t, err)
		assert.Empty(t, stored.Content)

		env.gateway.FailTranscription = false
		res, err = submit(started.Questions[2].ID, audioPayload)
		require.NoError(t, err)
		assert.Empty(t, res.Degraded)

		stored, err = env.responses.GetByQuestion(ctx, started.Questions[2].ID)
		require.NoError(t, err)
		assert.Equal(t, "This is a transcribed answer.", stored.Content)
	})

	t.Run("code submission judges and records the run", func(t *testing.T) {
		res, err := submit(started.Questions[4].ID, models.ResponsePayload{
			Kind:       models.PayloadCode,
			SourceCode: "def solve(s):\n    return s[::-1]",
			Language:   "PYTHON",
		})
		require.NoError(t, err)

		require.NotNil(t, res.CodeResult)
		assert.True(t, res.CodeResult.PassedAllTests)
		assert.NotEmpty(t, res.CodeResult.SubmissionID)
		assert.Empty(t, res.NextQuestionID)
		assert.Equal(t, 5, res.Current)
		// An earlier question is still open, so the session stays put.
		assert.False(t, res.Completed)

		// Resubmission is allowed; each run is recorded and the response
		// tracks the latest source.
		res2, err := submit(started.Questions[4].ID, models.ResponsePayload{
			Kind:       "CODE",
			SourceCode: "def solve(s):\n    return ''.join(reversed(s))",
			Language:   "PYTHON",
		})
		require.NoError(t, err)
		require.NotNil(t, res2.CodeResult)

		subs, err := env.submissions.ListBySession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Len(t, subs, 2)

		stored, err := env.responses.GetByQuestion(ctx, started.Questions[4].ID)
		require.NoError(t, err)
		assert.Contains(t, stored.Content, "reversed")

		sess, err := env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.StatusActive, sess.Status)
	})

	t.Run("sandbox failure maps to a tagged error", func(t *testing.T) {
		env.runner.setErr(coderunner.ErrSandboxUnavailable)
		defer env.runner.setErr(nil)

		_, err := submit(started.Questions[4].ID, models.ResponsePayload{
			Kind:       "CODE",
			SourceCode: "def solve(s):\n    return s",
			Language:   "PYTHON",
		})
		assert.True(t, services.IsStateError(err, services.CodeSandboxUnavailable))
	})

	t.Run("code payload on a non-coding question is rejected", func(t *testing.T) {
		_, err := submit(started.Questions[0].ID, models.ResponsePayload{
			Kind:       "CODE",
			SourceCode: "def solve(s):\n    return s",
			Language:   "PYTHON",
		})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("mismatched language is rejected", func(t *testing.T) {
		_, err := submit(started.Questions[4].ID, models.ResponsePayload{
			Kind:       "CODE",
			SourceCode: "console.log('hi')",
			Language:   "JAVASCRIPT",
		})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown question is rejected", func(t *testing.T) {
		_, err := submit(uuid.NewString(), models.ResponsePayload{Kind: "TEXT", Text: "hello"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("a lapsed link does not kill the active session", func(t *testing.T) {
		env.clockAt(outcome.ExpiresAt.Add(time.Minute))
		defer env.clockInside(t, outcome)

		_, err := env.orch.Heartbeat(ctx, models.HeartbeatRequest{SessionID: started.SessionID, LinkToken: outcome.Token})
		require.NoError(t, err)

		_, err = env.orch.Start(ctx, models.StartInterviewRequest{InterviewID: outcome.Interview.ID, LinkToken: outcome.Token})
		assert.True(t, services.IsStateError(err, services.CodeLinkExpired))
	})

	t.Run("follow-up before its parent is answered is rejected", func(t *testing.T) {
		freshOutcome, fresh := env.start(t)
		env.verify(t, freshOutcome, fresh.SessionID)

		parent, err := env.questions.GetQuestion(ctx, fresh.Questions[1].ID)
		require.NoError(t, err)
		fu, err := env.questions.AddFollowUp(ctx, parent, "Could you expand on that?", nil, true)
		require.NoError(t, err)

		_, err = env.orch.SubmitResponse(ctx, models.SubmitResponseRequest{
			SessionID:  fresh.SessionID,
			LinkToken:  freshOutcome.Token,
			QuestionID: fu.ID,
			Payload:    models.ResponsePayload{Kind: "TEXT", Text: "jumping ahead"},
		})
		assert.True(t, services.IsStateError(err, services.CodeParentUnanswered))
	})

	t.Run("submit before start is rejected", func(t *testing.T) {
		parked := env.book(t)
		env.clockInside(t, parked)

		_, err := env.orch.SubmitResponse(ctx, models.SubmitResponseRequest{
			SessionID:  parked.Session.ID,
			LinkToken:  parked.Token,
			QuestionID: uuid.NewString(),
			Payload:    models.ResponsePayload{Kind: "TEXT", Text: "hello"},
		})
		assert.True(t, services.IsStateError(err, services.CodeSessionNotActive))
	})

	t.Run("question from another session is rejected", func(t *testing.T) {
		_, foreign := env.start(t)

		_, err := submit(foreign.Questions[0].ID, models.ResponsePayload{Kind: "TEXT", Text: "hello"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	var followUpID string

	t.Run("uncertain answer earns one follow-up", func(t *testing.T) {
		res, err := submit(started.Questions[3].ID, models.ResponsePayload{
			Kind: "TEXT",
			Text: "Honestly I am not sure about this one.",
		})
		require.NoError(t, err)

		require.NotNil(t, res.FollowUp)
		assert.Equal(t, res.FollowUp.ID, res.NextQuestionID)
		assert.Equal(t, "FOLLOW_UP", res.FollowUp.Level)
		assert.Equal(t, started.Questions[3].Order, res.FollowUp.Order)
		assert.NotEmpty(t, res.FollowUp.AudioB64)
		assert.Equal(t, 6, res.Total)
		// Every main question now holds an answer, but the open follow-up
		// keeps the session from closing.
		assert.False(t, res.Completed)

		sess, err := env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.StatusActive, sess.Status)

		followUpID = res.FollowUp.ID
	})

	t.Run("the last answer completes the interview without an explicit call", func(t *testing.T) {
		require.NotEmpty(t, followUpID)

		// Answering the last open question never spawns another probe; it
		// closes the interview through the same flow as an explicit complete.
		res, err := submit(followUpID, models.ResponsePayload{
			Kind: "TEXT",
			Text: "I am not sure, but the general idea is caching.",
		})
		require.NoError(t, err)

		assert.Nil(t, res.FollowUp)
		assert.Empty(t, res.NextQuestionID)
		assert.True(t, res.Completed)
		assert.Contains(t, res.Summary, "7.8/10")

		sess, err := env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.StatusCompleted, sess.Status)
		assert.True(t, sess.IsEvaluated)
		assert.NotNil(t, sess.SessionEndedAt)
		assert.Equal(t, 1, env.monitor.detachCount(started.SessionID))

		// The explicit call afterwards replays the outcome.
		resp, err := env.orch.Complete(ctx, models.CompleteInterviewRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
		})
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Contains(t, resp.Summary, "7.8/10")
	})
}

func TestOrchestrator_Complete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	outcome, started := env.start(t)
	env.verify(t, outcome, started.SessionID)
	_, err := env.orch.SubmitResponse(ctx, models.SubmitResponseRequest{
		SessionID:  started.SessionID,
		LinkToken:  outcome.Token,
		QuestionID: started.Questions[0].ID,
		Payload:    models.ResponsePayload{Kind: "TEXT", Text: "I enjoy distributed systems."},
	})
	require.NoError(t, err)

	t.Run("completes and evaluates synchronously", func(t *testing.T) {
		resp, err := env.orch.Complete(ctx, models.CompleteInterviewRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
		})
		require.NoError(t, err)

		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Contains(t, resp.Summary, "7.8/10")
		assert.Contains(t, resp.Summary, "Recommend advancing")

		sess, err := env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.StatusCompleted, sess.Status)
		assert.True(t, sess.IsEvaluated)
		assert.NotNil(t, sess.SessionEndedAt)

		iv, err := env.client.Interview.Get(ctx, outcome.Interview.ID)
		require.NoError(t, err)
		assert.Equal(t, interview.StatusCompleted, iv.Status)

		assert.Equal(t, 1, env.monitor.detachCount(started.SessionID))
	})

	t.Run("repeat complete replays the outcome", func(t *testing.T) {
		before := env.gateway.CallCount("evaluate_overall")

		resp, err := env.orch.Complete(ctx, models.CompleteInterviewRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
		})
		require.NoError(t, err)

		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Contains(t, resp.Summary, "7.8/10")
		assert.Equal(t, before, env.gateway.CallCount("evaluate_overall"))
	})

	t.Run("evaluation failure defers to the worker", func(t *testing.T) {
		deps := env.deps
		deps.Evaluator = failingEvaluator{}
		orch := New(deps)

		second := env.book(t)
		env.clockInside(t, second)
		fresh, err := orch.Start(ctx, models.StartInterviewRequest{InterviewID: second.Interview.ID, LinkToken: second.Token})
		require.NoError(t, err)

		resp, err := orch.Complete(ctx, models.CompleteInterviewRequest{SessionID: fresh.SessionID, LinkToken: second.Token})
		require.NoError(t, err)

		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Equal(t, evaluationPendingSummary, resp.Summary)

		sess, err := env.sessions.GetSession(ctx, fresh.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.StatusCompleted, sess.Status)
		assert.False(t, sess.IsEvaluated)
	})

	t.Run("completing a never-started session is rejected", func(t *testing.T) {
		parked := env.book(t)
		env.clockInside(t, parked)

		_, err := env.orch.Complete(ctx, models.CompleteInterviewRequest{
			SessionID: parked.Session.ID,
			LinkToken: parked.Token,
		})
		assert.True(t, services.IsStateError(err, services.CodeSessionTerminal))
	})
}

func TestOrchestrator_VerifyID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	frame := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff, 0xe0, 1, 2, 3})

	t.Run("verifies identity and persists the masked details", func(t *testing.T) {
		outcome, started := env.start(t)
		env.monitor.setVerdict(&proctor.IDVerification{Verified: true, Details: "Name: D*** S***; ID: ********9012"})

		resp, err := env.orch.VerifyID(ctx, models.VerifyIDRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
			ImageB64:  frame,
		})
		require.NoError(t, err)
		assert.Equal(t, "success", resp.Status)
		assert.Empty(t, resp.Reason)

		sess, err := env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.IDVerificationStatusVerified, sess.IDVerificationStatus)
		require.NotNil(t, sess.IDDetails)
		assert.Equal(t, "Name: D*** S***; ID: ********9012", *sess.IDDetails)

		// A verified session never re-runs the check.
		calls := env.monitor.verifyCalls()
		again, err := env.orch.VerifyID(ctx, models.VerifyIDRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
			ImageB64:  frame,
		})
		require.NoError(t, err)
		assert.Equal(t, "success", again.Status)
		assert.Equal(t, calls, env.monitor.verifyCalls())
	})

	t.Run("wrong face count fails and the candidate may retry", func(t *testing.T) {
		outcome, started := env.start(t)

		env.monitor.setVerdict(&proctor.IDVerification{
			Reason:  proctor.ReasonWrongFaceCount,
			Details: "expected 2 faces, found 1",
		})
		resp, err := env.orch.VerifyID(ctx, models.VerifyIDRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
			ImageB64:  frame,
		})
		require.NoError(t, err)
		assert.Equal(t, "failed", resp.Status)
		assert.Equal(t, proctor.ReasonWrongFaceCount, resp.Reason)

		sess, err := env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.IDVerificationStatusFailed, sess.IDVerificationStatus)

		env.monitor.setVerdict(&proctor.IDVerification{Verified: true, Details: "Name: D*** S***"})
		retry, err := env.orch.VerifyID(ctx, models.VerifyIDRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
			ImageB64:  frame,
		})
		require.NoError(t, err)
		assert.Equal(t, "success", retry.Status)

		sess, err = env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.IDVerificationStatusVerified, sess.IDVerificationStatus)
	})

	t.Run("proctor outage leaves the attempt pending", func(t *testing.T) {
		deps := env.deps
		deps.Monitor = nil
		orch := New(deps)

		outcome := env.book(t)
		env.clockInside(t, outcome)
		started, err := orch.Start(ctx, models.StartInterviewRequest{InterviewID: outcome.Interview.ID, LinkToken: outcome.Token})
		require.NoError(t, err)

		resp, err := orch.VerifyID(ctx, models.VerifyIDRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
			ImageB64:  frame,
		})
		require.NoError(t, err)
		assert.Equal(t, "failed", resp.Status)
		assert.Equal(t, proctor.ReasonProctorUnavailable, resp.Reason)

		sess, err := env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entsession.IDVerificationStatusPending, sess.IDVerificationStatus)
	})

	t.Run("rejects a malformed frame", func(t *testing.T) {
		outcome, started := env.start(t)

		_, err := env.orch.VerifyID(ctx, models.VerifyIDRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
			ImageB64:  "not base64 at all %%%",
		})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestOrchestrator_Heartbeat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	outcome, started := env.start(t)

	t.Run("refreshes liveness on an active session", func(t *testing.T) {
		_, err := env.client.Session.UpdateOneID(started.SessionID).
			SetLastInteractionAt(time.Now().Add(-time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		resp, err := env.orch.Heartbeat(ctx, models.HeartbeatRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
		})
		require.NoError(t, err)
		assert.Equal(t, "ACTIVE", resp.Status)

		sess, err := env.sessions.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		require.NotNil(t, sess.LastInteractionAt)
		assert.WithinDuration(t, time.Now(), *sess.LastInteractionAt, time.Minute)
	})

	t.Run("reports a finished session", func(t *testing.T) {
		require.NoError(t, env.sessions.CompleteSession(ctx, started.SessionID))

		resp, err := env.orch.Heartbeat(ctx, models.HeartbeatRequest{
			SessionID: started.SessionID,
			LinkToken: outcome.Token,
		})
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", resp.Status)
	})

	t.Run("rejects a token for another interview", func(t *testing.T) {
		other := env.book(t)

		_, err := env.orch.Heartbeat(ctx, models.HeartbeatRequest{
			SessionID: started.SessionID,
			LinkToken: other.Token,
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestOrchestrator_Bootstrap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("exchanges the portal key for a start token", func(t *testing.T) {
		outcome := env.book(t)

		boot, err := env.orch.Bootstrap(ctx, outcome.Session.SessionKey)
		require.NoError(t, err)

		assert.Equal(t, outcome.Interview.ID, boot.InterviewID)
		assert.Equal(t, "Dana Smith", boot.CandidateName)
		assert.Equal(t, "SCHEDULED", boot.Status)
		// The token is a pure function of the interview window, so the
		// bootstrap token matches the one minted at booking.
		assert.Equal(t, outcome.Token, boot.LinkToken)

		env.clockInside(t, outcome)
		_, err = env.orch.Start(ctx, models.StartInterviewRequest{
			InterviewID: boot.InterviewID,
			LinkToken:   boot.LinkToken,
		})
		require.NoError(t, err)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		_, err := env.orch.Bootstrap(ctx, "no-such-key")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
