// Package e2e drives the full HTTP surface — recruiter API and candidate
// endpoints — against a real PostgreSQL schema with a scripted AI gateway.
// Each test gets its own schema; the only fakes are the AI service, the
// code sandbox, and the proctor monitor.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/ai/mock"
	"github.com/hireloop/hireloop/pkg/api"
	"github.com/hireloop/hireloop/pkg/coderunner"
	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/database"
	"github.com/hireloop/hireloop/pkg/evaluation"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/proctor"
	"github.com/hireloop/hireloop/pkg/services"
	"github.com/hireloop/hireloop/pkg/session"
	"github.com/hireloop/hireloop/pkg/storage"
	"github.com/hireloop/hireloop/pkg/token"
	testdb "github.com/hireloop/hireloop/test/database"
)

const (
	testAPIToken   = "e2e-recruiter-token"
	testLinkSecret = "e2e-link-secret"
)

// fakeClock controls the link-verification clock. The zero value delegates
// to the real clock until Set pins it.
type fakeClock struct {
	mu sync.Mutex
	at time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.at.IsZero() {
		return time.Now()
	}
	return c.at
}

func (c *fakeClock) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = at
}

// stubRunner judges code without a sandbox. Deterministic: passes unless
// told to fail.
type stubRunner struct {
	mu   sync.Mutex
	fail bool
}

func (r *stubRunner) Run(_ context.Context, language, source string, tests []coderunner.TestCase) (*coderunner.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return &coderunner.Result{PassedAll: false, Log: "test 1 failed: wrong output"}, nil
	}
	return &coderunner.Result{
		PassedAll: true,
		Log:       fmt.Sprintf("%d/%d tests passed", len(tests), len(tests)),
	}, nil
}

// stubMonitor is a scripted session.Monitor: VerifyID replays whatever
// outcome the test installed.
type stubMonitor struct {
	mu       sync.Mutex
	outcome  *proctor.IDVerification
	attached map[string]bool
}

func newStubMonitor() *stubMonitor {
	return &stubMonitor{
		outcome:  &proctor.IDVerification{Verified: true, Details: "name=P**** S*****"},
		attached: make(map[string]bool),
	}
}

func (m *stubMonitor) setOutcome(v *proctor.IDVerification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcome = v
}

func (m *stubMonitor) Attach(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attached[sessionID] = true
}

func (m *stubMonitor) Detach(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attached, sessionID)
}

func (m *stubMonitor) VerifyID(_ context.Context, sessionID, candidateName string, frameJPEG []byte) *proctor.IDVerification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcome
}

// env is one fully wired application instance backed by a fresh schema.
type env struct {
	client  *database.Client
	handler http.Handler
	gateway *mock.Gateway
	clock   *fakeClock
	runner  *stubRunner
	monitor *stubMonitor
	zone    *time.Location
}

func newEnv(t *testing.T) *env {
	t.Helper()

	client := testdb.NewTestClient(t)

	zone, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	bank, err := config.LoadQuestionBank("")
	require.NoError(t, err)

	cfg := &config.Config{
		Server: &config.ServerConfig{
			Port:        0,
			Environment: "test",
			APIToken:    testAPIToken,
			LogLevel:    "error",
		},
		Link:         config.DefaultLinkConfig(),
		Schedule:     config.DefaultScheduleConfig(),
		Session:      config.DefaultSessionConfig(),
		QuestionBank: bank,
	}
	cfg.Link.Secret = testLinkSecret

	clock := &fakeClock{}
	links := services.NewLinkService(client.Client, token.NewCodec(cfg.Link.Secret),
		cfg.Link.EarlyGrace, cfg.Link.LateGrace).WithNow(clock.Now)

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	jobService := services.NewJobService(client.Client)
	candidateService := services.NewCandidateService(client.Client)
	slotService := services.NewSlotService(client.Client, zone)
	interviewService := services.NewInterviewService(client.Client, links, zone, nil, "http://localhost:5173", true)
	sessionService := services.NewSessionService(client.Client)
	questionService := services.NewQuestionService(client.Client)
	responseService := services.NewResponseService(client.Client)
	submissionService := services.NewCodeSubmissionService(client.Client)
	resultService := services.NewResultService(client.Client)

	gateway := mock.New(bank)
	runner := &stubRunner{}
	monitor := newStubMonitor()
	engine := evaluation.NewEngine(client.Client, gateway, "mock-chat")

	orchestrator := session.New(session.Deps{
		Sessions:    sessionService,
		Questions:   questionService,
		Responses:   responseService,
		Submissions: submissionService,
		Interviews:  interviewService,
		Jobs:        jobService,
		Results:     resultService,
		Links:       links,
		Gateway:     gateway,
		Monitor:     monitor,
		Runner:      runner,
		Evaluator:   engine,
		Store:       store,
		Config:      cfg.Session,
	})

	server := api.NewServer(api.Deps{
		Config:       cfg,
		DB:           client,
		Jobs:         jobService,
		Candidates:   candidateService,
		Slots:        slotService,
		Interviews:   interviewService,
		Sessions:     sessionService,
		Results:      resultService,
		Orchestrator: orchestrator,
		Gateway:      gateway,
		Warnings:     services.NewSystemWarningsService(),
		Store:        store,
	})

	return &env{
		client:  client,
		handler: server.Engine(),
		gateway: gateway,
		clock:   clock,
		runner:  runner,
		monitor: monitor,
		zone:    zone,
	}
}

// request runs one HTTP call through the router.
func (e *env) request(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

// recruiter calls the authenticated /api/v1 surface.
func (e *env) recruiter(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return e.request(t, method, path, testAPIToken, body)
}

// candidate calls the public surface.
func (e *env) candidate(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return e.request(t, method, path, "", body)
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out),
		"body: %s", w.Body.String())
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	decodeInto(t, w, &out)
	return out
}

// booking is everything the scenarios need after a slot is booked.
type booking struct {
	JobID       string
	CandidateID string
	InterviewID string
	SlotID      string
	Response    models.BookingResponse

	// StartUTC is the scheduled start projected from the slot's civil
	// window in the interview timezone.
	StartUTC time.Time
}

// civilDate returns a date n days out, formatted in the interview timezone.
func (e *env) civilDate(daysOut int) string {
	return time.Now().In(e.zone).AddDate(0, 0, daysOut).Format("2006-01-02")
}

func (e *env) createJob(t *testing.T) string {
	t.Helper()
	w := e.recruiter(t, http.MethodPost, "/api/v1/jobs", models.CreateJobRequest{
		Title:          "Backend Engineer",
		CompanyName:    "Acme Systems",
		Description:    "Design and operate the ingestion services.",
		TechStack:      []string{"go", "postgres"},
		CodingLanguage: "PYTHON",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeMap(t, w)["job_id"].(string)
}

func (e *env) createCandidate(t *testing.T, email string) string {
	t.Helper()
	w := e.recruiter(t, http.MethodPost, "/api/v1/candidates", models.CreateCandidateRequest{
		FullName:   "Priya Sharma",
		Email:      email,
		ResumeText: "Five years building data pipelines.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeMap(t, w)["candidate_id"].(string)
}

func (e *env) createSlot(t *testing.T, jobID, date, startClock, endClock string, capacity int) string {
	t.Helper()
	w := e.recruiter(t, http.MethodPost, "/api/v1/slots", models.CreateSlotRequest{
		JobID:     jobID,
		Date:      date,
		StartTime: startClock,
		EndTime:   endClock,
		Capacity:  capacity,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Slots []models.SlotView `json:"slots"`
	}
	decodeInto(t, w, &resp)
	require.Len(t, resp.Slots, 1)
	return resp.Slots[0].ID
}

func (e *env) createInterview(t *testing.T, candidateID, jobID string) string {
	t.Helper()
	w := e.recruiter(t, http.MethodPost, "/api/v1/interviews", models.CreateInterviewRequest{
		CandidateID: candidateID,
		JobID:       jobID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeMap(t, w)["interview_id"].(string)
}

// bookInterview walks the full recruiter flow: job, candidate, slot,
// interview, book. The slot runs 10:00-10:30 civil time daysOut days ahead.
func (e *env) bookInterview(t *testing.T, daysOut int) booking {
	t.Helper()

	jobID := e.createJob(t)
	candidateID := e.createCandidate(t, fmt.Sprintf("priya+%d@example.com", time.Now().UnixNano()))
	date := e.civilDate(daysOut)
	slotID := e.createSlot(t, jobID, date, "10:00", "10:30", 1)
	interviewID := e.createInterview(t, candidateID, jobID)

	w := e.recruiter(t, http.MethodPost, "/api/v1/interviews/"+interviewID+"/book",
		models.BookInterviewRequest{SlotID: slotID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.BookingResponse
	decodeInto(t, w, &resp)

	civil, err := time.ParseInLocation("2006-01-02 15:04", date+" 10:00", e.zone)
	require.NoError(t, err)

	return booking{
		JobID:       jobID,
		CandidateID: candidateID,
		InterviewID: interviewID,
		SlotID:      slotID,
		Response:    resp,
		StartUTC:    civil.UTC(),
	}
}

// enterWindow pins the link clock to ten minutes before the scheduled
// start, inside the early grace.
func (e *env) enterWindow(b booking) {
	e.clock.Set(b.StartUTC.Add(-10 * time.Minute))
}

// startSession opens the candidate session and returns the snapshot.
func (e *env) startSession(t *testing.T, b booking) models.StartInterviewResponse {
	t.Helper()
	w := e.candidate(t, http.MethodPost, "/public/ai-interview/start", models.StartInterviewRequest{
		InterviewID: b.InterviewID,
		LinkToken:   b.Response.LinkToken,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var snap models.StartInterviewResponse
	decodeInto(t, w, &snap)
	return snap
}
