package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/database"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/token"
)

// testZone returns the civil timezone the scheduling tests run in.
func testZone(t *testing.T) *time.Location {
	t.Helper()
	zone, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return zone
}

func newTestLinkService(client *ent.Client) *LinkService {
	return NewLinkService(client, token.NewCodec("test-link-secret"), 15*time.Minute, 2*time.Hour)
}

// newTestInterviewService builds an InterviewService with invites disabled.
func newTestInterviewService(t *testing.T, client *database.Client) *InterviewService {
	t.Helper()
	return NewInterviewService(client.Client, newTestLinkService(client.Client), testZone(t), nil, "http://localhost:5173", false)
}

// futureDate returns a civil date n days out in the interview timezone.
func futureDate(t *testing.T, days int) string {
	t.Helper()
	return time.Now().In(testZone(t)).AddDate(0, 0, days).Format("2006-01-02")
}

func createTestJob(t *testing.T, client *database.Client) *ent.Job {
	t.Helper()
	j, err := NewJobService(client.Client).CreateJob(context.Background(), models.CreateJobRequest{
		Title:          "Backend Engineer",
		CompanyName:    "Acme Systems",
		Description:    "Design and operate the ingestion services.",
		TechStack:      []string{"go", "postgres"},
		CodingLanguage: "PYTHON",
	})
	require.NoError(t, err)
	return j
}

func createTestCandidate(t *testing.T, client *database.Client) *ent.Candidate {
	t.Helper()
	c, err := NewCandidateService(client.Client).CreateCandidate(context.Background(), models.CreateCandidateRequest{
		FullName:   "Dana Smith",
		Email:      uuid.NewString() + "@example.com",
		ResumeText: "Five years building data pipelines.",
	})
	require.NoError(t, err)
	return c
}

func createTestInterview(t *testing.T, client *database.Client) (*ent.Interview, *ent.Candidate, *ent.Job) {
	t.Helper()
	j := createTestJob(t, client)
	c := createTestCandidate(t, client)
	iv, err := client.Interview.Create().
		SetID(uuid.NewString()).
		SetCandidateID(c.ID).
		SetJobID(j.ID).
		SetStatus(interview.StatusPendingScheduling).
		Save(context.Background())
	require.NoError(t, err)
	return iv, c, j
}

func createTestSlot(t *testing.T, client *database.Client, jobID string, capacity int) *ent.Slot {
	t.Helper()
	slots, err := NewSlotService(client.Client, testZone(t)).CreateSlot(context.Background(), models.CreateSlotRequest{
		JobID:     jobID,
		Date:      futureDate(t, 7),
		StartTime: "10:00",
		EndTime:   "10:45",
		Capacity:  capacity,
	})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	return slots[0]
}

// createTestSession seeds a session directly, bypassing booking, for tests
// that only exercise the session state machine.
func createTestSession(t *testing.T, client *database.Client, status session.Status) *ent.Session {
	t.Helper()
	iv, c, j := createTestInterview(t, client)
	sess, err := client.Session.Create().
		SetID(uuid.NewString()).
		SetSessionKey(uuid.NewString()).
		SetInterviewID(iv.ID).
		SetCandidateName(c.FullName).
		SetCandidateEmail(c.Email).
		SetJobDescription(j.Description).
		SetResumeText("Five years building data pipelines.").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

func createTestQuestion(t *testing.T, client *database.Client, sessionID string, order int, qType question.Type) *ent.Question {
	t.Helper()
	q, err := client.Question.Create().
		SetID(uuid.NewString()).
		SetSessionID(sessionID).
		SetOrder(order).
		SetType(qType).
		SetLevel(question.LevelMain).
		SetText("Question text for order " + uuid.NewString()).
		Save(context.Background())
	require.NoError(t, err)
	return q
}
