package e2e

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/proctor"
	"github.com/hireloop/hireloop/pkg/services"
)

const pythonReverse = "def solve(s):\n    return s[::-1]\n"

// submit posts one answer and decodes the step result.
func (e *env) submit(t *testing.T, b booking, sessionID, questionID string, payload models.ResponsePayload) models.SubmitResponseResult {
	t.Helper()
	w := e.candidate(t, http.MethodPost, "/public/ai-interview/submit-response", models.SubmitResponseRequest{
		SessionID:  sessionID,
		LinkToken:  b.Response.LinkToken,
		QuestionID: questionID,
		Payload:    payload,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res models.SubmitResponseResult
	decodeInto(t, w, &res)
	return res
}

// verifyID passes the identity check through the scripted monitor.
func (e *env) verifyID(t *testing.T, b booking, sessionID string) {
	t.Helper()
	w := e.candidate(t, http.MethodPost, "/public/ai-interview/verify-id", models.VerifyIDRequest{
		SessionID: sessionID,
		LinkToken: b.Response.LinkToken,
		ImageB64:  base64.StdEncoding.EncodeToString([]byte("frame-bytes")),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "success", decodeMap(t, w)["status"])
}

// The whole candidate journey: start, answer every question (one uncertain
// answer draws a follow-up, the coding question is judged), complete, and
// the recruiter reads the persisted result.
func TestFullInterviewFlow(t *testing.T) {
	e := newEnv(t)
	b := e.bookInterview(t, 30)
	e.enterWindow(b)

	snap := e.startSession(t, b)
	require.Equal(t, "ACTIVE", snap.Status)
	require.Len(t, snap.Questions, snap.Total)
	assert.Equal(t, "ICE_BREAKER", snap.Questions[0].Type)
	assert.Equal(t, 0, snap.Current)

	// No answer is accepted until identity is verified.
	w := e.candidate(t, http.MethodPost, "/public/ai-interview/submit-response", models.SubmitResponseRequest{
		SessionID:  snap.SessionID,
		LinkToken:  b.Response.LinkToken,
		QuestionID: snap.Questions[0].ID,
		Payload:    models.ResponsePayload{Kind: models.PayloadText, Text: "eager to begin"},
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	assert.Equal(t, services.CodeNotVerified, decodeMap(t, w)["code"])

	e.verifyID(t, b, snap.SessionID)

	byID := make(map[string]models.QuestionView, len(snap.Questions))
	for _, q := range snap.Questions {
		byID[q.ID] = q
	}

	first := snap.Questions[0]
	opening := e.submit(t, b, snap.SessionID, first.ID, models.ResponsePayload{
		Kind: models.PayloadText,
		Text: "I got into software through the robotics club in college.",
	})

	// Spoken answers are write-once.
	w = e.candidate(t, http.MethodPost, "/public/ai-interview/submit-response", models.SubmitResponseRequest{
		SessionID:  snap.SessionID,
		LinkToken:  b.Response.LinkToken,
		QuestionID: first.ID,
		Payload:    models.ResponsePayload{Kind: models.PayloadText, Text: "second thoughts"},
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	assert.Equal(t, services.CodeAlreadyAnswered, decodeMap(t, w)["code"])

	var (
		next          = opening.NextQuestionID
		last          models.SubmitResponseResult
		usedUncertain bool
		sawFollowUp   bool
		codeJudged    bool
	)
	for steps := 0; next != ""; steps++ {
		require.Less(t, steps, 2*snap.Total, "question walk did not terminate")
		q, ok := byID[next]
		require.True(t, ok, "unknown next question %s", next)

		var payload models.ResponsePayload
		switch {
		case q.Type == "CODING":
			assert.Equal(t, "PYTHON", q.CodingLanguage)
			payload = models.ResponsePayload{
				Kind:       models.PayloadCode,
				SourceCode: pythonReverse,
				Language:   "PYTHON",
			}
		case q.Type == "TECHNICAL" && q.Level == "MAIN" && !usedUncertain:
			usedUncertain = true
			payload = models.ResponsePayload{
				Kind: models.PayloadText,
				Text: "I am not sure about the details, honestly.",
			}
		default:
			payload = models.ResponsePayload{
				Kind: models.PayloadText,
				Text: "I would profile first and only then change the data layout.",
			}
		}

		res := e.submit(t, b, snap.SessionID, q.ID, payload)

		if res.FollowUp != nil {
			sawFollowUp = true
			assert.Equal(t, "FOLLOW_UP", res.FollowUp.Level)
			assert.Equal(t, e.gateway.FollowUpText, res.FollowUp.Text)
			assert.Equal(t, res.FollowUp.ID, res.NextQuestionID)
			byID[res.FollowUp.ID] = *res.FollowUp
		}
		if q.Type == "CODING" {
			require.NotNil(t, res.CodeResult)
			assert.True(t, res.CodeResult.PassedAllTests)
			assert.NotEmpty(t, res.CodeResult.SubmissionID)
			codeJudged = true
		}
		last = res
		next = res.NextQuestionID
	}
	assert.True(t, sawFollowUp, "uncertain answer should have drawn a follow-up")
	assert.True(t, codeJudged)

	// The final answer exhausted the plan, so the interview closed itself.
	assert.True(t, last.Completed)
	assert.Contains(t, last.Summary, "Overall score 7.8/10")

	// An explicit complete afterwards replays the outcome.
	w = e.candidate(t, http.MethodPost, "/public/ai-interview/complete", models.CompleteInterviewRequest{
		SessionID: snap.SessionID,
		LinkToken: b.Response.LinkToken,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var done models.CompleteInterviewResponse
	decodeInto(t, w, &done)
	assert.Equal(t, "COMPLETED", done.Status)
	assert.Contains(t, done.Summary, "Overall score 7.8/10")
	assert.Contains(t, done.Summary, e.gateway.Recommendation)

	// Heartbeats against a finished session report the terminal status.
	w = e.candidate(t, http.MethodPost, "/public/ai-interview/heartbeat", models.HeartbeatRequest{
		SessionID: snap.SessionID,
		LinkToken: b.Response.LinkToken,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "COMPLETED", decodeMap(t, w)["status"])

	// Recruiter side: the result is persisted and the interview closed.
	w = e.recruiter(t, http.MethodGet, "/api/v1/sessions/"+snap.SessionID+"/result", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result models.ResultView
	decodeInto(t, w, &result)
	assert.InDelta(t, 8.0, result.ResumeScore, 0.001)
	assert.InDelta(t, 7.5, result.AnswersScore, 0.001)
	assert.InDelta(t, 7.8, result.OverallScore, 0.001)
	assert.False(t, result.IsFallback)
	require.NotNil(t, result.HireRecommendation)
	assert.True(t, *result.HireRecommendation)
	assert.Positive(t, result.ConfidenceLevel)

	w = e.recruiter(t, http.MethodGet, "/api/v1/interviews/"+b.InterviewID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail models.InterviewDetail
	decodeInto(t, w, &detail)
	assert.Equal(t, "COMPLETED", detail.Status)
	require.NotNil(t, detail.Session)
	assert.True(t, detail.Session.IsEvaluated)
}

// Quota exhaustion mid-session: the candidate still finishes, the
// evaluation lands as neutral fallback scores with zero confidence, and
// the operator reset clears the flag.
func TestQuotaExhaustionFallsBackToNeutralScores(t *testing.T) {
	e := newEnv(t)
	b := e.bookInterview(t, 10)
	e.enterWindow(b)

	snap := e.startSession(t, b)
	e.verifyID(t, b, snap.SessionID)
	e.submit(t, b, snap.SessionID, snap.Questions[0].ID, models.ResponsePayload{
		Kind: models.PayloadText,
		Text: "I started with embedded systems and moved to backend work.",
	})

	e.gateway.SetQuotaExhausted(true)

	w := e.candidate(t, http.MethodPost, "/public/ai-interview/complete", models.CompleteInterviewRequest{
		SessionID: snap.SessionID,
		LinkToken: b.Response.LinkToken,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var done models.CompleteInterviewResponse
	decodeInto(t, w, &done)
	assert.Equal(t, "COMPLETED", done.Status)
	assert.Contains(t, done.Summary, "Overall score 7.0/10")

	w = e.recruiter(t, http.MethodGet, "/api/v1/sessions/"+snap.SessionID+"/result", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result models.ResultView
	decodeInto(t, w, &result)
	assert.InDelta(t, 7.0, result.ResumeScore, 0.001)
	assert.InDelta(t, 7.0, result.AnswersScore, 0.001)
	assert.InDelta(t, 7.0, result.OverallScore, 0.001)
	assert.Zero(t, result.ConfidenceLevel)
	assert.True(t, result.IsFallback)

	w = e.recruiter(t, http.MethodPost, "/api/v1/system/ai/quota/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, true, body["reset"])
	assert.Equal(t, false, body["quota_exhausted"])
	assert.False(t, e.gateway.QuotaExhausted())
}

// Identity verification is retryable: a wrong-face-count frame is rejected
// with its reason, a later good frame verifies, and the verified state
// sticks in the session snapshot.
func TestIDVerificationRetries(t *testing.T) {
	e := newEnv(t)
	e.monitor.setOutcome(&proctor.IDVerification{Reason: proctor.ReasonWrongFaceCount})

	b := e.bookInterview(t, 7)
	e.enterWindow(b)
	snap := e.startSession(t, b)
	require.False(t, snap.IDVerified)

	// The gate holds while verification is pending.
	w := e.candidate(t, http.MethodPost, "/public/ai-interview/submit-response", models.SubmitResponseRequest{
		SessionID:  snap.SessionID,
		LinkToken:  b.Response.LinkToken,
		QuestionID: snap.Questions[0].ID,
		Payload:    models.ResponsePayload{Kind: models.PayloadText, Text: "let me in"},
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	assert.Equal(t, services.CodeNotVerified, decodeMap(t, w)["code"])

	frame := base64.StdEncoding.EncodeToString([]byte("not-actually-a-jpeg"))
	verifyReq := models.VerifyIDRequest{
		SessionID: snap.SessionID,
		LinkToken: b.Response.LinkToken,
		ImageB64:  frame,
	}

	w = e.candidate(t, http.MethodPost, "/public/ai-interview/verify-id", verifyReq)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	body := decodeMap(t, w)
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, proctor.ReasonWrongFaceCount, body["reason"])

	// The failure is recorded but not terminal; a good frame still passes.
	e.monitor.setOutcome(&proctor.IDVerification{Verified: true, Details: "name=P**** S*****"})
	w = e.candidate(t, http.MethodPost, "/public/ai-interview/verify-id", verifyReq)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "success", decodeMap(t, w)["status"])

	again := e.startSession(t, b)
	assert.True(t, again.IDVerified)

	// The gate opens once verification succeeds.
	e.submit(t, b, snap.SessionID, snap.Questions[0].ID, models.ResponsePayload{
		Kind: models.PayloadText,
		Text: "I moved from QA into platform engineering.",
	})

	// Verified is sticky: repeats succeed without another check.
	w = e.candidate(t, http.MethodPost, "/public/ai-interview/verify-id", verifyReq)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
