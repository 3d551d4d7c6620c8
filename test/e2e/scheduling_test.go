package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/services"
)

// A booked slot mints a working link: the slot's civil window projects to
// UTC on the interview, the link verifies inside the early grace, and a
// start attempt long before the window is refused without detail.
func TestBookingMintsTimeBoundLink(t *testing.T) {
	e := newEnv(t)
	b := e.bookInterview(t, 30)

	// 10:00 IST is 04:30 UTC.
	require.NotNil(t, b.Response.StartedAt)
	assert.True(t, b.Response.StartedAt.Equal(b.StartUTC),
		"started_at %s, want %s", b.Response.StartedAt, b.StartUTC)
	require.NotNil(t, b.Response.EndedAt)
	assert.True(t, b.Response.EndedAt.Equal(b.StartUTC.Add(30*time.Minute)))
	assert.Equal(t, "SCHEDULED", b.Response.InterviewStatus)
	assert.NotEmpty(t, b.Response.LinkToken)

	// 90 minutes early: outside the grace, the link is not yet active.
	e.clock.Set(b.StartUTC.Add(-90 * time.Minute))
	w := e.candidate(t, http.MethodPost, "/public/ai-interview/start", models.StartInterviewRequest{
		InterviewID: b.InterviewID,
		LinkToken:   b.Response.LinkToken,
	})
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	assert.Equal(t, "interview is not active yet", decodeMap(t, w)["error"])

	// 10 minutes early: inside the grace, the session opens.
	e.enterWindow(b)
	snap := e.startSession(t, b)
	assert.Equal(t, "ACTIVE", snap.Status)
	assert.NotEmpty(t, snap.SessionID)
	assert.NotEmpty(t, snap.Questions)

	// A second start is a reconnect, not a restart: same session, same
	// question set.
	again := e.startSession(t, b)
	assert.Equal(t, snap.SessionID, again.SessionID)
	assert.Equal(t, len(snap.Questions), len(again.Questions))
}

// Five candidates racing for a two-seat slot: exactly two bookings land,
// the rest get SLOT_FULL, and the slot reports FULL afterwards.
func TestConcurrentBookingRespectsCapacity(t *testing.T) {
	e := newEnv(t)

	jobID := e.createJob(t)
	date := e.civilDate(21)
	slotID := e.createSlot(t, jobID, date, "14:00", "14:30", 2)

	const contenders = 5
	interviewIDs := make([]string, contenders)
	for i := range interviewIDs {
		candidateID := e.createCandidate(t, fmt.Sprintf("racer%d@example.com", i))
		interviewIDs[i] = e.createInterview(t, candidateID, jobID)
	}

	codes := make([]int, contenders)
	bodies := make([]map[string]any, contenders)
	var wg sync.WaitGroup
	for i, interviewID := range interviewIDs {
		wg.Add(1)
		go func(i int, interviewID string) {
			defer wg.Done()
			w := e.recruiter(t, http.MethodPost, "/api/v1/interviews/"+interviewID+"/book",
				models.BookInterviewRequest{SlotID: slotID})
			codes[i] = w.Code
			body := map[string]any{}
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			bodies[i] = body
		}(i, interviewID)
	}
	wg.Wait()

	var booked, refused int
	for i, code := range codes {
		switch code {
		case http.StatusCreated:
			booked++
		case http.StatusConflict:
			refused++
			assert.Equal(t, services.CodeSlotFull, bodies[i]["code"])
		default:
			t.Fatalf("unexpected status %d: %v", code, bodies[i])
		}
	}
	assert.Equal(t, 2, booked)
	assert.Equal(t, 3, refused)

	w := e.recruiter(t, http.MethodGet, "/api/v1/slots?job_id="+jobID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list models.SlotListResponse
	decodeInto(t, w, &list)
	require.Len(t, list.Slots, 1)
	assert.Equal(t, 2, list.Slots[0].CurrentBookings)
	assert.Equal(t, "FULL", list.Slots[0].Status)
}

// Rescheduling silently invalidates every previously issued link: the old
// token fails with the same opaque message as any bad token, and only the
// fresh token opens the session.
func TestRescheduleInvalidatesOldLink(t *testing.T) {
	e := newEnv(t)
	b := e.bookInterview(t, 14)
	oldToken := b.Response.LinkToken

	newDate := e.civilDate(15)
	newSlotID := e.createSlot(t, b.JobID, newDate, "16:00", "16:30", 1)

	w := e.recruiter(t, http.MethodPost, "/api/v1/interviews/"+b.InterviewID+"/reschedule",
		models.RescheduleInterviewRequest{NewSlotID: newSlotID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var moved models.BookingResponse
	decodeInto(t, w, &moved)
	require.NotEmpty(t, moved.LinkToken)
	assert.NotEqual(t, oldToken, moved.LinkToken)
	assert.Equal(t, newSlotID, moved.SlotID)

	newStart, err := time.ParseInLocation("2006-01-02 15:04", newDate+" 16:00", e.zone)
	require.NoError(t, err)
	e.clock.Set(newStart.UTC().Add(-5 * time.Minute))

	// The stale token is indistinguishable from a forged one.
	w = e.candidate(t, http.MethodPost, "/public/ai-interview/start", models.StartInterviewRequest{
		InterviewID: b.InterviewID,
		LinkToken:   oldToken,
	})
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	assert.Equal(t, "invalid or expired link", decodeMap(t, w)["error"])

	w = e.candidate(t, http.MethodPost, "/public/ai-interview/start", models.StartInterviewRequest{
		InterviewID: b.InterviewID,
		LinkToken:   moved.LinkToken,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
