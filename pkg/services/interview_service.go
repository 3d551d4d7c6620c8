package services

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/ent/slot"
	"github.com/hireloop/hireloop/ent/warninglog"
	"github.com/hireloop/hireloop/pkg/civil"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/notify"
)

// Booking-specific conflict codes.
const (
	CodeSlotCancelled        = "SLOT_CANCELLED"
	CodeInterviewNotBookable = "INTERVIEW_NOT_BOOKABLE"
)

// BookingOutcome is everything book/reschedule produced: the rows, the
// fresh link token, and the email result.
type BookingOutcome struct {
	Interview   *ent.Interview
	Schedule    *ent.Schedule
	Session     *ent.Session
	Token       string
	ExpiresAt   time.Time
	InviteURL   string
	EmailFailed bool
}

// InterviewService manages interviews and their slot bindings. Booking is
// the only path that sets interview times; the slot's civil window is
// projected to UTC exactly here.
type InterviewService struct {
	client   *ent.Client
	links    *LinkService
	zone     *time.Location
	notifier *notify.Service
	baseURL  string
	devMode  bool
}

// NewInterviewService creates a new InterviewService.
// notifier may be nil (invites disabled).
func NewInterviewService(client *ent.Client, links *LinkService, zone *time.Location, notifier *notify.Service, baseURL string, devMode bool) *InterviewService {
	if links == nil {
		panic("NewInterviewService: links must not be nil")
	}
	if zone == nil {
		panic("NewInterviewService: zone must not be nil")
	}
	return &InterviewService{
		client:   client,
		links:    links,
		zone:     zone,
		notifier: notifier,
		baseURL:  baseURL,
		devMode:  devMode,
	}
}

// CreateInterview creates an interview in PENDING_SCHEDULING.
func (s *InterviewService) CreateInterview(ctx context.Context, req models.CreateInterviewRequest) (*ent.Interview, error) {
	if req.CandidateID == "" {
		return nil, NewValidationError("candidate_id", "required")
	}
	if req.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}

	builder := s.client.Interview.Create().
		SetID(uuid.NewString()).
		SetCandidateID(req.CandidateID).
		SetJobID(req.JobID).
		SetStatus(interview.StatusPendingScheduling)
	if req.RoundLabel != "" {
		builder.SetRoundLabel(req.RoundLabel)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewValidationError("candidate_id", "candidate or job does not exist")
		}
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return created, nil
}

// GetInterview fetches one interview
func (s *InterviewService) GetInterview(ctx context.Context, interviewID string) (*ent.Interview, error) {
	iv, err := s.client.Interview.Get(ctx, interviewID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return iv, nil
}

// bookable reports whether an interview may (re)bind to a slot.
func bookable(status interview.Status) bool {
	switch status {
	case interview.StatusNew, interview.StatusPendingScheduling,
		interview.StatusScheduled, interview.StatusOnHold:
		return true
	default:
		return false
	}
}

// Book binds the interview to a slot in one transaction: the slot row is
// locked, capacity re-checked, any previous binding released, the counter
// and schedule moved together, and the interview times set from the slot's
// civil window. The invite email goes out after commit; its failure flips
// EmailFailed but never the booking.
func (s *InterviewService) Book(ctx context.Context, interviewID, slotID string) (*BookingOutcome, error) {
	if slotID == "" {
		return nil, NewValidationError("slot_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	iv, err := tx.Interview.Query().
		Where(interview.IDEQ(interviewID)).
		WithCandidate().
		WithJob().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	if !bookable(iv.Status) {
		return nil, NewStateError(CodeInterviewNotBookable, "interview %s is %s", iv.ID, iv.Status)
	}

	cand := iv.Edges.Candidate
	job := iv.Edges.Job
	if cand == nil || job == nil {
		return nil, fmt.Errorf("interview %s is missing candidate or job edge", iv.ID)
	}

	// Release a previous binding first so rebooking the same slot is a
	// clean no-op on the counters.
	existing, err := tx.Schedule.Query().
		Where(
			schedule.InterviewID(iv.ID),
			schedule.StatusNEQ(schedule.StatusCancelled),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get current schedule: %w", err)
	}
	if existing != nil {
		if err := releaseSchedule(ctx, tx, existing); err != nil {
			return nil, err
		}
	}

	// Exclusive slot lock: counter check, increment, and schedule insert
	// move together.
	sl, err := tx.Slot.Query().
		Where(slot.IDEQ(slotID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock slot: %w", err)
	}
	if sl.Cancelled {
		return nil, NewStateError(CodeSlotCancelled, "slot %s is cancelled", sl.ID)
	}
	if sl.CurrentBookings >= sl.MaxCandidates {
		return nil, NewStateError(CodeSlotFull, "slot %s is fully booked (%d/%d)", sl.ID, sl.CurrentBookings, sl.MaxCandidates)
	}

	startUTC, endUTC, err := civil.Window(sl.InterviewDate, sl.StartTime, sl.EndTime, s.zone)
	if err != nil {
		return nil, fmt.Errorf("failed to project slot window: %w", err)
	}
	linkExpires := endUTC.Add(s.links.LateGrace())

	if err := tx.Slot.UpdateOne(sl).AddCurrentBookings(1).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to increment slot bookings: %w", err)
	}

	sched, err := tx.Schedule.Create().
		SetID(uuid.NewString()).
		SetInterviewID(iv.ID).
		SetSlotID(sl.ID).
		SetStatus(schedule.StatusConfirmed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	iv, err = tx.Interview.UpdateOne(iv).
		SetStartedAt(startUTC).
		SetEndedAt(endUTC).
		SetLinkExpiresAt(linkExpires).
		SetStatus(interview.StatusScheduled).
		SetEmailSent(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set interview window: %w", err)
	}

	sess, err := ensureSession(ctx, tx, iv, cand, job)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	tok, expiresAt, err := s.links.Mint(iv, cand.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to mint link token: %w", err)
	}

	outcome := &BookingOutcome{
		Interview: iv,
		Schedule:  sched,
		Session:   sess,
		Token:     tok,
		ExpiresAt: expiresAt,
	}
	s.sendInvite(ctx, outcome, cand, job)
	return outcome, nil
}

// ensureSession returns the interview's session, creating it on first
// booking. Candidate and job text are snapshotted so a running interview is
// immune to later edits. A window-lapsed (EXPIRED) session is re-armed by a
// new booking; COMPLETED and ERROR stay terminal.
func ensureSession(ctx context.Context, tx *ent.Tx, iv *ent.Interview, cand *ent.Candidate, job *ent.Job) (*ent.Session, error) {
	sess, err := tx.Session.Query().
		Where(session.InterviewID(iv.ID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to get session: %w", err)
		}

		key := uuid.New()
		builder := tx.Session.Create().
			SetID(uuid.NewString()).
			SetSessionKey(hex.EncodeToString(key[:])).
			SetInterviewID(iv.ID).
			SetCandidateName(cand.FullName).
			SetCandidateEmail(cand.Email).
			SetJobDescription(job.Description).
			SetStatus(session.StatusScheduled)
		if cand.ResumeText != nil {
			builder.SetResumeText(*cand.ResumeText)
		}

		created, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		return created, nil
	}

	switch sess.Status {
	case session.StatusCompleted, session.StatusError:
		return nil, NewStateError(CodeSessionTerminal, "session %s is %s", sess.ID, sess.Status)
	case session.StatusExpired:
		sess, err = tx.Session.UpdateOne(sess).
			SetStatus(session.StatusScheduled).
			ClearSessionStartedAt().
			ClearSessionEndedAt().
			ClearLastInteractionAt().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to re-arm expired session: %w", err)
		}
	}
	return sess, nil
}

// releaseSchedule cancels a schedule and gives its seat back to the slot.
// Runs inside the caller's transaction.
func releaseSchedule(ctx context.Context, tx *ent.Tx, sched *ent.Schedule) error {
	sl, err := tx.Slot.Query().
		Where(slot.IDEQ(sched.SlotID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock slot for release: %w", err)
	}
	if sl.CurrentBookings > 0 {
		if err := tx.Slot.UpdateOne(sl).AddCurrentBookings(-1).Exec(ctx); err != nil {
			return fmt.Errorf("failed to decrement slot bookings: %w", err)
		}
	}

	err = tx.Schedule.UpdateOne(sched).
		SetStatus(schedule.StatusCancelled).
		SetCancelledAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel schedule: %w", err)
	}
	return nil
}

// sendInvite delivers the booking invite and records the outcome on the
// outcome struct. Send failures are recorded, never propagated.
func (s *InterviewService) sendInvite(ctx context.Context, outcome *BookingOutcome, cand *ent.Candidate, job *ent.Job) {
	url, _ := notify.BuildInviteURL(s.baseURL, s.devMode, outcome.Session.SessionKey)
	outcome.InviteURL = url

	if s.notifier == nil {
		return
	}

	inv := notify.Invite{
		To:            cand.Email,
		CandidateName: cand.FullName,
		JobTitle:      job.Title,
		StartsAtLocal: civil.FormatInZone(*outcome.Interview.StartedAt, s.zone),
		URL:           url,
	}
	if err := s.notifier.SendInvite(ctx, inv); err != nil {
		outcome.EmailFailed = true
		return
	}

	if err := s.client.Interview.UpdateOneID(outcome.Interview.ID).
		SetEmailSent(true).
		Exec(ctx); err == nil {
		outcome.Interview.EmailSent = true
	}
}

// Reschedule moves the interview to a new slot. The previous binding is
// released inside the same transaction as the new one, and the returned
// token supersedes every earlier link.
func (s *InterviewService) Reschedule(ctx context.Context, interviewID, newSlotID string) (*BookingOutcome, error) {
	return s.Book(ctx, interviewID, newSlotID)
}

// Cancel releases the interview's slot binding and parks it ON_HOLD.
func (s *InterviewService) Cancel(ctx context.Context, interviewID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	iv, err := tx.Interview.Get(ctx, interviewID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get interview: %w", err)
	}

	existing, err := tx.Schedule.Query().
		Where(
			schedule.InterviewID(iv.ID),
			schedule.StatusNEQ(schedule.StatusCancelled),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to get current schedule: %w", err)
	}
	if existing != nil {
		if err := releaseSchedule(ctx, tx, existing); err != nil {
			return err
		}
	}

	// started_at stays: it is history, and stale tokens should fail with
	// EXPIRED/SIGNATURE_MISMATCH rather than UNKNOWN_INTERVIEW.
	if err := tx.Interview.UpdateOne(iv).
		SetStatus(interview.StatusOnHold).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to park interview: %w", err)
	}

	return tx.Commit()
}

// release returns the interview to PENDING_SCHEDULING after dropping its
// binding; used by administrative repair rather than the cancel endpoint.
func (s *InterviewService) Release(ctx context.Context, interviewID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.Schedule.Query().
		Where(
			schedule.InterviewID(interviewID),
			schedule.StatusNEQ(schedule.StatusCancelled),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get current schedule: %w", err)
	}
	if err := releaseSchedule(ctx, tx, existing); err != nil {
		return err
	}

	err = tx.Interview.UpdateOneID(interviewID).
		Where(interview.StatusNotIn(
			interview.StatusCompleted,
			interview.StatusRejected,
		)).
		SetStatus(interview.StatusPendingScheduling).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to reset interview status: %w", err)
	}

	return tx.Commit()
}

// MarkInProgress flips a SCHEDULED interview to IN_PROGRESS when its
// session activates. A stale or repeated call loses silently.
func (s *InterviewService) MarkInProgress(ctx context.Context, interviewID string) error {
	_, err := s.client.Interview.Update().
		Where(
			interview.IDEQ(interviewID),
			interview.StatusEQ(interview.StatusScheduled),
		).
		SetStatus(interview.StatusInProgress).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark interview in progress: %w", err)
	}
	return nil
}

// MarkCompleted records that the interview's session finished.
func (s *InterviewService) MarkCompleted(ctx context.Context, interviewID string) error {
	_, err := s.client.Interview.Update().
		Where(
			interview.IDEQ(interviewID),
			interview.StatusIn(interview.StatusScheduled, interview.StatusInProgress),
		).
		SetStatus(interview.StatusCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark interview completed: %w", err)
	}
	return nil
}

// DetectConflicts reports other interviews of the same candidate whose UTC
// windows overlap this one's. Half-open intervals; advisory, no locks.
func (s *InterviewService) DetectConflicts(ctx context.Context, interviewID string) ([]models.ConflictRecord, error) {
	iv, err := s.client.Interview.Get(ctx, interviewID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	if iv.StartedAt == nil || iv.EndedAt == nil {
		return nil, nil
	}

	others, err := s.client.Interview.Query().
		Where(
			interview.CandidateID(iv.CandidateID),
			interview.IDNEQ(iv.ID),
			interview.StartedAtNotNil(),
			interview.EndedAtNotNil(),
			interview.StartedAtLT(*iv.EndedAt),
			interview.EndedAtGT(*iv.StartedAt),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping interviews: %w", err)
	}

	records := make([]models.ConflictRecord, 0, len(others))
	for _, other := range others {
		records = append(records, models.ConflictRecord{
			InterviewID:      iv.ID,
			OtherInterviewID: other.ID,
			CandidateID:      iv.CandidateID,
			StartedAt:        *other.StartedAt,
			EndedAt:          *other.EndedAt,
		})
	}
	return records, nil
}

// GetDetail assembles the recruiter view: interview, live schedule, session
// summary with warning counts, and any window conflicts.
func (s *InterviewService) GetDetail(ctx context.Context, interviewID string) (*models.InterviewDetail, error) {
	iv, err := s.client.Interview.Query().
		Where(interview.IDEQ(interviewID)).
		WithSchedules(func(q *ent.ScheduleQuery) {
			q.Where(schedule.StatusNEQ(schedule.StatusCancelled))
		}).
		WithSession().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}

	detail := &models.InterviewDetail{
		ID:            iv.ID,
		CandidateID:   iv.CandidateID,
		JobID:         iv.JobID,
		RoundLabel:    iv.RoundLabel,
		Status:        models.ToWire(iv.Status),
		StartedAt:     iv.StartedAt,
		EndedAt:       iv.EndedAt,
		LinkExpiresAt: iv.LinkExpiresAt,
		EmailSent:     iv.EmailSent,
	}

	if scheds := iv.Edges.Schedules; len(scheds) > 0 {
		sched := scheds[0]
		detail.Schedule = &models.ScheduleView{
			ID:          sched.ID,
			InterviewID: sched.InterviewID,
			SlotID:      sched.SlotID,
			Status:      models.ToWire(sched.Status),
			BookedAt:    sched.BookedAt,
			CancelledAt: sched.CancelledAt,
		}
	}

	if sess := iv.Edges.Session; sess != nil {
		summary, err := s.sessionSummary(ctx, sess)
		if err != nil {
			return nil, err
		}
		detail.Session = summary
	}

	conflicts, err := s.DetectConflicts(ctx, iv.ID)
	if err != nil {
		return nil, err
	}
	detail.Conflicts = conflicts

	return detail, nil
}

func (s *InterviewService) sessionSummary(ctx context.Context, sess *ent.Session) (*models.SessionSummary, error) {
	var rows []struct {
		WarningType string `json:"warning_type"`
		Count       int    `json:"count"`
	}
	err := s.client.WarningLog.Query().
		Where(warninglog.SessionID(sess.ID)).
		GroupBy(warninglog.FieldWarningType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count warnings: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[models.ToWire(r.WarningType)] = r.Count
	}

	return &models.SessionSummary{
		SessionID:            sess.ID,
		Status:               models.ToWire(sess.Status),
		CurrentQuestionIndex: sess.CurrentQuestionIndex,
		TotalQuestions:       sess.TotalQuestions,
		IDVerification:       models.ToWire(sess.IDVerificationStatus),
		StartedAt:            sess.SessionStartedAt,
		EndedAt:              sess.SessionEndedAt,
		IsEvaluated:          sess.IsEvaluated,
		WarningCounts:        counts,
	}, nil
}

// FixInterviewTimes recomputes every bound interview's UTC window from its
// slot's civil fields. Idempotent; returns how many rows changed.
func (s *InterviewService) FixInterviewTimes(ctx context.Context) (int, error) {
	scheds, err := s.client.Schedule.Query().
		Where(schedule.StatusNEQ(schedule.StatusCancelled)).
		WithSlot().
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list schedules: %w", err)
	}

	fixed := 0
	for _, sched := range scheds {
		sl := sched.Edges.Slot
		if sl == nil {
			continue
		}

		startUTC, endUTC, err := civil.Window(sl.InterviewDate, sl.StartTime, sl.EndTime, s.zone)
		if err != nil {
			return fixed, fmt.Errorf("schedule %s has an unparseable slot window: %w", sched.ID, err)
		}

		iv, err := s.client.Interview.Get(ctx, sched.InterviewID)
		if err != nil {
			return fixed, fmt.Errorf("failed to get interview %s: %w", sched.InterviewID, err)
		}
		if iv.StartedAt != nil && iv.StartedAt.Equal(startUTC) &&
			iv.EndedAt != nil && iv.EndedAt.Equal(endUTC) {
			continue
		}

		err = s.client.Interview.UpdateOneID(iv.ID).
			SetStartedAt(startUTC).
			SetEndedAt(endUTC).
			SetLinkExpiresAt(endUTC.Add(s.links.LateGrace())).
			Exec(ctx)
		if err != nil {
			return fixed, fmt.Errorf("failed to fix interview %s: %w", iv.ID, err)
		}
		fixed++
	}
	return fixed, nil
}

// SendPendingInvites (re)sends invites for upcoming scheduled interviews
// that have none recorded. Returns how many were sent.
func (s *InterviewService) SendPendingInvites(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, fmt.Errorf("no notification sink configured")
	}

	ivs, err := s.client.Interview.Query().
		Where(
			interview.StatusEQ(interview.StatusScheduled),
			interview.EmailSent(false),
			interview.StartedAtNotNil(),
			interview.StartedAtGT(time.Now()),
		).
		WithCandidate().
		WithJob().
		WithSession().
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending interviews: %w", err)
	}

	sent := 0
	for _, iv := range ivs {
		cand, job, sess := iv.Edges.Candidate, iv.Edges.Job, iv.Edges.Session
		if cand == nil || job == nil || sess == nil {
			continue
		}

		url, _ := notify.BuildInviteURL(s.baseURL, s.devMode, sess.SessionKey)
		err := s.notifier.SendInvite(ctx, notify.Invite{
			To:            cand.Email,
			CandidateName: cand.FullName,
			JobTitle:      job.Title,
			StartsAtLocal: civil.FormatInZone(*iv.StartedAt, s.zone),
			URL:           url,
		})
		if err != nil {
			continue
		}
		if err := s.client.Interview.UpdateOneID(iv.ID).SetEmailSent(true).Exec(ctx); err != nil {
			return sent, fmt.Errorf("failed to mark invite sent for %s: %w", iv.ID, err)
		}
		sent++
	}
	return sent, nil
}
