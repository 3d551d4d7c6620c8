package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/schedule"
	"github.com/hireloop/hireloop/ent/slot"
	"github.com/hireloop/hireloop/pkg/civil"
	"github.com/hireloop/hireloop/pkg/models"
)

// Derived slot statuses. Never stored; always recomputed from the counters.
const (
	SlotAvailable = "AVAILABLE"
	SlotPartial   = "PARTIAL"
	SlotFull      = "FULL"
	SlotCancelled = "CANCELLED"
)

// SlotStatus derives the booking status from the counters. Cancellation
// dominates regardless of the counters.
func SlotStatus(current, max int, cancelled bool) string {
	switch {
	case cancelled:
		return SlotCancelled
	case current <= 0:
		return SlotAvailable
	case current < max:
		return SlotPartial
	default:
		return SlotFull
	}
}

// SlotService publishes and manages interview slots. Wall-clock fields are
// civil time in the configured interview timezone.
type SlotService struct {
	client *ent.Client
	zone   *time.Location
}

// NewSlotService creates a new SlotService
func NewSlotService(client *ent.Client, zone *time.Location) *SlotService {
	if zone == nil {
		panic("NewSlotService: zone must not be nil")
	}
	return &SlotService{client: client, zone: zone}
}

// Zone returns the interview timezone slots are interpreted in.
func (s *SlotService) Zone() *time.Location {
	return s.zone
}

// parseRecurrence validates a series descriptor like WEEKLY:4 and returns
// the occurrence count (1 when absent).
func parseRecurrence(descriptor string) (int, error) {
	if descriptor == "" {
		return 1, nil
	}
	parts := strings.SplitN(descriptor, ":", 2)
	if len(parts) != 2 || strings.ToUpper(parts[0]) != "WEEKLY" {
		return 0, NewValidationError("recurrence", fmt.Sprintf("unsupported descriptor %q, expected WEEKLY:n", descriptor))
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 1 {
		return 0, NewValidationError("recurrence", fmt.Sprintf("occurrence count must be a positive integer, got %q", parts[1]))
	}
	if n > 52 {
		return 0, NewValidationError("recurrence", "occurrence count capped at 52")
	}
	return n, nil
}

// CreateSlot publishes a slot, or a weekly series when a recurrence
// descriptor is given. Each slot of the series keeps the descriptor.
func (s *SlotService) CreateSlot(ctx context.Context, req models.CreateSlotRequest) ([]*ent.Slot, error) {
	if req.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if !civil.ValidDate(req.Date) {
		return nil, NewValidationError("date", fmt.Sprintf("expected %s, got %q", civil.DateLayout, req.Date))
	}
	if !civil.ValidClock(req.StartTime) || !civil.ValidClock(req.EndTime) {
		return nil, NewValidationError("start_time", fmt.Sprintf("expected %s clock values", civil.ClockLayout))
	}

	before, err := civil.ClockBefore(req.StartTime, req.EndTime)
	if err != nil {
		return nil, NewValidationError("start_time", err.Error())
	}
	if !before {
		return nil, NewStateError(CodeInvalidWindow, "end_time %s must be after start_time %s", req.EndTime, req.StartTime)
	}
	if req.Capacity < 1 {
		return nil, NewStateError(CodeInvalidCapacity, "capacity must be at least 1, got %d", req.Capacity)
	}

	occurrences, err := parseRecurrence(req.Recurrence)
	if err != nil {
		return nil, err
	}

	j, err := s.client.Job.Get(ctx, req.JobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if j.CodingLanguage == nil {
		return nil, NewStateError(CodeJobNotConfigured, "job %s has no coding language configured", j.ID)
	}

	minutes, err := civil.Minutes(req.StartTime, req.EndTime)
	if err != nil {
		return nil, NewValidationError("start_time", err.Error())
	}

	created := make([]*ent.Slot, 0, occurrences)
	date := req.Date
	for i := 0; i < occurrences; i++ {
		if i > 0 {
			date, err = civil.AddWeeks(date, 1)
			if err != nil {
				return created, fmt.Errorf("failed to advance series date: %w", err)
			}
		}

		builder := s.client.Slot.Create().
			SetID(uuid.NewString()).
			SetJobID(req.JobID).
			SetInterviewDate(date).
			SetStartTime(req.StartTime).
			SetEndTime(req.EndTime).
			SetDurationMinutes(minutes).
			SetMaxCandidates(req.Capacity)
		if req.Recurrence != "" {
			builder.SetRecurrence(req.Recurrence)
		}

		sl, err := builder.Save(ctx)
		if err != nil {
			return created, fmt.Errorf("failed to create slot %d of %d: %w", i+1, occurrences, err)
		}
		created = append(created, sl)
	}

	return created, nil
}

// GetSlot fetches one slot
func (s *SlotService) GetSlot(ctx context.Context, slotID string) (*ent.Slot, error) {
	sl, err := s.client.Slot.Get(ctx, slotID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}
	return sl, nil
}

// ListSlots lists slots with their derived statuses
func (s *SlotService) ListSlots(ctx context.Context, filters models.SlotFilters) (*models.SlotListResponse, error) {
	query := s.client.Slot.Query()

	if filters.JobID != "" {
		query = query.Where(slot.JobID(filters.JobID))
	}
	if filters.Date != "" {
		if !civil.ValidDate(filters.Date) {
			return nil, NewValidationError("date", fmt.Sprintf("expected %s, got %q", civil.DateLayout, filters.Date))
		}
		query = query.Where(slot.InterviewDate(filters.Date))
	}
	if !filters.IncludeCancelled {
		query = query.Where(slot.Cancelled(false))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count slots: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	slots, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(slot.FieldInterviewDate), ent.Asc(slot.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	views := make([]models.SlotView, 0, len(slots))
	for _, sl := range slots {
		view := SlotToView(sl)
		if filters.AvailableOnly && view.Status != SlotAvailable && view.Status != SlotPartial {
			continue
		}
		views = append(views, view)
	}

	return &models.SlotListResponse{
		Slots:      views,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// CancelSlot marks the slot cancelled. Existing schedules stay as they are;
// the slot simply takes no new bookings.
func (s *SlotService) CancelSlot(ctx context.Context, slotID string) error {
	err := s.client.Slot.UpdateOneID(slotID).
		SetCancelled(true).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to cancel slot: %w", err)
	}
	return nil
}

// ActiveScheduleCount reports how many live schedules reference the slot.
func (s *SlotService) ActiveScheduleCount(ctx context.Context, slotID string) (int, error) {
	count, err := s.client.Schedule.Query().
		Where(
			schedule.SlotID(slotID),
			schedule.StatusNEQ(schedule.StatusCancelled),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count schedules: %w", err)
	}
	return count, nil
}

// SlotToView projects a slot row into its wire form with derived status.
func SlotToView(sl *ent.Slot) models.SlotView {
	view := models.SlotView{
		ID:              sl.ID,
		JobID:           sl.JobID,
		Date:            sl.InterviewDate,
		StartTime:       sl.StartTime,
		EndTime:         sl.EndTime,
		DurationMinutes: sl.DurationMinutes,
		MaxCandidates:   sl.MaxCandidates,
		CurrentBookings: sl.CurrentBookings,
		Status:          SlotStatus(sl.CurrentBookings, sl.MaxCandidates, sl.Cancelled),
	}
	if sl.Recurrence != nil {
		view.Recurrence = *sl.Recurrence
	}
	return view
}
