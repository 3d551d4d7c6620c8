package models

import "time"

// CreateJobRequest contains fields for creating a job posting
type CreateJobRequest struct {
	Title          string   `json:"title"`
	CompanyName    string   `json:"company_name,omitempty"`
	Domain         string   `json:"domain,omitempty"`
	Description    string   `json:"description"`
	TechStack      []string `json:"tech_stack,omitempty"`
	CodingLanguage string   `json:"coding_language,omitempty"`
}

// CreateCandidateRequest contains fields for registering a candidate.
// ResumeText arrives either inline or extracted from the multipart upload
// by the handler.
type CreateCandidateRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	ResumeText string `json:"resume_text,omitempty"`
	ResumePath string `json:"-"`
}

// CreateSlotRequest contains fields for publishing an interview slot.
// Date/StartTime/EndTime are civil values in the configured interview
// timezone.
type CreateSlotRequest struct {
	JobID      string `json:"job_id"`
	Date       string `json:"date"`       // 2006-01-02
	StartTime  string `json:"start_time"` // 15:04
	EndTime    string `json:"end_time"`   // 15:04
	Capacity   int    `json:"capacity"`
	Recurrence string `json:"recurrence,omitempty"` // e.g. WEEKLY:4
}

// CreateInterviewRequest binds a candidate to a job for one round
type CreateInterviewRequest struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
	RoundLabel  string `json:"round_label,omitempty"`
}

// BookInterviewRequest books an interview into a slot
type BookInterviewRequest struct {
	SlotID string `json:"slot_id"`
}

// RescheduleInterviewRequest moves an interview to a new slot
type RescheduleInterviewRequest struct {
	NewSlotID string `json:"new_slot_id"`
}

// SlotFilters contains filtering options for listing slots
type SlotFilters struct {
	JobID            string `json:"job_id,omitempty"`
	Date             string `json:"date,omitempty"`
	AvailableOnly    bool   `json:"available_only,omitempty"`
	IncludeCancelled bool   `json:"include_cancelled,omitempty"`
	Limit            int    `json:"limit,omitempty"`
	Offset           int    `json:"offset,omitempty"`
}

// SlotView is a slot with its derived status
type SlotView struct {
	ID              string `json:"slot_id"`
	JobID           string `json:"job_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	MaxCandidates   int    `json:"max_candidates"`
	CurrentBookings int    `json:"current_bookings"`
	Status          string `json:"status"` // AVAILABLE | PARTIAL | FULL | CANCELLED
	Recurrence      string `json:"recurrence,omitempty"`
}

// SlotListResponse contains a paginated slot list
type SlotListResponse struct {
	Slots      []SlotView `json:"slots"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

// BookingResponse is returned by book and reschedule
type BookingResponse struct {
	ScheduleID           string     `json:"schedule_id"`
	InterviewID          string     `json:"interview_id"`
	SlotID               string     `json:"slot_id"`
	InterviewStatus      string     `json:"interview_status"`
	StartedAt            *time.Time `json:"started_at,omitempty"`
	EndedAt              *time.Time `json:"ended_at,omitempty"`
	LinkToken            string     `json:"link_token"`
	InviteURL            string     `json:"invite_url,omitempty"`
	BookingOkEmailFailed bool       `json:"booking_ok_email_failed"`
}

// ConflictRecord describes an overlapping interview window for the same
// candidate. Advisory only.
type ConflictRecord struct {
	InterviewID      string    `json:"interview_id"`
	OtherInterviewID string    `json:"other_interview_id"`
	CandidateID      string    `json:"candidate_id"`
	StartedAt        time.Time `json:"started_at"`
	EndedAt          time.Time `json:"ended_at"`
}

// ScheduleView is a schedule row in wire form
type ScheduleView struct {
	ID          string     `json:"schedule_id"`
	InterviewID string     `json:"interview_id"`
	SlotID      string     `json:"slot_id"`
	Status      string     `json:"status"`
	BookedAt    time.Time  `json:"booked_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// InterviewDetail is the recruiter view: interview plus its live schedule
// and a session summary when one exists
type InterviewDetail struct {
	ID            string           `json:"interview_id"`
	CandidateID   string           `json:"candidate_id"`
	JobID         string           `json:"job_id"`
	RoundLabel    string           `json:"round_label,omitempty"`
	Status        string           `json:"status"`
	StartedAt     *time.Time       `json:"started_at,omitempty"`
	EndedAt       *time.Time       `json:"ended_at,omitempty"`
	LinkExpiresAt *time.Time       `json:"link_expires_at,omitempty"`
	EmailSent     bool             `json:"email_sent"`
	Schedule      *ScheduleView    `json:"schedule,omitempty"`
	Session       *SessionSummary  `json:"session,omitempty"`
	Conflicts     []ConflictRecord `json:"conflicts,omitempty"`
}
