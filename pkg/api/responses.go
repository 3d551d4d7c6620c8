package api

import (
	"time"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/services"
)

// JobView is a job in wire form.
type JobView struct {
	ID             string    `json:"job_id"`
	Title          string    `json:"title"`
	CompanyName    string    `json:"company_name,omitempty"`
	Domain         string    `json:"domain,omitempty"`
	Description    string    `json:"description"`
	TechStack      []string  `json:"tech_stack,omitempty"`
	CodingLanguage string    `json:"coding_language,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func toJobView(j *ent.Job) JobView {
	v := JobView{
		ID:          j.ID,
		Title:       j.Title,
		CompanyName: j.CompanyName,
		Domain:      j.Domain,
		Description: j.Description,
		TechStack:   j.TechStack,
		IsActive:    j.IsActive,
		CreatedAt:   j.CreatedAt,
	}
	if j.CodingLanguage != nil {
		v.CodingLanguage = models.ToWire(*j.CodingLanguage)
	}
	return v
}

// CandidateView is a candidate in wire form. The résumé text itself stays
// out of list/detail responses; HasResume tells the recruiter whether one
// was parsed.
type CandidateView struct {
	ID        string    `json:"candidate_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	HasResume bool      `json:"has_resume"`
	CreatedAt time.Time `json:"created_at"`
}

func toCandidateView(c *ent.Candidate) CandidateView {
	return CandidateView{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		HasResume: c.ResumeText != nil && *c.ResumeText != "",
		CreatedAt: c.CreatedAt,
	}
}

// InterviewView is a bare interview row in wire form (creation response;
// GET returns the richer models.InterviewDetail).
type InterviewView struct {
	ID          string     `json:"interview_id"`
	CandidateID string     `json:"candidate_id"`
	JobID       string     `json:"job_id"`
	RoundLabel  string     `json:"round_label,omitempty"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toInterviewView(iv *ent.Interview) InterviewView {
	return InterviewView{
		ID:          iv.ID,
		CandidateID: iv.CandidateID,
		JobID:       iv.JobID,
		RoundLabel:  iv.RoundLabel,
		Status:      models.ToWire(iv.Status),
		StartedAt:   iv.StartedAt,
		EndedAt:     iv.EndedAt,
		CreatedAt:   iv.CreatedAt,
	}
}

func toBookingResponse(out *services.BookingOutcome) models.BookingResponse {
	return models.BookingResponse{
		ScheduleID:           out.Schedule.ID,
		InterviewID:          out.Interview.ID,
		SlotID:               out.Schedule.SlotID,
		InterviewStatus:      models.ToWire(out.Interview.Status),
		StartedAt:            out.Interview.StartedAt,
		EndedAt:              out.Interview.EndedAt,
		LinkToken:            out.Token,
		InviteURL:            out.InviteURL,
		BookingOkEmailFailed: out.EmailFailed,
	}
}
