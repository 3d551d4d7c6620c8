package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/candidate"
	"github.com/hireloop/hireloop/pkg/models"
)

// CandidateService handles candidate registration and lookup.
type CandidateService struct {
	client *ent.Client
}

// NewCandidateService creates a new CandidateService
func NewCandidateService(client *ent.Client) *CandidateService {
	return &CandidateService{client: client}
}

// CreateCandidate registers a candidate. Email is unique; a duplicate
// returns ErrAlreadyExists.
func (s *CandidateService) CreateCandidate(ctx context.Context, req models.CreateCandidateRequest) (*ent.Candidate, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, NewValidationError("full_name", "required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, NewValidationError("email", "required")
	}
	if !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "not a valid email address")
	}

	builder := s.client.Candidate.Create().
		SetID(uuid.NewString()).
		SetFullName(strings.TrimSpace(req.FullName)).
		SetEmail(email)

	if req.Phone != "" {
		builder.SetPhone(req.Phone)
	}
	if req.ResumeText != "" {
		builder.SetResumeText(req.ResumeText)
	}
	if req.ResumePath != "" {
		builder.SetResumePath(req.ResumePath)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return created, nil
}

// GetCandidate fetches one candidate
func (s *CandidateService) GetCandidate(ctx context.Context, candidateID string) (*ent.Candidate, error) {
	c, err := s.client.Candidate.Get(ctx, candidateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// GetCandidateByEmail fetches a candidate by their unique email
func (s *CandidateService) GetCandidateByEmail(ctx context.Context, email string) (*ent.Candidate, error) {
	c, err := s.client.Candidate.Query().
		Where(candidate.Email(strings.ToLower(strings.TrimSpace(email)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate by email: %w", err)
	}
	return c, nil
}
