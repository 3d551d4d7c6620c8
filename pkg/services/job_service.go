package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/company"
	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/pkg/models"
)

// JobService handles job postings and their company links.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJob creates a job posting. The coding language may be set later, but
// no slot can be published for the job until it is.
func (s *JobService) CreateJob(ctx context.Context, req models.CreateJobRequest) (*ent.Job, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title", "required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, NewValidationError("description", "required")
	}

	builder := s.client.Job.Create().
		SetID(uuid.NewString()).
		SetTitle(req.Title).
		SetDescription(req.Description)

	if req.CompanyName != "" {
		builder.SetCompanyName(req.CompanyName)
	}
	if req.Domain != "" {
		builder.SetDomain(req.Domain)
	}
	if len(req.TechStack) > 0 {
		builder.SetTechStack(req.TechStack)
	}
	if req.CodingLanguage != "" {
		lang := job.CodingLanguage(models.FromWire(req.CodingLanguage))
		if err := job.CodingLanguageValidator(lang); err != nil {
			return nil, NewValidationError("coding_language", fmt.Sprintf("unsupported language %q", req.CodingLanguage))
		}
		builder.SetCodingLanguage(lang)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// GetJob fetches one job
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// ListJobs lists jobs, optionally only active ones
func (s *JobService) ListJobs(ctx context.Context, activeOnly bool) ([]*ent.Job, error) {
	query := s.client.Job.Query()
	if activeOnly {
		query = query.Where(job.IsActive(true))
	}
	jobs, err := query.Order(ent.Desc(job.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// SyncCompaniesFromJobs creates Company rows for the legacy free-text
// company_name values and links the jobs to them. Idempotent; returns the
// number of jobs linked.
func (s *JobService) SyncCompaniesFromJobs(ctx context.Context) (int, error) {
	jobs, err := s.client.Job.Query().
		Where(job.CompanyIDIsNil(), job.CompanyNameNEQ("")).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query unlinked jobs: %w", err)
	}

	linked := 0
	for _, j := range jobs {
		name := strings.TrimSpace(j.CompanyName)
		if name == "" {
			continue
		}

		comp, err := s.client.Company.Query().Where(company.Name(name)).Only(ctx)
		if ent.IsNotFound(err) {
			comp, err = s.client.Company.Create().
				SetID(uuid.NewString()).
				SetName(name).
				Save(ctx)
			// Another invocation may have created it concurrently.
			if ent.IsConstraintError(err) {
				comp, err = s.client.Company.Query().Where(company.Name(name)).Only(ctx)
			}
		}
		if err != nil {
			return linked, fmt.Errorf("failed to resolve company %q: %w", name, err)
		}

		if err := s.client.Job.UpdateOneID(j.ID).SetCompanyID(comp.ID).Exec(ctx); err != nil {
			return linked, fmt.Errorf("failed to link job %s to company %s: %w", j.ID, comp.ID, err)
		}
		linked++
	}

	return linked, nil
}
