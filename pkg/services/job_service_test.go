package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent/job"
	"github.com/hireloop/hireloop/pkg/models"
	testdb "github.com/hireloop/hireloop/test/database"
)

func TestJobService_CreateJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("creates job with wire-form coding language", func(t *testing.T) {
		j, err := service.CreateJob(ctx, models.CreateJobRequest{
			Title:          "Platform Engineer",
			CompanyName:    "Acme Systems",
			Description:    "Own the deployment pipeline.",
			Domain:         "infrastructure",
			TechStack:      []string{"go", "kubernetes"},
			CodingLanguage: "PYTHON",
		})
		require.NoError(t, err)
		require.NotNil(t, j.CodingLanguage)
		assert.Equal(t, job.CodingLanguagePython, *j.CodingLanguage)
		assert.Equal(t, []string{"go", "kubernetes"}, j.TechStack)
		assert.True(t, j.IsActive)
	})

	t.Run("coding language is optional at creation", func(t *testing.T) {
		j, err := service.CreateJob(ctx, models.CreateJobRequest{
			Title:       "Data Analyst",
			Description: "Build reporting dashboards.",
		})
		require.NoError(t, err)
		assert.Nil(t, j.CodingLanguage)
	})

	t.Run("rejects unsupported coding language", func(t *testing.T) {
		_, err := service.CreateJob(ctx, models.CreateJobRequest{
			Title:          "Systems Programmer",
			Description:    "Kernel work.",
			CodingLanguage: "COBOL",
		})
		assert.ErrorContains(t, err, "unsupported language")
	})

	t.Run("rejects missing title and description", func(t *testing.T) {
		_, err := service.CreateJob(ctx, models.CreateJobRequest{Description: "No title."})
		assert.ErrorContains(t, err, "title")

		_, err = service.CreateJob(ctx, models.CreateJobRequest{Title: "No description"})
		assert.ErrorContains(t, err, "description")
	})
}

func TestJobService_GetJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	created := createTestJob(t, client)

	j, err := service.GetJob(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, j.Title)

	_, err = service.GetJob(ctx, "no-such-job")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobService_ListJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	active := createTestJob(t, client)
	retired := createTestJob(t, client)
	require.NoError(t, client.Job.UpdateOneID(retired.ID).SetIsActive(false).Exec(ctx))

	all, err := service.ListJobs(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeJobs, err := service.ListJobs(ctx, true)
	require.NoError(t, err)
	require.Len(t, activeJobs, 1)
	assert.Equal(t, active.ID, activeJobs[0].ID)
}

func TestJobService_SyncCompaniesFromJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	a1, err := service.CreateJob(ctx, models.CreateJobRequest{
		Title: "Backend Engineer", CompanyName: "Acme Systems", Description: "APIs.",
	})
	require.NoError(t, err)
	a2, err := service.CreateJob(ctx, models.CreateJobRequest{
		Title: "Frontend Engineer", CompanyName: "Acme Systems", Description: "Dashboards.",
	})
	require.NoError(t, err)
	b, err := service.CreateJob(ctx, models.CreateJobRequest{
		Title: "SRE", CompanyName: "Globex", Description: "On-call.",
	})
	require.NoError(t, err)
	unnamed, err := service.CreateJob(ctx, models.CreateJobRequest{
		Title: "Contractor", Description: "Short engagement.",
	})
	require.NoError(t, err)

	linked, err := service.SyncCompaniesFromJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, linked)

	companies, err := client.Company.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 2)

	ja1, err := client.Job.Get(ctx, a1.ID)
	require.NoError(t, err)
	ja2, err := client.Job.Get(ctx, a2.ID)
	require.NoError(t, err)
	require.NotNil(t, ja1.CompanyID)
	require.NotNil(t, ja2.CompanyID)
	assert.Equal(t, *ja1.CompanyID, *ja2.CompanyID)

	jb, err := client.Job.Get(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, jb.CompanyID)
	assert.NotEqual(t, *ja1.CompanyID, *jb.CompanyID)

	ju, err := client.Job.Get(ctx, unnamed.ID)
	require.NoError(t, err)
	assert.Nil(t, ju.CompanyID)

	t.Run("rerun is a no-op", func(t *testing.T) {
		linked, err := service.SyncCompaniesFromJobs(ctx)
		require.NoError(t, err)
		assert.Zero(t, linked)
	})

	t.Run("new job reuses the existing company", func(t *testing.T) {
		late, err := service.CreateJob(ctx, models.CreateJobRequest{
			Title: "Staff Engineer", CompanyName: "Globex", Description: "Architecture.",
		})
		require.NoError(t, err)

		linked, err := service.SyncCompaniesFromJobs(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, linked)

		jl, err := client.Job.Get(ctx, late.ID)
		require.NoError(t, err)
		require.NotNil(t, jl.CompanyID)
		assert.Equal(t, *jb.CompanyID, *jl.CompanyID)

		n, err := client.Company.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}
