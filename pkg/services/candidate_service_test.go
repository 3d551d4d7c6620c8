package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/models"
	testdb "github.com/hireloop/hireloop/test/database"
)

func TestCandidateService_CreateCandidate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCandidateService(client.Client)
	ctx := context.Background()

	t.Run("normalizes email", func(t *testing.T) {
		c, err := service.CreateCandidate(ctx, models.CreateCandidateRequest{
			FullName:   "  Dana Smith ",
			Email:      "  Dana.Smith@Example.COM ",
			Phone:      "+91-98765-43210",
			ResumeText: "Five years building data pipelines.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Dana Smith", c.FullName)
		assert.Equal(t, "dana.smith@example.com", c.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := service.CreateCandidate(ctx, models.CreateCandidateRequest{
			FullName: "Other Person",
			Email:    "DANA.SMITH@example.com",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := service.CreateCandidate(ctx, models.CreateCandidateRequest{
			FullName: "No At Sign",
			Email:    "not-an-email",
		})
		assert.ErrorContains(t, err, "not a valid email")
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := service.CreateCandidate(ctx, models.CreateCandidateRequest{Email: "x@example.com"})
		assert.ErrorContains(t, err, "full_name")

		_, err = service.CreateCandidate(ctx, models.CreateCandidateRequest{FullName: "Nameless"})
		assert.ErrorContains(t, err, "email")
	})
}

func TestCandidateService_Lookup(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCandidateService(client.Client)
	ctx := context.Background()

	created, err := service.CreateCandidate(ctx, models.CreateCandidateRequest{
		FullName: "Dana Smith",
		Email:    "dana@example.com",
	})
	require.NoError(t, err)

	c, err := service.GetCandidate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", c.Email)

	_, err = service.GetCandidate(ctx, "no-such-candidate")
	assert.ErrorIs(t, err, ErrNotFound)

	byEmail, err := service.GetCandidateByEmail(ctx, " DANA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = service.GetCandidateByEmail(ctx, "stranger@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
