package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/ent/adminuser"
	testdb "github.com/hireloop/hireloop/test/database"
)

func TestAdminService_CreateAdmin(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAdminService(client.Client)
	ctx := context.Background()

	created, err := service.CreateAdmin(ctx, "ops", "ops@example.com", "correct-horse")
	require.NoError(t, err)
	assert.True(t, created)

	admin, err := client.AdminUser.Query().Where(adminuser.UsernameEQ("ops")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", admin.Email)
	assert.True(t, admin.IsSuperuser)
	assert.NotEqual(t, "correct-horse", admin.PasswordHash)

	t.Run("rerun updates email and password in place", func(t *testing.T) {
		created, err := service.CreateAdmin(ctx, "ops", "oncall@example.com", "battery-staple")
		require.NoError(t, err)
		assert.False(t, created)

		n, err := client.AdminUser.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		refreshed, err := client.AdminUser.Get(ctx, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, "oncall@example.com", refreshed.Email)
		assert.NotEqual(t, admin.PasswordHash, refreshed.PasswordHash)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := service.CreateAdmin(ctx, "ops2", "ops2@example.com", "short")
		assert.ErrorContains(t, err, "at least 8 characters")
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := service.CreateAdmin(ctx, "", "ops3@example.com", "correct-horse")
		assert.ErrorContains(t, err, "username")
	})
}

func TestAdminService_VerifyPassword(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAdminService(client.Client)
	ctx := context.Background()

	_, err := service.CreateAdmin(ctx, "ops", "ops@example.com", "correct-horse")
	require.NoError(t, err)

	ok, err := service.VerifyPassword(ctx, "ops", "correct-horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.VerifyPassword(ctx, "ops", "wrong-password")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = service.VerifyPassword(ctx, "nobody", "correct-horse")
	assert.ErrorIs(t, err, ErrNotFound)
}
