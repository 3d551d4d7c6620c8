package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/adminuser"
)

// AdminService manages the privileged accounts created from the CLI.
type AdminService struct {
	client *ent.Client
}

// NewAdminService creates a new AdminService
func NewAdminService(client *ent.Client) *AdminService {
	return &AdminService{client: client}
}

// CreateAdmin upserts an admin account by username. Returns true when a new
// account was created, false when an existing one had its email and
// password refreshed.
func (s *AdminService) CreateAdmin(ctx context.Context, username, email, password string) (bool, error) {
	if username == "" {
		return false, NewValidationError("username", "required")
	}
	if len(password) < 8 {
		return false, NewValidationError("password", "must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	existing, err := s.client.AdminUser.Query().
		Where(adminuser.UsernameEQ(username)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}

	if existing != nil {
		if err := existing.Update().
			SetEmail(email).
			SetPasswordHash(string(hash)).
			Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to update admin: %w", err)
		}
		return false, nil
	}

	if err := s.client.AdminUser.Create().
		SetID(uuid.NewString()).
		SetUsername(username).
		SetEmail(email).
		SetPasswordHash(string(hash)).
		SetIsSuperuser(true).
		Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}
	return true, nil
}

// VerifyPassword checks a username/password pair against the stored hash.
func (s *AdminService) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	admin, err := s.client.AdminUser.Query().
		Where(adminuser.UsernameEQ(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
