package usecase

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

// AuthService handles staff and admin login.
type AuthService struct {
	repo          ports.RestaurantRepository
	log           *slog.Logger
	adminUsername string
	adminPassword string
}

func NewAuthService(repo ports.RestaurantRepository, log *slog.Logger, adminUsername, adminPassword string) *AuthService {
	return &AuthService{
		repo:          repo,
		log:           log,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Login checks the admin credentials first, then active staff accounts.
// Both are plaintext matches: the admin is a single shared superuser
// account (admin/admin123 unless overridden) and staff passwords are stored
// unhashed. Neither has lockout or rate limiting.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Identity, error) {
	if username == "" || password == "" {
		return nil, domain.NewUnauthorizedError("invalid credentials")
	}

	if s.adminPassword != "" && equal(username, s.adminUsername) && equal(password, s.adminPassword) {
		id := domain.AdminIdentity
		return &id, nil
	}

	staff, err := s.repo.FindActiveStaffByCredentials(ctx, username, password)
	if err != nil {
		if domain.IsNotFound(err) {
			s.log.InfoContext(ctx, "login rejected", "username", username)
			return nil, domain.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	return &domain.Identity{ID: staff.ID, Name: staff.Name, Role: domain.RoleWaiter}, nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
