package usecase

import (
	"context"
	"log/slog"
	"strings"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

// StaffService manages waiter accounts.
type StaffService struct {
	repo ports.RestaurantRepository
	log  *slog.Logger
}

func NewStaffService(repo ports.RestaurantRepository, log *slog.Logger) *StaffService {
	return &StaffService{repo: repo, log: log}
}

// List returns all staff members.
func (s *StaffService) List(ctx context.Context) ([]domain.Staff, error) {
	staff, err := s.repo.ListStaff(ctx)
	if err != nil {
		return nil, err
	}
	for i := range staff {
		staff[i].Shift.Days = nonNil(staff[i].Shift.Days)
	}
	return staff, nil
}

// Create adds a staff member and returns the new id.
func (s *StaffService) Create(ctx context.Context, staff domain.Staff) (string, error) {
	staff.Username = strings.TrimSpace(staff.Username)
	switch {
	case strings.TrimSpace(staff.Name) == "":
		return "", domain.NewValidationError("name", "required")
	case staff.Username == "":
		return "", domain.NewValidationError("username", "required")
	case staff.Password == "":
		return "", domain.NewValidationError("password", "required")
	case staff.Shift.Start == "" || staff.Shift.End == "":
		return "", domain.NewValidationError("shift", "start and end required")
	}
	if staff.Status == "" {
		staff.Status = domain.StaffActive
	}
	if !staff.Status.Valid() {
		return "", domain.NewValidationError("status", "unknown status")
	}
	staff.Shift.Days = nonNil(staff.Shift.Days)

	id, err := s.repo.CreateStaff(ctx, staff)
	if err != nil {
		return "", err
	}
	s.log.InfoContext(ctx, "staff created", "staff_id", id, "username", staff.Username)
	return id, nil
}
