package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

// ReservationService handles bookings.
type ReservationService struct {
	repo ports.RestaurantRepository
	log  *slog.Logger
}

func NewReservationService(repo ports.RestaurantRepository, log *slog.Logger) *ReservationService {
	return &ReservationService{repo: repo, log: log}
}

// List returns all reservations.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	rs, err := s.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rs {
		rs[i].PreOrderItems = nonNil(rs[i].PreOrderItems)
	}
	return rs, nil
}

// Create books a reservation. Date is YYYY-MM-DD and time is HH:MM.
func (s *ReservationService) Create(ctx context.Context, r ports.NewReservation) (string, error) {
	if strings.TrimSpace(r.CustomerName) == "" {
		return "", domain.NewValidationError("customerName", "required")
	}
	if r.Guests <= 0 {
		return "", domain.NewValidationError("guests", "must be positive")
	}
	if _, err := time.Parse(time.DateOnly, r.Date); err != nil {
		return "", domain.NewValidationError("date", "expected YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		return "", domain.NewValidationError("time", "expected HH:MM")
	}
	r.PreOrderItems = nonNil(r.PreOrderItems)

	id, err := s.repo.CreateReservation(ctx, r)
	if err != nil {
		return "", err
	}
	s.log.InfoContext(ctx, "reservation created", "reservation_id", id, "date", r.Date, "guests", r.Guests)
	return id, nil
}

// UpdateStatus moves a reservation to status.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	if !status.Valid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return s.repo.UpdateReservationStatus(ctx, id, status)
}
