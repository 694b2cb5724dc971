package usecase

import (
	"context"
	"log/slog"

	"restaurant/src/core/ports"
)

// HealthService checks the application's dependencies.
type HealthService struct {
	repo ports.RestaurantRepository
	log  *slog.Logger
}

// NewHealthService creates a new HealthService.
func NewHealthService(repo ports.RestaurantRepository, log *slog.Logger) *HealthService {
	return &HealthService{
		repo: repo,
		log:  log,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Pool    *ports.StorageStats `json:"pool,omitempty"`
}

// Check performs a health check of all application components.
// Returns the overall health status.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	stats := s.repo.Stats()
	if err := s.repo.Health(ctx); err != nil {
		s.log.WarnContext(ctx, "database health check failed", "error", err)
		status.Status = "degraded"
		status.Components["database"] = ComponentHealth{
			Status:  "unhealthy",
			Message: err.Error(),
			Pool:    &stats,
		}
	} else {
		status.Components["database"] = ComponentHealth{Status: "healthy", Pool: &stats}
	}

	return status
}
