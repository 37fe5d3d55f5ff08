package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/auth"
	"github.com/buildzy/be-workforce/internal/repository"
)

// DashboardService computes the scoped dashboard counters.
type DashboardService struct {
	repo *repository.DashboardRepository
	log  zerolog.Logger
}

func NewDashboardService(repo *repository.DashboardRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, log: log}
}

// Metrics returns the six counters visible to the principal.
func (s *DashboardService) Metrics(ctx context.Context, p auth.Principal) (*repository.DashboardMetrics, error) {
	metrics, err := s.repo.Metrics(ctx, ResolveScope(p, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to compute metrics: %w", err)
	}

	return metrics, nil
}
