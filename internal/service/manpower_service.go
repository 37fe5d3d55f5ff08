package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
	"github.com/buildzy/be-workforce/internal/auth"
	"github.com/buildzy/be-workforce/internal/repository"
)

// ManpowerService handles workforce member business logic.
type ManpowerService struct {
	repo    *repository.ManpowerRepository
	subRepo *repository.SubcontractorRepository
	log     zerolog.Logger
}

func NewManpowerService(
	repo *repository.ManpowerRepository,
	subRepo *repository.SubcontractorRepository,
	log zerolog.Logger,
) *ManpowerService {
	return &ManpowerService{
		repo:    repo,
		subRepo: subRepo,
		log:     log,
	}
}

// List returns the members visible to the principal, filtered. An admin may
// pass targetProfileID to drill into one profile; a subcontractor's scope is
// always its own profile.
func (s *ManpowerService) List(ctx context.Context, p auth.Principal, targetProfileID string, filter repository.ManpowerFilter) ([]*repository.ManpowerItem, error) {
	scope := ResolveScope(p, targetProfileID)

	items, err := s.repo.List(ctx, scope, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list manpower: %w", err)
	}

	return items, nil
}

// Create registers a workforce member under the caller's own profile with a
// pending approval status.
func (s *ManpowerService) Create(ctx context.Context, p auth.Principal, name string) (*repository.ManpowerItem, error) {
	if name == "" {
		return nil, apperr.Validation("Name is required")
	}

	sub, err := s.subRepo.GetByUserID(ctx, p.ID)
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return nil, apperr.Forbidden("Only subcontractors can add manpower")
		}
		return nil, fmt.Errorf("failed to resolve caller profile: %w", err)
	}

	item, err := s.repo.Create(ctx, sub.ID, name)
	if err != nil {
		s.log.Error().Err(err).Str("subcontractor_id", sub.ID).Msg("Failed to create manpower")
		return nil, fmt.Errorf("failed to create manpower: %w", err)
	}
	item.OwnerUserID = p.ID

	s.log.Info().
		Str("manpower_id", item.ID).
		Str("subcontractor_id", sub.ID).
		Msg("Manpower created")
	return item, nil
}

// SetApproval moves a member to approved or rejected. Transitions may be
// repeated; there is no state machine guarding re-approval.
func (s *ManpowerService) SetApproval(ctx context.Context, id, status string) error {
	if status != repository.ApprovalApproved && status != repository.ApprovalRejected {
		return apperr.Validation("Invalid status")
	}

	if err := s.repo.SetApproval(ctx, id, status); err != nil {
		return err
	}

	s.log.Info().Str("manpower_id", id).Str("status", status).Msg("Manpower approval updated")
	return nil
}

// MarkAttendance upserts today's attendance fact for a member. A subcontractor
// may only mark members under its own profile.
func (s *ManpowerService) MarkAttendance(ctx context.Context, p auth.Principal, id, status string) error {
	if status != repository.AttendancePresent && status != repository.AttendanceAbsent {
		return apperr.Validation("Invalid status")
	}

	if p.Role == auth.RoleSubcontractor {
		ownerID, err := s.repo.OwnerID(ctx, id)
		if err != nil {
			return err
		}
		if ownerID != p.ID {
			s.log.Warn().
				Str("manpower_id", id).
				Str("user_id", p.ID).
				Msg("Attendance update rejected for foreign manpower")
			return apperr.Forbidden("Cannot update another subcontractor's manpower")
		}
	}

	if err := s.repo.UpsertAttendance(ctx, id, status); err != nil {
		return err
	}

	s.log.Info().Str("manpower_id", id).Str("status", status).Msg("Attendance marked")
	return nil
}
