package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
	"github.com/buildzy/be-workforce/internal/auth"
	"github.com/buildzy/be-workforce/internal/repository"
)

// EquipmentService handles equipment unit business logic.
type EquipmentService struct {
	repo    *repository.EquipmentRepository
	subRepo *repository.SubcontractorRepository
	log     zerolog.Logger
}

func NewEquipmentService(
	repo *repository.EquipmentRepository,
	subRepo *repository.SubcontractorRepository,
	log zerolog.Logger,
) *EquipmentService {
	return &EquipmentService{
		repo:    repo,
		subRepo: subRepo,
		log:     log,
	}
}

// List returns the units visible to the principal, filtered.
func (s *EquipmentService) List(ctx context.Context, p auth.Principal, targetProfileID string, filter repository.EquipmentFilter) ([]*repository.EquipmentItem, error) {
	scope := ResolveScope(p, targetProfileID)

	items, err := s.repo.List(ctx, scope, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	return items, nil
}

// Create registers an equipment unit under the caller's own profile with a
// pending approval status. An omitted type falls back to the default category.
func (s *EquipmentService) Create(ctx context.Context, p auth.Principal, name, equipmentType string) (*repository.EquipmentItem, error) {
	if name == "" {
		return nil, apperr.Validation("Name is required")
	}
	if equipmentType == "" {
		equipmentType = repository.EquipmentDefaultType
	}

	sub, err := s.subRepo.GetByUserID(ctx, p.ID)
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return nil, apperr.Forbidden("Only subcontractors can add equipment")
		}
		return nil, fmt.Errorf("failed to resolve caller profile: %w", err)
	}

	item, err := s.repo.Create(ctx, sub.ID, name, equipmentType)
	if err != nil {
		s.log.Error().Err(err).Str("subcontractor_id", sub.ID).Msg("Failed to create equipment")
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}
	item.OwnerUserID = p.ID

	s.log.Info().
		Str("equipment_id", item.ID).
		Str("subcontractor_id", sub.ID).
		Msg("Equipment created")
	return item, nil
}

// SetApproval moves a unit to approved or rejected.
func (s *EquipmentService) SetApproval(ctx context.Context, id, status string) error {
	if status != repository.ApprovalApproved && status != repository.ApprovalRejected {
		return apperr.Validation("Invalid status")
	}

	if err := s.repo.SetApproval(ctx, id, status); err != nil {
		return err
	}

	s.log.Info().Str("equipment_id", id).Str("status", status).Msg("Equipment approval updated")
	return nil
}

// SetStatus upserts today's deployment fact for a unit. A subcontractor may
// only update units under its own profile.
func (s *EquipmentService) SetStatus(ctx context.Context, p auth.Principal, id, status string) error {
	switch status {
	case repository.DeploymentDeployed, repository.DeploymentNonDeployed, repository.DeploymentUnderRepair:
	default:
		return apperr.Validation("Invalid status")
	}

	if p.Role == auth.RoleSubcontractor {
		ownerID, err := s.repo.OwnerID(ctx, id)
		if err != nil {
			return err
		}
		if ownerID != p.ID {
			s.log.Warn().
				Str("equipment_id", id).
				Str("user_id", p.ID).
				Msg("Status update rejected for foreign equipment")
			return apperr.Forbidden("Cannot update another subcontractor's equipment")
		}
	}

	if err := s.repo.UpsertStatus(ctx, id, status); err != nil {
		return err
	}

	s.log.Info().Str("equipment_id", id).Str("status", status).Msg("Equipment status marked")
	return nil
}
