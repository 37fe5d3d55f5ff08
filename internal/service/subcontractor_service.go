package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
	"github.com/buildzy/be-workforce/internal/repository"
	"github.com/buildzy/be-workforce/pkg/password"
)

// SubcontractorService handles subcontractor account lifecycle: provisioning
// the paired identity + profile, profile updates, and the cascading deletion
// of a profile's entire dependent subtree.
type SubcontractorService struct {
	repo *repository.SubcontractorRepository
	log  zerolog.Logger
}

func NewSubcontractorService(repo *repository.SubcontractorRepository, log zerolog.Logger) *SubcontractorService {
	return &SubcontractorService{repo: repo, log: log}
}

// List returns all profiles with dependent counts, filtered.
func (s *SubcontractorService) List(ctx context.Context, filter repository.SubcontractorFilter) ([]*repository.Subcontractor, error) {
	subs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcontractors: %w", err)
	}

	return subs, nil
}

// Provision atomically creates a subcontractor login identity and profile.
// The credential is hashed before it reaches storage.
func (s *SubcontractorService) Provision(ctx context.Context, username, plainPassword, companyName string, contactPerson, phone *string) (*repository.Subcontractor, error) {
	if username == "" || plainPassword == "" || companyName == "" {
		return nil, apperr.Validation("Username, password and company name are required")
	}

	s.log.Info().Str("username", username).Str("company", companyName).Msg("Provisioning subcontractor")

	passwordHash, err := password.Hash(plainPassword, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	sub, err := s.repo.Provision(ctx, username, passwordHash, companyName, contactPerson, phone)
	if err != nil {
		if apperr.CodeOf(err) != apperr.CodeConflict {
			s.log.Error().Err(err).Str("username", username).Msg("Failed to provision subcontractor")
		}
		return nil, err
	}

	s.log.Info().
		Str("subcontractor_id", sub.ID).
		Str("user_id", sub.UserID).
		Msg("Subcontractor provisioned")
	return sub, nil
}

// Update rewrites a profile's business fields.
func (s *SubcontractorService) Update(ctx context.Context, id, companyName string, contactPerson, phone *string) (*repository.Subcontractor, error) {
	if companyName == "" {
		return nil, apperr.Validation("Company name is required")
	}

	sub, err := s.repo.Update(ctx, id, companyName, contactPerson, phone)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("subcontractor_id", id).Msg("Subcontractor updated")
	return sub, nil
}

// Delete removes a profile and everything referencing it, identity included,
// in one all-or-nothing transaction.
func (s *SubcontractorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		if apperr.CodeOf(err) != apperr.CodeNotFound {
			s.log.Error().Err(err).Str("subcontractor_id", id).Msg("Cascading delete failed, rolled back")
		}
		return err
	}

	s.log.Info().Str("subcontractor_id", id).Msg("Subcontractor deleted")
	return nil
}
