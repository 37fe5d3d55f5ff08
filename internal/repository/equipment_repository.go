package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buildzy/be-workforce/internal/apperr"
)

// EquipmentFilter holds the optional listing filters. Empty or "all" values
// apply no restriction.
type EquipmentFilter struct {
	Search           string
	ApprovalStatus   string
	DeploymentStatus string
}

// EquipmentRepository handles equipment unit data operations.
type EquipmentRepository struct {
	db *pgxpool.Pool
}

func NewEquipmentRepository(db *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// List returns the units visible under scope that match all supplied filters,
// each annotated with today's deployment status, newest first.
func (r *EquipmentRepository) List(ctx context.Context, scope Scope, filter EquipmentFilter) ([]*EquipmentItem, error) {
	where := NewWhere()
	scope.apply(where, "s.user_id", "e.subcontractor_id")

	if filter.Search != "" {
		where.Compare("e.name", "ILIKE", "%"+filter.Search+"%")
	}
	if filter.ApprovalStatus != "" && filter.ApprovalStatus != "all" {
		where.Compare("e.approval_status", "=", filter.ApprovalStatus)
	}
	if filter.DeploymentStatus != "" && filter.DeploymentStatus != "all" {
		if filter.DeploymentStatus == DeploymentNonDeployed {
			// Non-deployed matches both the absence of a fact for today and an
			// explicitly stored non_deployed fact.
			where.Clause("(es.status IS NULL OR es.status = 'non_deployed')")
		} else {
			where.Compare("es.status", "=", filter.DeploymentStatus)
		}
	}

	query := `
		SELECT e.id, s.user_id, e.name, e.type, e.approval_status, es.status, e.created_at
		FROM equipment e
		JOIN subcontractors s ON e.subcontractor_id = s.id
		LEFT JOIN equipment_status es ON es.equipment_id = e.id AND es.date = CURRENT_DATE
	` + where.SQL() + ` ORDER BY e.created_at DESC`

	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to list equipment")
	}
	defer rows.Close()

	items := make([]*EquipmentItem, 0)
	for rows.Next() {
		item := &EquipmentItem{}
		var deployment *string
		err := rows.Scan(
			&item.ID,
			&item.OwnerUserID,
			&item.Name,
			&item.Type,
			&item.ApprovalStatus,
			&deployment,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to scan equipment row")
		}

		item.DeploymentStatus = DeploymentNonDeployed
		if deployment != nil {
			item.DeploymentStatus = *deployment
		}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to list equipment")
	}

	return items, nil
}

// Create inserts an equipment unit under the given profile with a pending
// approval status.
func (r *EquipmentRepository) Create(ctx context.Context, subcontractorID, name, equipmentType string) (*EquipmentItem, error) {
	item := &EquipmentItem{
		Name:             name,
		Type:             equipmentType,
		DeploymentStatus: DeploymentNonDeployed,
	}

	query := `
		INSERT INTO equipment (subcontractor_id, name, type, approval_status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, approval_status, created_at
	`

	err := r.db.QueryRow(ctx, query, subcontractorID, name, equipmentType, ApprovalPending).
		Scan(&item.ID, &item.ApprovalStatus, &item.CreatedAt)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to create equipment")
	}

	return item, nil
}

// SetApproval updates a unit's approval status.
func (r *EquipmentRepository) SetApproval(ctx context.Context, id, status string) error {
	query := `UPDATE equipment SET approval_status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "failed to update equipment approval")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("equipment", id)
	}

	return nil
}

// UpsertStatus writes today's deployment fact for a unit. A single atomic
// upsert: a second write for the same day replaces the stored status.
func (r *EquipmentRepository) UpsertStatus(ctx context.Context, id, status string) error {
	query := `
		INSERT INTO equipment_status (equipment_id, date, status)
		VALUES ($1, CURRENT_DATE, $2)
		ON CONFLICT (equipment_id, date)
		DO UPDATE SET status = EXCLUDED.status
	`

	if _, err := r.db.Exec(ctx, query, id, status); err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "failed to upsert equipment status")
	}

	return nil
}

// OwnerID resolves the identity id owning a unit.
func (r *EquipmentRepository) OwnerID(ctx context.Context, id string) (string, error) {
	query := `
		SELECT s.user_id
		FROM equipment e
		JOIN subcontractors s ON e.subcontractor_id = s.id
		WHERE e.id = $1
	`

	var ownerID string
	err := r.db.QueryRow(ctx, query, id).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperr.NotFound("equipment", id)
	}
	if err != nil {
		return "", apperr.Wrap(err, apperr.CodeInternal, "failed to resolve equipment owner")
	}

	return ownerID, nil
}
