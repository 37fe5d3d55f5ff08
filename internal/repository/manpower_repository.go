package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buildzy/be-workforce/internal/apperr"
)

// ManpowerFilter holds the optional listing filters. Empty or "all" values
// apply no restriction.
type ManpowerFilter struct {
	Search           string
	ApprovalStatus   string
	AttendanceStatus string
}

// ManpowerRepository handles workforce member data operations.
type ManpowerRepository struct {
	db *pgxpool.Pool
}

func NewManpowerRepository(db *pgxpool.Pool) *ManpowerRepository {
	return &ManpowerRepository{db: db}
}

// List returns the members visible under scope that match all supplied
// filters, each annotated with today's attendance, newest first.
func (r *ManpowerRepository) List(ctx context.Context, scope Scope, filter ManpowerFilter) ([]*ManpowerItem, error) {
	where := NewWhere()
	scope.apply(where, "s.user_id", "m.subcontractor_id")

	if filter.Search != "" {
		where.Compare("m.name", "ILIKE", "%"+filter.Search+"%")
	}
	if filter.ApprovalStatus != "" && filter.ApprovalStatus != "all" {
		where.Compare("m.approval_status", "=", filter.ApprovalStatus)
	}
	if filter.AttendanceStatus != "" && filter.AttendanceStatus != "all" {
		if filter.AttendanceStatus == AttendanceNotMarked {
			// Not marked means no attendance row for today, not a stored value.
			where.Clause("a.status IS NULL")
		} else {
			where.Compare("a.status", "=", filter.AttendanceStatus)
		}
	}

	query := `
		SELECT m.id, s.user_id, m.name, m.approval_status, a.status, m.created_at
		FROM manpower m
		JOIN subcontractors s ON m.subcontractor_id = s.id
		LEFT JOIN attendance a ON a.manpower_id = m.id AND a.date = CURRENT_DATE
	` + where.SQL() + ` ORDER BY m.created_at DESC`

	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to list manpower")
	}
	defer rows.Close()

	items := make([]*ManpowerItem, 0)
	for rows.Next() {
		item := &ManpowerItem{}
		var attendance *string
		err := rows.Scan(
			&item.ID,
			&item.OwnerUserID,
			&item.Name,
			&item.ApprovalStatus,
			&attendance,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to scan manpower row")
		}

		item.AttendanceStatus = AttendanceNotMarked
		if attendance != nil {
			item.AttendanceStatus = *attendance
		}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to list manpower")
	}

	return items, nil
}

// Create inserts a workforce member under the given profile with a pending
// approval status.
func (r *ManpowerRepository) Create(ctx context.Context, subcontractorID, name string) (*ManpowerItem, error) {
	item := &ManpowerItem{
		Name:             name,
		AttendanceStatus: AttendanceNotMarked,
	}

	query := `
		INSERT INTO manpower (subcontractor_id, name, approval_status)
		VALUES ($1, $2, $3)
		RETURNING id, approval_status, created_at
	`

	err := r.db.QueryRow(ctx, query, subcontractorID, name, ApprovalPending).
		Scan(&item.ID, &item.ApprovalStatus, &item.CreatedAt)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to create manpower")
	}

	return item, nil
}

// SetApproval updates a member's approval status.
func (r *ManpowerRepository) SetApproval(ctx context.Context, id, status string) error {
	query := `UPDATE manpower SET approval_status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "failed to update manpower approval")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("manpower", id)
	}

	return nil
}

// UpsertAttendance writes today's attendance fact for a member. A single
// atomic upsert: a second write for the same day replaces the stored status.
func (r *ManpowerRepository) UpsertAttendance(ctx context.Context, id, status string) error {
	query := `
		INSERT INTO attendance (manpower_id, date, status)
		VALUES ($1, CURRENT_DATE, $2)
		ON CONFLICT (manpower_id, date)
		DO UPDATE SET status = EXCLUDED.status
	`

	if _, err := r.db.Exec(ctx, query, id, status); err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "failed to upsert attendance")
	}

	return nil
}

// OwnerID resolves the identity id owning a member.
func (r *ManpowerRepository) OwnerID(ctx context.Context, id string) (string, error) {
	query := `
		SELECT s.user_id
		FROM manpower m
		JOIN subcontractors s ON m.subcontractor_id = s.id
		WHERE m.id = $1
	`

	var ownerID string
	err := r.db.QueryRow(ctx, query, id).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperr.NotFound("manpower", id)
	}
	if err != nil {
		return "", apperr.Wrap(err, apperr.CodeInternal, "failed to resolve manpower owner")
	}

	return ownerID, nil
}
