package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buildzy/be-workforce/internal/apperr"
)

const uniqueViolation = "23505"

const manpowerCountSubquery = "(SELECT COUNT(*) FROM manpower m WHERE m.subcontractor_id = s.id)"
const equipmentCountSubquery = "(SELECT COUNT(*) FROM equipment e WHERE e.subcontractor_id = s.id)"

// SubcontractorFilter holds the optional listing filters for subcontractor
// profiles. Nil range bounds apply no restriction.
type SubcontractorFilter struct {
	Search       string
	MinManpower  *int
	MaxManpower  *int
	MinEquipment *int
	MaxEquipment *int
}

// SubcontractorRepository handles subcontractor profile data operations,
// including the two multi-statement lifecycle transactions: provisioning a
// paired identity + profile, and the ordered cascading deletion.
type SubcontractorRepository struct {
	db *pgxpool.Pool
}

func NewSubcontractorRepository(db *pgxpool.Pool) *SubcontractorRepository {
	return &SubcontractorRepository{db: db}
}

// List returns all profiles matching the filters, each carrying its manpower
// and equipment counts, ordered by company name.
func (r *SubcontractorRepository) List(ctx context.Context, filter SubcontractorFilter) ([]*Subcontractor, error) {
	where := NewWhere()

	if filter.Search != "" {
		where.Compare("s.company_name", "ILIKE", "%"+filter.Search+"%")
	}
	if filter.MinManpower != nil {
		where.Compare(manpowerCountSubquery, ">=", *filter.MinManpower)
	}
	if filter.MaxManpower != nil {
		where.Compare(manpowerCountSubquery, "<=", *filter.MaxManpower)
	}
	if filter.MinEquipment != nil {
		where.Compare(equipmentCountSubquery, ">=", *filter.MinEquipment)
	}
	if filter.MaxEquipment != nil {
		where.Compare(equipmentCountSubquery, "<=", *filter.MaxEquipment)
	}

	query := `
		SELECT s.id, s.user_id, u.username, s.company_name, s.contact_person, s.phone,
		       ` + manpowerCountSubquery + ` AS total_manpower,
		       ` + equipmentCountSubquery + ` AS total_equipment,
		       s.created_at
		FROM subcontractors s
		JOIN users u ON s.user_id = u.id
	` + where.SQL() + ` ORDER BY s.company_name ASC`

	rows, err := r.db.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to list subcontractors")
	}
	defer rows.Close()

	subs := make([]*Subcontractor, 0)
	for rows.Next() {
		sub := &Subcontractor{}
		err := rows.Scan(
			&sub.ID,
			&sub.UserID,
			&sub.Username,
			&sub.CompanyName,
			&sub.ContactPerson,
			&sub.Phone,
			&sub.TotalManpower,
			&sub.TotalEquipment,
			&sub.CreatedAt,
		)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to scan subcontractor row")
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to list subcontractors")
	}

	return subs, nil
}

// GetByUserID retrieves the profile owned by an identity.
func (r *SubcontractorRepository) GetByUserID(ctx context.Context, userID string) (*Subcontractor, error) {
	sub := &Subcontractor{}

	query := `
		SELECT s.id, s.user_id, u.username, s.company_name, s.contact_person, s.phone, s.created_at
		FROM subcontractors s
		JOIN users u ON s.user_id = u.id
		WHERE s.user_id = $1
	`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&sub.ID,
		&sub.UserID,
		&sub.Username,
		&sub.CompanyName,
		&sub.ContactPerson,
		&sub.Phone,
		&sub.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("subcontractor profile for user", userID)
	}
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to get subcontractor")
	}

	return sub, nil
}

// Provision atomically creates a subcontractor login identity and its profile.
// The username check and both inserts share one transaction; the unique
// constraint on users.username closes the window between two concurrent
// provisioning calls that both pass the check.
func (r *SubcontractorRepository) Provision(ctx context.Context, username, passwordHash, companyName string, contactPerson, phone *string) (*Subcontractor, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	var taken bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&taken)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to check username")
	}
	if taken {
		return nil, apperr.Conflict("Username already exists")
	}

	sub := &Subcontractor{Username: username, CompanyName: companyName}

	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, 'subcontractor') RETURNING id`,
		username, passwordHash,
	).Scan(&sub.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("Username already exists")
		}
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to create user")
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO subcontractors (user_id, company_name, contact_person, phone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, contact_person, phone, created_at`,
		sub.UserID, companyName, contactPerson, phone,
	).Scan(&sub.ID, &sub.ContactPerson, &sub.Phone, &sub.CreatedAt)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to create subcontractor")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to commit provisioning")
	}

	return sub, nil
}

// Update rewrites a profile's business fields.
func (r *SubcontractorRepository) Update(ctx context.Context, id, companyName string, contactPerson, phone *string) (*Subcontractor, error) {
	sub := &Subcontractor{ID: id}

	query := `
		UPDATE subcontractors
		SET company_name = $1, contact_person = $2, phone = $3
		WHERE id = $4
		RETURNING user_id, company_name, contact_person, phone, created_at
	`

	err := r.db.QueryRow(ctx, query, companyName, contactPerson, phone, id).Scan(
		&sub.UserID,
		&sub.CompanyName,
		&sub.ContactPerson,
		&sub.Phone,
		&sub.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("subcontractor", id)
	}
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to update subcontractor")
	}

	err = r.db.QueryRow(ctx, `SELECT username FROM users WHERE id = $1`, sub.UserID).Scan(&sub.Username)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to load subcontractor username")
	}

	return sub, nil
}

// DeleteCascade removes a profile and every dependent row in one transaction.
// The schema carries no referential actions, so the deletion order is a hard
// invariant: facts before their subjects, children before parents, identity
// last. A failure at any step rolls the whole sequence back.
func (r *SubcontractorRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	var userID string
	err = tx.QueryRow(ctx, `SELECT user_id FROM subcontractors WHERE id = $1`, id).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("subcontractor", id)
	}
	if err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "failed to resolve subcontractor identity")
	}

	steps := []struct {
		desc  string
		query string
		arg   string
	}{
		{"delete attendance", `DELETE FROM attendance WHERE manpower_id IN (SELECT id FROM manpower WHERE subcontractor_id = $1)`, id},
		{"delete manpower", `DELETE FROM manpower WHERE subcontractor_id = $1`, id},
		{"delete equipment status", `DELETE FROM equipment_status WHERE equipment_id IN (SELECT id FROM equipment WHERE subcontractor_id = $1)`, id},
		{"delete equipment", `DELETE FROM equipment WHERE subcontractor_id = $1`, id},
		{"delete subcontractor", `DELETE FROM subcontractors WHERE id = $1`, id},
		{"delete user", `DELETE FROM users WHERE id = $1`, userID},
	}

	for _, step := range steps {
		if _, err := tx.Exec(ctx, step.query, step.arg); err != nil {
			return apperr.Wrap(err, apperr.CodeInternal, "failed to "+step.desc)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "failed to commit cascading delete")
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
