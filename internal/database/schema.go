// Package database owns the storage schema. The two fact tables carry the
// uniqueness constraint backing the one-fact-per-day upserts; the tables carry
// no referential actions, so subtree removal is handled entirely by the
// cascading deletion in the repository layer.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('admin', 'subcontractor')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS subcontractors (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE,
		company_name TEXT NOT NULL,
		contact_person TEXT,
		phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS manpower (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		subcontractor_id UUID NOT NULL,
		name TEXT NOT NULL,
		approval_status TEXT NOT NULL DEFAULT 'pending'
			CHECK (approval_status IN ('pending', 'approved', 'rejected')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS equipment (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		subcontractor_id UUID NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'General Equipment',
		approval_status TEXT NOT NULL DEFAULT 'pending'
			CHECK (approval_status IN ('pending', 'approved', 'rejected')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		manpower_id UUID NOT NULL,
		date DATE NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('present', 'absent')),
		UNIQUE (manpower_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS equipment_status (
		equipment_id UUID NOT NULL,
		date DATE NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('deployed', 'non_deployed', 'under_repair')),
		UNIQUE (equipment_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subcontractors_user_id ON subcontractors (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_manpower_subcontractor_id ON manpower (subcontractor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_equipment_subcontractor_id ON equipment (subcontractor_id)`,
}

// Bootstrap creates the schema if it does not exist yet.
func Bootstrap(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
