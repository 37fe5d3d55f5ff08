package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buildzy/be-workforce/internal/apperr"
)

// metricsQueryAll computes the six dashboard counters across every profile.
// The today-counters count stored facts only, so an unmarked subject counts
// toward neither side.
const metricsQueryAll = `
	SELECT
		(SELECT COUNT(*) FROM manpower),
		(SELECT COUNT(*) FROM attendance a
			WHERE a.date = CURRENT_DATE AND a.status = 'present'),
		(SELECT COUNT(*) FROM attendance a
			WHERE a.date = CURRENT_DATE AND a.status = 'absent'),
		(SELECT COUNT(*) FROM equipment),
		(SELECT COUNT(*) FROM equipment_status es
			WHERE es.date = CURRENT_DATE AND es.status = 'deployed'),
		(SELECT COUNT(*) FROM equipment_status es
			WHERE es.date = CURRENT_DATE AND es.status = 'under_repair')
`

// metricsQueryScoped computes the same counters restricted to the profile
// owned by the identity bound to $1.
const metricsQueryScoped = `
	SELECT
		(SELECT COUNT(*) FROM manpower m
			JOIN subcontractors s ON m.subcontractor_id = s.id
			WHERE s.user_id = $1),
		(SELECT COUNT(*) FROM attendance a
			JOIN manpower m ON a.manpower_id = m.id
			JOIN subcontractors s ON m.subcontractor_id = s.id
			WHERE a.date = CURRENT_DATE AND a.status = 'present' AND s.user_id = $1),
		(SELECT COUNT(*) FROM attendance a
			JOIN manpower m ON a.manpower_id = m.id
			JOIN subcontractors s ON m.subcontractor_id = s.id
			WHERE a.date = CURRENT_DATE AND a.status = 'absent' AND s.user_id = $1),
		(SELECT COUNT(*) FROM equipment e
			JOIN subcontractors s ON e.subcontractor_id = s.id
			WHERE s.user_id = $1),
		(SELECT COUNT(*) FROM equipment_status es
			JOIN equipment e ON es.equipment_id = e.id
			JOIN subcontractors s ON e.subcontractor_id = s.id
			WHERE es.date = CURRENT_DATE AND es.status = 'deployed' AND s.user_id = $1),
		(SELECT COUNT(*) FROM equipment_status es
			JOIN equipment e ON es.equipment_id = e.id
			JOIN subcontractors s ON e.subcontractor_id = s.id
			WHERE es.date = CURRENT_DATE AND es.status = 'under_repair' AND s.user_id = $1)
`

// DashboardRepository computes the scoped dashboard counters.
type DashboardRepository struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Metrics returns the six counters visible under scope in one read.
func (r *DashboardRepository) Metrics(ctx context.Context, scope Scope) (*DashboardMetrics, error) {
	query := metricsQueryAll
	args := []any{}
	if scope.Kind == ScopeIdentity {
		query = metricsQueryScoped
		args = append(args, scope.IdentityID)
	}

	metrics := &DashboardMetrics{}
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&metrics.TotalManpower,
		&metrics.PresentManpower,
		&metrics.AbsentManpower,
		&metrics.TotalEquipment,
		&metrics.DeployedEquipment,
		&metrics.UnderRepairEquipment,
	)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to compute dashboard metrics")
	}

	return metrics, nil
}
