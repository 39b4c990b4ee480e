package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/casaflow/property-service/internal/models"
)

/* ───────────── public interface ───────────── */

type MaintenanceRequestRepository interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error)
	ListByUnitID(ctx context.Context, unitID uuid.UUID) ([]*models.MaintenanceRequest, error)
	ListByStatus(ctx context.Context, status models.MaintenanceStatus) ([]*models.MaintenanceRequest, error)

	Update(ctx context.Context, m *models.MaintenanceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type maintenanceRepo struct {
	db DB
}

func NewMaintenanceRequestRepository(db DB) MaintenanceRequestRepository {
	return &maintenanceRepo{db: db}
}

func (r *maintenanceRepo) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO maintenance_requests (
			id, unit_id, title, description, status, assigned_to,
			scheduled_date, completed_at, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW(), NOW())
	`, m.ID, m.UnitID, m.Title, m.Description, m.Status, m.AssignedTo,
		m.ScheduledDate, m.CompletedAt)
	return err
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error) {
	row := r.db.QueryRow(ctx, baseSelectMaintenance()+" WHERE id=$1", id)
	return scanMaintenance(row)
}

func (r *maintenanceRepo) ListByUnitID(ctx context.Context, unitID uuid.UUID) ([]*models.MaintenanceRequest, error) {
	rows, err := r.db.Query(ctx, baseSelectMaintenance()+" WHERE unit_id=$1 ORDER BY created_at", unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMaintenances(rows)
}

func (r *maintenanceRepo) ListByStatus(ctx context.Context, status models.MaintenanceStatus) ([]*models.MaintenanceRequest, error) {
	rows, err := r.db.Query(ctx, baseSelectMaintenance()+" WHERE status=$1 ORDER BY created_at", status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMaintenances(rows)
}

func (r *maintenanceRepo) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	_, err := r.db.Exec(ctx, `
		UPDATE maintenance_requests
		SET title=$1, description=$2, status=$3, assigned_to=$4,
		    scheduled_date=$5, completed_at=$6, updated_at=NOW()
		WHERE id=$7
	`, m.Title, m.Description, m.Status, m.AssignedTo,
		m.ScheduledDate, m.CompletedAt, m.ID)
	return err
}

func (r *maintenanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM maintenance_requests WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectMaintenance() string {
	return `
		SELECT id, unit_id, title, description, status, assigned_to,
		scheduled_date, completed_at, created_at, updated_at
		FROM maintenance_requests`
}

func scanMaintenance(row pgx.Row) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	if err := row.Scan(
		&m.ID, &m.UnitID, &m.Title, &m.Description, &m.Status, &m.AssignedTo,
		&m.ScheduledDate, &m.CompletedAt, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func scanMaintenances(rows pgx.Rows) ([]*models.MaintenanceRequest, error) {
	var out []*models.MaintenanceRequest
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
