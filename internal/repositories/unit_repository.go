package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/casaflow/property-service/internal/models"
)

/* ───────────── public interface ───────────── */

type UnitRepository interface {
	Create(ctx context.Context, u *models.Unit) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Unit, error)
	ListByPropertyIDAndStatus(ctx context.Context, propID uuid.UUID, status models.UnitStatus) ([]*models.Unit, error)

	Update(ctx context.Context, u *models.Unit) error
	UpdateIfVersion(ctx context.Context, u *models.Unit, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Unit) error) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPropertyID(ctx context.Context, propID uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type unitRepo struct {
	*BaseVersionedRepo[*models.Unit]
	db DB
}

func NewUnitRepository(db DB) UnitRepository {
	r := &unitRepo{db: db}
	selectStmt := baseSelectUnit() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanUnit)
	return r
}

/* ---------- create ---------- */

func (r *unitRepo) Create(ctx context.Context, u *models.Unit) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO units (
			id, property_id, unit_number, status, rent_amount,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5, NOW(), NOW(), 1)
	`, u.ID, u.PropertyID, u.UnitNumber, u.Status, u.RentAmount)
	return err
}

/* ---------- reads ---------- */

func (r *unitRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *unitRepo) ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" WHERE property_id=$1 ORDER BY unit_number", propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUnits(rows)
}

func (r *unitRepo) ListByPropertyIDAndStatus(ctx context.Context, propID uuid.UUID, status models.UnitStatus) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" WHERE property_id=$1 AND status=$2 ORDER BY unit_number", propID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUnits(rows)
}

/* ---------- update / delete ---------- */

func (r *unitRepo) Update(ctx context.Context, u *models.Unit) error {
	_, err := r.update(ctx, u, false, 0)
	return err
}

func (r *unitRepo) UpdateIfVersion(ctx context.Context, u *models.Unit, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, u, true, expected)
}

func (r *unitRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Unit) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *unitRepo) update(ctx context.Context, u *models.Unit, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE units
		SET unit_number=$1, status=$2, rent_amount=$3, updated_at=NOW()
	`
	args := []any{u.UnitNumber, u.Status, u.RentAmount}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$4 AND row_version=$5`
		args = append(args, u.ID, expected)
	} else {
		sql += ` WHERE id=$4`
		args = append(args, u.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *unitRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM units WHERE id=$1`, id)
	return err
}

func (r *unitRepo) DeleteByPropertyID(ctx context.Context, propID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM units WHERE property_id=$1`, propID)
	return err
}

/* ---------- internals ---------- */

func baseSelectUnit() string {
	return `
		SELECT id, property_id, unit_number, status, rent_amount,
		created_at, updated_at, row_version
		FROM units`
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	var u models.Unit
	if err := row.Scan(
		&u.ID, &u.PropertyID, &u.UnitNumber, &u.Status, &u.RentAmount,
		&u.CreatedAt, &u.UpdatedAt, &u.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func scanUnits(rows pgx.Rows) ([]*models.Unit, error) {
	var out []*models.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
