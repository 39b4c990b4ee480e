package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/casaflow/property-service/internal/models"
)

/* ───────────── public interface ───────────── */

type TenantRepository interface {
	Create(ctx context.Context, t *models.Tenant) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	GetByUnitID(ctx context.Context, unitID uuid.UUID) (*models.Tenant, error)
	List(ctx context.Context) ([]*models.Tenant, error)

	Update(ctx context.Context, t *models.Tenant) error
	UpdateIfVersion(ctx context.Context, t *models.Tenant, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Tenant) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type tenantRepo struct {
	*BaseVersionedRepo[*models.Tenant]
	db DB
}

func NewTenantRepository(db DB) TenantRepository {
	r := &tenantRepo{db: db}
	selectStmt := baseSelectTenant() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanTenant)
	return r
}

/* ---------- create ---------- */

func (r *tenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tenants (
			id, full_name, email, phone_number, unit_id,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5, NOW(), NOW(), 1)
	`, t.ID, t.FullName, t.Email, t.PhoneNumber, t.UnitID)
	return err
}

/* ---------- reads ---------- */

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *tenantRepo) GetByUnitID(ctx context.Context, unitID uuid.UUID) (*models.Tenant, error) {
	row := r.db.QueryRow(ctx, baseSelectTenant()+" WHERE unit_id=$1 LIMIT 1", unitID)
	return scanTenant(row)
}

func (r *tenantRepo) List(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant()+" ORDER BY full_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

/* ---------- update / delete ---------- */

func (r *tenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	_, err := r.update(ctx, t, false, 0)
	return err
}

func (r *tenantRepo) UpdateIfVersion(ctx context.Context, t *models.Tenant, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, t, true, expected)
}

func (r *tenantRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Tenant) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *tenantRepo) update(ctx context.Context, t *models.Tenant, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE tenants
		SET full_name=$1, email=$2, phone_number=$3, unit_id=$4, updated_at=NOW()
	`
	args := []any{t.FullName, t.Email, t.PhoneNumber, t.UnitID}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$5 AND row_version=$6`
		args = append(args, t.ID, expected)
	} else {
		sql += ` WHERE id=$5`
		args = append(args, t.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *tenantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tenants WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectTenant() string {
	return `
		SELECT id, full_name, email, phone_number, unit_id,
		created_at, updated_at, row_version
		FROM tenants`
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	if err := row.Scan(
		&t.ID, &t.FullName, &t.Email, &t.PhoneNumber, &t.UnitID,
		&t.CreatedAt, &t.UpdatedAt, &t.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func scanTenants(rows pgx.Rows) ([]*models.Tenant, error) {
	var out []*models.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
