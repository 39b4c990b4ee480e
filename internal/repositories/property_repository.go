package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/casaflow/property-service/internal/models"
)

/* ───────────── public interface ───────────── */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Property, error)
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO properties (
			id, owner_id, name, address, property_type, total_units,
			year_built, area_sqm, description, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW())
	`, p.ID, p.OwnerID, p.Name, p.Address, p.PropertyType, p.TotalUnits,
		p.YearBuilt, p.AreaSqm, p.Description)
	return err
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	row := r.db.QueryRow(ctx, baseSelectProperty()+" WHERE id=$1", id)
	return scanProperty(row)
}

func (r *propertyRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+" WHERE owner_id=$1 ORDER BY created_at", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProperties(rows)
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	_, err := r.db.Exec(ctx, `
		UPDATE properties
		SET name=$1, address=$2, property_type=$3, total_units=$4,
		    year_built=$5, area_sqm=$6, description=$7, updated_at=NOW()
		WHERE id=$8
	`, p.Name, p.Address, p.PropertyType, p.TotalUnits,
		p.YearBuilt, p.AreaSqm, p.Description, p.ID)
	return err
}

func (r *propertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectProperty() string {
	return `
		SELECT id, owner_id, name, address, property_type, total_units,
		       year_built, area_sqm, description, created_at, updated_at
		FROM properties`
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	if err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.PropertyType, &p.TotalUnits,
		&p.YearBuilt, &p.AreaSqm, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanProperties(rows pgx.Rows) ([]*models.Property, error) {
	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
