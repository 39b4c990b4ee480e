package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/casaflow/property-service/internal/models"
)

/* ───────────── public interface ───────────── */

type TransactionRepository interface {
	Create(ctx context.Context, t *models.Transaction) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Transaction, error)
	ListByUnitID(ctx context.Context, unitID uuid.UUID) ([]*models.Transaction, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type transactionRepo struct {
	db DB
}

func NewTransactionRepository(db DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (
			id, property_id, unit_id, type, amount, description,
			occurred_at, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW())
	`, t.ID, t.PropertyID, t.UnitID, t.Type, t.Amount, t.Description, t.OccurredAt)
	return err
}

func (r *transactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	row := r.db.QueryRow(ctx, baseSelectTransaction()+" WHERE id=$1", id)
	return scanTransaction(row)
}

func (r *transactionRepo) ListByPropertyID(ctx context.Context, propID uuid.UUID) ([]*models.Transaction, error) {
	rows, err := r.db.Query(ctx, baseSelectTransaction()+" WHERE property_id=$1 ORDER BY occurred_at DESC", propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *transactionRepo) ListByUnitID(ctx context.Context, unitID uuid.UUID) ([]*models.Transaction, error) {
	rows, err := r.db.Query(ctx, baseSelectTransaction()+" WHERE unit_id=$1 ORDER BY occurred_at DESC", unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *transactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectTransaction() string {
	return `
		SELECT id, property_id, unit_id, type, amount, description,
		occurred_at, created_at
		FROM transactions`
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	if err := row.Scan(
		&t.ID, &t.PropertyID, &t.UnitID, &t.Type, &t.Amount, &t.Description,
		&t.OccurredAt, &t.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func scanTransactions(rows pgx.Rows) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
