package order

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmjubaer/white-black-server/internal/domain"
)

const selectCols = `id::text, product_ids, customer_name, email, phone, street_address, city, postal_code, country, COALESCE(note, ''), status, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Insert(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (product_ids, customer_name, email, phone, street_address, city, postal_code, country, note, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)
RETURNING id::text, status, created_at
`
	status := o.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	out := o
	err := r.pool.QueryRow(ctx, q,
		o.ProductIDs, o.CustomerName, o.Email, o.Phone, o.StreetAddress, o.City, o.PostalCode, o.Country, o.Note, status,
	).Scan(&out.ID, &out.Status, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: insert email=%q error=%v", o.Email, err)
		return nil, err
	}
	r.logger.Printf("order repo: inserted id=%s items=%d", out.ID, len(out.ProductIDs))
	return &out, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `SELECT ` + selectCols + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `SELECT ` + selectCols + ` FROM orders WHERE id = $1`
	var o domain.Order
	err := scanOrder(r.pool.QueryRow(ctx, q, id), &o)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &o, nil
}

// UpdateStatus counts only rows whose status actually changed, so setting
// the current value again reports zero modifications.
func (r *postgresRepo) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	const q = `UPDATE orders SET status = $2 WHERE id = $1 AND status IS DISTINCT FROM $2`
	cmd, err := r.pool.Exec(ctx, q, id, status)
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(
		&o.ID, &o.ProductIDs, &o.CustomerName, &o.Email, &o.Phone,
		&o.StreetAddress, &o.City, &o.PostalCode, &o.Country, &o.Note, &o.Status, &o.CreatedAt,
	)
}
