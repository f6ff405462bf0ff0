package cart

import (
	"context"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmjubaer/white-black-server/internal/domain"
)

const selectCols = `id::text, product_id::text, title, price, COALESCE(size, ''), quantity, customer_email, created_at`

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

func (r *postgresRepo) Create(ctx context.Context, in CreateItemInput) (*domain.CartItem, error) {
	const q = `
INSERT INTO cart_items (product_id, title, price, size, quantity, customer_email)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
RETURNING id::text, created_at
`
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}
	item := domain.CartItem{
		ProductID:     in.ProductID,
		Title:         in.Title,
		Price:         in.Price,
		Size:          in.Size,
		Quantity:      qty,
		CustomerEmail: in.CustomerEmail,
	}
	err := r.pool.QueryRow(ctx, q, in.ProductID, in.Title, in.Price, in.Size, qty, in.CustomerEmail).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		r.logger.Printf("cart repo: create product_id=%s error=%v", in.ProductID, err)
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) List(ctx context.Context, customerEmail string) ([]domain.CartItem, error) {
	q := `SELECT ` + selectCols + ` FROM cart_items`
	var args []interface{}
	if customerEmail != "" {
		q += ` WHERE customer_email = $1`
		args = append(args, customerEmail)
	}
	q += ` ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("cart repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.Title, &item.Price, &item.Size,
			&item.Quantity, &item.CustomerEmail, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE product_id = $1`, productID)
	if err != nil {
		r.logger.Printf("cart repo: delete by product_id=%s error=%v", productID, err)
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("cart repo: delete id=%s error=%v", id, err)
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
