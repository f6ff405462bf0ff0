package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmjubaer/white-black-server/internal/domain"
)

const selectCols = `id::text, title, category, COALESCE(fit, ''), price, status, deals, COALESCE(description, ''), COALESCE(image, ''), created_at`

// priceNumExpr yields the numeric value of the text price, or NULL when it
// does not parse. NULL never satisfies a range condition, so rows with a
// malformed price drop out of range-filtered listings.
const priceNumExpr = `CASE WHEN btrim(price) ~ '^-?[0-9]+(\.[0-9]+)?$' THEN btrim(price)::float8 END`

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

func (r *postgresRepo) Find(ctx context.Context, f Filter) ([]domain.Product, error) {
	conds := []string{priceNumExpr + " >= $1", priceNumExpr + " <= $2"}
	args := []interface{}{f.MinPrice, f.MaxPrice}
	if f.DealsOnly {
		conds = append(conds, "deals = TRUE")
	}
	if f.Fit != "" {
		args = append(args, f.Fit)
		conds = append(conds, fmt.Sprintf("fit = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	q := `SELECT ` + selectCols + ` FROM products WHERE ` + strings.Join(conds, " AND ")
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: find category=%q error=%v", f.Category, err)
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresRepo) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const q = `SELECT ` + selectCols + ` FROM products WHERE category = $1`
	rows, err := r.pool.Query(ctx, q, category)
	if err != nil {
		r.logger.Printf("product repo: by category=%q error=%v", category, err)
		return nil, err
	}
	return r.collect(rows)
}

// PriceStatus returns the price/status projection of the category-scoped
// product set. An empty category means no scoping.
func (r *postgresRepo) PriceStatus(ctx context.Context, category string) ([]domain.PriceStatus, error) {
	q := `SELECT price, status FROM products`
	var args []interface{}
	if category != "" {
		q += ` WHERE category = $1`
		args = append(args, category)
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: price-status category=%q error=%v", category, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.PriceStatus
	for rows.Next() {
		var ps domain.PriceStatus
		if err := rows.Scan(&ps.Price, &ps.Status); err != nil {
			return nil, err
		}
		result = append(result, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Recent(ctx context.Context, limit int) ([]domain.Product, error) {
	const q = `SELECT ` + selectCols + ` FROM products ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		r.logger.Printf("product repo: recent error=%v", err)
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresRepo) RecentByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error) {
	const q = `SELECT ` + selectCols + ` FROM products WHERE category = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, q, category, limit)
	if err != nil {
		r.logger.Printf("product repo: recent category=%q error=%v", category, err)
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresRepo) ByStatus(ctx context.Context, status string, limit int) ([]domain.Product, error) {
	const q = `SELECT ` + selectCols + ` FROM products WHERE status = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, q, status, limit)
	if err != nil {
		r.logger.Printf("product repo: by status=%q error=%v", status, err)
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresRepo) SearchTitle(ctx context.Context, text string) ([]domain.Product, error) {
	const q = `SELECT ` + selectCols + ` FROM products WHERE title ILIKE '%' || $1 || '%'`
	rows, err := r.pool.Query(ctx, q, text)
	if err != nil {
		r.logger.Printf("product repo: search error=%v", err)
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `SELECT ` + selectCols + ` FROM products WHERE id = $1`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Title, &p.Category, &p.Fit, &p.Price, &p.Status, &p.Deals, &p.Description, &p.Image, &p.TimeStamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	const q = `SELECT ` + selectCols + ` FROM products WHERE id = ANY($1::uuid[])`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("product repo: list by ids error=%v", err)
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresRepo) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (title, category, fit, price, status, deals, description, image)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))
RETURNING id::text, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.Title, p.Category, p.Fit, p.Price, p.Status, p.Deals, p.Description, p.Image).
		Scan(&out.ID, &out.TimeStamp)
	if err != nil {
		r.logger.Printf("product repo: insert title=%q error=%v", p.Title, err)
		return nil, err
	}
	r.logger.Printf("product repo: inserted id=%s title=%q", out.ID, out.Title)
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, patch domain.ProductPatch) (int64, error) {
	var (
		sets []string
		args []interface{}
	)
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Fit != nil {
		add("fit", *patch.Fit)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Deals != nil {
		add("deals", *patch.Deals)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	args = append(args, id)
	q := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	cmd, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: update id=%s error=%v", id, err)
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *postgresRepo) collect(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Category, &p.Fit, &p.Price, &p.Status, &p.Deals, &p.Description, &p.Image, &p.TimeStamp,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: rows error=%v", err)
		return nil, err
	}
	return result, nil
}
