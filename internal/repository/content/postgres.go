package content

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmjubaer/white-black-server/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, slot string) (*domain.ContentBlock, error) {
	const q = `SELECT id::text, slot, value FROM content_blocks WHERE slot = $1`
	var b domain.ContentBlock
	err := r.pool.QueryRow(ctx, q, slot).Scan(&b.ID, &b.Slot, &b.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Upsert keeps the slot a singleton: the first write records the caller's
// id, later writes only replace the value.
func (r *postgresRepo) Upsert(ctx context.Context, id, slot, value string) (*domain.ContentBlock, error) {
	const q = `
INSERT INTO content_blocks (id, slot, value)
VALUES ($1, $2, $3)
ON CONFLICT (slot) DO UPDATE SET value = EXCLUDED.value
RETURNING id::text, slot, value
`
	var b domain.ContentBlock
	if err := r.pool.QueryRow(ctx, q, id, slot, value).Scan(&b.ID, &b.Slot, &b.Value); err != nil {
		return nil, err
	}
	return &b, nil
}
