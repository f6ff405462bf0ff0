package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmjubaer/white-black-server/internal/domain"
)

type productSeed struct {
	Title    string
	Category string
	Fit      string
	Price    string
	Status   string
	Deals    bool
}

// Apply inserts basic seed data for manual testing. It is idempotent via
// ON CONFLICT / title guards.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{Title: "Slim Shirt", Category: "shirt", Fit: "slim-fit", Price: "34.50", Status: domain.StatusInStock},
		{Title: "T-Shirt Classic", Category: "tshirt", Fit: "regular-fit", Price: "19.99", Status: domain.StatusInStock},
		{Title: "Winter Jacket", Category: "jackets", Price: "89.00", Status: domain.StatusSoldOut},
		{Title: "Canvas Cap", Category: "headware", Price: "12.00", Status: domain.StatusInStock, Deals: true},
		{Title: "Leather Belt", Category: "accessories", Price: "24.99", Status: domain.StatusInStock},
	}
	for _, p := range products {
		if err := ensureProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("ensure product %q: %w", p.Title, err)
		}
	}

	blocks := map[string]string{
		domain.SlotTopMovingText:          "Free shipping on orders over $50",
		domain.SlotBannerMovingText:       "New season drop is live",
		domain.SlotSecondBannerMovingText: "Deals refreshed weekly",
		domain.SlotHighlightProductLink:   "/products/deals",
	}
	for slot, value := range blocks {
		if err := ensureContentBlock(ctx, pool, slot, value); err != nil {
			return fmt.Errorf("ensure content block %q: %w", slot, err)
		}
	}

	return nil
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (title, category, fit, price, status, deals)
SELECT $1, $2, NULLIF($3, ''), $4, $5, $6
WHERE NOT EXISTS (SELECT 1 FROM products WHERE title = $1)
`
	_, err := pool.Exec(ctx, q, p.Title, p.Category, p.Fit, p.Price, p.Status, p.Deals)
	return err
}

func ensureContentBlock(ctx context.Context, pool *pgxpool.Pool, slot, value string) error {
	const q = `
INSERT INTO content_blocks (id, slot, value)
VALUES (gen_random_uuid(), $1, $2)
ON CONFLICT (slot) DO NOTHING
`
	_, err := pool.Exec(ctx, q, slot, value)
	return err
}
