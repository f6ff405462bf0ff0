package cart

import (
	"context"

	"github.com/jmjubaer/white-black-server/internal/domain"
)

// CreateItemInput carries the fields for a new cart line.
type CreateItemInput struct {
	ProductID     string
	Title         string
	Price         string
	Size          string
	Quantity      int
	CustomerEmail string
}

type Repository interface {
	Create(ctx context.Context, in CreateItemInput) (*domain.CartItem, error)
	List(ctx context.Context, customerEmail string) ([]domain.CartItem, error)
	// DeleteByProduct removes every line referencing the product and
	// reports how many were removed.
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
