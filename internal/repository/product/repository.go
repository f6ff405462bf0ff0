package product

import (
	"context"

	"github.com/jmjubaer/white-black-server/internal/domain"
)

// Filter is the compound predicate the catalog engine compiles from loose
// query parameters. Zero values mean "no constraint" except the price
// bounds, which are always applied inclusively on both ends; an open upper
// bound is expressed as +Inf.
type Filter struct {
	Category  string
	Fit       string
	DealsOnly bool
	MinPrice  float64
	MaxPrice  float64
	Status    string
}

type Repository interface {
	Find(ctx context.Context, f Filter) ([]domain.Product, error)
	ByCategory(ctx context.Context, category string) ([]domain.Product, error)
	PriceStatus(ctx context.Context, category string) ([]domain.PriceStatus, error)
	Recent(ctx context.Context, limit int) ([]domain.Product, error)
	RecentByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error)
	ByStatus(ctx context.Context, status string, limit int) ([]domain.Product, error)
	SearchTitle(ctx context.Context, text string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
