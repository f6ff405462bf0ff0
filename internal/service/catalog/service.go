package catalog

import (
	"context"
	"math"
	"slices"
	"strconv"

	"github.com/jmjubaer/white-black-server/internal/domain"
	"github.com/jmjubaer/white-black-server/internal/repository/product"
)

// restrictedCategories is the closed allow-list for the category-restricted
// listing. No partial match, no case normalization.
var restrictedCategories = []string{
	"tshirt", "polos", "shirt", "jackets", "headware",
	"bottomware", "deals", "accessories", "new", "deal",
}

type productRepo interface {
	Find(ctx context.Context, f product.Filter) ([]domain.Product, error)
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

// Service is the catalog query engine. It compiles loose request parameters
// into store predicates and derives summary statistics; it is read-mostly
// and fully stateless.
type Service struct {
	repo productRepo
}

func New(repo product.Repository) *Service {
	return &Service{repo: repo}
}

// Summary aggregates price range and stock counts over a product set.
type Summary struct {
	LowestPrice     float64 `json:"lowestPrice"`
	HighestPrice    float64 `json:"highestPrice"`
	InStockCount    int     `json:"inStockCount"`
	OutOfStockCount int     `json:"outOfStockCount"`
}

// List returns the products matching the category token plus optional price
// range and status, all coerced from raw query strings.
func (s *Service) List(ctx context.Context, category, minPrice, maxPrice, status string) ([]domain.Product, error) {
	return s.repo.Find(ctx, compileFilter(category, minPrice, maxPrice, status))
}

// ListRestricted serves the allow-listed category endpoint. Unknown
// categories are rejected before any store read.
func (s *Service) ListRestricted(ctx context.Context, category string) ([]domain.Product, error) {
	if !slices.Contains(restrictedCategories, category) {
		return nil, domain.ErrInvalidCategory
	}
	return s.repo.ByCategory(ctx, category)
}

// Summarize scans the (optionally category-scoped) product set and derives
// the lowest/highest numeric price and in/out-of-stock counts. Unparseable
// prices are excluded from the min/max computation; an empty set yields the
// all-zero summary.
func (s *Service) Summarize(ctx context.Context, category string) (Summary, error) {
	scope := category
	if scope == "all" {
		scope = ""
	}
	projected, err := s.repo.PriceStatus(ctx, scope)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	first := true
	for _, ps := range projected {
		if v, err := strconv.ParseFloat(ps.Price, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			if first || v < sum.LowestPrice {
				sum.LowestPrice = v
			}
			if first || v > sum.HighestPrice {
				sum.HighestPrice = v
			}
			first = false
		}
		switch ps.Status {
		case domain.StatusInStock:
			sum.InStockCount++
		case domain.StatusSoldOut:
			sum.OutOfStockCount++
		}
	}
	return sum, nil
}

// Search matches the text case-insensitively as a substring of the product
// title, in store natural order.
func (s *Service) Search(ctx context.Context, text string) ([]domain.Product, error) {
	return s.repo.SearchTitle(ctx, text)
}

// Recent returns the n most recently inserted products.
func (s *Service) Recent(ctx context.Context, n int) ([]domain.Product, error) {
	return s.repo.Recent(ctx, n)
}

// RecentByCategory returns the n newest products of one category.
func (s *Service) RecentByCategory(ctx context.Context, category string, n int) ([]domain.Product, error) {
	return s.repo.RecentByCategory(ctx, category, n)
}

// ByStatus returns the n newest products carrying the exact status value.
func (s *Service) ByStatus(ctx context.Context, status string, n int) ([]domain.Product, error) {
	return s.repo.ByStatus(ctx, status, n)
}

// Get validates the identifier format before touching the store.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ByIDs resolves a cart's product references. The list must be non-empty
// and every identifier well-formed.
func (s *Service) ByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, domain.ErrInvalidPayload
	}
	for _, id := range ids {
		if err := domain.ValidateID(id); err != nil {
			return nil, err
		}
	}
	return s.repo.ListByIDs(ctx, ids)
}

func (s *Service) Add(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return s.repo.Insert(ctx, p)
}

func (s *Service) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	if patch == (domain.ProductPatch{}) {
		return domain.ErrInvalidPayload
	}
	matched, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}
