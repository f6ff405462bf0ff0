package order

import (
	"context"

	"github.com/jmjubaer/white-black-server/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, o domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// UpdateStatus returns the number of rows whose status actually changed.
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}
