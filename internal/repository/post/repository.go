package post

import (
	"context"

	"github.com/jmjubaer/white-black-server/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Post, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	Insert(ctx context.Context, p domain.Post) (*domain.Post, error)
	Update(ctx context.Context, id string, patch domain.PostPatch) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
