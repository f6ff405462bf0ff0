package contact

import (
	"context"

	"github.com/jmjubaer/white-black-server/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.ContactMessage, error)
	Insert(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) (int64, error)
}
