package content

import (
	"context"

	"github.com/jmjubaer/white-black-server/internal/domain"
)

type Repository interface {
	// Get returns the current value of a slot.
	Get(ctx context.Context, slot string) (*domain.ContentBlock, error)
	// Upsert writes the slot's value, creating the record on first write.
	Upsert(ctx context.Context, id, slot, value string) (*domain.ContentBlock, error)
}
