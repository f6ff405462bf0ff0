package order

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/jmjubaer/white-black-server/internal/domain"
	cartrepo "github.com/jmjubaer/white-black-server/internal/repository/cart"
	orderrepo "github.com/jmjubaer/white-black-server/internal/repository/order"
)

type ordersRepo interface {
	Insert(ctx context.Context, o domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}

type cartRepo interface {
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}

// Service runs the order confirmation workflow: commit the order record,
// then best-effort removal of the cart lines it supersedes.
type Service struct {
	orders ordersRepo
	cart   cartRepo
	logger *log.Logger
}

func New(orders orderrepo.Repository, cart cartrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, cart: cart, logger: logger}
}

// ConfirmInput is the checkout payload. ProductID is kept raw so its shape
// can be validated explicitly before anything is written.
type ConfirmInput struct {
	ProductID     json.RawMessage `json:"productId"`
	CustomerName  string          `json:"customerName"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	StreetAddress string          `json:"streetAddress"`
	City          string          `json:"city"`
	PostalCode    string          `json:"postalCode"`
	Country       string          `json:"country"`
	Note          string          `json:"note"`
}

// Confirmation is the success response of the workflow.
type Confirmation struct {
	Order   *domain.Order `json:"order"`
	Removed int64         `json:"removedCount"`
	Message string        `json:"message"`
}

// Confirm places the order and, when reconcile is set, removes every cart
// line superseded by it. The order insert is the durability boundary: once
// it succeeds the order stands, even if part of the cleanup fails. Cleanup
// failures are attempted per identifier, logged, and never rolled back.
func (s *Service) Confirm(ctx context.Context, in ConfirmInput, reconcile bool) (*Confirmation, error) {
	ids, err := decodeIDList(in.ProductID)
	if err != nil {
		return nil, err
	}

	placed, err := s.orders.Insert(ctx, domain.Order{
		ProductIDs:    ids,
		CustomerName:  in.CustomerName,
		Email:         in.Email,
		Phone:         in.Phone,
		StreetAddress: in.StreetAddress,
		City:          in.City,
		PostalCode:    in.PostalCode,
		Country:       in.Country,
		Note:          in.Note,
	})
	if err != nil {
		return nil, err
	}

	if !reconcile {
		return &Confirmation{Order: placed, Message: "order placed successfully"}, nil
	}

	var removed int64
	for _, id := range ids {
		n, err := s.cart.DeleteByProduct(ctx, id)
		if err != nil {
			// The order is already committed; skip this identifier and
			// keep going with the rest.
			s.logger.Printf("order %s: reconcile product %s: %v", placed.ID, id, err)
			continue
		}
		removed += n
	}

	return &Confirmation{
		Order:   placed,
		Removed: removed,
		Message: fmt.Sprintf("order confirmed, %d products removed from cart", removed),
	}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, id)
}

// UpdateStatus sets the order's status by staff action.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	if status == "" {
		return domain.ErrInvalidPayload
	}
	modified, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if modified == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// decodeIDList rejects anything that is not a JSON array of strings before
// the workflow writes a single byte.
func decodeIDList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, domain.ErrInvalidPayload
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, domain.ErrInvalidPayload
	}
	if ids == nil {
		// JSON null decodes without error but is not an array.
		return nil, domain.ErrInvalidPayload
	}
	return ids, nil
}
