package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/jmjubaer/white-black-server/internal/domain"
)

type stubOrders struct {
	insertCalls int
	lastOrder   domain.Order
	insertErr   error
	updateN     int64
	updateErr   error
}

func (s *stubOrders) Insert(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.insertCalls++
	s.lastOrder = o
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	placed := o
	placed.ID = "c6a7d1f2-1111-4222-8333-444455556666"
	placed.Status = domain.OrderStatusPending
	return &placed, nil
}

func (s *stubOrders) List(_ context.Context) ([]domain.Order, error) { return nil, nil }

func (s *stubOrders) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (s *stubOrders) UpdateStatus(_ context.Context, _, _ string) (int64, error) {
	return s.updateN, s.updateErr
}

type stubCart struct {
	counts  map[string]int64
	errs    map[string]error
	deleted []string
}

func (s *stubCart) DeleteByProduct(_ context.Context, productID string) (int64, error) {
	s.deleted = append(s.deleted, productID)
	if err := s.errs[productID]; err != nil {
		return 0, err
	}
	return s.counts[productID], nil
}

func newTestService(orders *stubOrders, cart *stubCart) *Service {
	return &Service{orders: orders, cart: cart, logger: log.New(io.Discard, "", 0)}
}

func TestConfirmRejectsNonArrayProductID(t *testing.T) {
	orders := &stubOrders{}
	svc := newTestService(orders, &stubCart{})

	for _, raw := range []string{`"abc"`, `123`, `{"a":1}`, `null`} {
		_, err := svc.Confirm(context.Background(), ConfirmInput{ProductID: json.RawMessage(raw)}, true)
		if !errors.Is(err, domain.ErrInvalidPayload) {
			t.Fatalf("raw %s: expected invalid payload, got %v", raw, err)
		}
	}
	if orders.insertCalls != 0 {
		t.Fatalf("no order may be written for a rejected payload")
	}
}

func TestConfirmRejectsMissingProductID(t *testing.T) {
	orders := &stubOrders{}
	svc := newTestService(orders, &stubCart{})
	_, err := svc.Confirm(context.Background(), ConfirmInput{}, true)
	if !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected invalid payload, got %v", err)
	}
	if orders.insertCalls != 0 {
		t.Fatalf("no order may be written for a rejected payload")
	}
}

func TestConfirmReconcileCountsRemovedLines(t *testing.T) {
	orders := &stubOrders{}
	cart := &stubCart{counts: map[string]int64{"a": 2, "b": 0}}
	svc := newTestService(orders, cart)

	conf, err := svc.Confirm(context.Background(), ConfirmInput{
		ProductID:    json.RawMessage(`["a","b"]`),
		CustomerName: "T",
	}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Removed != 2 {
		t.Fatalf("expected 2 removed lines, got %d", conf.Removed)
	}
	if conf.Message != "order confirmed, 2 products removed from cart" {
		t.Fatalf("unexpected message %q", conf.Message)
	}
	if len(cart.deleted) != 2 {
		t.Fatalf("expected a deletion attempt per identifier, got %v", cart.deleted)
	}
	if conf.Order == nil || conf.Order.Status != domain.OrderStatusPending {
		t.Fatalf("unexpected placed order %+v", conf.Order)
	}
}

func TestConfirmReconcileSkipsFailingIdentifier(t *testing.T) {
	orders := &stubOrders{}
	cart := &stubCart{
		counts: map[string]int64{"a": 1, "c": 3},
		errs:   map[string]error{"b": errors.New("store down")},
	}
	svc := newTestService(orders, cart)

	conf, err := svc.Confirm(context.Background(), ConfirmInput{
		ProductID: json.RawMessage(`["a","b","c"]`),
	}, true)
	if err != nil {
		t.Fatalf("cleanup failure must not fail the workflow: %v", err)
	}
	if conf.Removed != 4 {
		t.Fatalf("expected 4 removed lines, got %d", conf.Removed)
	}
	if len(cart.deleted) != 3 {
		t.Fatalf("every identifier must be attempted, got %v", cart.deleted)
	}
}

func TestConfirmWithoutReconcileSkipsCart(t *testing.T) {
	cart := &stubCart{counts: map[string]int64{"a": 5}}
	svc := newTestService(&stubOrders{}, cart)

	conf, err := svc.Confirm(context.Background(), ConfirmInput{
		ProductID: json.RawMessage(`["a"]`),
	}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Message != "order placed successfully" {
		t.Fatalf("unexpected message %q", conf.Message)
	}
	if conf.Removed != 0 || len(cart.deleted) != 0 {
		t.Fatalf("cart must not be touched, got removed=%d deleted=%v", conf.Removed, cart.deleted)
	}
}

func TestConfirmEmptyArrayPlacesOrder(t *testing.T) {
	orders := &stubOrders{}
	cart := &stubCart{}
	svc := newTestService(orders, cart)

	conf, err := svc.Confirm(context.Background(), ConfirmInput{
		ProductID: json.RawMessage(`[]`),
	}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Removed != 0 || orders.insertCalls != 1 {
		t.Fatalf("empty list should commit with nothing removed, got %+v", conf)
	}
}

func TestConfirmInsertErrorAbortsReconcile(t *testing.T) {
	orders := &stubOrders{insertErr: errors.New("write failed")}
	cart := &stubCart{}
	svc := newTestService(orders, cart)

	_, err := svc.Confirm(context.Background(), ConfirmInput{
		ProductID: json.RawMessage(`["a"]`),
	}, true)
	if err == nil {
		t.Fatalf("expected insert error")
	}
	if len(cart.deleted) != 0 {
		t.Fatalf("no cart line may be removed when the order fails to commit")
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	const validID = "c6a7d1f2-1111-4222-8333-444455556666"

	svc := newTestService(&stubOrders{}, &stubCart{})
	if err := svc.UpdateStatus(context.Background(), "nope", "shipped"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected invalid id, got %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), validID, ""); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected invalid payload, got %v", err)
	}

	svc = newTestService(&stubOrders{updateN: 0}, &stubCart{})
	if err := svc.UpdateStatus(context.Background(), validID, "shipped"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	svc = newTestService(&stubOrders{updateN: 1}, &stubCart{})
	if err := svc.UpdateStatus(context.Background(), validID, "shipped"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
