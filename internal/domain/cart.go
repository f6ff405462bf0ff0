package domain

import "time"

// CartItem is one line in a shopper's cart. ProductID is not unique across
// lines: the same product may sit in the cart more than once (for example
// in different sizes), so reconciliation deletes all matching lines.
type CartItem struct {
	ID            string    `json:"_id"`
	ProductID     string    `json:"productId"`
	Title         string    `json:"title"`
	Price         string    `json:"price"`
	Size          string    `json:"size,omitempty"`
	Quantity      int       `json:"quantity"`
	CustomerEmail string    `json:"customerEmail"`
	CreatedAt     time.Time `json:"createdAt"`
}
