package domain

import "time"

// OrderStatusPending is the status a freshly placed order starts in. The
// field is free-form afterwards and mutated by staff action.
const OrderStatusPending = "pending"

// Order is a placed order together with its shipping address. ProductIDs
// references the products the shopper checked out; once the row is written
// the order stands regardless of later cart cleanup.
type Order struct {
	ID            string    `json:"_id"`
	ProductIDs    []string  `json:"productId"`
	CustomerName  string    `json:"customerName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	StreetAddress string    `json:"streetAddress"`
	City          string    `json:"city"`
	PostalCode    string    `json:"postalCode"`
	Country       string    `json:"country"`
	Note          string    `json:"note,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
