package domain

import "time"

// Stock status values recognised by the catalog. Anything else is counted
// as neither in stock nor sold out.
const (
	StatusInStock = "in-stock"
	StatusSoldOut = "sold-out"
)

// Product is a catalog entry. Price is kept as the raw stored text; it is
// parsed on demand and rows with an unparseable price are excluded from
// numeric filtering and aggregation.
type Product struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Fit         string    `json:"fit,omitempty"`
	Price       string    `json:"price"`
	Status      string    `json:"status"`
	Deals       bool      `json:"deals"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	TimeStamp   time.Time `json:"timeStamp"`
}

// PriceStatus is the price+status projection used by the stock summary.
type PriceStatus struct {
	Price  string
	Status string
}

// ProductPatch carries the fields of a partial product update. Nil fields
// are left untouched.
type ProductPatch struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Fit         *string `json:"fit"`
	Price       *string `json:"price"`
	Status      *string `json:"status"`
	Deals       *bool   `json:"deals"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}
