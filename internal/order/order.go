package order

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/darkcommerce/storefront-backend/internal/money"
)

// StatusPending is the status every new order starts with. Status is
// free text after that; callers may set any value.
const StatusPending = "pending"

// Item is one line of an order snapshot. Unlike cart lines, submitted
// order items carry their own unit price.
type Item struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order is a checkout snapshot. Everything except Status and UpdatedAt is
// immutable after creation. The shipping address is kept as the raw JSON
// the client submitted.
type Order struct {
	ID              int             `json:"id"`
	UserID          string          `json:"userId"`
	Items           []Item          `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	ShippingAddress json.RawMessage `json:"shippingAddress,omitempty"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

func computeTotal(items []Item) decimal.Decimal {
	total := money.Zero
	for _, it := range items {
		total = total.Add(money.Line(it.Price, it.Quantity))
	}
	return total
}
