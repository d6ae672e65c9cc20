package cart

import (
	"github.com/shopspring/decimal"

	"github.com/darkcommerce/storefront-backend/internal/money"
)

// Item is one cart line.
// TODO: source unit prices from the catalog once the pricing contract is
// settled; nothing populates Price today, so totals only reflect
// zero-priced lines.
type Item struct {
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Cart is a user's current selection. Total is derived and recomputed on
// every mutation. Item order is insertion order.
type Cart struct {
	Items []Item          `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Empty is the default cart returned for users with no stored cart.
func Empty() Cart {
	return Cart{Items: []Item{}, Total: money.Zero}
}

func (ct *Cart) recompute() {
	total := money.Zero
	for _, it := range ct.Items {
		total = total.Add(money.Line(it.Price, it.Quantity))
	}
	ct.Total = total
}

func (ct Cart) clone() Cart {
	items := make([]Item, len(ct.Items))
	copy(items, ct.Items)
	return Cart{Items: items, Total: ct.Total}
}
