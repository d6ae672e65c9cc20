package product

import (
	"github.com/shopspring/decimal"

	"github.com/darkcommerce/storefront-backend/internal/money"
)

// Product is a catalog entry. The catalog is seeded at startup and
// read-only afterwards.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	InStock     bool            `json:"inStock"`
	Features    []string        `json:"features"`
}

// SampleCatalog returns the default seed data.
func SampleCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Premium Wireless Headphones",
			Price:       money.FromFloat(299.99),
			Description: "High-quality wireless headphones with noise cancellation",
			Category:    "Electronics",
			Image:       "/images/headphones.jpg",
			Rating:      4.8,
			Reviews:     156,
			InStock:     true,
			Features:    []string{"Noise Cancellation", "Bluetooth 5.0", "40h Battery Life"},
		},
		{
			ID:          2,
			Name:        "Smart Fitness Watch",
			Price:       money.FromFloat(199.99),
			Description: "Advanced fitness tracking with heart rate monitoring",
			Category:    "Electronics",
			Image:       "/images/watch.jpg",
			Rating:      4.6,
			Reviews:     89,
			InStock:     true,
			Features:    []string{"Heart Rate Monitor", "GPS", "Water Resistant"},
		},
		{
			ID:          3,
			Name:        "Designer Leather Jacket",
			Price:       money.FromFloat(399.99),
			Description: "Premium leather jacket with modern design",
			Category:    "Fashion",
			Image:       "/images/jacket.jpg",
			Rating:      4.9,
			Reviews:     234,
			InStock:     true,
			Features:    []string{"Genuine Leather", "Multiple Colors", "Slim Fit"},
		},
	}
}
