package order

import (
	"encoding/json"
	"time"
)

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create snapshots the submitted items into a pending order. The total is
// computed from the items' price and quantity.
func (s *Service) Create(userID string, items []Item, shipping json.RawMessage, paymentMethod string) Order {
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(Order{
		UserID:          userID,
		Items:           items,
		Total:           computeTotal(items),
		Status:          StatusPending,
		ShippingAddress: shipping,
		PaymentMethod:   paymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

func (s *Service) ListByUser(userID string) []Order {
	return s.repo.ListByUser(userID)
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

// UpdateStatus overwrites the status; the value is not validated against
// an enumerated set.
func (s *Service) UpdateStatus(id int, status string) (Order, error) {
	return s.repo.UpdateStatus(id, status, time.Now().UTC().Format(time.RFC3339))
}
