package order

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Repository owns the order map and the id counter.
type Repository interface {
	Create(ord Order) Order
	ListByUser(userID string) []Order
	GetByID(id int) (Order, error)
	UpdateStatus(id int, status, updatedAt string) (Order, error)
}

type InMemoryRepository struct {
	mu     sync.Mutex
	orders map[int]Order
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[int]Order),
		nextID: 1,
	}
}

// Create assigns the next id; ids are strictly increasing for the process
// lifetime.
func (r *InMemoryRepository) Create(ord Order) Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord.ID = r.nextID
	r.nextID++
	r.orders[ord.ID] = ord
	return ord
}

// ListByUser returns the user's orders, newest first. Orders created in
// the same second have no guaranteed relative order.
func (r *InMemoryRepository) ListByUser(userID string) []Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.UserID == userID {
			out = append(out, ord)
		}
	}
	// RFC 3339 timestamps sort lexically
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord, ok := r.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, status, updatedAt string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord, ok := r.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	ord.Status = status
	ord.UpdatedAt = updatedAt
	r.orders[id] = ord
	return ord, nil
}
