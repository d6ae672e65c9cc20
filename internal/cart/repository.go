package cart

import (
	"errors"
	"sync"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
)

// Repository owns the per-user cart state.
type Repository interface {
	Get(userID string) Cart
	AddItem(userID string, productID, quantity int) Cart
	UpdateItem(userID string, productID, quantity int) (Cart, error)
	RemoveItem(userID string, productID int) (Cart, error)
	Clear(userID string)
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string]Cart)}
}

func (r *InMemoryRepository) Get(userID string) Cart {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ct, ok := r.carts[userID]
	if !ok {
		return Empty()
	}
	return ct.clone()
}

func (r *InMemoryRepository) AddItem(userID string, productID, quantity int) Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	ct, ok := r.carts[userID]
	if !ok {
		ct = Empty()
	}

	found := false
	for i := range ct.Items {
		if ct.Items[i].ProductID == productID {
			ct.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		ct.Items = append(ct.Items, Item{ProductID: productID, Quantity: quantity})
	}

	ct.recompute()
	r.carts[userID] = ct
	return ct.clone()
}

func (r *InMemoryRepository) UpdateItem(userID string, productID, quantity int) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ct, ok := r.carts[userID]
	if !ok {
		return Cart{}, ErrCartNotFound
	}

	idx := -1
	for i := range ct.Items {
		if ct.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Cart{}, ErrItemNotFound
	}

	if quantity <= 0 {
		ct.Items = append(ct.Items[:idx], ct.Items[idx+1:]...)
	} else {
		ct.Items[idx].Quantity = quantity
	}

	ct.recompute()
	r.carts[userID] = ct
	return ct.clone(), nil
}

func (r *InMemoryRepository) RemoveItem(userID string, productID int) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ct, ok := r.carts[userID]
	if !ok {
		return Cart{}, ErrCartNotFound
	}

	kept := make([]Item, 0, len(ct.Items))
	for _, it := range ct.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	ct.Items = kept

	ct.recompute()
	r.carts[userID] = ct
	return ct.clone(), nil
}

// Clear deletes the cart entirely; clearing an absent cart is a no-op.
func (r *InMemoryRepository) Clear(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
}
