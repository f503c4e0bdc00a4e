package repositories

import (
	"sync"

	"shop/internal/models"
)

type cartKey struct {
	userID    string
	productID uint
}

// MockCartRepository is an in-memory implementation of CartRepository.
// Mutations hold the lock for the whole update, mirroring the atomic
// statements of the GORM implementation.
type MockCartRepository struct {
	items map[cartKey]int
	mu    sync.Mutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[cartKey]int),
	}
}

// Increment adds one unit of a product to the user's cart.
func (r *MockCartRepository) Increment(userID string, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[cartKey{userID, productID}]++
	return nil
}

// Decrement removes one unit of a product from the user's cart; an empty
// slot is left untouched.
func (r *MockCartRepository) Decrement(userID string, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey{userID, productID}
	if r.items[key] > 0 {
		r.items[key]--
	}
	return nil
}

// Get returns the user's cart as a sparse mapping.
func (r *MockCartRepository) Get(userID string) (models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := make(models.Cart)
	for key, qty := range r.items {
		if key.userID == userID && qty > 0 {
			cart[key.productID] = qty
		}
	}
	return cart, nil
}
