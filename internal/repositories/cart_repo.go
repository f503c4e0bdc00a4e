package repositories

import "shop/internal/models"

// CartRepository defines the interface for cart data access. Increment and
// Decrement must apply atomically at the store so that concurrent updates
// to the same slot never lose a write.
type CartRepository interface {
	Increment(userID string, productID uint) error
	Decrement(userID string, productID uint) error
	Get(userID string) (models.Cart, error)
}
