package repositories

import (
	"fmt"
	"time"

	"shop/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
//
// Both mutations are single SQL statements, so two requests racing on the
// same (user, product) slot serialize at the database instead of doing an
// unguarded read-modify-write in the application.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Increment adds one unit of a product to the user's cart, creating the
// row on first use (upsert with an in-database quantity bump).
func (r *GORMCartRepository) Increment(userID string, productID uint) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to increment cart item %d for user %s: %w", productID, userID, err)
	}
	return nil
}

// Decrement removes one unit of a product from the user's cart. The
// quantity > 0 guard makes a decrement of an empty slot a no-op, so the
// quantity can never go negative.
func (r *GORMCartRepository) Decrement(userID string, productID uint) error {
	res := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ? AND quantity > 0", userID, productID).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - 1"),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to decrement cart item %d for user %s: %w", productID, userID, res.Error)
	}
	return nil
}

// Get returns the user's cart as a sparse product id -> quantity mapping.
func (r *GORMCartRepository) Get(userID string) (models.Cart, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ? AND quantity > 0", userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	cart := make(models.Cart, len(items))
	for _, item := range items {
		cart[item.ProductID] = item.Quantity
	}
	return cart, nil
}
