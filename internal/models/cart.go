package models

import "time"

// CartItem is one row of a user's cart: how many units of a product the
// user holds. A missing row reads as quantity zero, so the cart is sparse.
type CartItem struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	ProductID uint      `json:"product_id" gorm:"primaryKey"`
	Quantity  int       `json:"quantity" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Cart is the wire representation of a user's cart: product id -> quantity.
// Only non-zero slots appear.
type Cart map[uint]int
