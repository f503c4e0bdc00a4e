package services

import (
	"errors"
	"fmt"

	"shop/internal/models"
	"shop/internal/repositories"
)

// CartService handles business logic for per-user shopping carts.
type CartService struct {
	cartRepo repositories.CartRepository
	userRepo repositories.UserRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, userRepo repositories.UserRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		userRepo: userRepo,
	}
}

// AddItem adds one unit of a product to the user's cart. There is no
// upper bound on the quantity.
func (s *CartService) AddItem(userID string, productID uint) error {
	if err := s.checkUser(userID); err != nil {
		return err
	}
	if err := s.cartRepo.Increment(userID, productID); err != nil {
		return fmt.Errorf("failed to add item to cart: %w", err)
	}
	return nil
}

// RemoveItem removes one unit of a product from the user's cart. Removing
// from an empty slot is a no-op; the quantity never goes negative.
func (s *CartService) RemoveItem(userID string, productID uint) error {
	if err := s.checkUser(userID); err != nil {
		return err
	}
	if err := s.cartRepo.Decrement(userID, productID); err != nil {
		return fmt.Errorf("failed to remove item from cart: %w", err)
	}
	return nil
}

// GetCart returns the user's full cart mapping.
func (s *CartService) GetCart(userID string) (models.Cart, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) checkUser(userID string) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	return nil
}
