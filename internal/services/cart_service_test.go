package services_test

import (
	"testing"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) (*services.CartService, string) {
	t.Helper()
	userRepo := repositories.NewMockUserRepository()
	cartRepo := repositories.NewMockCartRepository()

	user := &models.User{Email: "cart@example.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(user))

	return services.NewCartService(cartRepo, userRepo), user.ID
}

func TestCartService_AddAndGet(t *testing.T) {
	cartService, userID := newCartFixture(t)

	// A fresh cart is empty: every slot reads as zero.
	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Empty(t, cart)

	// Two increments on one slot, one on another.
	assert.NoError(t, cartService.AddItem(userID, 5))
	assert.NoError(t, cartService.AddItem(userID, 5))
	assert.NoError(t, cartService.AddItem(userID, 7))

	cart, err = cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Equal(t, models.Cart{5: 2, 7: 1}, cart)
}

func TestCartService_RemoveItem(t *testing.T) {
	cartService, userID := newCartFixture(t)

	// Increment then decrement restores the prior cart.
	assert.NoError(t, cartService.AddItem(userID, 5))
	assert.NoError(t, cartService.RemoveItem(userID, 5))
	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Empty(t, cart)

	// Decrementing an empty slot is a no-op, never negative.
	assert.NoError(t, cartService.RemoveItem(userID, 5))
	assert.NoError(t, cartService.RemoveItem(userID, 99))
	cart, err = cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartService_UnknownUser(t *testing.T) {
	cartService, _ := newCartFixture(t)

	err := cartService.AddItem("no-such-user", 5)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	err = cartService.RemoveItem("no-such-user", 5)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = cartService.GetCart("no-such-user")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}
