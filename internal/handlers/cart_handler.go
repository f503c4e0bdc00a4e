package handlers

import (
	"errors"
	"log"

	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the per-user cart. All routes it
// registers expect the auth middleware to have bound a user id first.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/addtocart", h.HandleAddToCart)
	router.Post("/removefromcart", h.HandleRemoveFromCart)
	router.Post("/getcart", h.HandleGetCart)
}

// CartRequest represents the request body for cart mutations.
type CartRequest struct {
	ItemID uint `json:"itemId"`
}

// HandleAddToCart increments one cart slot for the authenticated user.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Please authenticate using valid token",
		})
	}

	var req CartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add to cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.service.AddItem(userID, req.ItemID); err != nil {
		return h.cartError(c, "add to cart", err)
	}
	return c.SendString("Added")
}

// HandleRemoveFromCart decrements one cart slot for the authenticated
// user; an already empty slot stays at zero.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Please authenticate using valid token",
		})
	}

	var req CartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing remove from cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.service.RemoveItem(userID, req.ItemID); err != nil {
		return h.cartError(c, "remove from cart", err)
	}
	return c.SendString("Removed")
}

// HandleGetCart returns the authenticated user's cart mapping.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Please authenticate using valid token",
		})
	}

	cart, err := h.service.GetCart(userID)
	if err != nil {
		return h.cartError(c, "get cart", err)
	}
	return c.JSON(cart)
}

func (h *CartHandler) cartError(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "user not found",
		})
	}
	log.Printf("Error during %s: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Internal server error",
	})
}
