package handlers

import (
	"fmt"
	"log"

	"shop/internal/models"
	"shop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/addproduct", h.HandleAddProduct)
	router.Post("/removeproduct", h.HandleRemoveProduct)
	router.Get("/allproducts", h.HandleAllProducts)
	router.Get("/newcollections", h.HandleNewCollections)
	router.Get("/popularinwomen", h.HandlePopular)
}

// AddProductRequest represents the request body for product creation.
// Prices are pointers so an omitted price fails validation while an
// explicit zero is accepted.
type AddProductRequest struct {
	Name     string   `json:"name" validate:"required"`
	Image    string   `json:"image" validate:"required"`
	Category string   `json:"category" validate:"required"`
	NewPrice *float64 `json:"new_price" validate:"required,gte=0"`
	OldPrice *float64 `json:"old_price" validate:"required,gte=0"`
}

// HandleAddProduct creates a new catalog entry.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  errorMessages,
		})
	}

	product := &models.Product{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		NewPrice: *req.NewPrice,
		OldPrice: *req.OldPrice,
	}
	if err := h.service.AddProduct(product); err != nil {
		log.Printf("Error adding product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"name":    product.Name,
	})
}

// RemoveProductRequest represents the request body for product removal.
type RemoveProductRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// HandleRemoveProduct deletes a product by id. The response is a success
// even when the id matched nothing.
func (h *ProductHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	var req RemoveProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing remove product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.service.RemoveProduct(req.ID); err != nil {
		log.Printf("Error removing product %d: %v", req.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"name":    req.Name,
	})
}

// HandleAllProducts returns the full catalog.
func (h *ProductHandler) HandleAllProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}
	return c.JSON(products)
}

// HandleNewCollections returns the fixed storefront window of recent
// products.
func (h *ProductHandler) HandleNewCollections(c *fiber.Ctx) error {
	products, err := h.service.GetNewCollection()
	if err != nil {
		log.Printf("Error getting new collections: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}
	return c.JSON(products)
}

// HandlePopular returns the leading products of a category. The category
// defaults to "women", matching the storefront section this endpoint
// feeds.
func (h *ProductHandler) HandlePopular(c *fiber.Ctx) error {
	category := c.Query("category", "women")
	products, err := h.service.GetPopular(category)
	if err != nil {
		log.Printf("Error getting popular products for %s: %v", category, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}
	return c.JSON(products)
}
