package repositories

import "shop/internal/models"

// ProductRepository defines the interface for product catalog data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	Create(product *models.Product) error
	Delete(id uint) error
}
