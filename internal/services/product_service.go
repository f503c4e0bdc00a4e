package services

import (
	"fmt"
	"log"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/pkg/rabbitmq"
)

// Presentation windows for the storefront sections.
const (
	newCollectionSize = 8
	popularSize       = 4
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. mqClient may be nil.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllProducts retrieves the full catalog.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// AddProduct creates a new product. The id is assigned by the store.
func (s *ProductService) AddProduct(product *models.Product) error {
	product.Available = true
	if err := s.repo.Create(product); err != nil {
		return err
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishEvent("product.created", product); err != nil {
			log.Printf("Warning: failed to publish product created event for %d: %v", product.ID, err)
		}
	}
	return nil
}

// RemoveProduct deletes a product by its id. Removing an id that does not
// exist succeeds silently.
func (s *ProductService) RemoveProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishEvent("product.removed", map[string]interface{}{"productID": id}); err != nil {
			log.Printf("Warning: failed to publish product removed event for %d: %v", id, err)
		}
	}
	return nil
}

// GetNewCollection returns the storefront's "new collections" window:
// skip the first product, then take the last 8 of what remains, in
// catalog order. A presentation rule, not a ranking.
func (s *ProductService) GetNewCollection() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to build new collection: %w", err)
	}
	if len(products) <= 1 {
		return []models.Product{}, nil
	}
	collection := products[1:]
	if len(collection) > newCollectionSize {
		collection = collection[len(collection)-newCollectionSize:]
	}
	return collection, nil
}

// GetPopular returns the first 4 products of a category in catalog order.
func (s *ProductService) GetPopular(category string) ([]models.Product, error) {
	products, err := s.repo.GetByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to get popular products for %s: %w", category, err)
	}
	if len(products) > popularSize {
		products = products[:popularSize]
	}
	return products, nil
}
