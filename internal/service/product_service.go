package service

import (
	"context"

	"github.com/example/ecommerce-api/internal/models"
	"github.com/example/ecommerce-api/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the full product collection
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates and persists a new product
func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	return s.repo.Create(ctx, req)
}

// UpdateProduct merges the provided fields over an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	return s.repo.Update(ctx, id, req)
}

// DeleteProduct removes a product and returns the removed record
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.Delete(ctx, id)
}
