package service

import (
	"context"

	"github.com/example/ecommerce-api/internal/models"
	"github.com/example/ecommerce-api/internal/repository"
)

// CartService handles business logic for carts
type CartService struct {
	repo repository.CartRepository
}

// NewCartService creates a new cart service
func NewCartService(repo repository.CartRepository) *CartService {
	return &CartService{
		repo: repo,
	}
}

// CreateCart persists a new empty cart
func (s *CartService) CreateCart(ctx context.Context) (*models.Cart, error) {
	return s.repo.Create(ctx)
}

// GetCart returns a cart by ID
func (s *CartService) GetCart(ctx context.Context, id string) (*models.Cart, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteCart removes a cart and returns the removed record
func (s *CartService) DeleteCart(ctx context.Context, id string) (*models.Cart, error) {
	return s.repo.Delete(ctx, id)
}

// AddProduct adds one unit of a product to a cart
func (s *CartService) AddProduct(ctx context.Context, cartID, productID string) (*models.Cart, error) {
	return s.repo.AddProduct(ctx, cartID, productID)
}
