package repository

import (
	"context"

	"github.com/example/ecommerce-api/internal/models"
	"github.com/example/ecommerce-api/internal/storage"
	"github.com/google/uuid"
)

// CartRepository defines the interface for cart data access
type CartRepository interface {
	Create(ctx context.Context) (*models.Cart, error)
	GetByID(ctx context.Context, id string) (*models.Cart, error)
	Delete(ctx context.Context, id string) (*models.Cart, error)
	AddProduct(ctx context.Context, cartID, productID string) (*models.Cart, error)
}

// StoreCartRepository implements CartRepository over the cart collection,
// consulting the product collection for existence checks.
type StoreCartRepository struct {
	carts    storage.Collection[models.Cart]
	products storage.Collection[models.Product]
}

// NewCartRepository creates a cart repository over the given collections
func NewCartRepository(carts storage.Collection[models.Cart], products storage.Collection[models.Product]) *StoreCartRepository {
	return &StoreCartRepository{
		carts:    carts,
		products: products,
	}
}

// Create assigns a fresh id, initializes an empty product sequence, appends
// the cart to the collection and persists it.
func (r *StoreCartRepository) Create(ctx context.Context) (*models.Cart, error) {
	carts, err := r.carts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	cart := models.Cart{
		ID:       uuid.New().String(),
		Products: []models.CartItem{},
	}

	carts = append(carts, cart)
	if err := r.carts.SaveAll(ctx, carts); err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetByID returns the first cart with a matching id, or ErrCartNotFound
func (r *StoreCartRepository) GetByID(ctx context.Context, id string) (*models.Cart, error) {
	carts, err := r.carts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range carts {
		if carts[i].ID == id {
			cart := carts[i]
			return &cart, nil
		}
	}
	return nil, ErrCartNotFound
}

// Delete removes the matching cart, persists the remaining sequence and
// returns the removed cart.
func (r *StoreCartRepository) Delete(ctx context.Context, id string) (*models.Cart, error) {
	carts, err := r.carts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range carts {
		if carts[i].ID != id {
			continue
		}
		removed := carts[i]
		carts = append(carts[:i], carts[i+1:]...)
		if err := r.carts.SaveAll(ctx, carts); err != nil {
			return nil, err
		}
		return &removed, nil
	}
	return nil, ErrCartNotFound
}

// AddProduct adds one unit of the referenced product to the cart. A line
// item already referencing the product has its quantity incremented;
// otherwise a new line item with quantity 1 is appended. Both ids are
// resolved before anything is written, so a missing cart or product leaves
// the persisted state untouched. Only the cart collection is written; the
// product collection is read-only here.
func (r *StoreCartRepository) AddProduct(ctx context.Context, cartID, productID string) (*models.Cart, error) {
	carts, err := r.carts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range carts {
		if carts[i].ID == cartID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCartNotFound
	}

	products, err := r.products.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range products {
		if products[i].ID == productID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrProductNotFound
	}

	cart := &carts[idx]
	merged := false
	for i := range cart.Products {
		if cart.Products[i].Product == productID {
			cart.Products[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		cart.Products = append(cart.Products, models.CartItem{Product: productID, Quantity: 1})
	}

	if err := r.carts.SaveAll(ctx, carts); err != nil {
		return nil, err
	}
	updated := *cart
	return &updated, nil
}
