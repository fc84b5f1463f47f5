package repository

import (
	"context"

	"github.com/example/ecommerce-api/internal/models"
	"github.com/example/ecommerce-api/internal/storage"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id string) (*models.Product, error)
}

// StoreProductRepository implements ProductRepository over an injected
// document collection. Every operation re-reads the collection; no state is
// held between calls.
type StoreProductRepository struct {
	store storage.Collection[models.Product]
}

// NewProductRepository creates a product repository over the given collection
func NewProductRepository(store storage.Collection[models.Product]) *StoreProductRepository {
	return &StoreProductRepository{store: store}
}

// GetAll returns the full product collection unchanged
func (r *StoreProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.store.LoadAll(ctx)
}

// GetByID returns the first product with a matching id, or ErrProductNotFound
func (r *StoreProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			product := products[i]
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

// Create validates the request, assigns a fresh id, appends the product to
// the collection and persists it. Validation failures abort before any write.
func (r *StoreProductRepository) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if missing := missingProductFields(req); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	products, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Price:       req.Price,
		Status:      *req.Status,
		Stock:       req.Stock,
		Category:    req.Category,
		Thumbnails:  req.Thumbnails,
	}

	products = append(products, product)
	if err := r.store.SaveAll(ctx, products); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update merges the provided fields over the stored record and persists the
// collection. The id is preserved even though the merge overwrites every
// provided field.
func (r *StoreProductRepository) Update(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	products, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		applyProductUpdate(&products[i], req)
		if err := r.store.SaveAll(ctx, products); err != nil {
			return nil, err
		}
		updated := products[i]
		return &updated, nil
	}
	return nil, ErrProductNotFound
}

// Delete removes the matching record, persists the remaining sequence and
// returns the removed product.
func (r *StoreProductRepository) Delete(ctx context.Context, id string) (*models.Product, error) {
	products, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		removed := products[i]
		products = append(products[:i], products[i+1:]...)
		if err := r.store.SaveAll(ctx, products); err != nil {
			return nil, err
		}
		return &removed, nil
	}
	return nil, ErrProductNotFound
}

// missingProductFields reproduces the legacy create validation: empty
// strings, a zero price and a zero stock all count as missing, status only
// has to be present (false is valid), and thumbnails must be present but may
// be empty.
func missingProductFields(req models.CreateProductRequest) []string {
	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if req.Code == "" {
		missing = append(missing, "code")
	}
	if req.Price == 0 {
		missing = append(missing, "price")
	}
	if req.Status == nil {
		missing = append(missing, "status")
	}
	if req.Stock == 0 {
		missing = append(missing, "stock")
	}
	if req.Category == "" {
		missing = append(missing, "category")
	}
	if req.Thumbnails == nil {
		missing = append(missing, "thumbnails")
	}
	return missing
}

func applyProductUpdate(p *models.Product, req models.UpdateProductRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Code != nil {
		p.Code = *req.Code
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Thumbnails != nil {
		p.Thumbnails = req.Thumbnails
	}
}
