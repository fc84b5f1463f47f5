package repository

import (
	"context"
	"testing"

	"github.com/example/ecommerce-api/internal/models"
	"github.com/example/ecommerce-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartRepo(t *testing.T, products ...models.Product) (*StoreCartRepository, *storage.MemCollection[models.Cart]) {
	t.Helper()
	carts := storage.NewMemCollection[models.Cart]()
	productStore := storage.NewMemCollection[models.Product]()
	if len(products) > 0 {
		require.NoError(t, productStore.SaveAll(context.Background(), products))
	}
	return NewCartRepository(carts, productStore), carts
}

func TestCartCreate_EmptyProductSequence(t *testing.T) {
	repo, store := newCartRepo(t)
	ctx := context.Background()

	cart, err := repo.Create(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, cart.ID)
	assert.NotNil(t, cart.Products)
	assert.Empty(t, cart.Products)

	persisted, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, *cart, persisted[0])
}

func TestCartCreate_AssignsUniqueIDs(t *testing.T) {
	repo, _ := newCartRepo(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		cart, err := repo.Create(ctx)
		require.NoError(t, err)
		assert.False(t, seen[cart.ID], "duplicate id %s", cart.ID)
		seen[cart.ID] = true
	}
}

func TestCartAddProduct_AggregatesQuantity(t *testing.T) {
	repo, _ := newCartRepo(t,
		models.Product{ID: "p1", Title: "Pen"},
		models.Product{ID: "p2", Title: "Notebook"},
	)
	ctx := context.Background()

	cart, err := repo.Create(ctx)
	require.NoError(t, err)

	updated, err := repo.AddProduct(ctx, cart.ID, "p1")
	require.NoError(t, err)
	require.Len(t, updated.Products, 1)
	assert.Equal(t, models.CartItem{Product: "p1", Quantity: 1}, updated.Products[0])

	updated, err = repo.AddProduct(ctx, cart.ID, "p1")
	require.NoError(t, err)
	require.Len(t, updated.Products, 1)
	assert.Equal(t, models.CartItem{Product: "p1", Quantity: 2}, updated.Products[0])

	updated, err = repo.AddProduct(ctx, cart.ID, "p2")
	require.NoError(t, err)
	require.Len(t, updated.Products, 2)
	assert.Equal(t, models.CartItem{Product: "p1", Quantity: 2}, updated.Products[0])
	assert.Equal(t, models.CartItem{Product: "p2", Quantity: 1}, updated.Products[1])
}

func TestCartAddProduct_CartNotFound(t *testing.T) {
	repo, store := newCartRepo(t, models.Product{ID: "p1"})
	ctx := context.Background()

	before, err := store.LoadAll(ctx)
	require.NoError(t, err)

	_, err = repo.AddProduct(ctx, "missing", "p1")
	require.ErrorIs(t, err, ErrCartNotFound)

	after, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed add must not mutate persisted state")
}

func TestCartAddProduct_ProductNotFound(t *testing.T) {
	repo, store := newCartRepo(t)
	ctx := context.Background()

	cart, err := repo.Create(ctx)
	require.NoError(t, err)

	before, err := store.LoadAll(ctx)
	require.NoError(t, err)

	_, err = repo.AddProduct(ctx, cart.ID, "missing")
	require.ErrorIs(t, err, ErrProductNotFound)

	after, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed add must not mutate persisted state")
}

func TestCartAddProduct_DanglingReferenceTolerated(t *testing.T) {
	productStore := storage.NewMemCollection[models.Product]()
	require.NoError(t, productStore.SaveAll(context.Background(), []models.Product{{ID: "p1"}}))
	carts := storage.NewMemCollection[models.Cart]()
	repo := NewCartRepository(carts, productStore)
	ctx := context.Background()

	cart, err := repo.Create(ctx)
	require.NoError(t, err)
	_, err = repo.AddProduct(ctx, cart.ID, "p1")
	require.NoError(t, err)

	// Deleting the product leaves the line item in place; the cart is still
	// readable with the dangling reference intact.
	require.NoError(t, productStore.SaveAll(ctx, []models.Product{}))

	got, err := repo.GetByID(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "p1", got.Products[0].Product)
}

func TestCartGetByID_NotFound(t *testing.T) {
	repo, _ := newCartRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartDelete_ReturnsRemovedRecord(t *testing.T) {
	repo, store := newCartRepo(t)
	ctx := context.Background()

	cart, err := repo.Create(ctx)
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, removed.ID)

	_, err = repo.GetByID(ctx, cart.ID)
	require.ErrorIs(t, err, ErrCartNotFound)

	persisted, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestCartDelete_NotFound(t *testing.T) {
	repo, _ := newCartRepo(t)

	_, err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrCartNotFound)
}
