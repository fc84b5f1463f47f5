package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/example/ecommerce-api/internal/repository"
	"github.com/example/ecommerce-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// CreateCart handles POST /api/carts
// The request has no body; a new empty cart is created and returned.
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.CreateCart(r.Context())
	if err != nil {
		h.log.Error("failed to create cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("cart created", "cart_id", cart.ID)
	WriteJSON(w, http.StatusOK, cart, h.log)
}

// GetCart handles GET /api/carts/{cartID}
// A missing cart yields 200 with a null body, like the product read route.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	cart, err := h.cartService.GetCart(r.Context(), cartID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			h.log.Info("cart not found", "cart_id", cartID)
			WriteJSON(w, http.StatusOK, nil, h.log)
			return
		}

		h.log.Error("failed to get cart", "cart_id", cartID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, cart, h.log)
}

// AddProduct handles POST /api/carts/{cartID}/products/{productID}
// The 404 message names whichever entity failed to resolve.
func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")
	productID := chi.URLParam(r, "productID")

	cart, err := h.cartService.AddProduct(r.Context(), cartID, productID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCartNotFound):
			WriteError(w, http.StatusNotFound, "Cart not found", h.log)
		case errors.Is(err, repository.ErrProductNotFound):
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
		default:
			h.log.Error("failed to add product to cart",
				"cart_id", cartID,
				"product_id", productID,
				"error", err,
			)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("product added to cart", "cart_id", cartID, "product_id", productID)
	WriteJSON(w, http.StatusOK, cart, h.log)
}

// DeleteCart handles DELETE /api/carts/{cartID}
// Responds with the removed cart.
func (h *CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	cart, err := h.cartService.DeleteCart(r.Context(), cartID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			WriteError(w, http.StatusNotFound, "Cart not found", h.log)
			return
		}

		h.log.Error("failed to delete cart", "cart_id", cartID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("cart deleted", "cart_id", cartID)
	WriteJSON(w, http.StatusOK, cart, h.log)
}
