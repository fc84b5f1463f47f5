package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/ecommerce-api/internal/config"
	"github.com/example/ecommerce-api/internal/handlers"
	"github.com/example/ecommerce-api/internal/middleware"
	"github.com/example/ecommerce-api/internal/models"
	"github.com/example/ecommerce-api/internal/repository"
	"github.com/example/ecommerce-api/internal/service"
	"github.com/example/ecommerce-api/internal/storage"
	"github.com/example/ecommerce-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting ecommerce api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"products_file", cfg.Storage.ProductsFile,
		"carts_file", cfg.Storage.CartsFile,
		"log_level", cfg.LogLevel,
	)

	// Bootstrap the backing collections once at startup
	productStore := storage.NewFileCollection[models.Product](cfg.Storage.ProductsFile)
	cartStore := storage.NewFileCollection[models.Cart](cfg.Storage.CartsFile)

	if err := productStore.EnsureExists(); err != nil {
		log.Error("failed to initialize product collection", "error", err)
		os.Exit(1)
	}
	if err := cartStore.EnsureExists(); err != nil {
		log.Error("failed to initialize cart collection", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(productStore)
	cartRepo := repository.NewCartRepository(cartStore, productStore)

	// Initialize services
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	cartHandler := handlers.NewCartHandler(cartService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Product endpoints
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{productID}", productHandler.GetProduct)
		r.Post("/products", productHandler.CreateProduct)
		r.Put("/products/{productID}", productHandler.UpdateProduct)
		r.Delete("/products/{productID}", productHandler.DeleteProduct)

		// Cart endpoints
		r.Post("/carts", cartHandler.CreateCart)
		r.Get("/carts/{cartID}", cartHandler.GetCart)
		r.Post("/carts/{cartID}/products/{productID}", cartHandler.AddProduct)
		r.Delete("/carts/{cartID}", cartHandler.DeleteCart)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
