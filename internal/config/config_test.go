package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "PRODUCTS_FILE", "CARTS_FILE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Storage.ProductsFile != "products.json" {
		t.Errorf("expected default products file, got %s", cfg.Storage.ProductsFile)
	}
	if cfg.Storage.CartsFile != "carts.json" {
		t.Errorf("expected default carts file, got %s", cfg.Storage.CartsFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestLoad_SameCollectionFile(t *testing.T) {
	t.Setenv("PRODUCTS_FILE", "data.json")
	t.Setenv("CARTS_FILE", "data.json")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when both collections share a file")
	}
	if !strings.Contains(err.Error(), "different files") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PRODUCTS_FILE", "/tmp/p.json")
	t.Setenv("READ_TIMEOUT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Storage.ProductsFile != "/tmp/p.json" {
		t.Errorf("expected overridden products file, got %s", cfg.Storage.ProductsFile)
	}
	if cfg.Server.ReadTimeout != 5 {
		t.Errorf("expected read timeout 5, got %d", cfg.Server.ReadTimeout)
	}
}
