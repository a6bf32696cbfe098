package main

import (
	"fmt"
	"log"
	"os"

	"github.com/bazaarly/storefront/config"
	httpDelivery "github.com/bazaarly/storefront/internal/delivery/http"
	"github.com/bazaarly/storefront/internal/infrastructure/catalog"
	"github.com/bazaarly/storefront/internal/infrastructure/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Storefront Browse v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog backend: %s", cfg.Catalog.BaseURL)
	log.Printf("Session TTL: %s", cfg.Session.TTL)

	// Initialize infrastructure dependencies
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	sessions := session.NewMemoryRegistry(cfg.Session.TTL)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogClient, sessions)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
