package main // Entry point package

import (
	"log" // Logging library
	"os"  // Environment lookup for optional components

	"github.com/joho/godotenv"    // .env bootstrap for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/product-catalog/internal/config"     // Internal config loader
	"github.com/iliyamo/product-catalog/internal/database"   // MySQL pool
	"github.com/iliyamo/product-catalog/internal/handler"    // HTTP handlers
	"github.com/iliyamo/product-catalog/internal/middleware" // Rate limiting middleware
	"github.com/iliyamo/product-catalog/internal/queue"      // Catalog event consumer
	"github.com/iliyamo/product-catalog/internal/repository" // Data access layer
	"github.com/iliyamo/product-catalog/internal/router"     // Route registration
	"github.com/iliyamo/product-catalog/migrations"          // Embedded schema migrations
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load() // Load environment config; fatal when JWT_SECRET or DB settings are missing

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := migrations.Migrate(db); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	// Redis is optional: a nil client turns the limiter into a no-op.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// The catalog event consumer is opt-in; the API publishes events
	// regardless and the broker buffers them until a consumer runs.
	if os.Getenv("CATALOG_CONSUMER") == "true" {
		go queue.StartCatalogConsumer()
	}

	users := repository.NewUserRepo(db)
	products := repository.NewProductRepo(db)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), limiter)
	router.RegisterProducts(e, handler.NewProductHandler(products), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
