package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nutristack/advisor/backend/internal/adapters/cache"
	"github.com/nutristack/advisor/backend/internal/adapters/database"
	"github.com/nutristack/advisor/backend/internal/adapters/events"
	"github.com/nutristack/advisor/backend/internal/api/handlers"
	"github.com/nutristack/advisor/backend/internal/api/middleware"
	"github.com/nutristack/advisor/backend/internal/api/routes"
	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/application/services"
	"github.com/nutristack/advisor/backend/internal/domain/providers"
	"github.com/nutristack/advisor/backend/internal/domain/repositories"
	"github.com/nutristack/advisor/backend/internal/infrastructure/clients/postgres"
	"github.com/nutristack/advisor/backend/internal/infrastructure/clients/redis"
	"github.com/nutristack/advisor/backend/internal/infrastructure/observability"
	"github.com/nutristack/advisor/backend/pkg/config"
	"github.com/nutristack/advisor/backend/pkg/secrets"
)

func main() {
	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Pull secrets into the environment before reading configuration
	vaultResult, err := secrets.ApplyVaultSecrets(ctx, secrets.LoadVaultConfigFromEnv(""))
	if err != nil {
		log.Printf("Warning: Failed to load Vault secrets: %v", err)
	} else if vaultResult.Enabled {
		log.Printf("Vault secrets loaded from %s (loaded: %d, skipped: %d)", vaultResult.Path, vaultResult.Loaded, vaultResult.Skipped)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, getEnv("APP_ENV", "development"))

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize adapters

	// Create base catalog adapters
	baseSupplementAdapter := database.NewSupplementAdapter(pgClient)

	// Wrap with caching if Redis is available (for read performance optimization)
	var supplementRepo repositories.SupplementRepository
	if cacheProvider != nil {
		supplementRepo = database.NewCachedCatalogAdapter(baseSupplementAdapter, cacheProvider)
		log.Println("Catalog adapter wrapped with caching layer")
	} else {
		supplementRepo = baseSupplementAdapter
		log.Println("Catalog adapter running without cache (Redis unavailable)")
	}

	protocolAdapter := database.NewProtocolAdapter(pgClient)
	prescriptionAdapter := database.NewPrescriptionAdapter(pgClient)
	safetyRuleAdapter := database.NewSafetyRuleAdapter(pgClient)

	// Safety rules default to the in-code set; a seeded table overrides them
	safetyService := services.NewSafetyService()
	if dbRules, err := safetyRuleAdapter.List(ctx); err != nil {
		log.Printf("Warning: Failed to load safety rules from database: %v", err)
	} else if len(dbRules) > 0 {
		safetyService = services.NewSafetyServiceWithRules(dbRules, rules.DefaultStackRules())
		log.Printf("Loaded %d safety rules from database", len(dbRules))
	}

	// Initialize event bus for generation notifications
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Println("Event bus initialized successfully")
	} else {
		log.Println("Event bus disabled (Redis not available)")
	}

	// Initialize services
	prescriptionService := services.NewPrescriptionService(
		supplementRepo,
		protocolAdapter,
		prescriptionAdapter,
		eventBus,
		safetyService,
		cfg.Engine,
	)
	goalService := services.NewGoalService()

	// Initialize handlers
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService, prescriptionAdapter)
	catalogHandler := handlers.NewCatalogHandler(supplementRepo, protocolAdapter, goalService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		prescriptionHandler,
		catalogHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}

	log.Println("Server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
