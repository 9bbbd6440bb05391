package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"rideconnect/internal/app"
	"rideconnect/internal/config"
	"rideconnect/internal/geo"
	"rideconnect/internal/handler"
	internalRedis "rideconnect/internal/redis"
	"rideconnect/internal/repository/postgres"
	"rideconnect/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server, err := wireServer(db, redisClient, nrApp, cfg)
	if err != nil {
		log.Fatalf("failed to wire server: %v", err)
	}

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, error) {
	// Initialize geo providers.
	googleProvider, err := geo.NewGoogleProvider(geo.GoogleConfig{
		APIKey:        cfg.Maps.GoogleAPIKey,
		Region:        cfg.Maps.GoogleRegion,
		Timeout:       cfg.Maps.ProviderTimeout,
		CacheCapacity: cfg.Maps.CacheCapacity,
	})
	if err != nil {
		return nil, err
	}
	if googleProvider.Ready() {
		log.Println("Google Maps routing enabled")
	} else {
		log.Println("Google Maps API key not set, using Nominatim fallback only")
	}

	nominatimProvider := geo.NewNominatimProvider(geo.NominatimConfig{
		BaseURL:       cfg.Maps.NominatimBaseURL,
		CountryCodes:  cfg.Maps.CountryCodes,
		Timeout:       cfg.Maps.ProviderTimeout,
		CacheCapacity: cfg.Maps.CacheCapacity,
	})

	// Initialize Redis stores.
	quoteStore := internalRedis.NewQuoteStore(redisClient)

	// Initialize repositories.
	bookingRepo := postgres.NewBookingRepository(db)

	// Initialize services.
	resolver := service.NewDistanceResolver(googleProvider, nominatimProvider)
	calculator := service.NewFareCalculator(service.DefaultFareConfig())
	pricingService := service.NewPricingService(resolver, calculator)
	notificationService := service.NewNotificationService(cfg.Notification.AdminEmail)
	bookingService := service.NewBookingService(bookingRepo, pricingService, notificationService)

	// Initialize handlers.
	quoteHandler := handler.NewQuoteHandler(pricingService, quoteStore)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		QuoteHandler:   quoteHandler,
		BookingHandler: bookingHandler,
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, nil
}
