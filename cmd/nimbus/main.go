package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	httpapi "github.com/nimbus-weather/nimbus/internal/api/http"
	"github.com/nimbus-weather/nimbus/internal/config"
	"github.com/nimbus-weather/nimbus/internal/geo"
	"github.com/nimbus-weather/nimbus/internal/provider"
	"github.com/nimbus-weather/nimbus/internal/scheduler"
	"github.com/nimbus-weather/nimbus/internal/service"
	"github.com/nimbus-weather/nimbus/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Saved places, seeded with the configured default.
	places := geo.NewPlaceStore()
	places.Add(cfg.DefaultPlace)

	cache := store.NewMemoryStore(cfg.CacheMaxAge)

	svc := service.New(
		provider.NewForecastClient(httpClient),
		provider.NewGeocodeClient(httpClient),
		provider.NewRadarClient(httpClient),
		cache,
		places,
	)

	// Keep the cache warm for saved places and the radar timeline.
	sched := scheduler.New(svc, cfg.WeatherInterval, cfg.RadarInterval, cfg.HTTPTimeout)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "nimbus",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "nimbus",
		})
	})

	httpapi.RegisterRoutes(app, svc, cfg.DefaultUnits)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
