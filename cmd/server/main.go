package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stylefit/backend/config"
	httpDelivery "github.com/stylefit/backend/internal/delivery/http"
	"github.com/stylefit/backend/internal/infrastructure/cache"
	"github.com/stylefit/backend/internal/infrastructure/charts"
	"github.com/stylefit/backend/internal/infrastructure/swatch"
	"github.com/stylefit/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting StyleFit Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	chart, err := charts.Load(cfg.Sizing.Chart, cfg.Sizing.ChartFile)
	if err != nil {
		log.Fatalf("Failed to load size chart: %v", err)
	}
	log.Printf("Size chart: %s (%d bands: %v)", chart.Name, len(chart.Bands), chart.Labels())
	coverage := usecase.ChartCoverage(chart)
	log.Printf("Chart coverage: shoulder %.1f-%.1f cm, torso %.1f-%.1f cm",
		coverage.ShoulderMinCm, coverage.ShoulderMaxCm, coverage.TorsoMinCm, coverage.TorsoMaxCm)

	sizingService := usecase.NewSizingService(chart, usecase.SizingServiceConfig{
		DefaultTolerance:   cfg.Sizing.DefaultTolerance,
		EnableDebugLogging: cfg.Sizing.EnableDebugLogging,
	})
	log.Printf("Sizing: tolerance=%.1fcm, debug=%v", sizingService.DefaultTolerance(), cfg.Sizing.EnableDebugLogging)

	memoryCache := cache.NewMemoryCache(0)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	colorService := usecase.NewColorService(
		memoryCache,
		swatch.NewRenderer(3),
		usecase.ColorServiceConfig{
			CacheTTL:       cfg.Cache.TTL,
			SwatchCellSize: cfg.Swatch.CellSize,
		},
	)

	if cfg.RateLimit.PerIP > 0 {
		log.Printf("Rate limit: %d req/min per IP (burst %d)", cfg.RateLimit.PerIP, cfg.RateLimit.Burst)
	} else {
		log.Printf("Rate limit: disabled")
	}

	handler := httpDelivery.NewHandler(sizingService, colorService)
	router := httpDelivery.SetupRouter(cfg, handler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Printf("Swatch cache held %d entries", memoryCache.Size())
	memoryCache.Close()
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
