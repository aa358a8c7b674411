package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/stylefit/backend/internal/domain"
)

// ColorServiceConfig holds configuration for the color service
type ColorServiceConfig struct {
	CacheTTL       time.Duration
	SwatchCellSize int
}

// ColorService runs color analysis and serves rendered palette swatches
type ColorService struct {
	analyzer *ColorAnalyzer
	cache    domain.CacheRepository
	renderer domain.SwatchRenderer
	cacheTTL time.Duration
	cellSize int
}

// NewColorService creates a new color service with dependencies
func NewColorService(
	cache domain.CacheRepository,
	renderer domain.SwatchRenderer,
	config ColorServiceConfig,
) *ColorService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	cellSize := config.SwatchCellSize
	if cellSize <= 0 {
		cellSize = 64
	}

	return &ColorService{
		analyzer: NewColorAnalyzer(),
		cache:    cache,
		renderer: renderer,
		cacheTTL: cacheTTL,
		cellSize: cellSize,
	}
}

// Analyze classifies the features into a season
func (s *ColorService) Analyze(features *domain.ColorFeatures) (*domain.ColorAnalysis, error) {
	analysis, err := s.analyzer.Analyze(features)
	if err != nil {
		return nil, err
	}
	log.Printf("[COLOR] skin=%q eye=%q hair=%q -> %s",
		features.SkinTone, features.EyeColor, features.HairColor, analysis.Season)
	return analysis, nil
}

// RenderSwatch returns the PNG swatch for a season.
// Flow: parse season -> check cache -> render -> cache -> return
func (s *ColorService) RenderSwatch(ctx context.Context, season string) ([]byte, error) {
	parsed, err := ParseSeason(season)
	if err != nil {
		return nil, err
	}

	cacheKey := swatchCacheKey(parsed, s.cellSize)

	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil && len(cached) > 0 {
		return cached, nil
	}

	hexes, err := PaletteHex(parsed)
	if err != nil {
		return nil, err
	}

	png, err := s.renderer.Render(hexes, s.cellSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}

	// Caching failures are logged, the rendered image is still served
	if err := s.cache.Set(ctx, cacheKey, png, s.cacheTTL); err != nil {
		log.Printf("[SWATCH] Failed to cache %s: %v", cacheKey, err)
	}

	return png, nil
}

// swatchCacheKey has the format "swatch:{season}:{cellSize}"
func swatchCacheKey(season domain.Season, cellSize int) string {
	return fmt.Sprintf("swatch:%s:%d", season, cellSize)
}
