package service

import (
	"context"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/climate"
	"github.com/joya-energy/solar-simulation-backend/internal/pvgis"
)

// LocationYield is the resolved annual yield for one known location, with the
// source it came from.
type LocationYield struct {
	Location           string  `json:"location"`
	YieldKwhPerKwpYear float64 `json:"yieldKwhPerKwpYear"`
	Source             string  `json:"source"` // "pvgis" or "fallback"
}

// YieldService resolves annual solar yields per location. It consults PVGIS
// first and degrades to the static per-governorate table when the provider is
// unreachable, so a yield lookup for a known location never fails.
//
// Resolved PVGIS values are cached in memory; long-term irradiance estimates
// do not move between requests. RefreshAll re-resolves the whole table and is
// meant to be driven by the scheduler.
type YieldService struct {
	source pvgis.Source

	mu    sync.RWMutex
	cache map[string]LocationYield
}

// NewYieldService creates a new YieldService backed by the given provider.
func NewYieldService(source pvgis.Source) *YieldService {
	return &YieldService{
		source: source,
		cache:  make(map[string]LocationYield),
	}
}

// GetYield resolves the annual yield for one location.
// Returns apperrors.ErrUnknownLocation when the location is not in the table.
func (s *YieldService) GetYield(ctx context.Context, location string) (LocationYield, error) {
	key := strings.ToLower(strings.TrimSpace(location))

	fallback, err := climate.FallbackYieldFor(key)
	if err != nil {
		return LocationYield{}, err
	}

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	resolved := s.resolve(ctx, key, fallback)

	// Only cache provider results; fallback answers stay retryable.
	if resolved.Source == "pvgis" {
		s.mu.Lock()
		s.cache[key] = resolved
		s.mu.Unlock()
	}

	return resolved, nil
}

// GetAllYields resolves yields for every known location concurrently.
// Individual provider failures degrade to the fallback table, so the result
// always covers the full location list.
func (s *YieldService) GetAllYields(ctx context.Context) ([]LocationYield, error) {
	locations := climate.Locations()
	results := make([]LocationYield, len(locations))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(6)

	for i, location := range locations {
		i, location := i, location
		g.Go(func() error {
			yield, err := s.GetYield(ctx, location)
			if err != nil {
				return err
			}
			results[i] = yield
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.ErrFailedToRetrieveYields
	}

	return results, nil
}

// RefreshAll drops the cache and re-resolves every location. Called by the
// scheduler; failures are logged and the stale-free fallback path covers the
// next lookups.
func (s *YieldService) RefreshAll(ctx context.Context) {
	s.mu.Lock()
	s.cache = make(map[string]LocationYield)
	s.mu.Unlock()

	if _, err := s.GetAllYields(ctx); err != nil {
		log.Printf("yield refresh failed: %v", err)
	}
}

// resolve asks the provider for a yield and falls back to the static table.
func (s *YieldService) resolve(ctx context.Context, location string, fallback float64) LocationYield {
	coords, err := climate.CoordinatesFor(location)
	if err != nil {
		return LocationYield{Location: location, YieldKwhPerKwpYear: fallback, Source: "fallback"}
	}

	yield, err := s.source.AnnualYield(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		log.Printf("pvgis lookup for %s failed, using fallback yield: %v", location, err)
		return LocationYield{Location: location, YieldKwhPerKwpYear: fallback, Source: "fallback"}
	}

	return LocationYield{Location: location, YieldKwhPerKwpYear: yield, Source: "pvgis"}
}
