package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"schooldir/internal/cache"
	"schooldir/internal/model"
	"schooldir/internal/repository"
)

const (
	schoolListCacheTTL = time.Minute
	statsCacheTTL      = 30 * time.Second
	statsCacheKey      = "stats"

	// statsSentinel stands in for names when the table has no rows yet.
	statsSentinel = "N/A"
)

// sortFields is the allow-list for the public listing's ORDER BY column.
// Anything else silently falls back to the default, never into the query.
var sortFields = map[string]bool{
	"name":       true,
	"city":       true,
	"created_at": true,
}

// Stats aggregates the dashboard counters. Each field comes from an
// independent sub-query; missing data degrades to zero or the sentinel.
type Stats struct {
	SchoolCount     int64  `json:"schoolCount"`
	LastAdded       string `json:"lastAdded"`
	MostViewed      string `json:"mostViewed"`
	FavouritesCount int64  `json:"favouritesCount"`
}

// DirectoryService serves the public read side of the directory.
type DirectoryService interface {
	ListSchools(ctx context.Context, sortBy, order string) ([]model.SchoolSummary, error)
	Stats(ctx context.Context) (*Stats, error)
}

type directoryService struct {
	schools    repository.SchoolRepository
	favourites repository.FavouriteRepository
	cache      *cache.Client
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(schools repository.SchoolRepository, favourites repository.FavouriteRepository, cacheClient *cache.Client) DirectoryService {
	return &directoryService{
		schools:    schools,
		favourites: favourites,
		cache:      cacheClient,
	}
}

// ListSchools returns the directory ordered by a validated sort field and
// direction. Unknown values are normalized to the defaults (name ASC) rather
// than rejected.
func (s *directoryService) ListSchools(ctx context.Context, sortBy, order string) ([]model.SchoolSummary, error) {
	field := "name"
	if sortFields[sortBy] {
		field = sortBy
	}
	direction := "ASC"
	if upper := strings.ToUpper(order); upper == "DESC" {
		direction = upper
	}

	key := schoolListCacheKey(field, direction)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.SchoolSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	schools, err := s.schools.List(ctx, field, direction)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}

	if payload, err := json.Marshal(schools); err == nil {
		_ = s.cache.Set(ctx, key, payload, schoolListCacheTTL)
	}

	return schools, nil
}

// Stats computes the dashboard aggregates. Sub-queries are independent: a
// failing or empty one yields its zero value or sentinel instead of failing
// the whole call.
func (s *directoryService) Stats(ctx context.Context) (*Stats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached Stats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &Stats{
		LastAdded:  statsSentinel,
		MostViewed: statsSentinel,
	}

	if count, err := s.schools.Count(ctx); err == nil {
		stats.SchoolCount = count
	}
	if name, err := s.schools.LastAddedName(ctx); err == nil {
		stats.LastAdded = name
	}
	if name, err := s.schools.MostViewedName(ctx); err == nil {
		stats.MostViewed = name
	}
	if count, err := s.favourites.Count(ctx); err == nil {
		stats.FavouritesCount = count
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}

	return stats, nil
}

func schoolListCacheKey(field, direction string) string {
	return fmt.Sprintf("schools:%s:%s", field, direction)
}
