// README: Venue service ranks catalog venues by distance and pages through them.
package venue

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcloughlin/geohash"

	"eventride/internal/maps"
	"eventride/internal/modules/location"
	"eventride/internal/types"
)

const geohashPrecision = 7

// NearbySearcher finds places outside the catalog.
type NearbySearcher interface {
	SearchNearby(ctx context.Context, center types.Coordinate, keyword string) ([]maps.Place, error)
}

type Service struct {
	catalog *Catalog
	places  NearbySearcher
}

// NewService ranks venues from catalog. places may be nil, which disables
// Discover.
func NewService(catalog *Catalog, places NearbySearcher) *Service {
	return &Service{catalog: catalog, places: places}
}

// FetchPage returns page q.Page of the venues within q.RadiusMiles of
// q.Center, nearest first. A page shorter than q.Limit is the last one.
func (s *Service) FetchPage(ctx context.Context, q PageQuery) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := q.validate(); err != nil {
		return nil, err
	}

	ranked := s.rank(q.Center, q.RadiusMiles, q.Category)
	if q.Page > len(ranked)/q.Limit {
		return []Result{}, nil
	}
	start := q.Page * q.Limit
	end := start + q.Limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[start:end], nil
}

func (s *Service) rank(center types.Coordinate, radiusMiles float64, category *Category) []Result {
	out := make([]Result, 0)
	for _, v := range s.catalog.venues {
		if category != nil && v.Category != *category {
			continue
		}
		d := location.DistanceMiles(center, v.Coordinate)
		if d > radiusMiles {
			continue
		}
		out = append(out, NewResult(v, d))
	}
	location.SortByDistance(out, func(r Result) float64 { return r.DistanceMiles })
	return out
}

func NewResult(v Venue, distanceMiles float64) Result {
	return Result{
		Venue:         v,
		DistanceMiles: distanceMiles,
		Geohash:       geohash.EncodeWithPrecision(v.Coordinate.Lat, v.Coordinate.Lng, geohashPrecision),
	}
}

// Discover searches the places provider for category venues around center,
// skipping names already in the catalog.
func (s *Service) Discover(ctx context.Context, center types.Coordinate, category Category) ([]Result, error) {
	if s.places == nil {
		return nil, ErrDiscoveryDisabled
	}
	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("%w: center: %v", ErrInvalidInput, err)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}

	places, err := s.places.SearchNearby(ctx, center, category.SearchKeyword())
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", category, err)
	}

	known := make(map[string]struct{}, len(s.catalog.venues))
	for _, v := range s.catalog.venues {
		known[strings.ToLower(v.Name)] = struct{}{}
	}

	out := make([]Result, 0, len(places))
	for _, p := range places {
		if _, dup := known[strings.ToLower(p.Name)]; dup {
			continue
		}
		if p.Coordinate.Validate() != nil {
			continue
		}
		v := Venue{
			ID:         "places:" + p.PlaceID,
			Name:       p.Name,
			Address:    p.Address,
			Coordinate: p.Coordinate,
			Category:   category,
		}
		out = append(out, NewResult(v, location.DistanceMiles(center, p.Coordinate)))
	}
	location.SortByDistance(out, func(r Result) float64 { return r.DistanceMiles })
	return out, nil
}
