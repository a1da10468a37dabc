// README: Promotion service blends sponsored placements with nearby popular venues.
package promotion

import (
	"context"
	"fmt"

	"eventride/internal/modules/location"
	"eventride/internal/modules/venue"
	"eventride/internal/types"
)

type Service struct {
	tables Tables
}

func NewService(tables Tables) *Service {
	return &Service{tables: tables}
}

// QuickSelect returns at most QuickSelectCap venues for category: every
// sponsored venue in table order, whatever its distance, then the nearest
// popular venues within PopularRadiusMiles that are not already sponsored.
func (s *Service) QuickSelect(ctx context.Context, category venue.Category, center types.Coordinate) ([]PromoVenue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", venue.ErrInvalidInput, category)
	}
	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("%w: center: %v", venue.ErrInvalidInput, err)
	}

	sponsored := s.tables.sponsored[category]
	out := make([]PromoVenue, 0, QuickSelectCap)
	taken := make(map[string]bool, len(sponsored))
	for _, sv := range sponsored {
		taken[sv.venue.ID] = true
		out = append(out, PromoVenue{
			Result:    venue.NewResult(sv.venue, location.DistanceMiles(center, sv.venue.Coordinate)),
			Sponsored: true,
			Promotion: sv.promotion,
		})
	}

	room := QuickSelectCap - len(sponsored)
	if room > 0 {
		out = append(out, s.nearby(category, center, taken, room)...)
	}
	if len(out) > QuickSelectCap {
		out = out[:QuickSelectCap]
	}
	return out, nil
}

func (s *Service) nearby(category venue.Category, center types.Coordinate, taken map[string]bool, n int) []PromoVenue {
	var near []PromoVenue
	for _, v := range s.tables.popular[category] {
		if taken[v.ID] {
			continue
		}
		d := location.DistanceMiles(center, v.Coordinate)
		if d > PopularRadiusMiles {
			continue
		}
		near = append(near, PromoVenue{Result: venue.NewResult(v, d)})
	}
	location.SortByDistance(near, func(p PromoVenue) float64 { return p.DistanceMiles })
	if len(near) > n {
		near = near[:n]
	}
	return near
}
