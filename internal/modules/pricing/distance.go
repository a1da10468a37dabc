// README: Trip distance estimators used by the quote engine.
package pricing

import (
	"context"
	"errors"
	"strings"
	"unicode/utf16"
)

const metersPerMile = 1609.344

// DistanceEstimator returns the trip length in miles between two free-text
// places.
type DistanceEstimator interface {
	EstimateMiles(ctx context.Context, origin, destination string) (float64, error)
}

// HashDistance derives a stable pseudo-distance in [5, 30) whole miles from
// the origin and destination strings. It never fails.
type HashDistance struct{}

func (HashDistance) EstimateMiles(_ context.Context, origin, destination string) (float64, error) {
	return hashMiles(origin + destination), nil
}

// hashMiles folds the UTF-16 code units of s with h = h*31 + c in wrapping
// 32-bit arithmetic.
func hashMiles(s string) float64 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return float64(5 + n%25)
}

// RouteLookup resolves the driving distance of a trip in meters.
type RouteLookup interface {
	DrivingDistanceMeters(ctx context.Context, origin, destination string) (int, error)
}

var ErrNoRoute = errors.New("no route distance")

// RouteDistance estimates miles from a routing provider.
type RouteDistance struct {
	routes RouteLookup
}

func NewRouteDistance(routes RouteLookup) *RouteDistance {
	return &RouteDistance{routes: routes}
}

func (d *RouteDistance) EstimateMiles(ctx context.Context, origin, destination string) (float64, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return 0, ErrNoRoute
	}
	meters, err := d.routes.DrivingDistanceMeters(ctx, origin, destination)
	if err != nil {
		return 0, err
	}
	if meters <= 0 {
		return 0, ErrNoRoute
	}
	return float64(meters) / metersPerMile, nil
}
