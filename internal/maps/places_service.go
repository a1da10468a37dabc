package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"eventride/internal/types"
)

const (
	// searchRadiusMeters bounds nearby searches (about 25 miles).
	searchRadiusMeters = 40000
	minRating          = 4.0
	maxResults         = 10
)

// Place represents a simplified location result.
type Place struct {
	Name             string
	Address          string
	Coordinate       types.Coordinate
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchNearby returns up to maxResults well-rated places matching keyword
// around center.
func (s *PlacesService) SearchNearby(ctx context.Context, center types.Coordinate, keyword string) ([]Place, error) {
	r := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: center.Lat, Lng: center.Lng},
		Radius:   searchRadiusMeters,
		Keyword:  keyword,
		Language: "en",
	}

	resp, err := s.client.NearbySearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}
	return filterResults(resp.Results, excludedKeywords), nil
}

// excludedKeywords disqualify any result whose name contains them.
var excludedKeywords = []string{"Permanently Closed", "Parking", "Garage"}

func filterResults(results []maps.PlacesSearchResult, exclude []string) []Place {
	var out []Place
	for _, result := range results {
		if result.Rating < minRating {
			continue
		}
		if containsAnyIgnoreCase(result.Name, exclude) {
			continue
		}

		address := result.FormattedAddress
		if address == "" {
			address = result.Vicinity
		}
		out = append(out, Place{
			Name:             result.Name,
			Address:          address,
			Coordinate:       types.Coordinate{Lat: result.Geometry.Location.Lat, Lng: result.Geometry.Location.Lng},
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})

		if len(out) >= maxResults {
			break
		}
	}
	return out
}

func containsAnyIgnoreCase(s string, substrs []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range substrs {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
