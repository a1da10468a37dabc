// README: Sponsored and popular venue tables, validated against the catalog.
package promotion

import (
	"fmt"

	"eventride/internal/modules/venue"
)

// Tables holds resolved venues per category. Built once, never mutated.
type Tables struct {
	sponsored map[venue.Category][]sponsoredVenue
	popular   map[venue.Category][]venue.Venue
}

type sponsoredVenue struct {
	venue     venue.Venue
	promotion string
}

// NewTables resolves every id against catalog. An id that is unknown, listed
// under the wrong category or listed twice in one table is rejected.
func NewTables(catalog *venue.Catalog, sponsored map[venue.Category][]Sponsorship, popular map[venue.Category][]string) (Tables, error) {
	t := Tables{
		sponsored: make(map[venue.Category][]sponsoredVenue, len(sponsored)),
		popular:   make(map[venue.Category][]venue.Venue, len(popular)),
	}
	for cat, entries := range sponsored {
		seen := make(map[string]bool, len(entries))
		for _, e := range entries {
			v, err := resolve(catalog, cat, e.VenueID, seen)
			if err != nil {
				return Tables{}, fmt.Errorf("sponsored: %w", err)
			}
			t.sponsored[cat] = append(t.sponsored[cat], sponsoredVenue{venue: v, promotion: e.Promotion})
		}
	}
	for cat, ids := range popular {
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			v, err := resolve(catalog, cat, id, seen)
			if err != nil {
				return Tables{}, fmt.Errorf("popular: %w", err)
			}
			t.popular[cat] = append(t.popular[cat], v)
		}
	}
	return t, nil
}

func resolve(catalog *venue.Catalog, cat venue.Category, id string, seen map[string]bool) (venue.Venue, error) {
	if !cat.Valid() {
		return venue.Venue{}, fmt.Errorf("%w: unknown category %q", ErrInvalidTables, cat)
	}
	if seen[id] {
		return venue.Venue{}, fmt.Errorf("%w: %s listed twice under %s", ErrInvalidTables, id, cat)
	}
	seen[id] = true
	v, err := catalog.Get(id)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("%w: %v", ErrInvalidTables, err)
	}
	if v.Category != cat {
		return venue.Venue{}, fmt.Errorf("%w: %s is %s, listed under %s", ErrInvalidTables, id, v.Category, cat)
	}
	return v, nil
}

// DefaultTables resolves the built-in placements against catalog. It fails
// when catalog lacks one of the placed venues.
func DefaultTables(catalog *venue.Catalog) (Tables, error) {
	return NewTables(catalog, defaultSponsored, defaultPopular)
}

var defaultSponsored = map[venue.Category][]Sponsorship{
	venue.CategorySports: {
		{VenueID: "progressive-field", Promotion: "Guardians home games: $5 off your ride"},
	},
	venue.CategoryConcert: {
		{VenueID: "blossom-music-center", Promotion: "Summer series shuttle pricing"},
		{VenueID: "house-of-blues-cleveland", Promotion: "Free drink with ride receipt"},
	},
	venue.CategoryBar: {
		{VenueID: "willoughby-brewing", Promotion: "Happy hour 4-7pm"},
	},
	venue.CategoryComedy: {
		{VenueID: "funny-stop", Promotion: "Two-for-one Thursdays"},
	},
}

var defaultPopular = map[venue.Category][]string{
	venue.CategorySports:  {"rocket-mortgage-fieldhouse", "huntington-bank-field", "progressive-field"},
	venue.CategoryConcert: {"jacobs-pavilion", "agora-theatre", "house-of-blues-cleveland", "blossom-music-center"},
	venue.CategoryBar: {
		"chagrin-river-ale-house", "wild-goose-tavern", "willoughby-vine-and-tap",
		"mentor-avenue-pub", "willoughby-brewing",
	},
	venue.CategoryTheater:   {"playhouse-square", "beck-center"},
	venue.CategoryArt:       {"cleveland-museum-of-art", "moca-cleveland"},
	venue.CategoryFamily:    {"great-lakes-science-center", "cleveland-metroparks-zoo"},
	venue.CategoryHoliday:   {"lake-metroparks-farmpark", "stan-hywet"},
	venue.CategoryNightlife: {"velvet-dog", "willoughby-hills-lounge"},
}
