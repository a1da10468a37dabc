// README: Immutable surge and fee tables, built once at process start.
package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRules = errors.New("invalid pricing rules")

// VenueSurge is one row of the venue multiplier table. EventVenue marks the
// venues that attract the event-day surge.
type VenueSurge struct {
	Venue      string
	Multiplier float64
	EventVenue bool
}

// Airport matches a destination when its name or code appears in it.
type Airport struct {
	Name string
	Code string
	Fee  float64
}

// Rules holds the lookup tables used by the quote engine. The zero value has
// no surges and no airports.
type Rules struct {
	multipliers map[string]float64
	eventVenues map[string]struct{}
	airports    []Airport
}

// NewRules validates and indexes the tables. Venue names match
// case-insensitively; airports are tried in the given order.
func NewRules(surges []VenueSurge, airports []Airport) (Rules, error) {
	r := Rules{
		multipliers: make(map[string]float64, len(surges)),
		eventVenues: make(map[string]struct{}),
		airports:    make([]Airport, 0, len(airports)),
	}
	for _, s := range surges {
		key := venueKey(s.Venue)
		if key == "" {
			return Rules{}, fmt.Errorf("%w: empty venue name", ErrInvalidRules)
		}
		if s.Multiplier < 1 {
			return Rules{}, fmt.Errorf("%w: multiplier %v for %q below 1", ErrInvalidRules, s.Multiplier, s.Venue)
		}
		if _, dup := r.multipliers[key]; dup {
			return Rules{}, fmt.Errorf("%w: duplicate venue %q", ErrInvalidRules, s.Venue)
		}
		r.multipliers[key] = s.Multiplier
		if s.EventVenue {
			r.eventVenues[key] = struct{}{}
		}
	}
	for _, a := range airports {
		if strings.TrimSpace(a.Name) == "" && strings.TrimSpace(a.Code) == "" {
			return Rules{}, fmt.Errorf("%w: airport without name or code", ErrInvalidRules)
		}
		if a.Fee < 0 {
			return Rules{}, fmt.Errorf("%w: negative fee for %q", ErrInvalidRules, a.Name)
		}
		r.airports = append(r.airports, a)
	}
	return r, nil
}

// DefaultRules returns the built-in Northeast Ohio tables.
func DefaultRules() Rules {
	r, err := NewRules(defaultVenueSurges, defaultAirports)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultVenueSurges = []VenueSurge{
	{Venue: "Progressive Field", Multiplier: 1.3, EventVenue: true},
	{Venue: "Rocket Mortgage FieldHouse", Multiplier: 1.25, EventVenue: true},
	{Venue: "Huntington Bank Field", Multiplier: 1.35, EventVenue: true},
	{Venue: "Blossom Music Center", Multiplier: 1.2, EventVenue: true},
	{Venue: "Jacobs Pavilion", Multiplier: 1.15, EventVenue: true},
	{Venue: "House of Blues Cleveland", Multiplier: 1.15},
	{Venue: "Playhouse Square", Multiplier: 1.1},
	{Venue: "Agora Theatre", Multiplier: 1.1},
	{Venue: "Huntington Convention Center", Multiplier: 1.05},
}

var defaultAirports = []Airport{
	{Name: "Cleveland Hopkins", Code: "CLE", Fee: 25},
	{Name: "Akron-Canton", Code: "CAK", Fee: 20},
	{Name: "Pittsburgh International", Code: "PIT", Fee: 30},
}

func (r Rules) venueSurge(venue string) float64 {
	m, ok := r.multipliers[venueKey(venue)]
	if !ok {
		return 0
	}
	return m - 1
}

func (r Rules) isEventVenue(venue string) bool {
	_, ok := r.eventVenues[venueKey(venue)]
	return ok
}

// airportFee is a plain substring match, so a code such as "CLE" also matches
// any destination containing "cleveland".
func (r Rules) airportFee(destination string) float64 {
	dest := strings.ToLower(destination)
	for _, a := range r.airports {
		if name := strings.ToLower(strings.TrimSpace(a.Name)); name != "" && strings.Contains(dest, name) {
			return a.Fee
		}
		if code := strings.ToLower(strings.TrimSpace(a.Code)); code != "" && strings.Contains(dest, code) {
			return a.Fee
		}
	}
	return 0
}

func venueKey(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
