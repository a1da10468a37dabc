// README: Venue catalog entries, categories and page queries.
package venue

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"eventride/internal/types"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("venue not found")
	ErrDiscoveryDisabled = errors.New("venue discovery disabled")
)

type Category string

const (
	CategorySports     Category = "sports"
	CategoryConcert    Category = "concert"
	CategoryBar        Category = "bar"
	CategoryHoliday    Category = "holiday"
	CategoryGeneral    Category = "general"
	CategoryComedy     Category = "comedy"
	CategoryTheater    Category = "theater"
	CategoryArt        Category = "art"
	CategoryFood       Category = "food"
	CategoryFamily     Category = "family"
	CategoryFestival   Category = "festival"
	CategoryConference Category = "conference"
	CategoryCommunity  Category = "community"
	CategoryNightlife  Category = "nightlife"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategorySports, CategoryConcert, CategoryBar, CategoryHoliday, CategoryGeneral,
	CategoryComedy, CategoryTheater, CategoryArt, CategoryFood, CategoryFamily,
	CategoryFestival, CategoryConference, CategoryCommunity, CategoryNightlife,
}

// searchKeywords are the Places query terms used when discovering venues
// outside the catalog.
var searchKeywords = map[Category]string{
	CategorySports:     "stadium",
	CategoryConcert:    "concert venue",
	CategoryBar:        "bar",
	CategoryHoliday:    "holiday lights",
	CategoryGeneral:    "point of interest",
	CategoryComedy:     "comedy club",
	CategoryTheater:    "theater",
	CategoryArt:        "art gallery",
	CategoryFood:       "restaurant",
	CategoryFamily:     "family attraction",
	CategoryFestival:   "festival grounds",
	CategoryConference: "convention center",
	CategoryCommunity:  "community center",
	CategoryNightlife:  "night club",
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := searchKeywords[c]; !ok {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
	}
	return c, nil
}

func (c Category) Valid() bool {
	_, ok := searchKeywords[c]
	return ok
}

func (c Category) SearchKeyword() string {
	return searchKeywords[c]
}

type Venue struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Address    string           `json:"address"`
	Coordinate types.Coordinate `json:"coordinate"`
	Category   Category         `json:"category"`
}

// Result is a venue ranked against a query center.
type Result struct {
	Venue
	DistanceMiles float64 `json:"distance_miles"`
	Geohash       string  `json:"geohash"`
}

// PageQuery selects one page of venues around Center. A nil Category means
// every category.
type PageQuery struct {
	Center      types.Coordinate
	Category    *Category
	RadiusMiles float64
	Page        int
	Limit       int
}

func (q PageQuery) validate() error {
	if err := q.Center.Validate(); err != nil {
		return fmt.Errorf("%w: center: %v", ErrInvalidInput, err)
	}
	if q.RadiusMiles < 0 || math.IsNaN(q.RadiusMiles) {
		return fmt.Errorf("%w: radius %v", ErrInvalidInput, q.RadiusMiles)
	}
	if q.Page < 0 {
		return fmt.Errorf("%w: page %d", ErrInvalidInput, q.Page)
	}
	if q.Limit <= 0 {
		return fmt.Errorf("%w: limit %d", ErrInvalidInput, q.Limit)
	}
	if q.Category != nil && !q.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *q.Category)
	}
	return nil
}
