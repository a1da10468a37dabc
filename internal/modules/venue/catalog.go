// README: Read-only venue catalog, loaded once at process start.
package venue

import (
	"fmt"
	"strings"

	"eventride/internal/types"
)

// Catalog is immutable after construction; every accessor returns copies.
type Catalog struct {
	venues []Venue
	byID   map[string]int
}

// NewCatalog validates ids, coordinates and categories. Catalog order is the
// tie-break order for equal distances.
func NewCatalog(venues []Venue) (*Catalog, error) {
	c := &Catalog{
		venues: make([]Venue, 0, len(venues)),
		byID:   make(map[string]int, len(venues)),
	}
	for _, v := range venues {
		if strings.TrimSpace(v.ID) == "" {
			return nil, fmt.Errorf("%w: venue %q has no id", ErrInvalidInput, v.Name)
		}
		if _, dup := c.byID[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate venue id %q", ErrInvalidInput, v.ID)
		}
		if err := v.Coordinate.Validate(); err != nil {
			return nil, fmt.Errorf("%w: venue %q: %v", ErrInvalidInput, v.ID, err)
		}
		if !v.Category.Valid() {
			return nil, fmt.Errorf("%w: venue %q: unknown category %q", ErrInvalidInput, v.ID, v.Category)
		}
		c.byID[v.ID] = len(c.venues)
		c.venues = append(c.venues, v)
	}
	return c, nil
}

// DefaultCatalog returns the built-in Northeast Ohio venues.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultVenues)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) All() []Venue {
	out := make([]Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

func (c *Catalog) Get(id string) (Venue, error) {
	i, ok := c.byID[id]
	if !ok {
		return Venue{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.venues[i], nil
}

func (c *Catalog) Len() int {
	return len(c.venues)
}

func pt(lat, lng float64) types.Coordinate {
	return types.Coordinate{Lat: lat, Lng: lng}
}

var defaultVenues = []Venue{
	// Downtown Cleveland
	{ID: "progressive-field", Name: "Progressive Field", Address: "2401 Ontario St, Cleveland, OH 44115", Coordinate: pt(41.4962, -81.6852), Category: CategorySports},
	{ID: "rocket-mortgage-fieldhouse", Name: "Rocket Mortgage FieldHouse", Address: "1 Center Ct, Cleveland, OH 44115", Coordinate: pt(41.4965, -81.6881), Category: CategorySports},
	{ID: "huntington-bank-field", Name: "Huntington Bank Field", Address: "100 Alfred Lerner Way, Cleveland, OH 44114", Coordinate: pt(41.5061, -81.6995), Category: CategorySports},
	{ID: "house-of-blues-cleveland", Name: "House of Blues Cleveland", Address: "308 Euclid Ave, Cleveland, OH 44114", Coordinate: pt(41.4994, -81.6908), Category: CategoryConcert},
	{ID: "jacobs-pavilion", Name: "Jacobs Pavilion", Address: "2014 Sycamore St, Cleveland, OH 44113", Coordinate: pt(41.4953, -81.7047), Category: CategoryConcert},
	{ID: "agora-theatre", Name: "Agora Theatre", Address: "5000 Euclid Ave, Cleveland, OH 44103", Coordinate: pt(41.5031, -81.6516), Category: CategoryConcert},
	{ID: "playhouse-square", Name: "Playhouse Square", Address: "1501 Euclid Ave, Cleveland, OH 44115", Coordinate: pt(41.5015, -81.6810), Category: CategoryTheater},
	{ID: "hilarities", Name: "Hilarities 4th Street Theatre", Address: "2035 E 4th St, Cleveland, OH 44115", Coordinate: pt(41.4993, -81.6904), Category: CategoryComedy},
	{ID: "velvet-dog", Name: "The Velvet Dog", Address: "1280 W 6th St, Cleveland, OH 44113", Coordinate: pt(41.4990, -81.6930), Category: CategoryNightlife},
	{ID: "huntington-convention-center", Name: "Huntington Convention Center", Address: "300 Lakeside Ave E, Cleveland, OH 44113", Coordinate: pt(41.5044, -81.6957), Category: CategoryConference},
	{ID: "cleveland-public-library", Name: "Cleveland Public Library", Address: "325 Superior Ave E, Cleveland, OH 44114", Coordinate: pt(41.5016, -81.6876), Category: CategoryCommunity},
	{ID: "tower-city-center", Name: "Tower City Center", Address: "230 W Huron Rd, Cleveland, OH 44113", Coordinate: pt(41.4967, -81.6939), Category: CategoryGeneral},
	{ID: "great-lakes-science-center", Name: "Great Lakes Science Center", Address: "601 Erieside Ave, Cleveland, OH 44114", Coordinate: pt(41.5077, -81.6968), Category: CategoryFamily},
	{ID: "west-side-market", Name: "West Side Market", Address: "1979 W 25th St, Cleveland, OH 44113", Coordinate: pt(41.4847, -81.7031), Category: CategoryFood},
	// University Circle and west side
	{ID: "cleveland-museum-of-art", Name: "Cleveland Museum of Art", Address: "11150 East Blvd, Cleveland, OH 44106", Coordinate: pt(41.5089, -81.6120), Category: CategoryArt},
	{ID: "moca-cleveland", Name: "MOCA Cleveland", Address: "11400 Euclid Ave, Cleveland, OH 44106", Coordinate: pt(41.5079, -81.6048), Category: CategoryArt},
	{ID: "cleveland-metroparks-zoo", Name: "Cleveland Metroparks Zoo", Address: "3900 Wildlife Way, Cleveland, OH 44109", Coordinate: pt(41.4459, -81.7121), Category: CategoryFamily},
	{ID: "beck-center", Name: "Beck Center for the Arts", Address: "17801 Detroit Ave, Lakewood, OH 44107", Coordinate: pt(41.4838, -81.8007), Category: CategoryTheater},
	{ID: "cuyahoga-county-fairgrounds", Name: "Cuyahoga County Fairgrounds", Address: "164 Eastland Rd, Berea, OH 44017", Coordinate: pt(41.3722, -81.8543), Category: CategoryFestival},
	// Willoughby and Lake County
	{ID: "willoughby-brewing", Name: "Willoughby Brewing Company", Address: "4057 Erie St, Willoughby, OH 44094", Coordinate: pt(41.6405, -81.4071), Category: CategoryBar},
	{ID: "chagrin-river-ale-house", Name: "Chagrin River Ale House", Address: "38040 Euclid Ave, Willoughby, OH 44094", Coordinate: pt(41.6421, -81.4089), Category: CategoryBar},
	{ID: "wild-goose-tavern", Name: "The Wild Goose Tavern", Address: "4125 Erie St, Willoughby, OH 44094", Coordinate: pt(41.6392, -81.4058), Category: CategoryBar},
	{ID: "willoughby-vine-and-tap", Name: "Willoughby Vine & Tap", Address: "4200 Erie St, Willoughby, OH 44094", Coordinate: pt(41.6389, -81.4049), Category: CategoryBar},
	{ID: "willoughby-hills-lounge", Name: "Willoughby Hills Lounge", Address: "2800 SOM Center Rd, Willoughby Hills, OH 44094", Coordinate: pt(41.5985, -81.4180), Category: CategoryNightlife},
	{ID: "mentor-avenue-pub", Name: "Mentor Avenue Pub", Address: "8390 Mentor Ave, Mentor, OH 44060", Coordinate: pt(41.6661, -81.3396), Category: CategoryBar},
	{ID: "lake-metroparks-farmpark", Name: "Lake Metroparks Farmpark", Address: "8800 Euclid Chardon Rd, Kirtland, OH 44094", Coordinate: pt(41.6253, -81.2575), Category: CategoryHoliday},
	// Summit County
	{ID: "blossom-music-center", Name: "Blossom Music Center", Address: "1145 W Steels Corners Rd, Cuyahoga Falls, OH 44223", Coordinate: pt(41.1795, -81.5598), Category: CategoryConcert},
	{ID: "funny-stop", Name: "Funny Stop Comedy Club", Address: "1917 Front St, Cuyahoga Falls, OH 44221", Coordinate: pt(41.1343, -81.4844), Category: CategoryComedy},
	{ID: "stan-hywet", Name: "Stan Hywet Hall & Gardens", Address: "714 N Portage Path, Akron, OH 44303", Coordinate: pt(41.1024, -81.5513), Category: CategoryHoliday},
}
