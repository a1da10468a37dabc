// README: Ride quote request/response and pricing constants.
package pricing

const (
	// BaseFare is the flat component of every quote.
	BaseFare = 40.0
	// PerMileRide is the per-mile component.
	PerMileRide = 1.2
	// roundTo is the granularity totals are rounded up to.
	roundTo = 5.0
)

// RideQuoteParams is the input of Quote. Venue and EventDate are optional;
// the empty string means absent.
type RideQuoteParams struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	PickupTime  string `json:"pickup_time"`
	Venue       string `json:"venue,omitempty"`
	EventDate   string `json:"event_date,omitempty"`
}

// RideQuote is derived on every request and never mutated after construction.
type RideQuote struct {
	Base          float64  `json:"base"`
	DistanceMiles float64  `json:"distance_miles"`
	PerMileCost   float64  `json:"per_mile_cost"`
	AirportFee    float64  `json:"airport_fee"`
	Surge         float64  `json:"surge"`
	Total         float64  `json:"total"`
	Breakdown     []string `json:"breakdown"`
}

// surgeRates are the additive rate components; the applied multiplier is 1+sum.
type surgeRates struct {
	timeOfDay float64
	venue     float64
	eventDay  float64
}

func (r surgeRates) multiplier() float64 {
	return 1 + r.timeOfDay + r.venue + r.eventDay
}
