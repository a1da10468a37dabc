// README: Promotion models for the quick-select venue list.
package promotion

import (
	"errors"

	"eventride/internal/modules/venue"
)

const (
	QuickSelectCap     = 6
	PopularRadiusMiles = 50.0
)

var ErrInvalidTables = errors.New("invalid promotion tables")

// PromoVenue is a quick-select entry. Promotion is the sponsor's tagline and is
// empty for organic entries.
type PromoVenue struct {
	venue.Result
	Sponsored bool   `json:"sponsored"`
	Promotion string `json:"promotion,omitempty"`
}

// Sponsorship is a paid placement for one catalog venue.
type Sponsorship struct {
	VenueID   string
	Promotion string
}
