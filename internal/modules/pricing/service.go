// README: Pricing service computes ride quotes.
package pricing

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

type Service struct {
	rules     Rules
	estimator DistanceEstimator
	loc       *time.Location
	log       logrus.FieldLogger
}

// NewService builds a quote engine. A nil estimator means HashDistance, a nil
// location means UTC and a nil logger discards output.
func NewService(rules Rules, estimator DistanceEstimator, loc *time.Location, log logrus.FieldLogger) *Service {
	if estimator == nil {
		estimator = HashDistance{}
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Service{rules: rules, estimator: estimator, loc: loc, log: log}
}

// Quote never fails. Routing errors fall back to the hash distance,
// unparseable pickup times carry no time-of-day surge, and unknown venues and
// destinations carry no surge or fee.
func (s *Service) Quote(ctx context.Context, p RideQuoteParams) RideQuote {
	miles, err := s.estimator.EstimateMiles(ctx, p.Origin, p.Destination)
	if err != nil || math.IsNaN(miles) || miles < 0 {
		s.log.WithFields(logrus.Fields{
			"origin":      p.Origin,
			"destination": p.Destination,
		}).WithError(err).Warn("route distance unavailable, using estimate")
		miles, _ = HashDistance{}.EstimateMiles(ctx, p.Origin, p.Destination)
	}
	return compose(s.rules, p, miles, s.loc)
}

func compose(rules Rules, p RideQuoteParams, miles float64, loc *time.Location) RideQuote {
	rates := surgeRates{
		timeOfDay: timeOfDaySurge(pickupHour(p.PickupTime, loc)),
		venue:     rules.venueSurge(p.Venue),
	}
	if p.EventDate != "" && rules.isEventVenue(p.Venue) {
		rates.eventDay = 0.50
	}

	perMile := miles * PerMileRide
	airport := rules.airportFee(p.Destination)
	surge := rates.multiplier()
	subtotal := (BaseFare + perMile + airport) * surge

	breakdown := []string{
		fmt.Sprintf("Base fare: $%.2f", BaseFare),
		fmt.Sprintf("Distance: %.1f mi x $%.2f/mi = $%.2f", miles, PerMileRide, perMile),
	}
	if airport > 0 {
		breakdown = append(breakdown, fmt.Sprintf("Airport fee: $%.2f", airport))
	}
	if rates.timeOfDay > 0 {
		breakdown = append(breakdown, fmt.Sprintf("Time-of-day surge: +%s", percent(rates.timeOfDay)))
	}
	if rates.venue > 0 {
		breakdown = append(breakdown, fmt.Sprintf("Venue surge (%s): +%s", p.Venue, percent(rates.venue)))
	}
	if rates.eventDay > 0 {
		breakdown = append(breakdown, fmt.Sprintf("Event day surge: +%s", percent(rates.eventDay)))
	}

	return RideQuote{
		Base:          BaseFare,
		DistanceMiles: miles,
		PerMileCost:   perMile,
		AirportFee:    airport,
		Surge:         surge,
		Total:         roundUp(subtotal),
		Breakdown:     breakdown,
	}
}

// timeOfDaySurge maps a local pickup hour to its surge rate. Unknown hours (-1)
// carry none.
func timeOfDaySurge(hour int) float64 {
	switch {
	case hour >= 17 && hour <= 20:
		return 0.30
	case hour >= 21 && hour <= 23:
		return 0.20
	case hour >= 6 && hour <= 8:
		return 0.15
	default:
		return 0
	}
}

var pickupLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// pickupHour returns the hour of ts in loc, or -1 when ts does not parse.
// Timestamps without an offset are read as wall time in loc; a bare date is
// UTC midnight, as in ISO-8601 date-only forms.
func pickupHour(ts string, loc *time.Location) int {
	if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		return t.In(loc).Hour()
	}
	for _, layout := range pickupLayouts[1:] {
		if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
			return t.Hour()
		}
	}
	if t, err := time.Parse(time.DateOnly, ts); err == nil {
		return t.In(loc).Hour()
	}
	return -1
}

// roundUpEpsilon absorbs float noise on an exact multiple of roundTo. Any
// real fraction of a cent still rounds up a step.
const roundUpEpsilon = 1e-9

func roundUp(subtotal float64) float64 {
	return math.Ceil(subtotal/roundTo-roundUpEpsilon) * roundTo
}

func percent(rate float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(rate*100)))
}
