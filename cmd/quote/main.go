// README: Prints a fare quote as JSON for the given trip flags.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"

	"eventride/internal/infra"
	"eventride/internal/maps"
	"eventride/internal/modules/pricing"
)

type options struct {
	Origin      string
	Destination string
	Pickup      string
	Venue       string
	EventDate   string
	TimeZone    string
	MapsAPIKey  string
	Timeout     time.Duration
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if err := run(context.Background(), opts, os.Stdout, infra.NewLogger(os.Stderr, "warn")); err != nil {
		fmt.Fprintln(os.Stderr, "quote:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.Origin, "origin", "", "pickup address")
	fs.StringVar(&opts.Destination, "destination", "", "dropoff address")
	fs.StringVar(&opts.Pickup, "pickup", time.Now().Format(time.RFC3339), "pickup time (RFC 3339)")
	fs.StringVar(&opts.Venue, "venue", "", "venue name, for venue and event-day surge")
	fs.StringVar(&opts.EventDate, "event-date", "", "event date; any value marks an event day")
	fs.StringVar(&opts.TimeZone, "tz", envOrDefault("EVENTRIDE_PRICING_TZ", "America/New_York"), "pricing time zone")
	fs.StringVar(&opts.MapsAPIKey, "maps-key", os.Getenv("EVENTRIDE_MAPS_API_KEY"), "Google Maps key for routed distance")
	fs.DurationVar(&opts.Timeout, "timeout", 10*time.Second, "routing timeout")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.Origin == "" || opts.Destination == "" {
		fmt.Fprintln(errOut, "-origin and -destination are required")
		fs.Usage()
		return options{}, flag.ErrHelp
	}
	return opts, nil
}

func run(ctx context.Context, opts options, out io.Writer, log logrus.FieldLogger) error {
	loc, err := time.LoadLocation(opts.TimeZone)
	if err != nil {
		return fmt.Errorf("time zone %q: %w", opts.TimeZone, err)
	}

	var estimator pricing.DistanceEstimator = pricing.HashDistance{}
	if opts.MapsAPIKey != "" {
		routes, err := maps.NewRouteService(opts.MapsAPIKey)
		if err != nil {
			return err
		}
		estimator = pricing.NewRouteDistance(routes)
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	svc := pricing.NewService(pricing.DefaultRules(), estimator, loc, log)
	q := svc.Quote(ctx, pricing.RideQuoteParams{
		Origin:      opts.Origin,
		Destination: opts.Destination,
		PickupTime:  opts.Pickup,
		Venue:       opts.Venue,
		EventDate:   opts.EventDate,
	})

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(q)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
