// README: Entry point; loads config, wires services, serves HTTP until SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"eventride/internal/config"
	httptransport "eventride/internal/http"
	"eventride/internal/infra"
	"eventride/internal/maps"
	"eventride/internal/modules/pricing"
	"eventride/internal/modules/promotion"
	"eventride/internal/modules/savedplace"
	"eventride/internal/modules/venue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := infra.NewLogger(os.Stderr, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules, catalog := pricing.DefaultRules(), venue.DefaultCatalog()
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.WithError(err).Fatal("connect postgres")
		}
		rules, catalog = loadTables(ctx, dbPool, log)
		dbPool.Close()
	}

	var estimator pricing.DistanceEstimator = pricing.HashDistance{}
	var places venue.NearbySearcher
	if cfg.Maps.APIKey != "" {
		routes, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.WithError(err).Fatal("init maps routes")
		}
		estimator = pricing.NewRouteDistance(routes)

		placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.WithError(err).Fatal("init maps places")
		}
		places = placesSvc
	} else {
		log.Info("no maps api key; using hash distance and no venue discovery")
	}

	var savedPlaces *savedplace.Service
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.WithError(err).Warn("redis unavailable; saved places disabled")
		} else {
			defer redisClient.Close()
			savedPlaces = savedplace.NewService(savedplace.NewStore(redisClient))
		}
	} else {
		log.Info("no redis address; saved places disabled")
	}

	tables, err := promotion.DefaultTables(catalog)
	if err != nil {
		log.WithError(err).Warn("catalog lacks promoted venues; quick-select has no placements")
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Pricing:    pricing.NewService(rules, estimator, cfg.Pricing.Location, log.WithField("module", "pricing")),
		Venues:     venue.NewService(catalog, places),
		Promotions: promotion.NewService(tables),
		Places:     savedPlaces,
	}, log)

	server := httptransport.NewServer(cfg.HTTP.Addr, router, cfg.HTTP.ShutdownTimeout, log)
	if err := server.Run(ctx); err != nil {
		log.WithError(err).Fatal("http server")
	}
	log.Info("http server stopped")
}

// loadTables reads pricing rules and the venue catalog from Postgres. Empty
// tables fall back to the built-in defaults.
func loadTables(ctx context.Context, db *pgxpool.Pool, log logrus.FieldLogger) (pricing.Rules, *venue.Catalog) {
	rules, err := pricing.NewStore(db).LoadRules(ctx)
	switch {
	case errors.Is(err, pricing.ErrEmptyRules):
		log.Warn("no pricing rules in database; using defaults")
		rules = pricing.DefaultRules()
	case err != nil:
		log.WithError(err).Fatal("load pricing rules")
	}

	catalog, err := venue.NewStore(db).LoadCatalog(ctx)
	switch {
	case errors.Is(err, venue.ErrEmptyCatalog):
		log.Warn("no venues in database; using defaults")
		catalog = venue.DefaultCatalog()
	case err != nil:
		log.WithError(err).Fatal("load venue catalog")
	}
	return rules, catalog
}
