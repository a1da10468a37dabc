// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eventride/internal/http/handlers"
	"eventride/internal/http/middleware"
	"eventride/internal/modules/pricing"
	"eventride/internal/modules/promotion"
	"eventride/internal/modules/savedplace"
	"eventride/internal/modules/venue"
)

// Deps are the services behind the API. Places may be nil.
type Deps struct {
	Pricing    *pricing.Service
	Venues     *venue.Service
	Promotions *promotion.Service
	Places     *savedplace.Service
}

func NewRouter(deps Deps, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(log), middleware.Recovery())

	api := r.Group("/api")

	quoteHandler := handlers.NewQuoteHandler(deps.Pricing, deps.Places)
	api.POST("/quotes", quoteHandler.Create)

	venueHandler := handlers.NewVenueHandler(deps.Venues)
	api.GET("/venues", venueHandler.List)
	api.GET("/venues/discover", venueHandler.Discover)

	promotionHandler := handlers.NewPromotionHandler(deps.Promotions)
	api.GET("/promotions/quick-select", promotionHandler.QuickSelect)

	placeHandler := handlers.NewPlaceHandler(deps.Places)
	api.GET("/users/:id/places", placeHandler.List)
	api.GET("/users/:id/places/:label", placeHandler.Get)
	api.PUT("/users/:id/places/:label", placeHandler.Put)
	api.DELETE("/users/:id/places/:label", placeHandler.Delete)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
