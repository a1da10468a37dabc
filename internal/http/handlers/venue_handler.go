// README: Venue handlers for ranked paging and places discovery.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventride/internal/modules/venue"
	"eventride/internal/types"
)

const (
	defaultRadiusMiles = 5.0
	defaultPageLimit   = 20
	maxPageLimit       = 100
)

type VenueHandler struct {
	venues *venue.Service
}

func NewVenueHandler(svc *venue.Service) *VenueHandler {
	return &VenueHandler{venues: svc}
}

type centerQuery struct {
	Lat      *float64 `form:"lat" binding:"required"`
	Lng      *float64 `form:"lng" binding:"required"`
	Category string   `form:"category"`
}

func (q centerQuery) center() types.Coordinate {
	return types.Coordinate{Lat: *q.Lat, Lng: *q.Lng}
}

type venuePageQuery struct {
	centerQuery
	RadiusMiles *float64 `form:"radius_miles"`
	Page        int      `form:"page"`
	Limit       *int     `form:"limit"`
}

type venuePageResp struct {
	Venues []venue.Result `json:"venues"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	// HasMoreHint is false once a short page comes back.
	HasMoreHint bool `json:"has_more_hint"`
}

func (h *VenueHandler) List(c *gin.Context) {
	var req venuePageQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "lat and lng are required numbers")
		return
	}

	q := venue.PageQuery{
		Center:      req.center(),
		RadiusMiles: defaultRadiusMiles,
		Page:        req.Page,
		Limit:       defaultPageLimit,
	}
	if req.RadiusMiles != nil {
		q.RadiusMiles = *req.RadiusMiles
	}
	if req.Limit != nil {
		if *req.Limit > maxPageLimit {
			writeError(c, http.StatusBadRequest, "limit must be at most 100")
			return
		}
		q.Limit = *req.Limit
	}
	if req.Category != "" {
		cat, err := venue.ParseCategory(req.Category)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		q.Category = &cat
	}

	results, err := h.venues.FetchPage(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, venuePageResp{
		Venues:      results,
		Page:        q.Page,
		Limit:       q.Limit,
		HasMoreHint: len(results) == q.Limit,
	})
}

func (h *VenueHandler) Discover(c *gin.Context) {
	var req centerQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "lat and lng are required numbers")
		return
	}
	cat, err := venue.ParseCategory(req.Category)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	results, err := h.venues.Discover(c.Request.Context(), req.center(), cat)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"venues": results})
}
