// README: Quote handler; prices a ride after expanding saved place labels.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventride/internal/http/middleware"
	"eventride/internal/modules/pricing"
	"eventride/internal/modules/savedplace"
)

type QuoteHandler struct {
	pricing *pricing.Service
	places  *savedplace.Service
}

// NewQuoteHandler prices rides. places may be nil, in which case user_id is
// ignored.
func NewQuoteHandler(pricingSvc *pricing.Service, places *savedplace.Service) *QuoteHandler {
	return &QuoteHandler{pricing: pricingSvc, places: places}
}

type quoteReq struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	PickupTime  string `json:"pickup_time" binding:"required"`
	Venue       string `json:"venue"`
	EventDate   string `json:"event_date"`
	UserID      string `json:"user_id"`
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "origin, destination and pickup_time are required")
		return
	}
	if req.UserID != "" && !isValidUserID(req.UserID) {
		writeError(c, http.StatusBadRequest, "invalid user_id")
		return
	}

	origin := h.resolve(c, req.UserID, req.Origin)
	destination := h.resolve(c, req.UserID, req.Destination)

	q := h.pricing.Quote(c.Request.Context(), pricing.RideQuoteParams{
		Origin:      origin,
		Destination: destination,
		PickupTime:  req.PickupTime,
		Venue:       req.Venue,
		EventDate:   req.EventDate,
	})
	writeJSON(c, http.StatusOK, q)
}

// resolve expands a saved label. A lookup failure prices the raw text.
func (h *QuoteHandler) resolve(c *gin.Context, userID, text string) string {
	if h.places == nil || userID == "" {
		return text
	}
	out, err := h.places.Resolve(c.Request.Context(), userID, text)
	if err != nil {
		middleware.Logger(c).WithError(err).Warn("saved place lookup failed; quoting raw text")
	}
	return out
}
