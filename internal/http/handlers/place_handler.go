// README: Saved place handlers (list/get/put/delete per user).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventride/internal/modules/savedplace"
	"eventride/internal/types"
)

type PlaceHandler struct {
	places *savedplace.Service
}

// NewPlaceHandler serves saved places. A nil service answers 503.
func NewPlaceHandler(svc *savedplace.Service) *PlaceHandler {
	return &PlaceHandler{places: svc}
}

type putPlaceReq struct {
	Address string   `json:"address" binding:"required"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// userID validates the :id path param and the service; it writes the error
// response itself and returns false when the request cannot proceed.
func (h *PlaceHandler) userID(c *gin.Context) (string, bool) {
	if h.places == nil {
		writeServiceError(c, errPlacesDisabled)
		return "", false
	}
	id := c.Param("id")
	if !isValidUserID(id) {
		writeError(c, http.StatusBadRequest, "invalid user id")
		return "", false
	}
	return id, true
}

func (h *PlaceHandler) List(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	places, err := h.places.List(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"places": places})
}

func (h *PlaceHandler) Get(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	p, err := h.places.Get(c.Request.Context(), id, c.Param("label"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

func (h *PlaceHandler) Put(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	var req putPlaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "address is required")
		return
	}
	place := savedplace.Place{Label: c.Param("label"), Address: req.Address}
	if req.Lat != nil || req.Lng != nil {
		if req.Lat == nil || req.Lng == nil {
			writeError(c, http.StatusBadRequest, "lat and lng must be sent together")
			return
		}
		place.Coordinate = &types.Coordinate{Lat: *req.Lat, Lng: *req.Lng}
	}

	saved, err := h.places.Save(c.Request.Context(), id, place)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, saved)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	if err := h.places.Delete(c.Request.Context(), id, c.Param("label")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
