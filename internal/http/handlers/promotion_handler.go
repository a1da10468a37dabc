// README: Promotion handler for the quick-select strip.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventride/internal/modules/promotion"
	"eventride/internal/modules/venue"
)

type PromotionHandler struct {
	promotions *promotion.Service
}

func NewPromotionHandler(svc *promotion.Service) *PromotionHandler {
	return &PromotionHandler{promotions: svc}
}

func (h *PromotionHandler) QuickSelect(c *gin.Context) {
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

	venues, err := h.promotions.QuickSelect(c.Request.Context(), cat, req.center())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"venues": venues})
}
