// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventride/internal/http/middleware"
	"eventride/internal/modules/savedplace"
	"eventride/internal/modules/venue"
	"eventride/internal/types"
)

var errPlacesDisabled = errors.New("saved places are not configured")

type errorResponse struct {
	Error string `json:"error"`
}

// isValidUserID accepts the opaque ids the app issues: up to 64 letters,
// digits, '-' or '_'.
func isValidUserID(v string) bool {
	if v == "" || len(v) > 64 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' || c == '_' {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, venue.ErrInvalidInput),
		errors.Is(err, savedplace.ErrInvalidPlace),
		errors.Is(err, types.ErrInvalidCoordinate):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, venue.ErrNotFound), errors.Is(err, savedplace.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, venue.ErrDiscoveryDisabled), errors.Is(err, errPlacesDisabled):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		middleware.Logger(c).WithError(err).Error("request failed")
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
