package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	appErr "todoapp/internal/pkg/errors"
)

// handleError maps service errors onto the plain HTTP taxonomy. Ownership
// failures arrive here as ErrNotFound, so a foreign resource is
// indistinguishable from a missing one.
func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, appErr.ErrNotFound):
		c.String(http.StatusNotFound, "not found")
	case errors.Is(err, appErr.ErrUnauthorized):
		c.String(http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, appErr.ErrInvalid):
		c.String(http.StatusBadRequest, "invalid request")
	default:
		logutil.GetLogger(c.Request.Context()).Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.String(http.StatusInternalServerError, "internal error")
	}
}
