package api

import (
	"errors"
	"log/slog"
	"net/http"

	"seating-service/internal/handler/httperr"
	"seating-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errors.New("missing authenticated user")

// respondError maps the use case taxonomy onto HTTP. Messages of marked
// errors are written for clients; anything else is hidden behind a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.IsValidation(err):
		httperr.AbortWithKind(c, http.StatusBadRequest, httperr.KindValidation, err, err.Error(), nil)
	case errs.IsNotFound(err):
		httperr.AbortWithKind(c, http.StatusNotFound, httperr.KindNotFound, err, err.Error(), nil)
	case errs.IsConflict(err):
		httperr.AbortWithKind(c, http.StatusConflict, httperr.KindConflict, err, err.Error(), nil)
	case errs.IsConsistency(err):
		httperr.AbortWithKind(c, http.StatusConflict, httperr.KindConsistency, err, err.Error(), nil)
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8))
		httperr.AbortWithKind(c, http.StatusInternalServerError, httperr.KindInternal, err, "Internal server error", nil)
	}
}

func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithKind(c, http.StatusBadRequest, httperr.KindValidation, err, "Invalid request format", nil)
}
