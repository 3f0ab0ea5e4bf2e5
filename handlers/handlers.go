package handlers

import (
	"context"
	"errors"
	"net/http"

	"havenhotel/database/repository"
	"havenhotel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// storeError maps repository failures to responses at the handler boundary.
// Internal detail never reaches the client on a 5xx.
func storeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not Found", "")
	case errors.Is(err, context.DeadlineExceeded):
		utils.GetLogger().Error(op, zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Service Unavailable", "")
	default:
		utils.GetLogger().Error(op, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
