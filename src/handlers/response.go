package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/services"
)

// respond renders a success envelope
func respond(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, models.NewSuccess(statusCode, message, data))
}

// respondError renders a failure envelope
func respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.NewError(statusCode, message))
}

// respondServiceError maps the service error taxonomy onto HTTP status
// codes. Unknown errors become 500 with a generic message so internals
// never leak to the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrUserBanned):
		respondError(c, http.StatusUnauthorized, "Account banned")
	case errors.Is(err, services.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, "Token expired")
	case errors.Is(err, services.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, services.ErrWrongPassword):
		respondError(c, http.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, services.ErrSuperAdminImmutable):
		respondError(c, http.StatusBadRequest, "Super admin cannot be banned or unbanned")
	case errors.Is(err, services.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, services.ErrEmailTaken):
		respondError(c, http.StatusConflict, "User already exists")
	default:
		respondError(c, http.StatusInternalServerError, "Operation failed")
	}
}
