package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendora/vendora-server/src/middleware"
	"github.com/vendora/vendora-server/src/services"
)

// UserHandler handles profile endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// HandleProfile handles GET /users/profile
func (h *UserHandler) HandleProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "User profile retrieved successfully", profile)
}
