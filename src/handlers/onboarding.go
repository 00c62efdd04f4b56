package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/services"
)

// OnboardingHandler handles account creation endpoints
type OnboardingHandler struct {
	onboardingService *services.OnboardingService
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingService *services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

// RegisterRequest represents an account registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *OnboardingHandler) register(c *gin.Context, role models.UserRole) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid name, email or password format")
		return
	}

	user, err := h.onboardingService.Register(c.Request.Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, fmt.Sprintf("%s created successfully", user.Role), user)
}

// HandleRegister handles POST /onboarding/register - self registration
func (h *OnboardingHandler) HandleRegister(c *gin.Context) {
	h.register(c, models.RoleUser)
}

// HandleCreateAdmin handles POST /onboarding/create-admin - super admin only
func (h *OnboardingHandler) HandleCreateAdmin(c *gin.Context) {
	h.register(c, models.RoleAdmin)
}

// HandleCheckEmail handles GET /onboarding/check-email?email=...
func (h *OnboardingHandler) HandleCheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		respondError(c, http.StatusBadRequest, "email query parameter is required")
		return
	}

	available, err := h.onboardingService.CheckEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Operation failed")
		return
	}

	respond(c, http.StatusOK, "Email availability check successful", gin.H{
		"isAvailable": available,
	})
}
