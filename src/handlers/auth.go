package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendora/vendora-server/src/middleware"
	"github.com/vendora/vendora-server/src/services"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// RefreshTokenRequest carries the refresh token in the body
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid email or password format")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Banned accounts get their own message; everything else stays
		// indistinguishable from a wrong password
		if errors.Is(err, services.ErrUserBanned) {
			respondError(c, http.StatusUnauthorized, "Account banned")
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(c, http.StatusInternalServerError, "Operation failed")
		return
	}

	respond(c, http.StatusOK, "User logged in successfully", result)
}

// HandleChangePassword handles PATCH /auth/change-password
func (h *AuthHandler) HandleChangePassword(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		// The account vanished after the token was issued; treat it as an
		// authentication failure, not a missing resource
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusUnauthorized, "User not found")
			return
		}
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Password changed successfully", nil)
}

// HandleRefreshToken handles POST /auth/refresh-token
func (h *AuthHandler) HandleRefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		// Unknown subject is indistinguishable from a bad token
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Token refreshed successfully", result)
}
