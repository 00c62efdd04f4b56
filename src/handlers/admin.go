package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/services"
)

// AdminHandler handles account moderation endpoints
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// UpdateStatusRequest represents a ban/unban request
type UpdateStatusRequest struct {
	UserID string            `json:"userId" binding:"required"`
	Status models.UserStatus `json:"status" binding:"required"`
}

// HandleUpdateStatus handles PATCH /admin/update-status
func (h *AdminHandler) HandleUpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.Status.IsValid() {
		respondError(c, http.StatusBadRequest, "status must be ACTIVE or BANNED")
		return
	}

	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	update, err := h.adminService.UpdateUserStatus(c.Request.Context(), targetID, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, fmt.Sprintf("User %s successfully", update.Action), update.User)
}

// HandleListUsers handles GET /admin/users?page=&limit=
func (h *AdminHandler) HandleListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.adminService.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Operation failed")
		return
	}

	respond(c, http.StatusOK, "List of users retrieved successfully", result)
}
