package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vendora/vendora-server/src/middleware"
	"github.com/vendora/vendora-server/src/services"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

func productID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product ID format")
		return uuid.Nil, false
	}
	return id, true
}

// HandleCreate handles POST /products
func (h *ProductHandler) HandleCreate(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product data")
		return
	}

	view, err := h.productService.Create(c.Request.Context(), user.ID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Product created successfully", view)
}

// HandleUpdate handles PATCH /products/:id (owner only)
func (h *ProductHandler) HandleUpdate(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	id, ok := productID(c)
	if !ok {
		return
	}

	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product data")
		return
	}

	view, err := h.productService.Update(c.Request.Context(), user.ID, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Product updated successfully", view)
}

// HandleDelete handles DELETE /products/:id (owner only)
func (h *ProductHandler) HandleDelete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	id, ok := productID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Product deleted successfully", nil)
}

// HandleApprove handles PATCH /products/:id/approve (admin only)
func (h *ProductHandler) HandleApprove(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	view, err := h.productService.Approve(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Product approved successfully", view)
}

// HandleGet handles GET /products/:id (public, approved only)
func (h *ProductHandler) HandleGet(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	view, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Product retrieved successfully", view)
}

// HandleListApproved handles GET /products/approved (public)
func (h *ProductHandler) HandleListApproved(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.productService.ListApproved(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Operation failed")
		return
	}

	respond(c, http.StatusOK, "Approved products retrieved successfully", result)
}

// HandleListMine handles GET /products/user
func (h *ProductHandler) HandleListMine(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	page, limit := pageParams(c)

	result, err := h.productService.ListMine(c.Request.Context(), user.ID, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Operation failed")
		return
	}

	respond(c, http.StatusOK, "User products retrieved successfully", result)
}

// HandleListAll handles GET /products/admin/all?isApproved= (admin only)
func (h *ProductHandler) HandleListAll(c *gin.Context) {
	page, limit := pageParams(c)

	var approved *bool
	if v := c.Query("isApproved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "isApproved must be a boolean")
			return
		}
		approved = &b
	}

	result, err := h.productService.ListAll(c.Request.Context(), approved, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Operation failed")
		return
	}

	respond(c, http.StatusOK, "Products retrieved successfully", result)
}
