package handlers

import (
	"net/http"

	"receptionist-backend/internal/auth"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for the tenant workspace
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// GetTenant handles GET /api/tenant
// @Summary Get the current workspace
// @Description Get the tenant workspace of the authenticated principal
// @Tags tenant
// @Produce json
// @Success 200 {object} service.TenantResponse "Current tenant"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenant [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenantID, ok := auth.CurrentTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No tenant context"})
		return
	}

	tenant, err := h.service.Get(tenantID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tenant"})
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// UpdateTenant handles PATCH /api/tenant
// @Summary Update workspace settings
// @Description Partially update name, branding or business hours of the current tenant
// @Tags tenant
// @Accept json
// @Produce json
// @Param settings body service.UpdateTenantRequest true "Settings to update"
// @Success 200 {object} service.TenantResponse "Updated tenant"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenant [patch]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	tenantID, ok := auth.CurrentTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No tenant context"})
		return
	}

	var req service.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.Update(tenantID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tenant"})
		}
		return
	}

	c.JSON(http.StatusOK, tenant)
}
