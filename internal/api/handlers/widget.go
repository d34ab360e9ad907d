package handlers

import (
	"net/http"

	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WidgetHandler serves the public widget configuration. This is the only
// unauthenticated tenant lookup; it exposes branding and business hours by
// slug and nothing else.
type WidgetHandler struct {
	service service.TenantServiceInterface
}

// NewWidgetHandler creates a new widget handler
func NewWidgetHandler(service service.TenantServiceInterface) *WidgetHandler {
	return &WidgetHandler{service: service}
}

// GetConfig handles GET /api/widget/config
// @Summary Widget configuration
// @Description Get the public branding and business hours of a tenant by slug
// @Tags widget
// @Produce json
// @Param slug query string true "Tenant slug"
// @Success 200 {object} service.WidgetConfigResponse "Widget configuration"
// @Failure 400 {object} ErrorResponse "Missing slug"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Router /widget/config [get]
func (h *WidgetHandler) GetConfig(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug query parameter is required"})
		return
	}

	resp, err := h.service.WidgetConfig(slug)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get widget configuration"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
