package handlers

import (
	"net/http"

	"receptionist-backend/internal/auth"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler handles HTTP requests for tenant billing
type SubscriptionHandler struct {
	service service.SubscriptionServiceInterface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(service service.SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// GetSubscription handles GET /api/billing/subscription
// @Summary Get subscription
// @Description Get the billing state of the current tenant
// @Tags billing
// @Produce json
// @Success 200 {object} service.SubscriptionResponse "Subscription"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Subscription not found"
// @Security BearerAuth
// @Router /billing/subscription [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	tenantID, ok := auth.CurrentTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No tenant context"})
		return
	}

	resp, err := h.service.GetForTenant(tenantID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get subscription"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChangePlan handles PUT /api/billing/subscription/plan
// @Summary Change plan
// @Description Switch the current tenant to a different plan
// @Tags billing
// @Accept json
// @Produce json
// @Param plan body service.ChangePlanRequest true "New plan"
// @Success 200 {object} service.SubscriptionResponse "Updated subscription"
// @Failure 400 {object} ErrorResponse "Invalid plan"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Subscription not found"
// @Security BearerAuth
// @Router /billing/subscription/plan [put]
func (h *SubscriptionHandler) ChangePlan(c *gin.Context) {
	tenantID, ok := auth.CurrentTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No tenant context"})
		return
	}

	var req service.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.ChangePlan(tenantID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change plan"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
