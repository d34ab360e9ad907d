package handlers

import (
	"net/http"

	"receptionist-backend/internal/auth"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles HTTP requests for appointments
type AppointmentHandler struct {
	service service.AppointmentServiceInterface
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service service.AppointmentServiceInterface) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// ListAppointments handles GET /api/appointments
// @Summary List appointments
// @Description List all appointments of the current tenant, latest start time first
// @Tags appointments
// @Produce json
// @Success 200 {object} service.AppointmentListResponse "Appointments"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	tenantID, ok := auth.CurrentTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No tenant context"})
		return
	}

	resp, err := h.service.List(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateAppointment handles POST /api/appointments
// @Summary Book an appointment
// @Description Create a new appointment for the current tenant
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body service.CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} service.AppointmentResponse "Created appointment"
// @Failure 400 {object} ErrorResponse "Invalid request body or time range"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Origin conversation not found"
// @Security BearerAuth
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	tenantID, ok := auth.CurrentTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No tenant context"})
		return
	}

	var req service.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Create(tenantID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err), apperrors.IsInvalidRange(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}
