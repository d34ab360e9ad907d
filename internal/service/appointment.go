package service

import (
	"errors"
	"fmt"
	"time"

	"receptionist-backend/internal/database/models"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentService handles business logic for appointments
type AppointmentService struct {
	appointments  repository.AppointmentRepositoryInterface
	conversations repository.ConversationRepositoryInterface
	validator     *validator.Validate
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointments repository.AppointmentRepositoryInterface,
	conversations repository.ConversationRepositoryInterface,
	validator *validator.Validate,
) *AppointmentService {
	return &AppointmentService{
		appointments:  appointments,
		conversations: conversations,
		validator:     validator,
	}
}

// CreateAppointmentRequest represents a new booking
type CreateAppointmentRequest struct {
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	CustomerName   string     `json:"customer_name" validate:"required,max=200"`
	StartTime      time.Time  `json:"start_time" validate:"required"`
	EndTime        time.Time  `json:"end_time" validate:"required"`
}

// AppointmentResponse represents the response for appointment operations
type AppointmentResponse struct {
	ID             uuid.UUID                `json:"id"`
	ConversationID *uuid.UUID               `json:"conversation_id,omitempty"`
	CustomerName   string                   `json:"customer_name"`
	StartTime      time.Time                `json:"start_time"`
	EndTime        time.Time                `json:"end_time"`
	Status         models.AppointmentStatus `json:"status"`
	CreatedAt      string                   `json:"created_at"`
}

// AppointmentListResponse represents the appointments of a tenant
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// List retrieves all appointments of a tenant, latest start time first
func (s *AppointmentService) List(tenantID uuid.UUID) (*AppointmentListResponse, error) {
	appts, err := s.appointments.ListByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appts)),
		Total:        len(appts),
	}
	for i := range appts {
		resp.Appointments = append(resp.Appointments, toAppointmentResponse(&appts[i]))
	}
	return resp, nil
}

// Create books a new appointment for the tenant. When the booking
// references an origin conversation, that conversation must belong to the
// same tenant or the call fails as not found.
func (s *AppointmentService) Create(tenantID uuid.UUID, req *CreateAppointmentRequest) (*AppointmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if req.ConversationID != nil {
		if _, err := s.conversations.GetByID(*req.ConversationID, tenantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrConversationNotFound
			}
			return nil, fmt.Errorf("failed to check conversation: %w", err)
		}
	}

	appt := &models.Appointment{
		ConversationID: req.ConversationID,
		CustomerName:   req.CustomerName,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         models.AppointmentStatusScheduled,
	}
	if err := s.appointments.Create(tenantID, appt); err != nil {
		if apperrors.IsInvalidRange(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	resp := toAppointmentResponse(appt)
	return &resp, nil
}

func toAppointmentResponse(appt *models.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:             appt.ID,
		ConversationID: appt.ConversationID,
		CustomerName:   appt.CustomerName,
		StartTime:      appt.StartTime,
		EndTime:        appt.EndTime,
		Status:         appt.Status,
		CreatedAt:      appt.CreatedAt.Format(time.RFC3339),
	}
}
