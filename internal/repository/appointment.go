package repository

import (
	"receptionist-backend/internal/database/models"
	apperrors "receptionist-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentRepository handles database operations for appointments
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create creates a new appointment owned by the given tenant. The time range
// is validated here so no caller can persist an appointment that ends before
// it starts; nothing is written when the range is invalid.
func (r *AppointmentRepository) Create(tenantID uuid.UUID, appt *models.Appointment) error {
	if !appt.EndTime.After(appt.StartTime) {
		return apperrors.ErrAppointmentInvalidRange
	}
	appt.TenantID = tenantID
	return r.db.Create(appt).Error
}

// ListByTenant retrieves all appointments for a tenant, latest start time first
func (r *AppointmentRepository) ListByTenant(tenantID uuid.UUID) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("tenant_id = ?", tenantID).Order("start_time DESC").Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}
