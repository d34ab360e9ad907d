package models

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// IsValid checks if the AppointmentStatus is valid
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Appointment represents a booking made by the AI receptionist,
// optionally linked to the conversation it originated from.
type Appointment struct {
	BaseModel
	TenantID       uuid.UUID         `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	ConversationID *uuid.UUID        `json:"conversation_id,omitempty" gorm:"type:uuid;index"`
	CustomerName   string            `json:"customer_name" gorm:"not null;size:200" validate:"required,max=200"`
	StartTime      time.Time         `json:"start_time" gorm:"not null" validate:"required"`
	EndTime        time.Time         `json:"end_time" gorm:"not null" validate:"required"` // must be after StartTime
	Status         AppointmentStatus `json:"status" gorm:"type:varchar(16);not null;default:'scheduled'" validate:"required"`

	// Relationships
	Tenant       *Tenant       `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Conversation *Conversation `json:"conversation,omitempty" gorm:"foreignKey:ConversationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Appointment
func (Appointment) TableName() string {
	return "appointments"
}
