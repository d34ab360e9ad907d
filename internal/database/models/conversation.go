package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ConversationStatus represents the lifecycle state of a conversation
type ConversationStatus string

const (
	ConversationStatusNew    ConversationStatus = "new"
	ConversationStatusActive ConversationStatus = "active"
	ConversationStatusClosed ConversationStatus = "closed"
	ConversationStatusBooked ConversationStatus = "booked"
)

// IsValid checks if the ConversationStatus is valid
func (s ConversationStatus) IsValid() bool {
	switch s {
	case ConversationStatusNew, ConversationStatusActive, ConversationStatusClosed, ConversationStatusBooked:
		return true
	}
	return false
}

// Conversation represents a customer conversation handled by the AI
// receptionist. UpdatedAt is bumped whenever a message is appended, so
// listing by UpdatedAt descending shows the most recently active first.
type Conversation struct {
	BaseModel
	TenantID        uuid.UUID          `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	CustomerContact string             `json:"customer_contact" gorm:"size:255"` // email or phone, free text
	Status          ConversationStatus `json:"status" gorm:"type:varchar(16);not null;default:'new'" validate:"required"`
	Metadata        datatypes.JSONMap  `json:"metadata" gorm:"type:jsonb"` // summary, intent
	UpdatedAt       time.Time          `json:"updated_at"`

	// Relationships
	Tenant   *Tenant   `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Conversation
func (Conversation) TableName() string {
	return "conversations"
}
