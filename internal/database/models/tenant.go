package models

import (
	"gorm.io/datatypes"
)

// Tenant represents the root entity for multi-tenancy: one isolated
// business account. Every tenant-owned row carries this tenant's id.
type Tenant struct {
	BaseModel
	Name          string            `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug          string            `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	Branding      datatypes.JSONMap `json:"branding" gorm:"type:jsonb"`       // logoUrl, accentColor, font, voiceStyle
	BusinessHours datatypes.JSONMap `json:"business_hours" gorm:"type:jsonb"` // weekday -> {start, end} or null when closed

	// Relationships
	Users         []User         `json:"users,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Conversations []Conversation `json:"conversations,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Appointments  []Appointment  `json:"appointments,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Subscription  *Subscription  `json:"subscription,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
