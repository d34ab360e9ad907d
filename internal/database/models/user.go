package models

import (
	"github.com/google/uuid"
)

// UserRole represents the role of a user within their tenant
type UserRole string

const (
	UserRoleOwner  UserRole = "OWNER"
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleViewer UserRole = "VIEWER"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleAdmin, UserRoleViewer:
		return true
	}
	return false
}

// User represents a dashboard login. Emails are globally unique, so user
// lookup by email is an identity-resolution operation that happens before
// any tenant context exists.
type User struct {
	BaseModel
	TenantID     *uuid.UUID `json:"tenant_id" gorm:"type:uuid;index"` // nullable only for a future super-admin variant
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"not null;size:255"`
	Name         string     `json:"name" gorm:"size:200"`
	Role         UserRole   `json:"role" gorm:"type:varchar(16);not null;default:'VIEWER'" validate:"required"`

	// Relationships
	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
