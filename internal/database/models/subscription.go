package models

import (
	"github.com/google/uuid"
)

// SubscriptionPlan represents the billing plan of a tenant
type SubscriptionPlan string

const (
	SubscriptionPlanFree       SubscriptionPlan = "free"
	SubscriptionPlanBasic      SubscriptionPlan = "basic"
	SubscriptionPlanPro        SubscriptionPlan = "pro"
	SubscriptionPlanEnterprise SubscriptionPlan = "enterprise"
)

// IsValid checks if the SubscriptionPlan is valid
func (p SubscriptionPlan) IsValid() bool {
	switch p {
	case SubscriptionPlanFree, SubscriptionPlanBasic, SubscriptionPlanPro, SubscriptionPlanEnterprise:
		return true
	}
	return false
}

// Subscription represents the billing state of a tenant. Exactly one row
// per tenant, enforced by the unique index on TenantID.
type Subscription struct {
	BaseModel
	TenantID             uuid.UUID        `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	StripeCustomerID     string           `json:"stripe_customer_id" gorm:"size:255"`
	StripeSubscriptionID string           `json:"stripe_subscription_id" gorm:"size:255"`
	Plan                 SubscriptionPlan `json:"plan" gorm:"type:varchar(16);not null;default:'free'" validate:"required"`
	Status               string           `json:"status" gorm:"size:32;not null;default:'active'"`

	// Relationships
	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}
