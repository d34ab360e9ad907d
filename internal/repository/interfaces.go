package repository

import (
	"receptionist-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations.
// Tenants are the partitioning entity itself, so lookups by id or slug need no
// extra scoping.
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*models.Tenant, error)
}

// UserRepositoryInterface defines the interface for user repository operations.
// Email lookup is global identity resolution and happens before any tenant
// context exists.
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// ConversationRepositoryInterface defines the interface for conversation
// repository operations. Every method takes the caller's tenant id and is the
// only code path to the conversations table.
type ConversationRepositoryInterface interface {
	Create(tenantID uuid.UUID, conv *models.Conversation) error
	GetByID(id, tenantID uuid.UUID) (*models.Conversation, error)
	ListByTenant(tenantID uuid.UUID) ([]models.Conversation, error)
}

// MessageRepositoryInterface defines the interface for message repository operations
type MessageRepositoryInterface interface {
	Create(tenantID uuid.UUID, msg *models.Message) error
	ListByConversation(conversationID, tenantID uuid.UUID) ([]models.Message, error)
}

// AppointmentRepositoryInterface defines the interface for appointment repository operations
type AppointmentRepositoryInterface interface {
	Create(tenantID uuid.UUID, appt *models.Appointment) error
	ListByTenant(tenantID uuid.UUID) ([]models.Appointment, error)
}

// SubscriptionRepositoryInterface defines the interface for subscription repository operations
type SubscriptionRepositoryInterface interface {
	Create(sub *models.Subscription) error
	GetByTenant(tenantID uuid.UUID) (*models.Subscription, error)
	UpdatePlan(tenantID uuid.UUID, plan models.SubscriptionPlan, status string) (*models.Subscription, error)
}
