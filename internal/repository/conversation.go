package repository

import (
	"receptionist-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationRepository handles database operations for conversations.
// Every query predicate includes the caller's tenant id, so a row owned by
// another tenant behaves exactly like a row that does not exist.
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create creates a new conversation owned by the given tenant. The tenant id
// on the record is always overwritten with the caller's, so a payload cannot
// self-assign another tenant.
func (r *ConversationRepository) Create(tenantID uuid.UUID, conv *models.Conversation) error {
	conv.TenantID = tenantID
	return r.db.Create(conv).Error
}

// GetByID retrieves a conversation by ID, scoped to the tenant in the same
// query predicate
func (r *ConversationRepository) GetByID(id, tenantID uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.First(&conv, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListByTenant retrieves all conversations for a tenant, most recently
// active first
func (r *ConversationRepository) ListByTenant(tenantID uuid.UUID) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.Where("tenant_id = ?", tenantID).Order("updated_at DESC").Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}
