package repository

import (
	"time"

	"receptionist-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for messages
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message to a conversation and bumps the parent
// conversation's updated_at in the same transaction. Both statements are
// scoped to the caller's tenant: the parent update matches zero rows when
// the conversation belongs to another tenant, which rolls back the insert
// and surfaces as not found. The message's tenant id is always overwritten
// with the caller's.
func (r *MessageRepository) Create(tenantID uuid.UUID, msg *models.Message) error {
	now := time.Now()
	msg.TenantID = tenantID
	msg.CreatedAt = now

	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Conversation{}).
			Where("id = ? AND tenant_id = ?", msg.ConversationID, tenantID).
			Update("updated_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(msg).Error
	})
}

// ListByConversation retrieves all messages in a conversation in
// chronological order. The denormalized tenant id on messages lets the
// ownership check live in the same predicate without joining through
// conversations; a cross-tenant conversation id yields an empty list.
func (r *MessageRepository) ListByConversation(conversationID, tenantID uuid.UUID) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Where("conversation_id = ? AND tenant_id = ?", conversationID, tenantID).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
