package models

import (
	"github.com/google/uuid"
)

// MessageRole represents who authored a message
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

// IsValid checks if the MessageRole is valid
func (r MessageRole) IsValid() bool {
	switch r {
	case MessageRoleUser, MessageRoleAssistant, MessageRoleSystem:
		return true
	}
	return false
}

// Message represents a single turn in a conversation. TenantID is a
// denormalized copy of the owning conversation's tenant so message queries
// can enforce ownership without joining through conversations. It is set
// at creation time inside the same transaction that touches the parent.
type Message struct {
	BaseModel
	TenantID       uuid.UUID   `json:"tenant_id" gorm:"type:uuid;not null;index:idx_messages_conversation_tenant" validate:"required"`
	ConversationID uuid.UUID   `json:"conversation_id" gorm:"type:uuid;not null;index:idx_messages_conversation_tenant" validate:"required"`
	Role           MessageRole `json:"role" gorm:"type:varchar(16);not null" validate:"required"`
	Content        string      `json:"content" gorm:"type:text;not null" validate:"required"`

	// Relationships
	Conversation *Conversation `json:"conversation,omitempty" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}
