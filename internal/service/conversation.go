package service

import (
	"errors"
	"fmt"
	"time"

	"receptionist-backend/internal/database/models"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationService handles business logic for conversations and their
// messages. The tenant id on every method comes from the authenticated
// principal, never from the request payload.
type ConversationService struct {
	conversations repository.ConversationRepositoryInterface
	messages      repository.MessageRepositoryInterface
	validator     *validator.Validate
}

// NewConversationService creates a new conversation service
func NewConversationService(
	conversations repository.ConversationRepositoryInterface,
	messages repository.MessageRepositoryInterface,
	validator *validator.Validate,
) *ConversationService {
	return &ConversationService{
		conversations: conversations,
		messages:      messages,
		validator:     validator,
	}
}

// CreateConversationRequest represents a manually started conversation
type CreateConversationRequest struct {
	CustomerContact string `json:"customer_contact" validate:"omitempty,max=255"`
}

// CreateMessageRequest represents a message appended to a conversation
type CreateMessageRequest struct {
	Role    models.MessageRole `json:"role" validate:"required"`
	Content string             `json:"content" validate:"required"`
}

// ConversationResponse represents the response for conversation operations
type ConversationResponse struct {
	ID              uuid.UUID                 `json:"id"`
	CustomerContact string                    `json:"customer_contact"`
	Status          models.ConversationStatus `json:"status"`
	Metadata        map[string]interface{}    `json:"metadata"`
	CreatedAt       string                    `json:"created_at"`
	UpdatedAt       string                    `json:"updated_at"`
}

// MessageResponse represents a single message
type MessageResponse struct {
	ID             uuid.UUID          `json:"id"`
	ConversationID uuid.UUID          `json:"conversation_id"`
	Role           models.MessageRole `json:"role"`
	Content        string             `json:"content"`
	CreatedAt      string             `json:"created_at"`
}

// ConversationListResponse represents the conversation inbox of a tenant
type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Total         int                    `json:"total"`
}

// ConversationDetailResponse is a conversation together with its messages
type ConversationDetailResponse struct {
	ConversationResponse
	Messages []MessageResponse `json:"messages"`
}

// List retrieves all conversations of a tenant, most recently active first
func (s *ConversationService) List(tenantID uuid.UUID) (*ConversationListResponse, error) {
	convs, err := s.conversations.ListByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	resp := &ConversationListResponse{
		Conversations: make([]ConversationResponse, 0, len(convs)),
		Total:         len(convs),
	}
	for i := range convs {
		resp.Conversations = append(resp.Conversations, toConversationResponse(&convs[i]))
	}
	return resp, nil
}

// GetWithMessages retrieves one conversation of a tenant together with its
// messages in chronological order
func (s *ConversationService) GetWithMessages(id, tenantID uuid.UUID) (*ConversationDetailResponse, error) {
	conv, err := s.conversations.GetByID(id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	msgs, err := s.messages.ListByConversation(id, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	detail := &ConversationDetailResponse{
		ConversationResponse: toConversationResponse(conv),
		Messages:             make([]MessageResponse, 0, len(msgs)),
	}
	for i := range msgs {
		detail.Messages = append(detail.Messages, toMessageResponse(&msgs[i]))
	}
	return detail, nil
}

// Create starts a new conversation owned by the tenant
func (s *ConversationService) Create(tenantID uuid.UUID, req *CreateConversationRequest) (*ConversationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	conv := &models.Conversation{
		CustomerContact: req.CustomerContact,
		Status:          models.ConversationStatusNew,
		UpdatedAt:       time.Now(),
	}
	if err := s.conversations.Create(tenantID, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	resp := toConversationResponse(conv)
	return &resp, nil
}

// AppendMessage appends a message to a conversation of the tenant. The
// parent conversation's updated_at moves forward atomically with the insert.
func (s *ConversationService) AppendMessage(tenantID, conversationID uuid.UUID, req *CreateMessageRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be one of user, assistant, system")
	}

	msg := &models.Message{
		ConversationID: conversationID,
		Role:           req.Role,
		Content:        req.Content,
	}
	if err := s.messages.Create(tenantID, msg); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	resp := toMessageResponse(msg)
	return &resp, nil
}

func toConversationResponse(conv *models.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:              conv.ID,
		CustomerContact: conv.CustomerContact,
		Status:          conv.Status,
		Metadata:        conv.Metadata,
		CreatedAt:       conv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       conv.UpdatedAt.Format(time.RFC3339),
	}
}

func toMessageResponse(msg *models.Message) MessageResponse {
	return MessageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Role:           msg.Role,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt.Format(time.RFC3339),
	}
}
