package handlers

import (
	"net/http"

	"receptionist-backend/internal/auth"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConversationHandler handles HTTP requests for conversations
type ConversationHandler struct {
	service service.ConversationServiceInterface
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(service service.ConversationServiceInterface) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// ListConversations handles GET /api/conversations
// @Summary List conversations
// @Description List all conversations of the current tenant, most recently active first
// @Tags conversations
// @Produce json
// @Success 200 {object} service.ConversationListResponse "Conversations"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /conversations [get]
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	tenantID, ok := auth.CurrentTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No tenant context"})
		return
	}

	resp, err := h.service.List(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list conversations"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetConversation handles GET /api/conversations/:id
// @Summary Get a conversation
// @Description Get one conversation of the current tenant together with its messages
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID (UUID)"
// @Success 200 {object} service.ConversationDetailResponse "Conversation with messages"
// @Failure 400 {object} ErrorResponse "Invalid conversation ID"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Conversation not found"
// @Security BearerAuth
// @Router /conversations/{id} [get]
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	tenantID, ok := auth.CurrentTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No tenant context"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation ID: invalid UUID format"})
		return
	}

	resp, err := h.service.GetWithMessages(id, tenantID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get conversation"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateConversation handles POST /api/conversations
// @Summary Start a conversation
// @Description Manually start a new conversation for the current tenant
// @Tags conversations
// @Accept json
// @Produce json
// @Param conversation body service.CreateConversationRequest true "Conversation data"
// @Success 201 {object} service.ConversationResponse "Created conversation"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /conversations [post]
func (h *ConversationHandler) CreateConversation(c *gin.Context) {
	tenantID, ok := auth.CurrentTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No tenant context"})
		return
	}

	var req service.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Create(tenantID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create conversation"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// CreateMessage handles POST /api/conversations/:id/messages
// @Summary Append a message
// @Description Append a message to a conversation of the current tenant
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID (UUID)"
// @Param message body service.CreateMessageRequest true "Message data"
// @Success 201 {object} service.MessageResponse "Created message"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Conversation not found"
// @Security BearerAuth
// @Router /conversations/{id}/messages [post]
func (h *ConversationHandler) CreateMessage(c *gin.Context) {
	tenantID, ok := auth.CurrentTenant(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No tenant context"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation ID: invalid UUID format"})
		return
	}

	var req service.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.AppendMessage(tenantID, id, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}
