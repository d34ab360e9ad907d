package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the interface for tenant service operations
type TenantServiceInterface interface {
	Get(id uuid.UUID) (*TenantResponse, error)
	Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error)
	WidgetConfig(slug string) (*WidgetConfigResponse, error)
}

// ConversationServiceInterface defines the interface for conversation service operations
type ConversationServiceInterface interface {
	List(tenantID uuid.UUID) (*ConversationListResponse, error)
	GetWithMessages(id, tenantID uuid.UUID) (*ConversationDetailResponse, error)
	Create(tenantID uuid.UUID, req *CreateConversationRequest) (*ConversationResponse, error)
	AppendMessage(tenantID, conversationID uuid.UUID, req *CreateMessageRequest) (*MessageResponse, error)
}

// AppointmentServiceInterface defines the interface for appointment service operations
type AppointmentServiceInterface interface {
	List(tenantID uuid.UUID) (*AppointmentListResponse, error)
	Create(tenantID uuid.UUID, req *CreateAppointmentRequest) (*AppointmentResponse, error)
}

// SubscriptionServiceInterface defines the interface for subscription service operations
type SubscriptionServiceInterface interface {
	GetForTenant(tenantID uuid.UUID) (*SubscriptionResponse, error)
	ChangePlan(tenantID uuid.UUID, req *ChangePlanRequest) (*SubscriptionResponse, error)
}
