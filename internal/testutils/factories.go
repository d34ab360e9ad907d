package testutils

import (
	"time"

	"receptionist-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values. Slug is derived from a
// fresh UUID so two factory tenants never collide on the unique index.
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Name: "Test Clinic",
		Slug: "test-clinic-" + id.String()[:8],
		Branding: datatypes.JSONMap{
			"accentColor": "#4f46e5",
			"voiceStyle":  "friendly",
		},
		BusinessHours: datatypes.JSONMap{
			"monday": map[string]interface{}{"start": "09:00", "end": "17:00"},
			"sunday": nil,
		},
	}
}

// WithSlug sets a custom slug for the tenant
func (f *TenantFactory) WithSlug(slug string) *models.Tenant {
	tenant := f.Create()
	tenant.Slug = slug
	return tenant
}

// WithName sets a custom name for the tenant
func (f *TenantFactory) WithName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Email embeds part of a
// fresh UUID to avoid conflicts on the global unique index.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Email:        "user-" + id.String()[:8] + "@test.com",
		PasswordHash: "deadbeef.cafe",
		Name:         "Test User",
		Role:         models.UserRoleOwner,
	}
}

// WithTenant sets the tenant ID for the user
func (f *UserFactory) WithTenant(tenantID uuid.UUID) *models.User {
	user := f.Create()
	user.TenantID = &tenantID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// ConversationFactory provides methods to create test Conversation data
type ConversationFactory struct{}

// NewConversationFactory creates a new ConversationFactory
func NewConversationFactory() *ConversationFactory {
	return &ConversationFactory{}
}

// Create creates a test Conversation with default values
func (f *ConversationFactory) Create() *models.Conversation {
	now := time.Now()
	return &models.Conversation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		CustomerContact: "caller@example.com",
		Status:          models.ConversationStatusNew,
		Metadata: datatypes.JSONMap{
			"intent": "general_inquiry",
		},
		UpdatedAt: now,
	}
}

// WithTenant sets the tenant ID for the conversation
func (f *ConversationFactory) WithTenant(tenantID uuid.UUID) *models.Conversation {
	conv := f.Create()
	conv.TenantID = tenantID
	return conv
}

// WithStatus sets a custom status for the conversation
func (f *ConversationFactory) WithStatus(status models.ConversationStatus) *models.Conversation {
	conv := f.Create()
	conv.Status = status
	return conv
}

// MessageFactory provides methods to create test Message data
type MessageFactory struct{}

// NewMessageFactory creates a new MessageFactory
func NewMessageFactory() *MessageFactory {
	return &MessageFactory{}
}

// Create creates a test Message with default values
func (f *MessageFactory) Create() *models.Message {
	return &models.Message{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Role:    models.MessageRoleUser,
		Content: "Hi, I'd like to book an appointment.",
	}
}

// WithConversation sets the conversation ID for the message
func (f *MessageFactory) WithConversation(conversationID uuid.UUID) *models.Message {
	msg := f.Create()
	msg.ConversationID = conversationID
	return msg
}

// WithRole sets a custom role for the message
func (f *MessageFactory) WithRole(role models.MessageRole) *models.Message {
	msg := f.Create()
	msg.Role = role
	return msg
}

// AppointmentFactory provides methods to create test Appointment data
type AppointmentFactory struct{}

// NewAppointmentFactory creates a new AppointmentFactory
func NewAppointmentFactory() *AppointmentFactory {
	return &AppointmentFactory{}
}

// Create creates a test Appointment with default values, one hour long
// starting tomorrow.
func (f *AppointmentFactory) Create() *models.Appointment {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	return &models.Appointment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CustomerName: "John Doe",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Status:       models.AppointmentStatusScheduled,
	}
}

// WithTenant sets the tenant ID for the appointment
func (f *AppointmentFactory) WithTenant(tenantID uuid.UUID) *models.Appointment {
	appt := f.Create()
	appt.TenantID = tenantID
	return appt
}

// WithTimes sets custom start and end times for the appointment
func (f *AppointmentFactory) WithTimes(start, end time.Time) *models.Appointment {
	appt := f.Create()
	appt.StartTime = start
	appt.EndTime = end
	return appt
}

// SubscriptionFactory provides methods to create test Subscription data
type SubscriptionFactory struct{}

// NewSubscriptionFactory creates a new SubscriptionFactory
func NewSubscriptionFactory() *SubscriptionFactory {
	return &SubscriptionFactory{}
}

// Create creates a test Subscription with default values
func (f *SubscriptionFactory) Create() *models.Subscription {
	return &models.Subscription{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Plan:   models.SubscriptionPlanFree,
		Status: "active",
	}
}

// WithTenant sets the tenant ID for the subscription
func (f *SubscriptionFactory) WithTenant(tenantID uuid.UUID) *models.Subscription {
	sub := f.Create()
	sub.TenantID = tenantID
	return sub
}

// WithPlan sets a custom plan for the subscription
func (f *SubscriptionFactory) WithPlan(plan models.SubscriptionPlan) *models.Subscription {
	sub := f.Create()
	sub.Plan = plan
	return sub
}
