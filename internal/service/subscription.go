package service

import (
	"errors"
	"fmt"

	"receptionist-backend/internal/database/models"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionService handles business logic for tenant billing state
type SubscriptionService struct {
	repo      repository.SubscriptionRepositoryInterface
	validator *validator.Validate
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(repo repository.SubscriptionRepositoryInterface, validator *validator.Validate) *SubscriptionService {
	return &SubscriptionService{
		repo:      repo,
		validator: validator,
	}
}

// ChangePlanRequest represents a plan change
type ChangePlanRequest struct {
	Plan models.SubscriptionPlan `json:"plan" validate:"required"`
}

// SubscriptionResponse represents the billing state of a tenant
type SubscriptionResponse struct {
	ID       uuid.UUID               `json:"id"`
	TenantID uuid.UUID               `json:"tenant_id"`
	Plan     models.SubscriptionPlan `json:"plan"`
	Status   string                  `json:"status"`
}

// GetForTenant retrieves the subscription of a tenant
func (s *SubscriptionService) GetForTenant(tenantID uuid.UUID) (*SubscriptionResponse, error) {
	sub, err := s.repo.GetByTenant(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return toSubscriptionResponse(sub), nil
}

// ChangePlan switches the tenant to a different plan
func (s *SubscriptionService) ChangePlan(tenantID uuid.UUID, req *ChangePlanRequest) (*SubscriptionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Plan.IsValid() {
		return nil, apperrors.NewValidationError("plan", "must be one of free, basic, pro, enterprise")
	}

	sub, err := s.repo.UpdatePlan(tenantID, req.Plan, "active")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to change plan: %w", err)
	}
	return toSubscriptionResponse(sub), nil
}

func toSubscriptionResponse(sub *models.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:       sub.ID,
		TenantID: sub.TenantID,
		Plan:     sub.Plan,
		Status:   sub.Status,
	}
}
