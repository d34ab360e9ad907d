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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TenantService handles business logic for tenant workspaces
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	validator *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		validator: validator,
	}
}

// UpdateTenantRequest represents a partial tenant-settings update. The id
// and slug are not updatable through this request.
type UpdateTenantRequest struct {
	Name          *string                `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Branding      map[string]interface{} `json:"branding,omitempty"`
	BusinessHours map[string]interface{} `json:"business_hours,omitempty"`
}

// TenantResponse represents the response for tenant operations
type TenantResponse struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Slug          string                 `json:"slug"`
	Branding      map[string]interface{} `json:"branding"`
	BusinessHours map[string]interface{} `json:"business_hours"`
	CreatedAt     string                 `json:"created_at"`
}

// WidgetConfigResponse is the public branding payload served to the
// embeddable widget, looked up by slug
type WidgetConfigResponse struct {
	Name          string                 `json:"name"`
	Branding      map[string]interface{} `json:"branding"`
	BusinessHours map[string]interface{} `json:"business_hours"`
}

// Get retrieves a tenant workspace by ID
func (s *TenantService) Get(id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return s.toResponse(tenant), nil
}

// Update applies a partial settings update to a tenant. Only whitelisted
// columns ever reach the update statement.
func (s *TenantService) Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Branding != nil {
		updates["branding"] = datatypes.JSONMap(req.Branding)
	}
	if req.BusinessHours != nil {
		updates["business_hours"] = datatypes.JSONMap(req.BusinessHours)
	}
	if len(updates) == 0 {
		return s.Get(id)
	}

	tenant, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	return s.toResponse(tenant), nil
}

// WidgetConfig returns the public widget configuration for a tenant slug
func (s *TenantService) WidgetConfig(slug string) (*WidgetConfigResponse, error) {
	tenant, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by slug: %w", err)
	}
	return &WidgetConfigResponse{
		Name:          tenant.Name,
		Branding:      tenant.Branding,
		BusinessHours: tenant.BusinessHours,
	}, nil
}

func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:            tenant.ID,
		Name:          tenant.Name,
		Slug:          tenant.Slug,
		Branding:      tenant.Branding,
		BusinessHours: tenant.BusinessHours,
		CreatedAt:     tenant.CreatedAt.Format(time.RFC3339),
	}
}
