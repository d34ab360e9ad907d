package repository

import (
	"receptionist-backend/internal/database/models"
	apperrors "receptionist-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant. A slug collision, even one that slips past a
// service-level pre-check, is reported as ErrTenantSlugExists.
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	if err := r.db.Create(tenant).Error; err != nil {
		if isUniqueViolation(err, "slug") {
			return apperrors.ErrTenantSlugExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetBySlug retrieves a tenant by its unique slug
func (r *TenantRepository) GetBySlug(slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Update applies a partial update to a tenant and returns the updated row.
// The primary key is never part of the update set.
func (r *TenantRepository) Update(id uuid.UUID, updates map[string]interface{}) (*models.Tenant, error) {
	delete(updates, "id")

	res := r.db.Model(&models.Tenant{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if isUniqueViolation(res.Error, "slug") {
			return nil, apperrors.ErrTenantSlugExists
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}
