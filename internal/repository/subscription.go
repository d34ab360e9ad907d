package repository

import (
	"receptionist-backend/internal/database/models"
	apperrors "receptionist-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionRepository handles database operations for subscriptions
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create creates the subscription row for a tenant. The unique index on
// tenant_id enforces one subscription per tenant.
func (r *SubscriptionRepository) Create(sub *models.Subscription) error {
	if err := r.db.Create(sub).Error; err != nil {
		if isUniqueViolation(err, "tenant_id") {
			return apperrors.ErrSubscriptionExists
		}
		return err
	}
	return nil
}

// GetByTenant retrieves the subscription of a tenant
func (r *SubscriptionRepository) GetByTenant(tenantID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "tenant_id = ?", tenantID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdatePlan changes the plan and status of a tenant's subscription and
// returns the updated row
func (r *SubscriptionRepository) UpdatePlan(tenantID uuid.UUID, plan models.SubscriptionPlan, status string) (*models.Subscription, error) {
	res := r.db.Model(&models.Subscription{}).
		Where("tenant_id = ?", tenantID).
		Updates(map[string]interface{}{"plan": plan, "status": status})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByTenant(tenantID)
}
