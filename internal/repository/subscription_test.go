package repository

import (
	"testing"

	"receptionist-backend/internal/database/models"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SubscriptionRepositoryTestSuite tests the SubscriptionRepository
type SubscriptionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SubscriptionRepository
	tenantRepo    *TenantRepository
	factory       *testutils.SubscriptionFactory
	tenantFactory *testutils.TenantFactory
}

// SetupSuite runs before all tests in the suite
func (suite *SubscriptionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSubscriptionRepository(suite.baseTestSuite.DB)
	suite.tenantRepo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewSubscriptionFactory()
	suite.tenantFactory = testutils.NewTenantFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *SubscriptionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SubscriptionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SubscriptionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to create a tenant
func (suite *SubscriptionRepositoryTestSuite) createTenant() *models.Tenant {
	tenant := suite.tenantFactory.Create()
	suite.NoError(suite.tenantRepo.Create(tenant))
	return tenant
}

// TestCreateAndGetByTenant tests creating a subscription and retrieving it
func (suite *SubscriptionRepositoryTestSuite) TestCreateAndGetByTenant() {
	tenant := suite.createTenant()

	sub := suite.factory.WithTenant(tenant.ID)
	suite.NoError(suite.repo.Create(sub))

	retrieved, err := suite.repo.GetByTenant(tenant.ID)

	suite.NoError(err)
	suite.Equal(sub.ID, retrieved.ID)
	suite.Equal(models.SubscriptionPlanFree, retrieved.Plan)
	suite.Equal("active", retrieved.Status)
}

// TestCreateDuplicateTenant tests that the one-subscription-per-tenant
// unique index surfaces as the typed duplicate error
func (suite *SubscriptionRepositoryTestSuite) TestCreateDuplicateTenant() {
	tenant := suite.createTenant()

	first := suite.factory.WithTenant(tenant.ID)
	suite.NoError(suite.repo.Create(first))

	second := suite.factory.WithTenant(tenant.ID)
	second.Plan = models.SubscriptionPlanPro
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrSubscriptionExists)
}

// TestGetByTenantNotFound tests retrieving a subscription for an unknown tenant
func (suite *SubscriptionRepositoryTestSuite) TestGetByTenantNotFound() {
	sub, err := suite.repo.GetByTenant(uuid.New())

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(sub)
}

// TestUpdatePlan tests changing the plan of an existing subscription
func (suite *SubscriptionRepositoryTestSuite) TestUpdatePlan() {
	tenant := suite.createTenant()

	sub := suite.factory.WithPlan(models.SubscriptionPlanBasic)
	sub.TenantID = tenant.ID
	suite.NoError(suite.repo.Create(sub))

	updated, err := suite.repo.UpdatePlan(tenant.ID, models.SubscriptionPlanPro, "active")

	suite.NoError(err)
	suite.Equal(models.SubscriptionPlanPro, updated.Plan)
	suite.Equal(sub.ID, updated.ID)
}

// TestUpdatePlanNotFound tests changing the plan for a tenant that has no
// subscription row
func (suite *SubscriptionRepositoryTestSuite) TestUpdatePlanNotFound() {
	updated, err := suite.repo.UpdatePlan(uuid.New(), models.SubscriptionPlanBasic, "active")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(updated)
}

// Run the test suite
func TestSubscriptionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionRepositoryTestSuite))
}
