package repository

import (
	"testing"
	"time"

	"receptionist-backend/internal/database/models"
	"receptionist-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ConversationRepositoryTestSuite tests the ConversationRepository
type ConversationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ConversationRepository
	tenantRepo    *TenantRepository
	factory       *testutils.ConversationFactory
	tenantFactory *testutils.TenantFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ConversationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewConversationRepository(suite.baseTestSuite.DB)
	suite.tenantRepo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewConversationFactory()
	suite.tenantFactory = testutils.NewTenantFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ConversationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ConversationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ConversationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to create a tenant
func (suite *ConversationRepositoryTestSuite) createTenant() *models.Tenant {
	tenant := suite.tenantFactory.Create()
	suite.NoError(suite.tenantRepo.Create(tenant))
	return tenant
}

// TestCreateAndGetByID tests creating a conversation and retrieving it
func (suite *ConversationRepositoryTestSuite) TestCreateAndGetByID() {
	tenant := suite.createTenant()

	conv := suite.factory.Create()
	err := suite.repo.Create(tenant.ID, conv)
	suite.NoError(err)
	suite.Equal(tenant.ID, conv.TenantID)

	retrieved, err := suite.repo.GetByID(conv.ID, tenant.ID)

	suite.NoError(err)
	suite.Equal(conv.ID, retrieved.ID)
	suite.Equal(models.ConversationStatusNew, retrieved.Status)
	suite.Equal("general_inquiry", retrieved.Metadata["intent"])
}

// TestCreateForcesOwnership tests that a record carrying another tenant's id
// is still persisted under the caller's tenant
func (suite *ConversationRepositoryTestSuite) TestCreateForcesOwnership() {
	tenantA := suite.createTenant()
	tenantB := suite.createTenant()

	conv := suite.factory.WithTenant(tenantB.ID)
	suite.NoError(suite.repo.Create(tenantA.ID, conv))

	// visible to A, invisible to B
	_, err := suite.repo.GetByID(conv.ID, tenantA.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(conv.ID, tenantB.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByIDCrossTenant tests that another tenant's conversation behaves
// exactly like a missing row
func (suite *ConversationRepositoryTestSuite) TestGetByIDCrossTenant() {
	tenantA := suite.createTenant()
	tenantB := suite.createTenant()

	conv := suite.factory.Create()
	suite.NoError(suite.repo.Create(tenantA.ID, conv))

	retrieved, err := suite.repo.GetByID(conv.ID, tenantB.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestListByTenant tests listing only the tenant's own conversations,
// most recently active first
func (suite *ConversationRepositoryTestSuite) TestListByTenant() {
	tenantA := suite.createTenant()
	tenantB := suite.createTenant()

	old := suite.factory.Create()
	old.UpdatedAt = time.Now().Add(-2 * time.Hour)
	suite.NoError(suite.repo.Create(tenantA.ID, old))

	recent := suite.factory.WithStatus(models.ConversationStatusActive)
	recent.UpdatedAt = time.Now().Add(-time.Minute)
	suite.NoError(suite.repo.Create(tenantA.ID, recent))

	other := suite.factory.Create()
	suite.NoError(suite.repo.Create(tenantB.ID, other))

	convs, err := suite.repo.ListByTenant(tenantA.ID)

	suite.NoError(err)
	suite.Len(convs, 2)
	suite.Equal(recent.ID, convs[0].ID)
	suite.Equal(models.ConversationStatusActive, convs[0].Status)
	suite.Equal(old.ID, convs[1].ID)
}

// TestListByTenantEmpty tests that a tenant with no conversations gets an
// empty list, not an error
func (suite *ConversationRepositoryTestSuite) TestListByTenantEmpty() {
	tenant := suite.createTenant()

	convs, err := suite.repo.ListByTenant(tenant.ID)

	suite.NoError(err)
	suite.Empty(convs)
}

// TestListByTenantUnknownTenant tests listing for an id that matches no rows
func (suite *ConversationRepositoryTestSuite) TestListByTenantUnknownTenant() {
	convs, err := suite.repo.ListByTenant(uuid.New())

	suite.NoError(err)
	suite.Empty(convs)
}

// Run the test suite
func TestConversationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ConversationRepositoryTestSuite))
}
