package auth_test

import (
	"net/http"
	"testing"

	"receptionist-backend/internal/auth"
	"receptionist-backend/internal/config"
	"receptionist-backend/internal/database/models"
	"receptionist-backend/internal/logger"
	"receptionist-backend/internal/mocks"
	"receptionist-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthMiddlewareTestSuite tests RequireAuth over a real router
type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *auth.AuthService
	httpSuite   *testutils.HTTPTestSuite
	tenantID    uuid.UUID
	userID      uuid.UUID
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	cfg := &config.Config{
		Environment: "test",
		JWTSecret:   "test-secret",
		JWTTTLHours: 1,
	}
	suite.authService = auth.NewAuthService(
		cfg,
		mocks.NewMockTenantRepositoryInterface(suite.ctrl),
		mocks.NewMockUserRepositoryInterface(suite.ctrl),
		mocks.NewMockSubscriptionRepositoryInterface(suite.ctrl),
		validator.New(),
	)
	suite.tenantID = uuid.New()
	suite.userID = uuid.New()

	middleware := auth.NewAuthMiddleware(suite.authService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		tenantID, ok := auth.CurrentTenant(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no tenant in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tenant_id": tenantID.String()})
	})
}

func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthMiddlewareTestSuite) signedToken() string {
	token, err := suite.authService.GenerateJWT(&models.User{
		BaseModel: models.BaseModel{ID: suite.userID},
		TenantID:  &suite.tenantID,
		Email:     "owner@acme.com",
		Role:      models.UserRoleOwner,
	})
	suite.Require().NoError(err)
	return token
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_ValidToken() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer " + suite.signedToken(),
	})

	var got map[string]string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), suite.tenantID.String(), got["tenant_id"])
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_PropagatesLoggingContext() {
	suite.httpSuite.Router.GET("/logged", auth.NewAuthMiddleware(suite.authService).RequireAuth(), func(c *gin.Context) {
		entry := logger.WithContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"tenant_id": entry.Entry.Data["tenant_id"],
			"user":      entry.Entry.Data["user"],
		})
	})

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/logged", nil, map[string]string{
		"Authorization": "Bearer " + suite.signedToken(),
	})

	var got map[string]string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), suite.tenantID.String(), got["tenant_id"])
	assert.Equal(suite.T(), "owner@acme.com", got["user"])
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_MissingHeader() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/protected", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authorization header is required")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_MissingBearerPrefix() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": suite.signedToken(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid authorization header format")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_GarbageToken() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer not.a.token",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid token")
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
