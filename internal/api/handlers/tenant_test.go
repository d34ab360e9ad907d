package handlers_test

import (
	"net/http"
	"testing"

	"receptionist-backend/internal/api/handlers"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/mocks"
	"receptionist-backend/internal/service"
	"receptionist-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TenantHandlerTestSuite defines the test suite for TenantHandler and WidgetHandler
type TenantHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSv        *mocks.MockTenantServiceInterface
	handler       *handlers.TenantHandler
	widgetHandler *handlers.WidgetHandler
	httpSuite     *testutils.HTTPTestSuite
	tenantID      uuid.UUID
}

func (suite *TenantHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSv = mocks.NewMockTenantServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTenantHandler(suite.mockSv)
	suite.widgetHandler = handlers.NewWidgetHandler(suite.mockSv)
	suite.tenantID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	authed := suite.httpSuite.Router.Group("/", withTenant(suite.tenantID))
	authed.GET("/tenant", suite.handler.GetTenant)
	authed.PATCH("/tenant", suite.handler.UpdateTenant)

	// the widget endpoint is public
	suite.httpSuite.Router.GET("/widget/config", suite.widgetHandler.GetConfig)
}

func (suite *TenantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TenantHandlerTestSuite) TestGetTenant_Success() {
	resp := &service.TenantResponse{
		ID:   suite.tenantID,
		Name: "Acme Dental",
		Slug: "acme-dental",
	}
	suite.mockSv.EXPECT().Get(suite.tenantID).Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/tenant", nil)

	var got service.TenantResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), suite.tenantID, got.ID)
	assert.Equal(suite.T(), "acme-dental", got.Slug)
}

func (suite *TenantHandlerTestSuite) TestGetTenant_NotFound() {
	suite.mockSv.EXPECT().Get(suite.tenantID).Return(nil, apperrors.ErrTenantNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/tenant", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func (suite *TenantHandlerTestSuite) TestUpdateTenant_Success() {
	resp := &service.TenantResponse{
		ID:   suite.tenantID,
		Name: "Renamed Clinic",
		Slug: "acme-dental",
	}
	suite.mockSv.EXPECT().
		Update(suite.tenantID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, r *service.UpdateTenantRequest) (*service.TenantResponse, error) {
			assert.NotNil(suite.T(), r.Name)
			assert.Equal(suite.T(), "Renamed Clinic", *r.Name)
			return resp, nil
		})

	body := map[string]interface{}{"name": "Renamed Clinic"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/tenant", body)

	var got service.TenantResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), "Renamed Clinic", got.Name)
}

func (suite *TenantHandlerTestSuite) TestUpdateTenant_ValidationError() {
	suite.mockSv.EXPECT().
		Update(suite.tenantID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "too long"))

	body := map[string]interface{}{"name": "x"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/tenant", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *TenantHandlerTestSuite) TestWidgetConfig_Success() {
	resp := &service.WidgetConfigResponse{
		Name:     "Acme Dental",
		Branding: map[string]interface{}{"accentColor": "#4f46e5"},
	}
	suite.mockSv.EXPECT().WidgetConfig("acme-dental").Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/widget/config?slug=acme-dental", nil)

	var got service.WidgetConfigResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), "Acme Dental", got.Name)
	assert.Equal(suite.T(), "#4f46e5", got.Branding["accentColor"])
}

func (suite *TenantHandlerTestSuite) TestWidgetConfig_MissingSlug() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/widget/config", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *TenantHandlerTestSuite) TestWidgetConfig_UnknownSlug() {
	suite.mockSv.EXPECT().WidgetConfig("missing").Return(nil, apperrors.ErrTenantNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/widget/config?slug=missing", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func TestTenantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}
