package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"receptionist-backend/internal/api/handlers"
	"receptionist-backend/internal/database/models"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/mocks"
	"receptionist-backend/internal/service"
	"receptionist-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AppointmentHandlerTestSuite defines the test suite for AppointmentHandler
type AppointmentHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockSv    *mocks.MockAppointmentServiceInterface
	handler   *handlers.AppointmentHandler
	httpSuite *testutils.HTTPTestSuite
	tenantID  uuid.UUID
}

func (suite *AppointmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSv = mocks.NewMockAppointmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAppointmentHandler(suite.mockSv)
	suite.tenantID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	authed := suite.httpSuite.Router.Group("/", withTenant(suite.tenantID))
	authed.GET("/appointments", suite.handler.ListAppointments)
	authed.POST("/appointments", suite.handler.CreateAppointment)
}

func (suite *AppointmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *AppointmentHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

func (suite *AppointmentHandlerTestSuite) TestListAppointments_Success() {
	start := time.Now().Add(24 * time.Hour)
	resp := &service.AppointmentListResponse{
		Appointments: []service.AppointmentResponse{
			{
				ID:           uuid.New(),
				CustomerName: "John Doe",
				StartTime:    start,
				EndTime:      start.Add(time.Hour),
				Status:       models.AppointmentStatusScheduled,
			},
		},
		Total: 1,
	}
	suite.mockSv.EXPECT().List(suite.tenantID).Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/appointments", nil)

	var got service.AppointmentListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), 1, got.Total)
	assert.Equal(suite.T(), "John Doe", got.Appointments[0].CustomerName)
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_Success() {
	resp := &service.AppointmentResponse{
		ID:           uuid.New(),
		CustomerName: "Jane Roe",
		Status:       models.AppointmentStatusScheduled,
	}
	suite.mockSv.EXPECT().
		Create(suite.tenantID, gomock.Any()).
		DoAndReturn(func(tid uuid.UUID, r *service.CreateAppointmentRequest) (*service.AppointmentResponse, error) {
			assert.Equal(suite.T(), "Jane Roe", r.CustomerName)
			return resp, nil
		})

	body := map[string]interface{}{
		"customer_name": "Jane Roe",
		"start_time":    "2026-09-02T10:00:00Z",
		"end_time":      "2026-09-02T11:00:00Z",
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/appointments", body)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_InvalidRange() {
	suite.mockSv.EXPECT().
		Create(suite.tenantID, gomock.Any()).
		Return(nil, apperrors.ErrAppointmentInvalidRange)

	body := map[string]interface{}{
		"customer_name": "Backwards Bob",
		"start_time":    "2026-09-02T11:00:00Z",
		"end_time":      "2026-09-02T10:00:00Z",
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/appointments", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_ConversationNotFound() {
	suite.mockSv.EXPECT().
		Create(suite.tenantID, gomock.Any()).
		Return(nil, apperrors.ErrConversationNotFound)

	body := map[string]interface{}{
		"customer_name":   "Jane Roe",
		"conversation_id": uuid.New().String(),
		"start_time":      "2026-09-02T10:00:00Z",
		"end_time":        "2026-09-02T11:00:00Z",
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/appointments", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_MalformedBody() {
	recorder := suite.makeInvalidJSONRequest(http.MethodPost, "/appointments")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func TestAppointmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}
