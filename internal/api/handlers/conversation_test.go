package handlers_test

import (
	"net/http"
	"testing"

	"receptionist-backend/internal/api/handlers"
	"receptionist-backend/internal/auth"
	"receptionist-backend/internal/database/models"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/mocks"
	"receptionist-backend/internal/service"
	"receptionist-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ConversationHandlerTestSuite defines the test suite for ConversationHandler
type ConversationHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockSv    *mocks.MockConversationServiceInterface
	handler   *handlers.ConversationHandler
	httpSuite *testutils.HTTPTestSuite
	tenantID  uuid.UUID
}

// withTenant injects the tenant context the auth middleware would set
func withTenant(tenantID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextTenantIDKey, tenantID)
		c.Next()
	}
}

func (suite *ConversationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSv = mocks.NewMockConversationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewConversationHandler(suite.mockSv)
	suite.tenantID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	authed := suite.httpSuite.Router.Group("/", withTenant(suite.tenantID))
	authed.GET("/conversations", suite.handler.ListConversations)
	authed.GET("/conversations/:id", suite.handler.GetConversation)
	authed.POST("/conversations", suite.handler.CreateConversation)
	authed.POST("/conversations/:id/messages", suite.handler.CreateMessage)

	// same routes without tenant context
	suite.httpSuite.Router.GET("/anon/conversations", suite.handler.ListConversations)
}

func (suite *ConversationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConversationHandlerTestSuite) TestListConversations_Success() {
	resp := &service.ConversationListResponse{
		Conversations: []service.ConversationResponse{
			{
				ID:              uuid.New(),
				CustomerContact: "alice@example.com",
				Status:          models.ConversationStatusActive,
			},
		},
		Total: 1,
	}
	suite.mockSv.EXPECT().List(suite.tenantID).Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/conversations", nil)

	var got service.ConversationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), 1, got.Total)
	assert.Equal(suite.T(), "alice@example.com", got.Conversations[0].CustomerContact)
}

func (suite *ConversationHandlerTestSuite) TestListConversations_NoTenantContext() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/anon/conversations", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "")
}

func (suite *ConversationHandlerTestSuite) TestGetConversation_Success() {
	convID := uuid.New()
	resp := &service.ConversationDetailResponse{
		ConversationResponse: service.ConversationResponse{
			ID:     convID,
			Status: models.ConversationStatusBooked,
		},
		Messages: []service.MessageResponse{
			{ID: uuid.New(), ConversationID: convID, Role: models.MessageRoleUser, Content: "Hi"},
		},
	}
	suite.mockSv.EXPECT().GetWithMessages(convID, suite.tenantID).Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/conversations/"+convID.String(), nil)

	var got service.ConversationDetailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), convID, got.ID)
	assert.Len(suite.T(), got.Messages, 1)
}

func (suite *ConversationHandlerTestSuite) TestGetConversation_InvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/conversations/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid conversation ID")
}

func (suite *ConversationHandlerTestSuite) TestGetConversation_NotFound() {
	convID := uuid.New()
	suite.mockSv.EXPECT().GetWithMessages(convID, suite.tenantID).Return(nil, apperrors.ErrConversationNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/conversations/"+convID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func (suite *ConversationHandlerTestSuite) TestCreateConversation_Success() {
	resp := &service.ConversationResponse{
		ID:              uuid.New(),
		CustomerContact: "bob@example.com",
		Status:          models.ConversationStatusNew,
	}
	suite.mockSv.EXPECT().
		Create(suite.tenantID, gomock.Any()).
		DoAndReturn(func(tid uuid.UUID, r *service.CreateConversationRequest) (*service.ConversationResponse, error) {
			assert.Equal(suite.T(), "bob@example.com", r.CustomerContact)
			return resp, nil
		})

	body := map[string]interface{}{"customer_contact": "bob@example.com"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/conversations", body)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *ConversationHandlerTestSuite) TestCreateMessage_Success() {
	convID := uuid.New()
	resp := &service.MessageResponse{
		ID:             uuid.New(),
		ConversationID: convID,
		Role:           models.MessageRoleAssistant,
		Content:        "Booked!",
	}
	suite.mockSv.EXPECT().AppendMessage(suite.tenantID, convID, gomock.Any()).Return(resp, nil)

	body := map[string]interface{}{"role": "assistant", "content": "Booked!"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/conversations/"+convID.String()+"/messages", body)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var got service.MessageResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &got)
	assert.Equal(suite.T(), "Booked!", got.Content)
}

func (suite *ConversationHandlerTestSuite) TestCreateMessage_ValidationError() {
	convID := uuid.New()
	suite.mockSv.EXPECT().
		AppendMessage(suite.tenantID, convID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("role", "must be one of user, assistant, system"))

	body := map[string]interface{}{"role": "robot", "content": "beep"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/conversations/"+convID.String()+"/messages", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *ConversationHandlerTestSuite) TestCreateMessage_ConversationNotFound() {
	convID := uuid.New()
	suite.mockSv.EXPECT().
		AppendMessage(suite.tenantID, convID, gomock.Any()).
		Return(nil, apperrors.ErrConversationNotFound)

	body := map[string]interface{}{"role": "user", "content": "anyone?"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/conversations/"+convID.String()+"/messages", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func TestConversationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConversationHandlerTestSuite))
}
