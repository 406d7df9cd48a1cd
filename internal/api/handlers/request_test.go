package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"roadworks-backend/internal/api/handlers"
	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"
	"roadworks-backend/internal/mocks"
	"roadworks-backend/internal/notify"
	"roadworks-backend/internal/store"
	"roadworks-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RequestHandlerTestSuite runs the request endpoints against a real store
// backed by mocked gateways.
type RequestHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRequestGW *mocks.MockRequestGatewayInterface
	mockUserGW    *mocks.MockUserGatewayInterface
	mockZonalGW   *mocks.MockZonalGatewayInterface
	mockRoleStore *mocks.MockRoleStoreInterface
	store         *store.Store
	httpSuite     *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RequestHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRequestGW = mocks.NewMockRequestGatewayInterface(suite.ctrl)
	suite.mockUserGW = mocks.NewMockUserGatewayInterface(suite.ctrl)
	suite.mockZonalGW = mocks.NewMockZonalGatewayInterface(suite.ctrl)
	suite.mockRoleStore = mocks.NewMockRoleStoreInterface(suite.ctrl)

	toasts := notify.NewChannel(time.Minute, time.Minute)
	suite.store = store.New(suite.mockRequestGW, suite.mockUserGW, suite.mockZonalGW, suite.mockRoleStore, toasts, nil)

	suite.mockRequestGW.EXPECT().List(gomock.Any()).Return([]models.RepairRequest{
		{ID: "req_001", Protocol: "2024.123456", Status: models.StatusOpen, TechnicianID: "u1", Zonal: models.ZoneNorth},
	}, nil)
	suite.mockUserGW.EXPECT().List(gomock.Any()).Return([]models.User{
		{ID: "u1", Name: "Ana Oliveira", Role: models.RoleCollaborator, Zonal: models.ZoneNorth},
	}, nil)
	suite.mockZonalGW.EXPECT().List(gomock.Any()).Return(models.DefaultZonals(), nil)
	suite.mockRoleStore.EXPECT().Load().Return(models.BuiltinRoles(), nil)
	require.NoError(suite.T(), suite.store.Load(context.Background()))

	handler := handlers.NewRequestHandler(suite.store)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	requests := v1.Group("/requests")
	{
		requests.GET("", handler.ListRequests)
		requests.POST("", handler.CreateRequest)
		requests.PUT("/:id", handler.UpdateRequest)
		requests.DELETE("/:id", handler.DeleteRequest)
	}
}

// TearDownTest cleans up after each test
func (suite *RequestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListRequests tests the ListRequests handler
func (suite *RequestHandlerTestSuite) TestListRequests() {
	suite.T().Run("Success", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/requests", nil)

		var requests []models.RepairRequest
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &requests)
		require.Len(t, requests, 1)
		assert.Equal(t, "req_001", requests[0].ID)
	})

	suite.T().Run("FilterByStatusExcludesOthers", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/requests?status=completed", nil)

		var requests []models.RepairRequest
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &requests)
		assert.Empty(t, requests)
	})

	suite.T().Run("FilterByZonal", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/requests?zonal=north", nil)

		var requests []models.RepairRequest
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &requests)
		assert.Len(t, requests, 1)
	})
}

// TestCreateRequest tests the CreateRequest handler
func (suite *RequestHandlerTestSuite) TestCreateRequest() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRequestGW.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		body := map[string]interface{}{
			"protocol":      "2024.999000",
			"technician_id": "u1",
			"zonal":         "north",
		}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/requests", body)

		var created models.RepairRequest
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.StatusOpen, created.Status)
	})

	suite.T().Run("UnknownTechnician", func(t *testing.T) {
		body := map[string]interface{}{
			"protocol":      "2024.999001",
			"technician_id": "ghost",
			"zonal":         "north",
		}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/requests", body)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "ghost")
	})

	suite.T().Run("DuplicateID", func(t *testing.T) {
		body := map[string]interface{}{
			"id":            "req_001",
			"protocol":      "2024.999002",
			"technician_id": "u1",
			"zonal":         "north",
		}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/requests", body)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "")
	})

	suite.T().Run("GatewayFailure", func(t *testing.T) {
		suite.mockRequestGW.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(apperrors.NewPersistenceError("create repair request", assert.AnError))

		body := map[string]interface{}{
			"protocol":      "2024.999003",
			"technician_id": "u1",
			"zonal":         "north",
		}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/requests", body)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadGateway, "")
	})
}

// TestUpdateRequest tests the UpdateRequest handler
func (suite *RequestHandlerTestSuite) TestUpdateRequest() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRequestGW.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		body := map[string]interface{}{
			"protocol":      "2024.123456",
			"status":        "completed",
			"technician_id": "u1",
			"zonal":         "north",
		}
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/requests/req_001", body)

		var updated models.RepairRequest
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &updated)
		assert.Equal(t, models.StatusCompleted, updated.Status)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		body := map[string]interface{}{
			"protocol":      "2024.404404",
			"status":        "open",
			"technician_id": "u1",
			"zonal":         "north",
		}
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/requests/req_404", body)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "")
	})
}

// TestDeleteRequest tests the DeleteRequest handler
func (suite *RequestHandlerTestSuite) TestDeleteRequest() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRequestGW.EXPECT().Delete(gomock.Any(), "req_001").Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/requests/req_001", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

// TestRequestHandlerTestSuite runs the test suite
func TestRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}
