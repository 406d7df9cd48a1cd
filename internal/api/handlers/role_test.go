package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"roadworks-backend/internal/api/handlers"
	"roadworks-backend/internal/database/models"
	"roadworks-backend/internal/mocks"
	"roadworks-backend/internal/notify"
	"roadworks-backend/internal/store"
	"roadworks-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RoleHandlerTestSuite defines the test suite for RoleHandler
type RoleHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRoleStore *mocks.MockRoleStoreInterface
	store         *store.Store
	httpSuite     *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RoleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	mockRequestGW := mocks.NewMockRequestGatewayInterface(suite.ctrl)
	mockUserGW := mocks.NewMockUserGatewayInterface(suite.ctrl)
	mockZonalGW := mocks.NewMockZonalGatewayInterface(suite.ctrl)
	suite.mockRoleStore = mocks.NewMockRoleStoreInterface(suite.ctrl)

	toasts := notify.NewChannel(time.Minute, time.Minute)
	suite.store = store.New(mockRequestGW, mockUserGW, mockZonalGW, suite.mockRoleStore, toasts, nil)

	roles := models.BuiltinRoles()
	roles["role_777"] = "Topógrafo"

	mockRequestGW.EXPECT().List(gomock.Any()).Return(nil, nil)
	mockUserGW.EXPECT().List(gomock.Any()).Return([]models.User{
		{ID: "u7", Name: "Carlos Santos", Role: "role_777", Zonal: models.ZoneEast},
	}, nil)
	mockZonalGW.EXPECT().List(gomock.Any()).Return(models.DefaultZonals(), nil)
	suite.mockRoleStore.EXPECT().Load().Return(roles, nil)
	require.NoError(suite.T(), suite.store.Load(context.Background()))

	handler := handlers.NewRoleHandler(suite.store)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	rolesGroup := v1.Group("/roles")
	{
		rolesGroup.GET("", handler.ListRoles)
		rolesGroup.POST("", handler.CreateRole)
		rolesGroup.DELETE("/:key", handler.DeleteRole)
	}
}

// TearDownTest cleans up after each test
func (suite *RoleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListRoles tests the ListRoles handler
func (suite *RoleHandlerTestSuite) TestListRoles() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/roles", nil)

	var roles map[string]string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &roles)
	assert.Equal(suite.T(), "Gerente", roles[models.RoleManager])
	assert.Equal(suite.T(), "Topógrafo", roles["role_777"])
}

// TestCreateRole tests the CreateRole handler
func (suite *RoleHandlerTestSuite) TestCreateRole() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRoleStore.EXPECT().Save(gomock.Any(), "Fiscal de Obras").Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/roles", map[string]string{
			"label": "Fiscal de Obras",
		})

		var created handlers.RoleResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &created)
		assert.Contains(t, created.Key, "role_")
		assert.Equal(t, "Fiscal de Obras", created.Label)
	})

	suite.T().Run("EmptyLabel", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/roles", map[string]string{})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "")
	})
}

// TestDeleteRole tests the DeleteRole handler
func (suite *RoleHandlerTestSuite) TestDeleteRole() {
	suite.T().Run("BuiltinRejected", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/roles/"+models.RoleManager, nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "")
	})

	suite.T().Run("InUseRejected", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/roles/role_777", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Carlos Santos")
	})

	suite.T().Run("UnknownKey", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/roles/role_999", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "")
	})
}

// TestRoleHandlerTestSuite runs the test suite
func TestRoleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoleHandlerTestSuite))
}
