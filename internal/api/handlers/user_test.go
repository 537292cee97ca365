package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"pc-builder-backend/internal/api/handlers"
	"pc-builder-backend/internal/database/models"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/mocks"
	"pc-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUserSvc *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	router      *gin.Engine
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserSvc = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockUserSvc)

	suite.router = gin.New()
	suite.router.GET("/users", suite.handler.ListUsers)
	suite.router.GET("/users/:id", suite.handler.GetUser)
	suite.router.POST("/users", suite.handler.CreateUser)
	suite.router.PUT("/users/:id", suite.handler.UpdateUser)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestListUsers_Success() {
	users := []models.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}
	suite.mockUserSvc.EXPECT().List(20, 0).Return(users, int64(2), nil)

	w := serve(suite.router, http.MethodGet, "/users", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got struct {
		Users []models.User `json:"users"`
		Total int64         `json:"total"`
	}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(2), got.Total)
	assert.Len(suite.T(), got.Users, 2)
}

func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	suite.mockUserSvc.EXPECT().Get(uint(9)).Return(nil, apperrors.ErrUserNotFound)

	w := serve(suite.router, http.MethodGet, "/users/9", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUser_Success() {
	suite.mockUserSvc.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateUserRequest) (*models.User, error) {
			assert.Equal(suite.T(), "alice", req.Username)
			return &models.User{ID: 1, Username: "alice", Role: models.UserRoleUser}, nil
		})

	w := serve(suite.router, http.MethodPost, "/users", &service.CreateUserRequest{Username: "alice"})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUser_DuplicateUsername() {
	suite.mockUserSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrUsernameExists)

	w := serve(suite.router, http.MethodPost, "/users", &service.CreateUserRequest{Username: "alice"})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateUser_Success() {
	suite.mockUserSvc.EXPECT().
		Update(uint(1), gomock.Any()).
		Return(&models.User{ID: 1, Username: "alice", Role: models.UserRoleAdmin}, nil)

	w := serve(suite.router, http.MethodPut, "/users/1", &service.UpdateUserRequest{Role: "admin"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got models.User
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.UserRoleAdmin, got.Role)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
