package service_test

import (
	"testing"

	"pc-builder-backend/internal/database/models"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/mocks"
	"pc-builder-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
	validator    *validator.Validate
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.validator)
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestCreate_DefaultsToUserRole() {
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), models.UserRoleUser, user.Role)
			user.ID = 1
			return nil
		})

	user, err := suite.userService.Create(&service.CreateUserRequest{Username: "alice"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(1), user.ID)
	assert.Equal(suite.T(), "alice", user.Username)
}

func (suite *UserServiceTestSuite) TestCreate_DuplicateUsername() {
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	user, err := suite.userService.Create(&service.CreateUserRequest{Username: "alice"})

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUsernameExists)
}

func (suite *UserServiceTestSuite) TestCreate_InvalidEmail() {
	user, err := suite.userService.Create(&service.CreateUserRequest{Username: "alice", Email: "not-an-email"})

	assert.Nil(suite.T(), user)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestGet_NotFound() {
	suite.mockUserRepo.EXPECT().GetByID(uint(9)).Return(nil, gorm.ErrRecordNotFound)

	user, err := suite.userService.Get(9)

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestList_Success() {
	users := []models.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}
	suite.mockUserRepo.EXPECT().GetAll(20, 0).Return(users, int64(2), nil)

	got, total, err := suite.userService.List(20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), total)
	assert.Len(suite.T(), got, 2)
}

func (suite *UserServiceTestSuite) TestUpdate_ChangesOnlyProvidedFields() {
	existing := &models.User{ID: 1, Username: "alice", Email: "old@test.com", Role: models.UserRoleUser}
	suite.mockUserRepo.EXPECT().GetByID(uint(1)).Return(existing, nil)
	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), "old@test.com", user.Email)
			assert.Equal(suite.T(), models.UserRoleAdmin, user.Role)
			return nil
		})

	user, err := suite.userService.Update(1, &service.UpdateUserRequest{Role: "admin"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.UserRoleAdmin, user.Role)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
