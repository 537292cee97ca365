//go:build integration

package repository

import (
	"testing"

	"pc-builder-backend/internal/database/models"
	"pc-builder-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests the basic round trip
func (suite *UserRepositoryTestSuite) TestCreateAndGetByID() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))
	suite.NotZero(user.ID)

	retrieved, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.Equal(user.Username, retrieved.Username)
	suite.Equal(models.UserRoleUser, retrieved.Role)
}

// TestGetByUsername tests lookup by the unique username
func (suite *UserRepositoryTestSuite) TestGetByUsername() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByUsername(user.Username)

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
}

// TestDuplicateUsernameRejected tests the unique index on username
func (suite *UserRepositoryTestSuite) TestDuplicateUsernameRejected() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	dup := suite.factories.User.Create()
	dup.Username = user.Username
	err := suite.repo.Create(dup)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetAll tests listing with pagination
func (suite *UserRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.User.Create()))
	}

	users, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(users, 2)
}

// TestUpdate tests changing mutable fields
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	user.Role = models.UserRoleAdmin
	suite.NoError(suite.repo.Update(user))

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(models.UserRoleAdmin, retrieved.Role)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
