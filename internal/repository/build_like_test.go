//go:build integration

package repository

import (
	"testing"

	"pc-builder-backend/internal/database/models"
	"pc-builder-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BuildLikeRepositoryTestSuite tests the BuildLikeRepository
type BuildLikeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BuildLikeRepository
	factories     *testutils.FactorySet
	owner         *models.User
	liker         *models.User
	build         *models.Build
}

// SetupSuite runs before all tests in the suite
func (suite *BuildLikeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBuildLikeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BuildLikeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds an owner, a liker and a build
func (suite *BuildLikeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.owner = suite.factories.User.Create()
	suite.liker = suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.owner).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.liker).Error)
	suite.build = suite.factories.Build.Public(suite.owner.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.build).Error)
}

// TearDownTest runs after each test
func (suite *BuildLikeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests the like round trip
func (suite *BuildLikeRepositoryTestSuite) TestCreateAndGet() {
	suite.NoError(suite.repo.Create(&models.BuildLike{BuildID: suite.build.ID, UserID: suite.liker.ID}))

	like, err := suite.repo.Get(suite.build.ID, suite.liker.ID)

	suite.NoError(err)
	suite.Equal(suite.build.ID, like.BuildID)
	suite.Equal(suite.liker.ID, like.UserID)
}

// TestGetNotFound tests the missing-like path
func (suite *BuildLikeRepositoryTestSuite) TestGetNotFound() {
	like, err := suite.repo.Get(suite.build.ID, suite.liker.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(like)
}

// TestDuplicateLikeRejectedByUniqueIndex tests that the (build, user) pair is
// unique at the store level, the backstop behind the toggle race
func (suite *BuildLikeRepositoryTestSuite) TestDuplicateLikeRejectedByUniqueIndex() {
	suite.NoError(suite.repo.Create(&models.BuildLike{BuildID: suite.build.ID, UserID: suite.liker.ID}))

	err := suite.repo.Create(&models.BuildLike{BuildID: suite.build.ID, UserID: suite.liker.ID})

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)

	count, err := suite.repo.CountForBuild(suite.build.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestDelete tests unliking
func (suite *BuildLikeRepositoryTestSuite) TestDelete() {
	suite.NoError(suite.repo.Create(&models.BuildLike{BuildID: suite.build.ID, UserID: suite.liker.ID}))

	suite.NoError(suite.repo.Delete(suite.build.ID, suite.liker.ID))

	count, err := suite.repo.CountForBuild(suite.build.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestCountByBuildIDs tests the grouped count used by the public listing
func (suite *BuildLikeRepositoryTestSuite) TestCountByBuildIDs() {
	second := suite.factories.Build.Public(suite.owner.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(second).Error)
	third := suite.factories.Build.Public(suite.owner.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(third).Error)

	another := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(another).Error)

	suite.NoError(suite.repo.Create(&models.BuildLike{BuildID: suite.build.ID, UserID: suite.liker.ID}))
	suite.NoError(suite.repo.Create(&models.BuildLike{BuildID: suite.build.ID, UserID: another.ID}))
	suite.NoError(suite.repo.Create(&models.BuildLike{BuildID: second.ID, UserID: suite.liker.ID}))

	counts, err := suite.repo.CountByBuildIDs([]uint{suite.build.ID, second.ID, third.ID})

	suite.NoError(err)
	suite.Equal(int64(2), counts[suite.build.ID])
	suite.Equal(int64(1), counts[second.ID])
	// Builds with no likes simply have no entry
	_, present := counts[third.ID]
	suite.False(present)
}

// TestCountByBuildIDsEmptyInput tests the zero-IDs shortcut
func (suite *BuildLikeRepositoryTestSuite) TestCountByBuildIDsEmptyInput() {
	counts, err := suite.repo.CountByBuildIDs(nil)

	suite.NoError(err)
	suite.Empty(counts)
}

// Run the test suite
func TestBuildLikeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BuildLikeRepositoryTestSuite))
}
