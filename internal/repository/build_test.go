//go:build integration

package repository

import (
	"testing"

	"pc-builder-backend/internal/database/models"
	"pc-builder-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BuildRepositoryTestSuite tests the BuildRepository
type BuildRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BuildRepository
	factories     *testutils.FactorySet
	owner         *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *BuildRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBuildRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BuildRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a build owner
func (suite *BuildRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.owner = suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.owner).Error)
}

// TearDownTest runs after each test
func (suite *BuildRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *BuildRepositoryTestSuite) createComponent() *models.Component {
	c := suite.factories.Component.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(c).Error)
	return c
}

func (suite *BuildRepositoryTestSuite) createBuild(name string, isPublic bool) *models.Build {
	b := suite.factories.Build.Create(suite.owner.ID)
	b.Name = name
	b.IsPublic = isPublic
	suite.NoError(suite.baseTestSuite.DB.Create(b).Error)
	return b
}

// TestCreateWithComponents tests writing a build and its rows together
func (suite *BuildRepositoryTestSuite) TestCreateWithComponents() {
	c1 := suite.createComponent()
	c2 := suite.createComponent()

	build := suite.factories.Build.Create(suite.owner.ID)
	rows := []models.BuildComponent{
		{ComponentID: c1.ID, Quantity: 1},
		{ComponentID: c2.ID, Quantity: 2},
	}
	suite.NoError(suite.repo.CreateWithComponents(build, rows))
	suite.NotZero(build.ID)

	retrieved, err := suite.repo.GetByID(build.ID)
	suite.NoError(err)
	suite.Len(retrieved.Components, 2)
	suite.Equal(build.Name, retrieved.Name)
	// Preloaded catalog entries come along with the rows
	suite.NotZero(retrieved.Components[0].Component.ID)
}

// TestGetByIDNotFound tests retrieving a non-existent build
func (suite *BuildRepositoryTestSuite) TestGetByIDNotFound() {
	build, err := suite.repo.GetByID(999999)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(build)
}

// TestDuplicateNameRejectedByUniqueIndex tests the global name constraint
func (suite *BuildRepositoryTestSuite) TestDuplicateNameRejectedByUniqueIndex() {
	suite.createBuild("Gaming PC", false)

	// A second owner does not help: uniqueness is global
	other := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)

	dup := suite.factories.Build.Create(other.ID)
	dup.Name = "Gaming PC"
	err := suite.repo.CreateWithComponents(dup, nil)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestUpdateWithComponentsReplacesRowsWholesale tests the delete-all-then-insert path
func (suite *BuildRepositoryTestSuite) TestUpdateWithComponentsReplacesRowsWholesale() {
	c1 := suite.createComponent()
	c2 := suite.createComponent()
	c3 := suite.createComponent()

	build := suite.factories.Build.Create(suite.owner.ID)
	suite.NoError(suite.repo.CreateWithComponents(build, []models.BuildComponent{
		{ComponentID: c1.ID, Quantity: 1},
		{ComponentID: c2.ID, Quantity: 1},
	}))

	build.TotalPrice = 123.45
	suite.NoError(suite.repo.UpdateWithComponents(build, []models.BuildComponent{
		{ComponentID: c3.ID, Quantity: 4},
	}))

	retrieved, err := suite.repo.GetByID(build.ID)
	suite.NoError(err)
	suite.Equal(123.45, retrieved.TotalPrice)
	suite.Len(retrieved.Components, 1)
	suite.Equal(c3.ID, retrieved.Components[0].ComponentID)
	suite.Equal(4, retrieved.Components[0].Quantity)
}

// TestDeleteCascade tests that rows and likes disappear with the build
func (suite *BuildRepositoryTestSuite) TestDeleteCascade() {
	c := suite.createComponent()
	liker := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(liker).Error)

	build := suite.factories.Build.Public(suite.owner.ID)
	suite.NoError(suite.repo.CreateWithComponents(build, []models.BuildComponent{
		{ComponentID: c.ID, Quantity: 1},
	}))
	suite.NoError(suite.baseTestSuite.DB.Create(&models.BuildLike{BuildID: build.ID, UserID: liker.ID}).Error)

	suite.NoError(suite.repo.DeleteCascade(build.ID))

	_, err := suite.repo.GetByID(build.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var rowCount, likeCount int64
	suite.baseTestSuite.DB.Model(&models.BuildComponent{}).Where("build_id = ?", build.ID).Count(&rowCount)
	suite.baseTestSuite.DB.Model(&models.BuildLike{}).Where("build_id = ?", build.ID).Count(&likeCount)
	suite.Equal(int64(0), rowCount)
	suite.Equal(int64(0), likeCount)
}

// TestNameExists tests the global name check with and without exclusion
func (suite *BuildRepositoryTestSuite) TestNameExists() {
	build := suite.createBuild("Gaming PC", false)

	exists, err := suite.repo.NameExists("Gaming PC", nil)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.NameExists("Office PC", nil)
	suite.NoError(err)
	suite.False(exists)

	// The build being renamed does not collide with itself
	exists, err = suite.repo.NameExists("Gaming PC", &build.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestGetCollidingNames tests the single-query copy-name lookup
func (suite *BuildRepositoryTestSuite) TestGetCollidingNames() {
	suite.createBuild("Gaming PC", false)
	suite.createBuild("Gaming PC Copy", false)
	suite.createBuild("Gaming PC Copy 2", false)
	suite.createBuild("Office PC", false)

	names, err := suite.repo.GetCollidingNames("Gaming PC")

	suite.NoError(err)
	suite.ElementsMatch([]string{"Gaming PC", "Gaming PC Copy", "Gaming PC Copy 2"}, names)
}

// TestListPublic tests that drafts stay hidden and pagination applies
func (suite *BuildRepositoryTestSuite) TestListPublic() {
	suite.createBuild("Public One", true)
	suite.createBuild("Public Two", true)
	suite.createBuild("Secret Draft", false)

	builds, total, err := suite.repo.ListPublic(10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(builds, 2)
	for _, b := range builds {
		suite.True(b.IsPublic)
	}

	// Pagination
	builds, total, err = suite.repo.ListPublic(1, 1)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(builds, 1)
}

// TestListByUser tests that the owner sees drafts too, and only their own builds
func (suite *BuildRepositoryTestSuite) TestListByUser() {
	suite.createBuild("Mine Public", true)
	suite.createBuild("Mine Draft", false)

	other := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)
	theirs := suite.factories.Build.Public(other.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(theirs).Error)

	builds, err := suite.repo.ListByUser(suite.owner.ID)

	suite.NoError(err)
	suite.Len(builds, 2)
	for _, b := range builds {
		suite.Equal(suite.owner.ID, b.UserID)
	}
}

// Run the test suite
func TestBuildRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BuildRepositoryTestSuite))
}
