package service_test

import (
	"testing"

	"pc-builder-backend/internal/database/models"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/mocks"
	"pc-builder-backend/internal/repository"
	"pc-builder-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CompatibilityServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockCompatRepo       *mocks.MockCompatibilityRepositoryInterface
	mockComponentRepo    *mocks.MockComponentRepositoryInterface
	compatibilityService *service.CompatibilityService
}

func (suite *CompatibilityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompatRepo = mocks.NewMockCompatibilityRepositoryInterface(suite.ctrl)
	suite.mockComponentRepo = mocks.NewMockComponentRepositoryInterface(suite.ctrl)
	suite.compatibilityService = service.NewCompatibilityService(suite.mockCompatRepo, suite.mockComponentRepo)
}

func (suite *CompatibilityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func ptr(v uint) *uint { return &v }

func (suite *CompatibilityServiceTestSuite) TestQueryCompatible_UnknownCategory() {
	components, err := suite.compatibilityService.QueryCompatible("Toaster", repository.Selection{})

	assert.Nil(suite.T(), components)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCategory)
}

func (suite *CompatibilityServiceTestSuite) TestQueryCompatible_CaseInsensitiveCategory() {
	suite.mockCompatRepo.EXPECT().
		QueryCompatible(models.CategoryMotherboard, repository.Selection{CPUID: ptr(1)}).
		Return([]models.Component{{ID: 2, Category: models.CategoryMotherboard}}, nil)

	components, err := suite.compatibilityService.QueryCompatible("motherboard", repository.Selection{CPUID: ptr(1)})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), components, 1)
}

func (suite *CompatibilityServiceTestSuite) TestQueryCompatible_SelectionWithOwnRoleRejected() {
	components, err := suite.compatibilityService.QueryCompatible("CPU", repository.Selection{CPUID: ptr(1)})

	assert.Nil(suite.T(), components)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSelectionHasOwnRole)
}

func (suite *CompatibilityServiceTestSuite) TestQueryCompatible_NonLedgerCategoryIgnoresSelection() {
	// GPUs are outside the ledger: the selection is dropped and the whole
	// category comes back unfiltered.
	suite.mockCompatRepo.EXPECT().
		QueryCompatible(models.CategoryGPU, repository.Selection{}).
		Return([]models.Component{{ID: 9, Category: models.CategoryGPU}}, nil)

	components, err := suite.compatibilityService.QueryCompatible("GPU", repository.Selection{CPUID: ptr(1), RAMID: ptr(2)})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), components, 1)
}

func (suite *CompatibilityServiceTestSuite) TestReplaceCompatibility_CrossProductPersisted() {
	cpu := &models.Component{ID: 10, Category: models.CategoryCPU}
	suite.mockComponentRepo.EXPECT().GetByID(uint(10)).Return(cpu, nil)
	suite.mockComponentRepo.EXPECT().CountByIDAndCategory([]uint{1, 2}, models.CategoryMotherboard).Return(int64(2), nil)
	suite.mockComponentRepo.EXPECT().CountByIDAndCategory([]uint{3}, models.CategoryRAM).Return(int64(1), nil)
	suite.mockCompatRepo.EXPECT().
		Replace(uint(10), models.CategoryCPU, gomock.Any()).
		DoAndReturn(func(componentID uint, role models.Category, triples []models.CompatibilityTriple) error {
			assert.Len(suite.T(), triples, 2)
			for _, triple := range triples {
				assert.Equal(suite.T(), uint(10), triple.CPUID)
				assert.Equal(suite.T(), uint(3), triple.RAMID)
			}
			return nil
		})

	err := suite.compatibilityService.ReplaceCompatibility(10, &service.ReplaceCompatibilityRequest{
		MotherboardIDs: []uint{1, 2},
		RAMIDs:         []uint{3},
	})

	assert.NoError(suite.T(), err)
}

func (suite *CompatibilityServiceTestSuite) TestReplaceCompatibility_EmptyPeerSetClearsTriples() {
	ram := &models.Component{ID: 20, Category: models.CategoryRAM}
	suite.mockComponentRepo.EXPECT().GetByID(uint(20)).Return(ram, nil)
	suite.mockComponentRepo.EXPECT().CountByIDAndCategory([]uint{1}, models.CategoryCPU).Return(int64(1), nil)
	suite.mockCompatRepo.EXPECT().
		Replace(uint(20), models.CategoryRAM, gomock.Any()).
		DoAndReturn(func(componentID uint, role models.Category, triples []models.CompatibilityTriple) error {
			// No motherboards: the cross product is empty and the
			// component ends up compatible with nothing.
			assert.Empty(suite.T(), triples)
			return nil
		})

	err := suite.compatibilityService.ReplaceCompatibility(20, &service.ReplaceCompatibilityRequest{
		CPUIDs: []uint{1},
	})

	assert.NoError(suite.T(), err)
}

func (suite *CompatibilityServiceTestSuite) TestReplaceCompatibility_OwnRolePeersRejected() {
	cpu := &models.Component{ID: 10, Category: models.CategoryCPU}
	suite.mockComponentRepo.EXPECT().GetByID(uint(10)).Return(cpu, nil)

	err := suite.compatibilityService.ReplaceCompatibility(10, &service.ReplaceCompatibilityRequest{
		CPUIDs:         []uint{11},
		MotherboardIDs: []uint{1},
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CompatibilityServiceTestSuite) TestReplaceCompatibility_PeerIDsDeduplicated() {
	cpu := &models.Component{ID: 10, Category: models.CategoryCPU}
	suite.mockComponentRepo.EXPECT().GetByID(uint(10)).Return(cpu, nil)
	// The duplicate motherboard ID collapses before verification and the
	// cross product, so a repeated replace stays idempotent.
	suite.mockComponentRepo.EXPECT().CountByIDAndCategory([]uint{1}, models.CategoryMotherboard).Return(int64(1), nil)
	suite.mockComponentRepo.EXPECT().CountByIDAndCategory([]uint{3}, models.CategoryRAM).Return(int64(1), nil)
	suite.mockCompatRepo.EXPECT().
		Replace(uint(10), models.CategoryCPU, gomock.Any()).
		DoAndReturn(func(componentID uint, role models.Category, triples []models.CompatibilityTriple) error {
			assert.Len(suite.T(), triples, 1)
			return nil
		})

	err := suite.compatibilityService.ReplaceCompatibility(10, &service.ReplaceCompatibilityRequest{
		MotherboardIDs: []uint{1, 1, 1},
		RAMIDs:         []uint{3},
	})

	assert.NoError(suite.T(), err)
}

func (suite *CompatibilityServiceTestSuite) TestReplaceCompatibility_UnknownPeerRejected() {
	cpu := &models.Component{ID: 10, Category: models.CategoryCPU}
	suite.mockComponentRepo.EXPECT().GetByID(uint(10)).Return(cpu, nil)
	// Only one of two motherboard IDs exists with that category.
	suite.mockComponentRepo.EXPECT().CountByIDAndCategory([]uint{1, 2}, models.CategoryMotherboard).Return(int64(1), nil)

	err := suite.compatibilityService.ReplaceCompatibility(10, &service.ReplaceCompatibilityRequest{
		MotherboardIDs: []uint{1, 2},
		RAMIDs:         []uint{3},
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CompatibilityServiceTestSuite) TestReplaceCompatibility_NonLedgerComponentRejected() {
	gpu := &models.Component{ID: 30, Category: models.CategoryGPU}
	suite.mockComponentRepo.EXPECT().GetByID(uint(30)).Return(gpu, nil)

	err := suite.compatibilityService.ReplaceCompatibility(30, &service.ReplaceCompatibilityRequest{})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CompatibilityServiceTestSuite) TestReplaceCompatibility_ComponentNotFound() {
	suite.mockComponentRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.compatibilityService.ReplaceCompatibility(99, &service.ReplaceCompatibilityRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrComponentNotFound)
}

func (suite *CompatibilityServiceTestSuite) TestPurgeCompatibility_Success() {
	mb := &models.Component{ID: 15, Category: models.CategoryMotherboard}
	suite.mockComponentRepo.EXPECT().GetByID(uint(15)).Return(mb, nil)
	suite.mockCompatRepo.EXPECT().Purge(uint(15), models.CategoryMotherboard).Return(nil)

	err := suite.compatibilityService.PurgeCompatibility(15)

	assert.NoError(suite.T(), err)
}

func (suite *CompatibilityServiceTestSuite) TestListCompatibility_Success() {
	cpu := &models.Component{ID: 10, Category: models.CategoryCPU}
	triples := []models.CompatibilityTriple{{CPUID: 10, MotherboardID: 1, RAMID: 3}}
	suite.mockComponentRepo.EXPECT().GetByID(uint(10)).Return(cpu, nil)
	suite.mockCompatRepo.EXPECT().GetByRole(uint(10), models.CategoryCPU).Return(triples, nil)

	got, err := suite.compatibilityService.ListCompatibility(10)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), uint(1), got[0].MotherboardID)
}

func TestCompatibilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompatibilityServiceTestSuite))
}
