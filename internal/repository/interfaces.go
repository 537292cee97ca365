package repository

import (
	"pc-builder-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ComponentRepositoryInterface defines the interface for catalog repository operations
type ComponentRepositoryInterface interface {
	Create(component *models.Component) error
	GetByID(id uint) (*models.Component, error)
	GetByIDs(ids []uint) ([]models.Component, error)
	ListByCategory(category models.Category, manufacturer, search string) ([]models.Component, error)
	Update(component *models.Component) error
	UpdateWithRolePurge(component *models.Component, purgeRole models.Category) error
	DeleteWithTriples(id uint) error
	CountBuildReferences(id uint) (int64, error)
	CountByIDAndCategory(ids []uint, category models.Category) (int64, error)
}

// CompatibilityRepositoryInterface defines the interface for ledger repository operations
type CompatibilityRepositoryInterface interface {
	QueryCompatible(category models.Category, sel Selection) ([]models.Component, error)
	Replace(componentID uint, role models.Category, triples []models.CompatibilityTriple) error
	Purge(componentID uint, role models.Category) error
	GetByRole(componentID uint, role models.Category) ([]models.CompatibilityTriple, error)
}

// BuildRepositoryInterface defines the interface for build repository operations
type BuildRepositoryInterface interface {
	CreateWithComponents(build *models.Build, components []models.BuildComponent) error
	GetByID(id uint) (*models.Build, error)
	UpdateWithComponents(build *models.Build, components []models.BuildComponent) error
	DeleteCascade(id uint) error
	NameExists(name string, excludeID *uint) (bool, error)
	GetCollidingNames(base string) ([]string, error)
	ListPublic(limit, offset int) ([]models.Build, int64, error)
	ListByUser(userID uint) ([]models.Build, error)
}

// BuildLikeRepositoryInterface defines the interface for like repository operations
type BuildLikeRepositoryInterface interface {
	Get(buildID, userID uint) (*models.BuildLike, error)
	Create(like *models.BuildLike) error
	Delete(buildID, userID uint) error
	CountForBuild(buildID uint) (int64, error)
	CountByBuildIDs(buildIDs []uint) (map[uint]int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
}
