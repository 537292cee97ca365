package service

import (
	"pc-builder-backend/internal/database/models"
	"pc-builder-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ComponentServiceInterface defines the interface for catalog operations
type ComponentServiceInterface interface {
	Create(req *CreateComponentRequest) (*models.Component, error)
	Get(id uint) (*models.Component, error)
	Update(id uint, req *UpdateComponentRequest) (*models.Component, error)
	Delete(id uint) error
	ListByCategory(rawCategory, manufacturer, search string) ([]models.Component, error)
}

// CompatibilityServiceInterface defines the interface for ledger operations
type CompatibilityServiceInterface interface {
	QueryCompatible(rawCategory string, sel repository.Selection) ([]models.Component, error)
	ReplaceCompatibility(componentID uint, req *ReplaceCompatibilityRequest) error
	PurgeCompatibility(componentID uint) error
	ListCompatibility(componentID uint) ([]models.CompatibilityTriple, error)
}

// BuildServiceInterface defines the interface for build operations
type BuildServiceInterface interface {
	Create(userID uint, req *CreateBuildRequest) (*models.Build, error)
	Get(buildID, callerID uint, isAdmin bool) (*BuildView, error)
	Update(buildID, callerID uint, isAdmin bool, req *UpdateBuildRequest) (*models.Build, error)
	Delete(buildID, callerID uint, isAdmin bool) error
	Duplicate(buildID, callerID uint) (*models.Build, error)
	ToggleLike(buildID, userID uint) (*LikeResult, error)
	ListPublic(limit, offset int) ([]BuildView, int64, error)
	ListByUser(userID uint) ([]models.Build, error)
}

// UserServiceInterface defines the interface for user operations
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*models.User, error)
	Get(id uint) (*models.User, error)
	List(limit, offset int) ([]models.User, int64, error)
	Update(id uint, req *UpdateUserRequest) (*models.User, error)
}
