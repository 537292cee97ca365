package service

import (
	"errors"
	"fmt"

	"pc-builder-backend/internal/database/models"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ComponentService handles business logic for the component catalog
type ComponentService struct {
	repo      repository.ComponentRepositoryInterface
	validator *validator.Validate
}

// NewComponentService creates a new component service
func NewComponentService(repo repository.ComponentRepositoryInterface, validator *validator.Validate) *ComponentService {
	return &ComponentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateComponentRequest represents the input schema for creating a component
type CreateComponentRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Category     string  `json:"category" validate:"required"`
	Manufacturer string  `json:"manufacturer" validate:"required,min=1,max=100"`
	Model        string  `json:"model" validate:"required,min=1,max=200"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
	SocketType   string  `json:"socket_type" validate:"max=50"`
	RAMType      string  `json:"ram_type" validate:"max=50"`
}

// UpdateComponentRequest represents the input schema for updating a component.
// All mutable fields are replaced; the ID never changes.
type UpdateComponentRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Category     string  `json:"category" validate:"required"`
	Manufacturer string  `json:"manufacturer" validate:"required,min=1,max=100"`
	Model        string  `json:"model" validate:"required,min=1,max=200"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
	SocketType   string  `json:"socket_type" validate:"max=50"`
	RAMType      string  `json:"ram_type" validate:"max=50"`
}

// Create validates the request and adds a component to the catalog
func (s *ComponentService) Create(req *CreateComponentRequest) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, apperrors.ErrInvalidCategory
	}

	component := &models.Component{
		Name:         req.Name,
		Category:     category,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Price:        req.Price,
		Stock:        req.Stock,
		SocketType:   req.SocketType,
		RAMType:      req.RAMType,
	}
	if err := s.repo.Create(component); err != nil {
		return nil, fmt.Errorf("failed to create component: %w", err)
	}
	return component, nil
}

// Get retrieves a component by ID
func (s *ComponentService) Get(id uint) (*models.Component, error) {
	component, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}
	return component, nil
}

// Update replaces the mutable fields of a component. Compatibility triples
// are untouched unless the edit moves the component out of a ledger category,
// in which case its old-role triples are purged in the same transaction; new
// triples are always supplied through a separate ledger replace.
func (s *ComponentService) Update(id uint, req *UpdateComponentRequest) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, apperrors.ErrInvalidCategory
	}

	component, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}

	previousCategory := component.Category
	component.Name = req.Name
	component.Category = category
	component.Manufacturer = req.Manufacturer
	component.Model = req.Model
	component.Price = req.Price
	component.Stock = req.Stock
	component.SocketType = req.SocketType
	component.RAMType = req.RAMType

	if previousCategory != category && previousCategory.IsCompatibilityRole() {
		err = s.repo.UpdateWithRolePurge(component, previousCategory)
	} else {
		err = s.repo.Update(component)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}
	return component, nil
}

// Delete removes a component from the catalog together with its triples.
// Components referenced by any build row cannot be deleted.
func (s *ComponentService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	refs, err := s.repo.CountBuildReferences(id)
	if err != nil {
		return fmt.Errorf("failed to count build references: %w", err)
	}
	if refs > 0 {
		return apperrors.ErrComponentInUse
	}

	if err := s.repo.DeleteWithTriples(id); err != nil {
		return fmt.Errorf("failed to delete component: %w", err)
	}
	return nil
}

// ListByCategory lists catalog components of a category with optional filters
func (s *ComponentService) ListByCategory(rawCategory, manufacturer, search string) ([]models.Component, error) {
	category, ok := models.ParseCategory(rawCategory)
	if !ok {
		return nil, apperrors.ErrInvalidCategory
	}

	components, err := s.repo.ListByCategory(category, manufacturer, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	return components, nil
}
