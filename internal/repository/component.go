package repository

import (
	"pc-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// ComponentRepository handles database operations for catalog components
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create creates a new component
func (r *ComponentRepository) Create(component *models.Component) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a component by ID
func (r *ComponentRepository) GetByID(id uint) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByIDs retrieves all components matching the given IDs
func (r *ComponentRepository) GetByIDs(ids []uint) ([]models.Component, error) {
	var components []models.Component
	if len(ids) == 0 {
		return components, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// ListByCategory retrieves components of a category ordered by name, with an
// optional manufacturer substring filter and a free-text search over
// name/model/manufacturer.
func (r *ComponentRepository) ListByCategory(category models.Category, manufacturer, search string) ([]models.Component, error) {
	query := r.db.Where("category = ?", category)
	if manufacturer != "" {
		query = query.Where("manufacturer LIKE ?", "%"+manufacturer+"%")
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("(name LIKE ? OR model LIKE ? OR manufacturer LIKE ?)", pattern, pattern, pattern)
	}

	var components []models.Component
	err := query.Order("name").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// Update updates a component
func (r *ComponentRepository) Update(component *models.Component) error {
	return r.db.Save(component).Error
}

// DeleteWithTriples removes the component and every compatibility triple that
// references it in any role, atomically. Callers must have already verified
// the component is not referenced by any build.
func (r *ComponentRepository) DeleteWithTriples(id uint) error {
	return inTransaction(r.db, func(tx *gorm.DB) error {
		if err := tx.Where("cpu_id = ? OR motherboard_id = ? OR ram_id = ?", id, id, id).
			Delete(&models.CompatibilityTriple{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Component{}, "id = ?", id).Error
	})
}

// UpdateWithRolePurge saves the component and deletes every triple that
// referenced it in its previous ledger role, atomically. Used when an edit
// moves a component out of a ledger category: the old-role triples must not
// survive the category change.
func (r *ComponentRepository) UpdateWithRolePurge(component *models.Component, purgeRole models.Category) error {
	return inTransaction(r.db, func(tx *gorm.DB) error {
		if err := tx.Save(component).Error; err != nil {
			return err
		}
		return tx.Where(models.RoleColumn(purgeRole)+" = ?", component.ID).
			Delete(&models.CompatibilityTriple{}).Error
	})
}

// CountBuildReferences counts build_component rows referencing the component
func (r *ComponentRepository) CountBuildReferences(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.BuildComponent{}).Where("component_id = ?", id).Count(&count).Error
	return count, err
}

// CountByIDAndCategory counts how many of the given IDs exist with the given
// category; used to validate peer sets before a ledger replace.
func (r *ComponentRepository) CountByIDAndCategory(ids []uint, category models.Category) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Component{}).
		Where("id IN ? AND category = ?", ids, category).
		Count(&count).Error
	return count, err
}
