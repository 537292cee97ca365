package repository

import (
	"pc-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// BuildRepository handles database operations for builds and their rows
type BuildRepository struct {
	db *gorm.DB
}

// NewBuildRepository creates a new build repository
func NewBuildRepository(db *gorm.DB) *BuildRepository {
	return &BuildRepository{db: db}
}

// CreateWithComponents writes the build row and one build_component row per
// selection in a single transaction.
func (r *BuildRepository) CreateWithComponents(build *models.Build, components []models.BuildComponent) error {
	return inTransaction(r.db, func(tx *gorm.DB) error {
		if err := tx.Create(build).Error; err != nil {
			return err
		}
		for i := range components {
			components[i].BuildID = build.ID
		}
		if len(components) == 0 {
			return nil
		}
		return tx.Create(&components).Error
	})
}

// GetByID retrieves a build with its component rows and their catalog entries
func (r *BuildRepository) GetByID(id uint) (*models.Build, error) {
	var build models.Build
	err := r.db.Preload("Components").Preload("Components.Component").First(&build, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &build, nil
}

// UpdateWithComponents saves the build row and replaces its component rows
// wholesale (delete all, insert new set) in a single transaction. Partial
// patches of the row set are never performed.
func (r *BuildRepository) UpdateWithComponents(build *models.Build, components []models.BuildComponent) error {
	return inTransaction(r.db, func(tx *gorm.DB) error {
		if err := tx.Omit("Components", "Likes", "User").Save(build).Error; err != nil {
			return err
		}
		if err := tx.Where("build_id = ?", build.ID).Delete(&models.BuildComponent{}).Error; err != nil {
			return err
		}
		for i := range components {
			components[i].ID = 0
			components[i].BuildID = build.ID
		}
		if len(components) == 0 {
			return nil
		}
		return tx.Create(&components).Error
	})
}

// DeleteCascade removes the build together with its component rows and likes
// in one transaction.
func (r *BuildRepository) DeleteCascade(id uint) error {
	return inTransaction(r.db, func(tx *gorm.DB) error {
		if err := tx.Where("build_id = ?", id).Delete(&models.BuildComponent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("build_id = ?", id).Delete(&models.BuildLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Build{}, "id = ?", id).Error
	})
}

// NameExists reports whether any build uses the given name. Name uniqueness
// is global, not per user. excludeID skips the build being renamed.
func (r *BuildRepository) NameExists(name string, excludeID *uint) (bool, error) {
	query := r.db.Model(&models.Build{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// GetCollidingNames returns in one query every build name that could collide
// with the copy-name sequence for base: the base itself plus every
// "<base> Copy..." variant. The caller computes the first free name
// in-process instead of probing the store per candidate.
func (r *BuildRepository) GetCollidingNames(base string) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Build{}).
		Where("name = ? OR name LIKE ?", base, base+" Copy%").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ListPublic retrieves all public builds with their rows, newest first
func (r *BuildRepository) ListPublic(limit, offset int) ([]models.Build, int64, error) {
	var builds []models.Build
	var total int64

	query := r.db.Model(&models.Build{}).Where("is_public = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("is_public = ?", true).
		Preload("Components").Preload("Components.Component").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&builds).Error
	if err != nil {
		return nil, 0, err
	}
	return builds, total, nil
}

// ListByUser retrieves all builds owned by the user, newest first
func (r *BuildRepository) ListByUser(userID uint) ([]models.Build, error) {
	var builds []models.Build
	err := r.db.Where("user_id = ?", userID).
		Preload("Components").Preload("Components.Component").
		Order("created_at DESC").
		Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}
