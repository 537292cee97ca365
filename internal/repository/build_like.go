package repository

import (
	"pc-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// BuildLikeRepository handles database operations for build likes
type BuildLikeRepository struct {
	db *gorm.DB
}

// NewBuildLikeRepository creates a new build like repository
func NewBuildLikeRepository(db *gorm.DB) *BuildLikeRepository {
	return &BuildLikeRepository{db: db}
}

// Get retrieves the like row for a (build, user) pair
func (r *BuildLikeRepository) Get(buildID, userID uint) (*models.BuildLike, error) {
	var like models.BuildLike
	err := r.db.First(&like, "build_id = ? AND user_id = ?", buildID, userID).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// Create inserts a like row. A duplicate-key failure from a concurrent
// insert surfaces as gorm.ErrDuplicatedKey; callers treat it as success.
func (r *BuildLikeRepository) Create(like *models.BuildLike) error {
	return r.db.Create(like).Error
}

// Delete removes the like row for a (build, user) pair
func (r *BuildLikeRepository) Delete(buildID, userID uint) error {
	return r.db.Where("build_id = ? AND user_id = ?", buildID, userID).
		Delete(&models.BuildLike{}).Error
}

// CountForBuild counts likes on a build
func (r *BuildLikeRepository) CountForBuild(buildID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.BuildLike{}).Where("build_id = ?", buildID).Count(&count).Error
	return count, err
}

// CountByBuildIDs returns like counts for many builds in one query
func (r *BuildLikeRepository) CountByBuildIDs(buildIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(buildIDs))
	if len(buildIDs) == 0 {
		return counts, nil
	}

	type row struct {
		BuildID uint
		Total   int64
	}
	var rows []row
	err := r.db.Model(&models.BuildLike{}).
		Select("build_id, COUNT(*) AS total").
		Where("build_id IN ?", buildIDs).
		Group("build_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.BuildID] = r.Total
	}
	return counts, nil
}
