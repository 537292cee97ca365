package models

import "time"

// Build is a user-owned, named set of component selections. Name is unique
// across ALL builds, not per user. TotalPrice is derived from catalog prices
// at write time and persisted redundantly.
type Build struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:200;uniqueIndex;not null" validate:"required,min=1,max=200"`
	IsPublic    bool      `json:"is_public" gorm:"not null;default:false"`
	IsSubmitted bool      `json:"is_submitted" gorm:"not null;default:false"`
	TotalPrice  float64   `json:"total_price" gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	User       User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Components []BuildComponent `json:"components,omitempty" gorm:"foreignKey:BuildID;constraint:OnDelete:CASCADE"`
	Likes      []BuildLike      `json:"likes,omitempty" gorm:"foreignKey:BuildID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Build
func (Build) TableName() string {
	return "builds"
}

// BuildComponent links a build to one selected component with a quantity.
// Component deletion is restrained while any row references it.
type BuildComponent struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	BuildID     uint `json:"build_id" gorm:"not null;uniqueIndex:idx_build_component;index"`
	ComponentID uint `json:"component_id" gorm:"not null;uniqueIndex:idx_build_component;index"`
	Quantity    int  `json:"quantity" gorm:"not null;default:1" validate:"gte=1"`

	// Relationships
	Component Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for BuildComponent
func (BuildComponent) TableName() string {
	return "build_components"
}

// BuildLike is one user's like on one build. The composite unique index makes
// the concurrent double-insert race benign: the second writer hits a
// duplicate-key error and is treated as having liked successfully.
type BuildLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BuildID   uint      `json:"build_id" gorm:"not null;uniqueIndex:idx_build_like;index"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_build_like;index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for BuildLike
func (BuildLike) TableName() string {
	return "build_likes"
}
