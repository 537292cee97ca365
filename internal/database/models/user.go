package models

import "time"

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser:
		return true
	}
	return false
}

// User mirrors the subjects handed to us by the identity provider. Credentials
// are never stored here; the JWT middleware is the source of truth for auth.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:100;uniqueIndex;not null" validate:"required,min=1,max=100"`
	Email     string    `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Role      UserRole  `json:"role" gorm:"type:varchar(20);default:'user'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Builds []Build     `json:"builds,omitempty" gorm:"foreignKey:UserID"`
	Likes  []BuildLike `json:"likes,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
