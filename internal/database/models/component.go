package models

import "time"

// Component represents one catalog entry: a physical PC part that can be
// selected into a build. SocketType is only meaningful for CPUs and
// motherboards, RAMType only for RAM modules; both are empty otherwise.
type Component struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:200;not null;index" validate:"required,min=1,max=200"`
	Category     Category  `json:"category" gorm:"type:varchar(20);not null;index" validate:"required"`
	Manufacturer string    `json:"manufacturer" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Model        string    `json:"model" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2);not null" validate:"required,gt=0"`
	Stock        int       `json:"stock" gorm:"not null;default:0" validate:"gte=0"`
	SocketType   string    `json:"socket_type,omitempty" gorm:"size:50"`
	RAMType      string    `json:"ram_type,omitempty" gorm:"size:50"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}
