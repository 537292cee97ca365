package testutils

import (
	"fmt"
	"sync/atomic"

	"pc-builder-backend/internal/database/models"
)

var seq uint64

func next() uint64 {
	return atomic.AddUint64(&seq, 1)
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test component with default values
func (f *ComponentFactory) Create() *models.Component {
	n := next()
	return &models.Component{
		Name:         fmt.Sprintf("Test Component %d", n),
		Category:     models.CategoryCPU,
		Manufacturer: "TestCorp",
		Model:        fmt.Sprintf("TC-%d", n),
		Price:        199.99,
		Stock:        10,
		SocketType:   "AM5",
	}
}

// CPU creates a test CPU with the given socket
func (f *ComponentFactory) CPU(socket string) *models.Component {
	c := f.Create()
	c.Category = models.CategoryCPU
	c.Name = fmt.Sprintf("Test CPU %d", next())
	c.SocketType = socket
	c.RAMType = ""
	return c
}

// Motherboard creates a test motherboard with the given socket
func (f *ComponentFactory) Motherboard(socket string) *models.Component {
	c := f.Create()
	c.Category = models.CategoryMotherboard
	c.Name = fmt.Sprintf("Test Motherboard %d", next())
	c.SocketType = socket
	c.RAMType = ""
	return c
}

// RAM creates a test RAM module of the given type
func (f *ComponentFactory) RAM(ramType string) *models.Component {
	c := f.Create()
	c.Category = models.CategoryRAM
	c.Name = fmt.Sprintf("Test RAM %d", next())
	c.SocketType = ""
	c.RAMType = ramType
	return c
}

// OfCategory creates a test component of an arbitrary category
func (f *ComponentFactory) OfCategory(category models.Category) *models.Component {
	c := f.Create()
	c.Category = category
	c.Name = fmt.Sprintf("Test %s %d", category, next())
	c.SocketType = ""
	c.RAMType = ""
	return c
}

// WithPrice sets a custom price
func (f *ComponentFactory) WithPrice(category models.Category, price float64) *models.Component {
	c := f.OfCategory(category)
	c.Price = price
	return c
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test user with default values
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		Username: fmt.Sprintf("testuser%d", n),
		Email:    fmt.Sprintf("testuser%d@test.com", n),
		Role:     models.UserRoleUser,
	}
}

// Admin creates a test admin user
func (f *UserFactory) Admin() *models.User {
	u := f.Create()
	u.Role = models.UserRoleAdmin
	return u
}

// BuildFactory provides methods to create test Build data
type BuildFactory struct{}

// NewBuildFactory creates a new BuildFactory
func NewBuildFactory() *BuildFactory {
	return &BuildFactory{}
}

// Create creates a test build owned by the given user
func (f *BuildFactory) Create(userID uint) *models.Build {
	return &models.Build{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Build %d", next()),
		IsPublic:    false,
		IsSubmitted: false,
		TotalPrice:  0,
	}
}

// Public creates a public test build owned by the given user
func (f *BuildFactory) Public(userID uint) *models.Build {
	b := f.Create(userID)
	b.IsPublic = true
	return b
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Component *ComponentFactory
	User      *UserFactory
	Build     *BuildFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Component: NewComponentFactory(),
		User:      NewUserFactory(),
		Build:     NewBuildFactory(),
	}
}
