package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
		ok       bool
	}{
		{"exact match", "CPU", CategoryCPU, true},
		{"lowercase", "cpu", CategoryCPU, true},
		{"mixed case", "MotherBoard", CategoryMotherboard, true},
		{"surrounding whitespace", "  RAM  ", CategoryRAM, true},
		{"non-ledger category", "Cooler", CategoryCooler, true},
		{"unknown", "Toaster", "", false},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range AllCategories {
		assert.True(t, c.IsValid(), "category %s should be valid", c)
	}
	assert.False(t, Category("Toaster").IsValid())
}

func TestIsCompatibilityRole(t *testing.T) {
	assert.True(t, CategoryCPU.IsCompatibilityRole())
	assert.True(t, CategoryMotherboard.IsCompatibilityRole())
	assert.True(t, CategoryRAM.IsCompatibilityRole())

	assert.False(t, CategoryGPU.IsCompatibilityRole())
	assert.False(t, CategoryStorage.IsCompatibilityRole())
	assert.False(t, CategoryPSU.IsCompatibilityRole())
	assert.False(t, CategoryCase.IsCompatibilityRole())
	assert.False(t, CategoryCooler.IsCompatibilityRole())
}

func TestRoleColumn(t *testing.T) {
	assert.Equal(t, "cpu_id", RoleColumn(CategoryCPU))
	assert.Equal(t, "motherboard_id", RoleColumn(CategoryMotherboard))
	assert.Equal(t, "ram_id", RoleColumn(CategoryRAM))
}
