package models

import "strings"

// Category identifies the slot a component fills in a build.
type Category string

const (
	CategoryCPU         Category = "CPU"
	CategoryMotherboard Category = "Motherboard"
	CategoryRAM         Category = "RAM"
	CategoryGPU         Category = "GPU"
	CategoryStorage     Category = "Storage"
	CategoryPSU         Category = "PSU"
	CategoryCase        Category = "Case"
	CategoryCooler      Category = "Cooler"
)

// AllCategories lists every valid category in display order.
var AllCategories = []Category{
	CategoryCPU,
	CategoryMotherboard,
	CategoryRAM,
	CategoryGPU,
	CategoryStorage,
	CategoryPSU,
	CategoryCase,
	CategoryCooler,
}

// ParseCategory normalizes a raw category string to the closed enumeration.
// Matching is case-insensitive and ignores surrounding whitespace so that
// "cpu", " CPU " and "Cpu" all resolve to CategoryCPU.
func ParseCategory(raw string) (Category, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, c := range AllCategories {
		if strings.EqualFold(trimmed, string(c)) {
			return c, true
		}
	}
	return "", false
}

// IsValid checks if the Category is valid
func (c Category) IsValid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

// IsCompatibilityRole reports whether components of this category participate
// in the compatibility ledger (only CPU, Motherboard and RAM do).
func (c Category) IsCompatibilityRole() bool {
	switch c {
	case CategoryCPU, CategoryMotherboard, CategoryRAM:
		return true
	}
	return false
}
