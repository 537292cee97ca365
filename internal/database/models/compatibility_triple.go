package models

// CompatibilityTriple records one permitted (CPU, Motherboard, RAM)
// combination. The composite unique index rejects duplicate triples at the
// store level; replace operations are additionally idempotent in-process.
type CompatibilityTriple struct {
	ID            uint `json:"id" gorm:"primaryKey"`
	CPUID         uint `json:"cpu_id" gorm:"column:cpu_id;not null;uniqueIndex:idx_compat_triple,priority:1;index"`
	MotherboardID uint `json:"motherboard_id" gorm:"not null;uniqueIndex:idx_compat_triple,priority:2;index"`
	RAMID         uint `json:"ram_id" gorm:"column:ram_id;not null;uniqueIndex:idx_compat_triple,priority:3;index"`

	// Relationships
	CPU         Component `json:"cpu,omitempty" gorm:"foreignKey:CPUID"`
	Motherboard Component `json:"motherboard,omitempty" gorm:"foreignKey:MotherboardID"`
	RAM         Component `json:"ram,omitempty" gorm:"foreignKey:RAMID"`
}

// TableName returns the table name for CompatibilityTriple
func (CompatibilityTriple) TableName() string {
	return "compatibility_triples"
}

// RoleColumn maps a ledger category to the column that category occupies in
// the triple table. Callers must only pass compatibility-role categories.
func RoleColumn(category Category) string {
	switch category {
	case CategoryCPU:
		return "cpu_id"
	case CategoryMotherboard:
		return "motherboard_id"
	case CategoryRAM:
		return "ram_id"
	}
	return ""
}
