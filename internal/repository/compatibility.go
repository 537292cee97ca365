package repository

import (
	"fmt"

	"pc-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// Selection carries the IDs a user has already picked among the three ledger
// roles. A nil field means that role is still unselected.
type Selection struct {
	CPUID         *uint
	MotherboardID *uint
	RAMID         *uint
}

// IsEmpty reports whether no role has been selected
func (s Selection) IsEmpty() bool {
	return s.CPUID == nil && s.MotherboardID == nil && s.RAMID == nil
}

// CompatibilityRepository handles database operations for the ledger of
// (CPU, Motherboard, RAM) triples.
type CompatibilityRepository struct {
	db *gorm.DB
}

// NewCompatibilityRepository creates a new compatibility repository
func NewCompatibilityRepository(db *gorm.DB) *CompatibilityRepository {
	return &CompatibilityRepository{db: db}
}

// QueryCompatible returns components of the given ledger category for which
// at least one triple matches every selected ID. It issues a single query
// regardless of catalog size: the selection is folded into one correlated
// EXISTS subquery. Role columns come from the closed Category enumeration,
// never from user input; all values are bound parameters.
func (r *CompatibilityRepository) QueryCompatible(category models.Category, sel Selection) ([]models.Component, error) {
	query := r.db.Where("category = ?", category)

	if !sel.IsEmpty() {
		sub := fmt.Sprintf("SELECT 1 FROM compatibility_triples ct WHERE ct.%s = components.id", models.RoleColumn(category))
		args := make([]interface{}, 0, 3)
		if sel.CPUID != nil {
			sub += " AND ct.cpu_id = ?"
			args = append(args, *sel.CPUID)
		}
		if sel.MotherboardID != nil {
			sub += " AND ct.motherboard_id = ?"
			args = append(args, *sel.MotherboardID)
		}
		if sel.RAMID != nil {
			sub += " AND ct.ram_id = ?"
			args = append(args, *sel.RAMID)
		}
		query = query.Where("EXISTS ("+sub+")", args...)
	}

	var components []models.Component
	err := query.Order("name").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// Replace atomically removes every triple referencing the component in its
// role and inserts the given set. Either both steps succeed or neither does.
// Duplicate triples within the new set are skipped in-process so a repeated
// replace with identical peer sets is idempotent.
func (r *CompatibilityRepository) Replace(componentID uint, role models.Category, triples []models.CompatibilityTriple) error {
	column := models.RoleColumn(role)
	deduped := dedupeTriples(triples)

	return inTransaction(r.db, func(tx *gorm.DB) error {
		if err := tx.Where(column+" = ?", componentID).Delete(&models.CompatibilityTriple{}).Error; err != nil {
			return err
		}
		if len(deduped) == 0 {
			return nil
		}
		return tx.Create(&deduped).Error
	})
}

// Purge deletes all triples referencing the component in the given role
func (r *CompatibilityRepository) Purge(componentID uint, role models.Category) error {
	return r.db.Where(models.RoleColumn(role)+" = ?", componentID).
		Delete(&models.CompatibilityTriple{}).Error
}

// GetByRole retrieves all triples referencing the component in its role
func (r *CompatibilityRepository) GetByRole(componentID uint, role models.Category) ([]models.CompatibilityTriple, error) {
	var triples []models.CompatibilityTriple
	err := r.db.Where(models.RoleColumn(role)+" = ?", componentID).Find(&triples).Error
	if err != nil {
		return nil, err
	}
	return triples, nil
}

func dedupeTriples(triples []models.CompatibilityTriple) []models.CompatibilityTriple {
	type key struct{ cpu, mb, ram uint }
	seen := make(map[key]struct{}, len(triples))
	out := make([]models.CompatibilityTriple, 0, len(triples))
	for _, t := range triples {
		k := key{t.CPUID, t.MotherboardID, t.RAMID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}
