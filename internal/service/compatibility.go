package service

import (
	"errors"
	"fmt"

	"pc-builder-backend/internal/database/models"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/repository"

	"gorm.io/gorm"
)

// CompatibilityService handles business logic for the compatibility ledger:
// the set of permitted (CPU, Motherboard, RAM) triples.
type CompatibilityService struct {
	repo          repository.CompatibilityRepositoryInterface
	componentRepo repository.ComponentRepositoryInterface
}

// NewCompatibilityService creates a new compatibility service
func NewCompatibilityService(repo repository.CompatibilityRepositoryInterface, componentRepo repository.ComponentRepositoryInterface) *CompatibilityService {
	return &CompatibilityService{
		repo:          repo,
		componentRepo: componentRepo,
	}
}

// ReplaceCompatibilityRequest carries the peer sets for a ledger replace.
// The slice for the component's own role must be empty; the other two slices
// form a cross product of intended compatible peers.
type ReplaceCompatibilityRequest struct {
	CPUIDs         []uint `json:"cpu_ids"`
	MotherboardIDs []uint `json:"motherboard_ids"`
	RAMIDs         []uint `json:"ram_ids"`
}

// QueryCompatible returns components of rawCategory compatible with the
// already-selected IDs. The selection must not contain the queried category's
// own role. Categories outside the ledger ignore the selection entirely.
func (s *CompatibilityService) QueryCompatible(rawCategory string, sel repository.Selection) ([]models.Component, error) {
	category, ok := models.ParseCategory(rawCategory)
	if !ok {
		return nil, apperrors.ErrInvalidCategory
	}

	if !category.IsCompatibilityRole() {
		sel = repository.Selection{}
	} else if selectionIncludesRole(category, sel) {
		return nil, apperrors.ErrSelectionHasOwnRole
	}

	components, err := s.repo.QueryCompatible(category, sel)
	if err != nil {
		return nil, fmt.Errorf("failed to query compatible components: %w", err)
	}
	return components, nil
}

// ReplaceCompatibility atomically replaces all triples for the component with
// the cross product of the given peer sets. An empty peer set on either side
// yields zero triples: the component becomes compatible with nothing, never
// with everything. Calling twice with the same sets leaves the same triples.
func (s *CompatibilityService) ReplaceCompatibility(componentID uint, req *ReplaceCompatibilityRequest) error {
	component, err := s.getLedgerComponent(componentID)
	if err != nil {
		return err
	}

	var peersA, peersB []uint
	var roleA, roleB models.Category
	switch component.Category {
	case models.CategoryCPU:
		if len(req.CPUIDs) > 0 {
			return apperrors.NewValidationError("cpu_ids", "peer sets must not include the component's own role")
		}
		peersA, roleA = req.MotherboardIDs, models.CategoryMotherboard
		peersB, roleB = req.RAMIDs, models.CategoryRAM
	case models.CategoryMotherboard:
		if len(req.MotherboardIDs) > 0 {
			return apperrors.NewValidationError("motherboard_ids", "peer sets must not include the component's own role")
		}
		peersA, roleA = req.CPUIDs, models.CategoryCPU
		peersB, roleB = req.RAMIDs, models.CategoryRAM
	case models.CategoryRAM:
		if len(req.RAMIDs) > 0 {
			return apperrors.NewValidationError("ram_ids", "peer sets must not include the component's own role")
		}
		peersA, roleA = req.CPUIDs, models.CategoryCPU
		peersB, roleB = req.MotherboardIDs, models.CategoryMotherboard
	}

	peersA = dedupeIDs(peersA)
	peersB = dedupeIDs(peersB)
	if err := s.verifyPeers(peersA, roleA); err != nil {
		return err
	}
	if err := s.verifyPeers(peersB, roleB); err != nil {
		return err
	}

	triples := crossProduct(component.ID, component.Category, peersA, roleA, peersB)
	if err := s.repo.Replace(component.ID, component.Category, triples); err != nil {
		return fmt.Errorf("failed to replace compatibility triples: %w", err)
	}
	return nil
}

// PurgeCompatibility deletes all triples referencing the component in its role
func (s *CompatibilityService) PurgeCompatibility(componentID uint) error {
	component, err := s.getLedgerComponent(componentID)
	if err != nil {
		return err
	}
	if err := s.repo.Purge(component.ID, component.Category); err != nil {
		return fmt.Errorf("failed to purge compatibility triples: %w", err)
	}
	return nil
}

// ListCompatibility returns the current triples for a component in its role
func (s *CompatibilityService) ListCompatibility(componentID uint) ([]models.CompatibilityTriple, error) {
	component, err := s.getLedgerComponent(componentID)
	if err != nil {
		return nil, err
	}
	triples, err := s.repo.GetByRole(component.ID, component.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to list compatibility triples: %w", err)
	}
	return triples, nil
}

func (s *CompatibilityService) getLedgerComponent(componentID uint) (*models.Component, error) {
	component, err := s.componentRepo.GetByID(componentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}
	if !component.Category.IsCompatibilityRole() {
		return nil, apperrors.NewValidationError("category", "component does not participate in the compatibility ledger")
	}
	return component, nil
}

// verifyPeers ensures every peer ID exists with the expected category
func (s *CompatibilityService) verifyPeers(ids []uint, role models.Category) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := s.componentRepo.CountByIDAndCategory(ids, role)
	if err != nil {
		return fmt.Errorf("failed to verify peer components: %w", err)
	}
	if count != int64(len(ids)) {
		return apperrors.NewValidationError("peers", fmt.Sprintf("one or more %s peer IDs do not exist with that category", role))
	}
	return nil
}

func selectionIncludesRole(category models.Category, sel repository.Selection) bool {
	switch category {
	case models.CategoryCPU:
		return sel.CPUID != nil
	case models.CategoryMotherboard:
		return sel.MotherboardID != nil
	case models.CategoryRAM:
		return sel.RAMID != nil
	}
	return false
}

func crossProduct(componentID uint, role models.Category, peersA []uint, roleA models.Category, peersB []uint) []models.CompatibilityTriple {
	triples := make([]models.CompatibilityTriple, 0, len(peersA)*len(peersB))
	for _, a := range peersA {
		for _, b := range peersB {
			var t models.CompatibilityTriple
			assignRole(&t, role, componentID)
			assignRole(&t, roleA, a)
			assignRole(&t, otherRole(role, roleA), b)
			triples = append(triples, t)
		}
	}
	return triples
}

func assignRole(t *models.CompatibilityTriple, role models.Category, id uint) {
	switch role {
	case models.CategoryCPU:
		t.CPUID = id
	case models.CategoryMotherboard:
		t.MotherboardID = id
	case models.CategoryRAM:
		t.RAMID = id
	}
}

func otherRole(a, b models.Category) models.Category {
	for _, c := range []models.Category{models.CategoryCPU, models.CategoryMotherboard, models.CategoryRAM} {
		if c != a && c != b {
			return c
		}
	}
	return ""
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
