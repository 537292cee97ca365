package service

import (
	"errors"
	"fmt"
	"math"

	"pc-builder-backend/internal/database/models"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// BuildService handles business logic for build aggregates: creating,
// editing, deleting, duplicating and liking builds.
type BuildService struct {
	repo          repository.BuildRepositoryInterface
	likeRepo      repository.BuildLikeRepositoryInterface
	componentRepo repository.ComponentRepositoryInterface
	validator     *validator.Validate
}

// NewBuildService creates a new build service
func NewBuildService(repo repository.BuildRepositoryInterface, likeRepo repository.BuildLikeRepositoryInterface, componentRepo repository.ComponentRepositoryInterface, validator *validator.Validate) *BuildService {
	return &BuildService{
		repo:          repo,
		likeRepo:      likeRepo,
		componentRepo: componentRepo,
		validator:     validator,
	}
}

// BuildSelection is one chosen component with its quantity
type BuildSelection struct {
	ComponentID uint `json:"component_id" validate:"required"`
	Quantity    int  `json:"quantity" validate:"required,gte=1"`
}

// CreateBuildRequest represents the input schema for creating a build.
// Any client-supplied total price is ignored; the total is always recomputed
// from current catalog prices.
type CreateBuildRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	IsPublic    bool             `json:"is_public"`
	IsSubmitted bool             `json:"is_submitted"`
	Selections  []BuildSelection `json:"selections" validate:"required,min=1,dive"`
}

// UpdateBuildRequest represents the input schema for updating a build.
// The selection set replaces the existing rows wholesale.
type UpdateBuildRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	IsPublic    bool             `json:"is_public"`
	IsSubmitted bool             `json:"is_submitted"`
	Selections  []BuildSelection `json:"selections" validate:"required,min=1,dive"`
}

// BuildView is a build plus its like count
type BuildView struct {
	models.Build
	LikeCount int64 `json:"like_count"`
}

// LikeResult reports the state after a like toggle
type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// Create persists a new build with its component rows in one transaction.
// The name must be unique across all builds, not just the caller's.
func (s *BuildService) Create(userID uint, req *CreateBuildRequest) (*models.Build, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	exists, err := s.repo.NameExists(req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check build name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrBuildNameExists
	}

	rows, total, err := s.resolveSelections(req.Selections)
	if err != nil {
		return nil, err
	}

	build := &models.Build{
		UserID:      userID,
		Name:        req.Name,
		IsPublic:    req.IsPublic,
		IsSubmitted: req.IsSubmitted,
		TotalPrice:  total,
	}
	if err := s.repo.CreateWithComponents(build, rows); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrBuildNameExists
		}
		return nil, fmt.Errorf("failed to create build: %w", err)
	}
	return build, nil
}

// Get retrieves a build; private builds are visible to their owner only
func (s *BuildService) Get(buildID, callerID uint, isAdmin bool) (*BuildView, error) {
	build, err := s.getBuild(buildID)
	if err != nil {
		return nil, err
	}
	if !build.IsPublic && build.UserID != callerID && !isAdmin {
		return nil, apperrors.ErrBuildNotVisible
	}

	count, err := s.likeRepo.CountForBuild(build.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	return &BuildView{Build: *build, LikeCount: count}, nil
}

// Update replaces a build's fields and its component rows wholesale.
// Only the owner (or an admin) may update a build.
func (s *BuildService) Update(buildID, callerID uint, isAdmin bool, req *UpdateBuildRequest) (*models.Build, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	build, err := s.getBuild(buildID)
	if err != nil {
		return nil, err
	}
	if build.UserID != callerID && !isAdmin {
		return nil, apperrors.ErrNotBuildOwner
	}

	if req.Name != build.Name {
		exists, err := s.repo.NameExists(req.Name, &build.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check build name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrBuildNameExists
		}
	}

	rows, total, err := s.resolveSelections(req.Selections)
	if err != nil {
		return nil, err
	}

	build.Name = req.Name
	build.IsPublic = req.IsPublic
	build.IsSubmitted = req.IsSubmitted
	build.TotalPrice = total
	build.Components = nil

	if err := s.repo.UpdateWithComponents(build, rows); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrBuildNameExists
		}
		return nil, fmt.Errorf("failed to update build: %w", err)
	}
	return build, nil
}

// Delete removes a build and cascades to its rows. Owner or admin only.
func (s *BuildService) Delete(buildID, callerID uint, isAdmin bool) error {
	build, err := s.getBuild(buildID)
	if err != nil {
		return err
	}
	if build.UserID != callerID && !isAdmin {
		return apperrors.ErrNotBuildOwner
	}

	if err := s.repo.DeleteCascade(build.ID); err != nil {
		return fmt.Errorf("failed to delete build: %w", err)
	}
	return nil
}

// Duplicate copies a public or owned build into a new private draft owned by
// the caller. The copy's name is the first free entry in the sequence
// "<name> Copy", "<name> Copy 1", "<name> Copy 2", ... computed from a single
// query over the colliding names.
func (s *BuildService) Duplicate(buildID, callerID uint) (*models.Build, error) {
	source, err := s.getBuild(buildID)
	if err != nil {
		return nil, err
	}
	if !source.IsPublic && source.UserID != callerID {
		return nil, apperrors.ErrBuildNotVisible
	}

	taken, err := s.repo.GetCollidingNames(source.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch colliding names: %w", err)
	}
	name := nextCopyName(source.Name, taken)

	selections := make([]BuildSelection, len(source.Components))
	for i, row := range source.Components {
		selections[i] = BuildSelection{ComponentID: row.ComponentID, Quantity: row.Quantity}
	}
	rows, total, err := s.resolveSelections(selections)
	if err != nil {
		return nil, err
	}

	copy := &models.Build{
		UserID:      callerID,
		Name:        name,
		IsPublic:    false,
		IsSubmitted: false,
		TotalPrice:  total,
	}
	if err := s.repo.CreateWithComponents(copy, rows); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrBuildNameExists
		}
		return nil, fmt.Errorf("failed to duplicate build: %w", err)
	}
	return copy, nil
}

// ToggleLike likes a build if the caller has not liked it, unlikes otherwise.
// Owners cannot like their own builds and private builds cannot be liked.
// A duplicate-key failure from a concurrent like is treated as a successful
// like: first writer wins, no error surfaces to the second.
func (s *BuildService) ToggleLike(buildID, userID uint) (*LikeResult, error) {
	build, err := s.getBuild(buildID)
	if err != nil {
		return nil, err
	}
	if build.UserID == userID {
		return nil, apperrors.ErrOwnLikeRejected
	}
	if !build.IsPublic {
		return nil, apperrors.ErrBuildNotLikeable
	}

	liked := false
	_, err = s.likeRepo.Get(build.ID, userID)
	switch {
	case err == nil:
		if err := s.likeRepo.Delete(build.ID, userID); err != nil {
			return nil, fmt.Errorf("failed to remove like: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		createErr := s.likeRepo.Create(&models.BuildLike{BuildID: build.ID, UserID: userID})
		if createErr != nil && !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create like: %w", createErr)
		}
		liked = true
	default:
		return nil, fmt.Errorf("failed to look up like: %w", err)
	}

	count, err := s.likeRepo.CountForBuild(build.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	return &LikeResult{Liked: liked, LikeCount: count}, nil
}

// ListPublic lists public builds with like counts, newest first
func (s *BuildService) ListPublic(limit, offset int) ([]BuildView, int64, error) {
	builds, total, err := s.repo.ListPublic(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list public builds: %w", err)
	}

	ids := make([]uint, len(builds))
	for i, b := range builds {
		ids[i] = b.ID
	}
	counts, err := s.likeRepo.CountByBuildIDs(ids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	views := make([]BuildView, len(builds))
	for i, b := range builds {
		views[i] = BuildView{Build: b, LikeCount: counts[b.ID]}
	}
	return views, total, nil
}

// ListByUser lists the caller's own builds, drafts included
func (s *BuildService) ListByUser(userID uint) ([]models.Build, error) {
	builds, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	return builds, nil
}

func (s *BuildService) getBuild(buildID uint) (*models.Build, error) {
	build, err := s.repo.GetByID(buildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildNotFound
		}
		return nil, fmt.Errorf("failed to get build: %w", err)
	}
	return build, nil
}

// resolveSelections verifies every selected component exists exactly once and
// computes the total from current catalog prices. Client-supplied totals are
// never trusted.
func (s *BuildService) resolveSelections(selections []BuildSelection) ([]models.BuildComponent, float64, error) {
	ids := make([]uint, 0, len(selections))
	seen := make(map[uint]struct{}, len(selections))
	for _, sel := range selections {
		if _, ok := seen[sel.ComponentID]; ok {
			return nil, 0, apperrors.ErrDuplicateComponent
		}
		seen[sel.ComponentID] = struct{}{}
		ids = append(ids, sel.ComponentID)
	}

	components, err := s.componentRepo.GetByIDs(ids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load components: %w", err)
	}
	priceByID := make(map[uint]float64, len(components))
	for _, c := range components {
		priceByID[c.ID] = c.Price
	}

	rows := make([]models.BuildComponent, 0, len(selections))
	total := 0.0
	for _, sel := range selections {
		price, ok := priceByID[sel.ComponentID]
		if !ok {
			return nil, 0, apperrors.ErrComponentNotFound
		}
		total += price * float64(sel.Quantity)
		rows = append(rows, models.BuildComponent{
			ComponentID: sel.ComponentID,
			Quantity:    sel.Quantity,
		})
	}
	// Keep the persisted decimal stable at two places.
	total = math.Round(total*100) / 100
	return rows, total, nil
}

// nextCopyName returns the first name in the copy sequence for base that is
// not already taken. taken holds every existing name that could collide.
func nextCopyName(base string, taken []string) string {
	used := make(map[string]struct{}, len(taken))
	for _, n := range taken {
		used[n] = struct{}{}
	}

	candidate := base + " Copy"
	if _, ok := used[candidate]; !ok {
		return candidate
	}
	for i := 1; ; i++ {
		candidate = fmt.Sprintf("%s Copy %d", base, i)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}
