package handlers

import (
	"net/http"
	"strconv"

	"pc-builder-backend/internal/auth"
	"pc-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BuildHandler handles HTTP requests for build operations
type BuildHandler struct {
	buildService service.BuildServiceInterface
}

// NewBuildHandler creates a new build handler
func NewBuildHandler(buildService service.BuildServiceInterface) *BuildHandler {
	return &BuildHandler{buildService: buildService}
}

// ListPublicBuilds handles GET /builds
// @Summary List public builds
// @Tags builds
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /builds [get]
func (h *BuildHandler) ListPublicBuilds(c *gin.Context) {
	limit, offset := pagination(c)
	builds, total, err := h.buildService.ListPublic(limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"builds": builds, "total": total})
}

// ListMyBuilds handles GET /builds/mine
// @Summary List the caller's builds, drafts included
// @Tags builds
// @Produce json
// @Success 200 {array} models.Build
// @Security BearerAuth
// @Router /builds/mine [get]
func (h *BuildHandler) ListMyBuilds(c *gin.Context) {
	callerID, ok := caller(c)
	if !ok {
		return
	}
	builds, err := h.buildService.ListByUser(callerID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, builds)
}

// GetBuild handles GET /builds/:id
// @Summary Get a build
// @Description Returns a build with its component rows and like count. Private builds are visible to their owner only.
// @Tags builds
// @Produce json
// @Param id path int true "Build ID"
// @Success 200 {object} service.BuildView
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /builds/{id} [get]
func (h *BuildHandler) GetBuild(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	callerID, ok := caller(c)
	if !ok {
		return
	}

	view, err := h.buildService.Get(id, callerID, auth.IsAdmin(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateBuild handles POST /builds
// @Summary Create a build
// @Description Creates a named build from component selections. The total price is computed server-side from catalog prices; the build name must be unique across all users.
// @Tags builds
// @Accept json
// @Produce json
// @Param build body service.CreateBuildRequest true "Build to create"
// @Success 201 {object} models.Build
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /builds [post]
func (h *BuildHandler) CreateBuild(c *gin.Context) {
	callerID, ok := caller(c)
	if !ok {
		return
	}

	var req service.CreateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	build, err := h.buildService.Create(callerID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, build)
}

// UpdateBuild handles PUT /builds/:id
// @Summary Update a build
// @Description Owner-only. Replaces the build's fields and its component rows wholesale.
// @Tags builds
// @Accept json
// @Produce json
// @Param id path int true "Build ID"
// @Param build body service.UpdateBuildRequest true "New build state"
// @Success 200 {object} models.Build
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /builds/{id} [put]
func (h *BuildHandler) UpdateBuild(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	callerID, ok := caller(c)
	if !ok {
		return
	}

	var req service.UpdateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	build, err := h.buildService.Update(id, callerID, auth.IsAdmin(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, build)
}

// DeleteBuild handles DELETE /builds/:id
// @Summary Delete a build
// @Description Owner-only. Cascades to the build's component rows and likes.
// @Tags builds
// @Produce json
// @Param id path int true "Build ID"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /builds/{id} [delete]
func (h *BuildHandler) DeleteBuild(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	callerID, ok := caller(c)
	if !ok {
		return
	}

	if err := h.buildService.Delete(id, callerID, auth.IsAdmin(c)); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DuplicateBuild handles POST /builds/:id/duplicate
// @Summary Duplicate a build
// @Description Copies a public or owned build into a new private draft owned by the caller, named "<name> Copy", "<name> Copy 1", ...
// @Tags builds
// @Produce json
// @Param id path int true "Build ID"
// @Success 201 {object} models.Build
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /builds/{id}/duplicate [post]
func (h *BuildHandler) DuplicateBuild(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	callerID, ok := caller(c)
	if !ok {
		return
	}

	build, err := h.buildService.Duplicate(id, callerID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, build)
}

// ToggleLike handles POST /builds/:id/like
// @Summary Toggle a like on a build
// @Description Likes the build if not yet liked by the caller, unlikes otherwise. Owners cannot like their own builds; private builds cannot be liked (403).
// @Tags builds
// @Produce json
// @Param id path int true "Build ID"
// @Success 200 {object} service.LikeResult
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /builds/{id}/like [post]
func (h *BuildHandler) ToggleLike(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	callerID, ok := caller(c)
	if !ok {
		return
	}

	result, err := h.buildService.ToggleLike(id, callerID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// caller extracts the authenticated user id, writing a 401 if absent
func caller(c *gin.Context) (uint, bool) {
	id, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required", Kind: "authentication"})
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = 20
	offset = 0
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
