package handlers

import (
	"net/http"
	"strconv"

	"pc-builder-backend/internal/repository"
	"pc-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentHandler handles HTTP requests for the component catalog and the
// compatibility ledger.
type ComponentHandler struct {
	componentService     service.ComponentServiceInterface
	compatibilityService service.CompatibilityServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService service.ComponentServiceInterface, compatibilityService service.CompatibilityServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		componentService:     componentService,
		compatibilityService: compatibilityService,
	}
}

// ListComponents handles GET /components
// @Summary List components by category
// @Description List catalog components of a category with optional manufacturer and free-text filters, ordered by name
// @Tags components
// @Produce json
// @Param category query string true "Component category"
// @Param manufacturer query string false "Manufacturer substring filter"
// @Param search query string false "Free-text search over name/model/manufacturer"
// @Success 200 {array} models.Component
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "category parameter is required", Kind: "validation"})
		return
	}

	components, err := h.componentService.ListByCategory(category, c.Query("manufacturer"), c.Query("search"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, components)
}

// QueryCompatible handles GET /components/compatible
// @Summary Query compatible components
// @Description List components of a category compatible with the already-selected CPU/motherboard/RAM. With no selection, all components of the category are returned.
// @Tags compatibility
// @Produce json
// @Param category query string true "Category being filled"
// @Param cpu_id query int false "Selected CPU ID"
// @Param motherboard_id query int false "Selected motherboard ID"
// @Param ram_id query int false "Selected RAM ID"
// @Success 200 {array} models.Component
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /components/compatible [get]
func (h *ComponentHandler) QueryCompatible(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "category parameter is required", Kind: "validation"})
		return
	}

	var sel repository.Selection
	var ok bool
	if sel.CPUID, ok = optionalIDQuery(c, "cpu_id"); !ok {
		return
	}
	if sel.MotherboardID, ok = optionalIDQuery(c, "motherboard_id"); !ok {
		return
	}
	if sel.RAMID, ok = optionalIDQuery(c, "ram_id"); !ok {
		return
	}

	components, err := h.compatibilityService.QueryCompatible(category, sel)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, components)
}

// GetComponent handles GET /components/:id
// @Summary Get a component
// @Tags components
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} models.Component
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	component, err := h.componentService.Get(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, component)
}

// CreateComponent handles POST /components
// @Summary Create a component
// @Tags components
// @Accept json
// @Produce json
// @Param component body service.CreateComponentRequest true "Component to create"
// @Success 201 {object} models.Component
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	component, err := h.componentService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, component)
}

// UpdateComponent handles PUT /components/:id
// @Summary Update a component
// @Description Full replace of a component's mutable fields. Moving a component out of a ledger category purges its old-role triples.
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Param component body service.UpdateComponentRequest true "New field values"
// @Success 200 {object} models.Component
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /components/{id} [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	component, err := h.componentService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, component)
}

// DeleteComponent handles DELETE /components/:id
// @Summary Delete a component
// @Description Deletes a component and its compatibility triples. Fails with 409 while any build references the component.
// @Tags components
// @Produce json
// @Param id path int true "Component ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.componentService.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCompatibility handles GET /components/:id/compatibility
// @Summary List a component's compatibility triples
// @Tags compatibility
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {array} models.CompatibilityTriple
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /components/{id}/compatibility [get]
func (h *ComponentHandler) ListCompatibility(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	triples, err := h.compatibilityService.ListCompatibility(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, triples)
}

// ReplaceCompatibility handles PUT /components/:id/compatibility
// @Summary Replace a component's compatibility assignments
// @Description Atomically replaces all triples for the component with the cross product of the given peer sets. An empty peer set yields zero triples.
// @Tags compatibility
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Param peers body service.ReplaceCompatibilityRequest true "Peer sets for the other two roles"
// @Success 204 "Replaced"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /components/{id}/compatibility [put]
func (h *ComponentHandler) ReplaceCompatibility(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.ReplaceCompatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	if err := h.compatibilityService.ReplaceCompatibility(id, &req); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PurgeCompatibility handles DELETE /components/:id/compatibility
// @Summary Remove all compatibility triples for a component
// @Tags compatibility
// @Produce json
// @Param id path int true "Component ID"
// @Success 204 "Purged"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /components/{id}/compatibility [delete]
func (h *ComponentHandler) PurgeCompatibility(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.compatibilityService.PurgeCompatibility(id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// idParam parses the :id path parameter, writing a 400 on failure
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id", Kind: "validation"})
		return 0, false
	}
	return uint(id), true
}

// optionalIDQuery parses an optional numeric query parameter, writing a 400
// on malformed input.
func optionalIDQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name, Kind: "validation"})
		return nil, false
	}
	id := uint(v)
	return &id, true
}
