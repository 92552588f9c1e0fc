package equipment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gymadmin/internal/domain"
	"gymadmin/internal/pkg/response"
	"gymadmin/internal/repository"
)

type Handler struct {
	service *Service
	perPage int
}

func NewHandler(service *Service, perPage int) *Handler {
	return &Handler{service: service, perPage: perPage}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/equipment", h.List)
	r.GET("/equipment/meta", h.Meta)
	r.GET("/equipment/:id", h.Get)
	r.POST("/equipment", h.Create)
	r.PUT("/equipment/:id", h.Update)
}

// RegisterAdminRoutes mounts the destructive endpoints, expected to sit
// behind a role guard.
func (h *Handler) RegisterAdminRoutes(r gin.IRoutes) {
	r.DELETE("/equipment/:id", h.Delete)
}

func parseFilters(c *gin.Context) repository.EquipmentFilters {
	f := repository.EquipmentFilters{
		Search:    c.Query("search"),
		Type:      c.Query("type"),
		Condition: c.Query("condition"),
		Brand:     c.Query("brand"),
		Location:  c.Query("location"),
		Sort:      c.Query("sort"),
		Order:     c.Query("order"),
	}
	if v := c.Query("is_active"); v != "" {
		if active, err := strconv.ParseBool(v); err == nil {
			f.IsActive = &active
		}
	}
	if n, err := strconv.Atoi(c.Query("min_quantity")); err == nil && n > 0 {
		f.MinQuantity = n
	}
	if n, err := strconv.Atoi(c.Query("max_quantity")); err == nil && n > 0 {
		f.MaxQuantity = n
	}
	if id, err := strconv.ParseInt(c.Query("course_id"), 10, 64); err == nil && id > 0 {
		f.CourseID = id
	}
	return f
}

// pageSize honors a per_page override within sane bounds.
func (h *Handler) pageSize(c *gin.Context) int {
	if n, err := strconv.Atoi(c.Query("per_page")); err == nil && n >= 1 && n <= 100 {
		return n
	}
	return h.perPage
}

// List handles GET /api/v1/equipment.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	items, p, err := h.service.List(c.Request.Context(), parseFilters(c), page, h.pageSize(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"equipment":  items,
		"pagination": p,
	})
}

// Get handles GET /api/v1/equipment/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid equipment ID")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": item})
}

// Create handles POST /api/v1/equipment.
func (h *Handler) Create(c *gin.Context) {
	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, gin.H{"equipment": item},
		"Equipment created successfully.")
}

// Update handles PUT /api/v1/equipment/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid equipment ID")
		return
	}

	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, gin.H{"equipment": item},
		"Equipment updated successfully.")
}

// Delete handles DELETE /api/v1/equipment/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid equipment ID")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, nil,
		fmt.Sprintf("Equipment %q deleted successfully.", item.Name))
}

// Meta handles GET /api/v1/equipment/meta.
func (h *Handler) Meta(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"types":      domain.EquipmentTypes,
		"conditions": domain.EquipmentConditionLabels,
	})
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationError(c, verr.Fields)
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found.")
	default:
		response.Internal(c, err)
	}
}
