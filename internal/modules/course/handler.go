package course

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
	r.GET("/courses", h.List)
	r.GET("/courses/meta", h.Meta)
	r.GET("/courses/:id", h.Get)
	r.POST("/courses", h.Create)
	r.PUT("/courses/:id", h.Update)
}

// RegisterAdminRoutes mounts the destructive endpoints, expected to sit
// behind a role guard.
func (h *Handler) RegisterAdminRoutes(r gin.IRoutes) {
	r.DELETE("/courses/:id", h.Delete)
}

// parseFilters reads the recognized query parameters; anything unknown is
// ignored.
func parseFilters(c *gin.Context) repository.CourseFilters {
	f := repository.CourseFilters{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Status:     c.Query("status"),
		Instructor: c.Query("instructor"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
		Sort:       c.Query("sort"),
		Order:      c.Query("order"),
	}
	if id, err := strconv.ParseInt(c.Query("equipment_id"), 10, 64); err == nil && id > 0 {
		f.EquipmentID = id
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

// List handles GET /api/v1/courses.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	courses, p, err := h.service.List(c.Request.Context(), parseFilters(c), page, h.pageSize(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"courses":    courses,
		"pagination": p,
	})
}

// Get handles GET /api/v1/courses/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid course ID")
		return
	}

	course, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// Create handles POST /api/v1/courses.
func (h *Handler) Create(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	course, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, gin.H{"course": course},
		"Course created successfully.")
}

// Update handles PUT /api/v1/courses/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid course ID")
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	course, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, gin.H{"course": course},
		fmt.Sprintf("Course %q has been updated successfully.", course.Name))
}

// Delete handles DELETE /api/v1/courses/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid course ID")
		return
	}

	course, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, nil,
		fmt.Sprintf("Course %q deleted successfully.", course.Name))
}

// Meta handles GET /api/v1/courses/meta; the form uses it to populate its
// select inputs.
func (h *Handler) Meta(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"categories": domain.CourseCategories,
		"statuses":   domain.CourseStatusLabels,
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
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Course not found.")
	default:
		response.Internal(c, err)
	}
}
