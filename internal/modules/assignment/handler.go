package assignment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

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
	r.GET("/assignments", h.List)
	r.POST("/assignments", h.Link)
	r.DELETE("/assignments", h.Unlink)
}

// pageSize honors a per_page override within sane bounds.
func (h *Handler) pageSize(c *gin.Context) int {
	if n, err := strconv.Atoi(c.Query("per_page")); err == nil && n >= 1 && n <= 100 {
		return n
	}
	return h.perPage
}

// List handles GET /api/v1/assignments.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	f := repository.AssignmentFilters{Search: c.Query("search")}
	if id, err := strconv.ParseInt(c.Query("course_id"), 10, 64); err == nil && id > 0 {
		f.CourseID = id
	}
	if id, err := strconv.ParseInt(c.Query("equipment_id"), 10, 64); err == nil && id > 0 {
		f.EquipmentID = id
	}

	rows, p, err := h.service.List(c.Request.Context(), f, page, h.pageSize(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"assignments": rows,
		"pagination":  p,
	})
}

// Link handles POST /api/v1/assignments. Re-linking an existing pair
// refreshes it in place and reports 200 instead of 201.
func (h *Handler) Link(c *gin.Context) {
	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	var actorID *int64
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(int64); ok {
			actorID = &id
		}
	}

	row, outcome, err := h.service.Link(c.Request.Context(), req, actorID)
	if err != nil {
		handleError(c, err)
		return
	}

	status := http.StatusCreated
	message := "Equipment linked successfully."
	if outcome == repository.LinkUpdated {
		status = http.StatusOK
		message = "Assignment quantity updated."
	}

	response.SuccessWithMessage(c, status, gin.H{"assignment": row}, message)
}

// Unlink handles DELETE /api/v1/assignments?course_id=&equipment_id=.
func (h *Handler) Unlink(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Query("course_id"), 10, 64)
	if err != nil || courseID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid course ID")
		return
	}
	equipmentID, err := strconv.ParseInt(c.Query("equipment_id"), 10, 64)
	if err != nil || equipmentID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid equipment ID")
		return
	}

	if err := h.service.Unlink(c.Request.Context(), courseID, equipmentID); err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, nil,
		"Equipment unlinked from course successfully.")
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
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Assignment not found.")
	default:
		response.Internal(c, err)
	}
}
