package export

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymadmin/internal/pkg/response"
	"gymadmin/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/export/courses.csv", h.CoursesCSV)
	r.GET("/export/courses.html", h.CoursesReport)
	r.GET("/export/equipment.csv", h.EquipmentCSV)
	r.GET("/export/equipment.html", h.EquipmentReport)
}

func courseFilters(c *gin.Context) repository.CourseFilters {
	return repository.CourseFilters{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Status:     c.Query("status"),
		Instructor: c.Query("instructor"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
	}
}

func equipmentFilters(c *gin.Context) repository.EquipmentFilters {
	f := repository.EquipmentFilters{
		Search:    c.Query("search"),
		Type:      c.Query("type"),
		Condition: c.Query("condition"),
	}
	if v := c.Query("is_active"); v != "" {
		if active, err := strconv.ParseBool(v); err == nil {
			f.IsActive = &active
		}
	}
	return f
}

func (h *Handler) CoursesCSV(c *gin.Context) {
	file, err := h.service.CoursesCSV(c.Request.Context(), courseFilters(c))
	if err != nil {
		response.Internal(c, err)
		return
	}
	serve(c, file, true)
}

func (h *Handler) CoursesReport(c *gin.Context) {
	file, err := h.service.CoursesReport(c.Request.Context(), courseFilters(c))
	if err != nil {
		response.Internal(c, err)
		return
	}
	serve(c, file, false)
}

func (h *Handler) EquipmentCSV(c *gin.Context) {
	file, err := h.service.EquipmentCSV(c.Request.Context(), equipmentFilters(c))
	if err != nil {
		response.Internal(c, err)
		return
	}
	serve(c, file, true)
}

func (h *Handler) EquipmentReport(c *gin.Context) {
	file, err := h.service.EquipmentReport(c.Request.Context(), equipmentFilters(c))
	if err != nil {
		response.Internal(c, err)
		return
	}
	serve(c, file, false)
}

// serve writes the rendered file; CSVs download, reports render inline so the
// print dialog can open.
func serve(c *gin.Context, file *File, attachment bool) {
	if attachment {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
	}
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
