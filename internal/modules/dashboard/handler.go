package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymadmin/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/dashboard", h.Snapshot)
}

// Snapshot handles GET /api/v1/dashboard.
func (h *Handler) Snapshot(c *gin.Context) {
	snap, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}

	response.Success(c, http.StatusOK, snap)
}
