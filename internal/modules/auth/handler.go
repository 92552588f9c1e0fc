package auth

import (
	"errors"
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

// RegisterPublicRoutes mounts the endpoints reachable without a token.
func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
}

// RegisterProtectedRoutes mounts the endpoints behind the JWT middleware.
func (h *Handler) RegisterProtectedRoutes(r gin.IRoutes) {
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", h.Me)
}

// Register handles POST /api/v1/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, gin.H{"user": Public(user)},
		"Account created successfully. You can now log in.")
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":   Public(result.User),
		"tokens": result.Tokens,
	})
}

// Refresh handles POST /api/v1/auth/refresh.
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tokens": result.Tokens})
}

// Logout handles POST /api/v1/auth/logout. With all=true every session of
// the user is revoked.
func (h *Handler) Logout(c *gin.Context) {
	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if c.Query("all") == "true" {
		if v, ok := c.Get("user_id"); ok {
			if id, ok := v.(int64); ok {
				if err := h.service.LogoutAll(c.Request.Context(), id); err != nil {
					handleError(c, err)
					return
				}
			}
		}
	} else if err := h.service.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, nil,
		"You have been successfully logged out.")
}

// Me handles GET /api/v1/auth/me.
func (h *Handler) Me(c *gin.Context) {
	v, ok := c.Get("user_id")
	id, cast := v.(int64)
	if !ok || !cast {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.service.Me(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": Public(user)})
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationError(c, verr.Fields)
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password.")
	case errors.Is(err, ErrInvalidRefresh):
		response.Error(c, http.StatusUnauthorized, "INVALID_REFRESH", "Refresh token is invalid or expired.")
	default:
		response.Internal(c, err)
	}
}
