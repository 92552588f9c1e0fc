package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymadmin/internal/domain"
	"gymadmin/internal/pkg/response"
)

// RequireRole ensures the authenticated user has the given role.
func RequireRole(requiredRole domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != string(requiredRole) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly guards the destructive endpoints.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
