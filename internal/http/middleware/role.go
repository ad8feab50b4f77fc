package middleware

import (
	"net/http"
	"strings"

	"github.com/NuryND000/backend-gr-coin-v3/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// RequireRoles adalah middleware role-based access control.
// Hanya mengizinkan request dengan role yang terdapat di allowedRoles.
// Diasumsikan RequireAuth sudah berjalan dan mengisi identity di context.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := AuthRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if _, ok := allowed[strings.ToLower(strings.TrimSpace(role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Admin only"})
			return
		}

		c.Next()
	}
}

// RequireAdmin gates administrative routes.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin)
}
