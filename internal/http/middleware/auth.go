package middleware

import (
	"net/http"
	"strings"

	"github.com/NuryND000/backend-gr-coin-v3/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userId"
	userRoleKey = "userRole"
)

// RequireAuth validates the bearer token and attaches the decoded identity
// to the request context. Secret di-inject dari konfigurasi, bukan konstanta.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := utils.ParseToken(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userRoleKey, claims.Role)
		c.Next()
	}
}

// AuthUserID returns the userId attached by RequireAuth (0 when absent).
func AuthUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// AuthRole returns the role attached by RequireAuth ("" when absent).
func AuthRole(c *gin.Context) string {
	if v, ok := c.Get(userRoleKey); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
