package handlers

import (
	"net/http"

	"github.com/NuryND000/backend-gr-coin-v3/internal/domain"
	"github.com/NuryND000/backend-gr-coin-v3/internal/http/middleware"
	"github.com/NuryND000/backend-gr-coin-v3/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Unanticipated
// failures become a generic 500; detail goes to the server log only.
func RespondDomainError(c *gin.Context, module, action string, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsUnauthorized(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case domain.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		utils.LogEvent(middleware.GetRequestID(c), module, action, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// BindJSONOrError ensures body is present and parsable. On failure it sends
// the given validation message, matching the legacy API contract.
func BindJSONOrError[T any](c *gin.Context, dst *T, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return false
	}
	return true
}
