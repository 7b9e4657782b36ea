package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/api/dto"
)

// AdminPasswordHeader carries the service password on admin requests
const AdminPasswordHeader = "X-Admin-Password"

// AdminAuth rejects requests whose X-Admin-Password does not match password.
// An empty password locks the admin routes entirely.
func AdminAuth(password string, logger coreport.Logger) gin.HandlerFunc {
	expected := []byte(password)

	return func(c *gin.Context) {
		given := []byte(c.GetHeader(AdminPasswordHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(given, expected) != 1 {
			logger.Warn("Admin authentication failed", map[string]any{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    errs.ErrorCode(errs.ErrUnauthorized),
				Message: errs.ErrUnauthorized.Error(),
			})
			return
		}

		c.Next()
	}
}
