package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler turns a panic in a handler into a 500 response.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			logger.Error("Panic while serving request", map[string]any{
				"panic":     recovered,
				"route":     c.FullPath(),
				"method":    c.Request.Method,
				"client_ip": c.ClientIP(),
			})

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    errs.CodeInternal,
				Message: "Internal server error",
			})
		}()

		c.Next()
	}
}
