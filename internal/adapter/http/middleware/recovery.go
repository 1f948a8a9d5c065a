package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"vendor_registration/pkg"
	"vendor_registration/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into the standard 500 error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(c.Request.Context()).Error("[http][recovery] panic recovered",
					zap.Any("panic", rec),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)

				appErr := pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", fmt.Errorf("panic: %v", rec), http.StatusInternalServerError)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			}
		}()

		c.Next()
	}
}
