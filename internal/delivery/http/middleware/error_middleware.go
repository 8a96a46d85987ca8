package middleware

import (
	"errors"
	"net/http"

	"go-hrms-backend/internal/delivery/http/response"
	"go-hrms-backend/pkg/apperror"
	"go-hrms-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors collected on the context to the response envelope.
// Unknown errors are logged server-side and masked with a generic 500 so no
// internal detail reaches the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("request failed", "path", c.FullPath(), "error", err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
