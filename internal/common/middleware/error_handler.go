package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/common/validation"
	"github.com/teamhub/teamhub/pkg/logger"
)

// ErrorHandler middleware catches panics and converts them to proper error responses
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				appErr := errors.Internal("internal server error", "")
				c.AbortWithStatusJSON(appErr.Status, appErr)
			}
		}()
		c.Next()
	}
}

// JSONErrorResponse wraps errors in consistent JSON format
func JSONErrorResponse(c *gin.Context, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		if verrs, isValidation := err.(validator.ValidationErrors); isValidation {
			appErr = errors.Validation("validation failed", validation.Describe(verrs))
		} else {
			appErr = errors.Internal("internal server error", err.Error())
		}
	}

	c.JSON(appErr.Status, appErr)
}
