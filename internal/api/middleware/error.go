package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"market-intel/internal/model"
	"market-intel/internal/store"
)

// ErrorStatus maps an error to an HTTP status and a stable error code.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInputValidation):
		return http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, model.ErrInsufficientData):
		return http.StatusBadRequest, "INSUFFICIENT_DATA"
	case errors.Is(err, model.ErrUnsupportedMethod):
		return http.StatusBadRequest, "UNSUPPORTED_METHOD"
	case errors.Is(err, model.ErrArityMismatch):
		return http.StatusBadRequest, "ARITY_MISMATCH"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// ErrorHandler middleware handles panics
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			message = s
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": message,
			},
		})
		c.Abort()
	})
}
