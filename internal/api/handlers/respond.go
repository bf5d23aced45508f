package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"market-intel/internal/api/middleware"
	"market-intel/internal/api/models"
	"market-intel/internal/metrics"
)

// bindJSON decodes the request body into req, answering 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return false
	}
	return true
}

func respondError(c *gin.Context, err error) {
	status, code := middleware.ErrorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		message = "An unexpected error occurred"
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func observe(rec *metrics.Recorder, kind string, start time.Time, err error) {
	if rec != nil {
		rec.ObserveRun(kind, time.Since(start), err)
	}
}
