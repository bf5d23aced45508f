package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market-intel/internal/api/models"
	"market-intel/internal/strategy"
)

// StrategyHandler handles strategy-related requests
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	names := strategy.Names()
	strategies := make([]models.StrategyInfo, 0, len(names))
	for _, name := range names {
		_, profile := strategy.Resolve(name)
		strategies = append(strategies, models.StrategyInfo{
			Name:        name,
			Description: strategy.Describe(name),
			Profile:     profile,
		})
	}
	c.JSON(http.StatusOK, models.StrategiesResponse{Success: true, Strategies: strategies})
}
