package planner

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/portkey-planner/internal/app/models"
)

type PlannerHandlers struct {
	service *Service
	logger  *zap.Logger
}

func NewPlannerHandlers(service *Service, logger *zap.Logger) *PlannerHandlers {
	return &PlannerHandlers{
		service: service,
		logger:  logger,
	}
}

// GeneratePlan handles POST /api/generate_plan. Malformed input fails fast
// with a descriptive message before allocation begins.
func (h *PlannerHandlers) GeneratePlan(c *gin.Context) {
	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Rejected malformed plan request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.ComputePlan(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Plan generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "A powerful Confundus Charm disrupted the plan."})
		return
	}

	c.JSON(http.StatusOK, result)
}
