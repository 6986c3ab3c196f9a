package currency

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConvertRequest mirrors the wire format of the conversion endpoint. From and
// to default to rupees and dollars when omitted.
type ConvertRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

type CurrencyHandlers struct {
	service *Service
	logger  *zap.Logger
}

func NewCurrencyHandlers(service *Service, logger *zap.Logger) *CurrencyHandlers {
	return &CurrencyHandlers{
		service: service,
		logger:  logger,
	}
}

// ConvertCurrency handles POST /api/convert_currency.
func (h *CurrencyHandlers) ConvertCurrency(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Rejected malformed conversion request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.From == "" {
		req.From = "₹"
	}
	if req.To == "" {
		req.To = "$"
	}

	result, target := h.service.Convert(c.Request.Context(), req.Amount, req.From, req.To)
	c.JSON(http.StatusOK, gin.H{
		"result":   result,
		"currency": target,
	})
}
