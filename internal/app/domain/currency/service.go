package currency

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/FACorreiaa/portkey-planner/internal/app/observability/metrics"
)

// Service converts amounts between the three supported currency symbols using
// a static rate table. Unknown pairs pass the amount through unchanged; a
// real deployment would swap this for a rates API client.
type Service struct {
	logger *zap.Logger
	rates  map[string]map[string]float64
}

func NewService(logger *zap.Logger) *Service {
	return &Service{
		logger: logger,
		rates: map[string]map[string]float64{
			"₹": {"$": 0.012, "G": 0.002},
			"$": {"₹": 83.0, "G": 0.16},
			"G": {"₹": 500.0, "$": 6.0},
		},
	}
}

// Convert returns the converted amount rounded to 2 decimal places
// (round-half-to-even, consistent with the allocator) and the target
// currency. Same-currency or unmapped pairs return the amount as-is.
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) (float64, string) {
	metrics.Get().ConversionRequestsTotal.Add(ctx, 1)

	result := amount
	if from != to {
		if targets, ok := s.rates[from]; ok {
			if rate, ok := targets[to]; ok {
				result = amount * rate
			}
		}
	}

	result = math.RoundToEven(result*100) / 100

	s.logger.Debug("Currency converted",
		zap.String("from", from),
		zap.String("to", to),
		zap.Float64("amount", amount),
		zap.Float64("result", result),
	)

	return result, to
}
