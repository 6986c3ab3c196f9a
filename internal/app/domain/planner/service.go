package planner

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/FACorreiaa/portkey-planner/internal/app/models"
	"github.com/FACorreiaa/portkey-planner/internal/app/observability/metrics"
)

// Service computes complete trip plans. Computation is deterministic and
// side-effect free, so identical requests within the cache TTL are served
// from memory.
type Service struct {
	logger  *zap.Logger
	cache   *cache.Cache
	tracer  trace.Tracer
	printer *message.Printer
}

func NewService(logger *zap.Logger, cacheTTL time.Duration) *Service {
	return &Service{
		logger:  logger,
		cache:   cache.New(cacheTTL, 2*cacheTTL),
		tracer:  otel.Tracer("portkey-planner"),
		printer: message.NewPrinter(language.English),
	}
}

// ComputePlan runs the allocator once, the itinerary builder once, and wraps
// both outputs with the generated title and summary.
func (s *Service) ComputePlan(ctx context.Context, req models.TripRequest) (*models.PlanResult, error) {
	ctx, span := s.tracer.Start(ctx, "planner.ComputePlan")
	defer span.End()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.Int("trip.days", req.NumDays),
		attribute.String("trip.style", req.TravelStyle),
	)

	m := metrics.Get()
	m.PlanRequestsTotal.Add(ctx, 1)

	key := cacheKey(req)
	if cached, found := s.cache.Get(key); found {
		m.PlanCacheHitsTotal.Add(ctx, 1)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		result := cached.(models.PlanResult)
		return &result, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	started := time.Now()

	alloc := Allocate(req.Budget, req.Age, req.TravelStyle)
	itinerary := BuildItinerary(req.Destination, req.NumDays, req.TravelStyle, alloc, req.StartDate)

	result := models.PlanResult{
		TripTitle:     fmt.Sprintf("⚡ %d-Day %s Adventure to %s", req.NumDays, req.TravelStyle, req.Destination),
		BriefIdea:     s.briefIdea(req),
		EstimatedCost: alloc.EstimatedTotal,
		Allocation:    alloc,
		Itinerary:     itinerary,
	}

	m.PlanComputeDuration.Record(ctx, time.Since(started).Seconds())
	s.cache.Set(key, result, cache.DefaultExpiration)

	s.logger.Debug("Plan computed",
		zap.String("destination", req.Destination),
		zap.Int("days", req.NumDays),
		zap.Float64("estimated_cost", result.EstimatedCost),
	)

	return &result, nil
}

// validateRequest guards the core's arithmetic preconditions. The HTTP layer
// performs the same checks through binding tags; this keeps library callers
// from dividing by zero.
func validateRequest(req models.TripRequest) error {
	if req.Budget <= 0 {
		return fmt.Errorf("%w: budget must be a positive amount", models.ErrValidation)
	}
	if req.NumDays < 1 {
		return fmt.Errorf("%w: days must be at least 1", models.ErrValidation)
	}
	if req.Age < 0 {
		return fmt.Errorf("%w: age cannot be negative", models.ErrValidation)
	}
	return nil
}

func (s *Service) briefIdea(req models.TripRequest) string {
	budget := s.printer.Sprintf("%d", int64(math.RoundToEven(req.Budget)))
	return fmt.Sprintf(
		"Greetings, **%s**! The prophecy suggests a journey tailored to your %d years. We have balanced your **%s%s** to ensure maximum magic.",
		req.UserName, req.Age, req.Currency, budget,
	)
}

func cacheKey(req models.TripRequest) string {
	return fmt.Sprintf("%s|%s|%.2f|%d|%s|%d|%s|%s",
		req.UserName, req.Destination, req.Budget, req.NumDays,
		req.TravelStyle, req.Age, req.Currency, req.StartDate)
}
