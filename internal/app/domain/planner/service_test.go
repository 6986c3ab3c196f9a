package planner

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/portkey-planner/internal/app/models"
	"github.com/FACorreiaa/portkey-planner/internal/app/observability/metrics"
)

func TestMain(m *testing.M) {
	metrics.InitAppMetrics()
	os.Exit(m.Run())
}

func testRequest() models.TripRequest {
	return models.TripRequest{
		UserName:    "Hermione",
		Destination: "Visakhapatnam",
		Budget:      100000,
		NumDays:     5,
		TravelStyle: "Relaxed",
		Age:         25,
		Currency:    "$",
		StartDate:   "2026-03-10",
	}
}

func TestService_ComputePlan(t *testing.T) {
	svc := NewService(zap.NewNop(), 5*time.Minute)

	result, err := svc.ComputePlan(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	t.Run("should generate the trip title from days, style and destination", func(t *testing.T) {
		assert.Equal(t, "⚡ 5-Day Relaxed Adventure to Visakhapatnam", result.TripTitle)
	})

	t.Run("should greet the traveller with a grouped budget figure", func(t *testing.T) {
		assert.Contains(t, result.BriefIdea, "Hermione")
		assert.Contains(t, result.BriefIdea, "25 years")
		assert.Contains(t, result.BriefIdea, "**$100,000**")
	})

	t.Run("should report the allocation total as the estimated cost", func(t *testing.T) {
		assert.Equal(t, result.Allocation.EstimatedTotal, result.EstimatedCost)
		assert.Equal(t, 100000.0, result.EstimatedCost)
	})

	t.Run("should carry a full itinerary", func(t *testing.T) {
		assert.Len(t, result.Itinerary.Days, 5)
	})
}

func TestService_ComputePlan_Validation(t *testing.T) {
	svc := NewService(zap.NewNop(), 5*time.Minute)
	ctx := context.Background()

	t.Run("should reject a non-positive budget", func(t *testing.T) {
		req := testRequest()
		req.Budget = 0
		_, err := svc.ComputePlan(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Contains(t, err.Error(), "budget")
	})

	t.Run("should reject days below 1 before the core divides", func(t *testing.T) {
		req := testRequest()
		req.NumDays = 0
		_, err := svc.ComputePlan(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("should reject a negative age", func(t *testing.T) {
		req := testRequest()
		req.Age = -1
		_, err := svc.ComputePlan(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("should accept degenerate but well-typed input", func(t *testing.T) {
		req := testRequest()
		req.NumDays = 1
		result, err := svc.ComputePlan(ctx, req)
		require.NoError(t, err)
		assert.Len(t, result.Itinerary.Days, 1)
	})
}

func TestService_ComputePlan_CachesIdenticalRequests(t *testing.T) {
	svc := NewService(zap.NewNop(), 5*time.Minute)
	ctx := context.Background()
	req := testRequest()

	first, err := svc.ComputePlan(ctx, req)
	require.NoError(t, err)
	second, err := svc.ComputePlan(ctx, req)
	require.NoError(t, err)

	// Deterministic computation: the cached copy is indistinguishable.
	assert.Equal(t, first.TripTitle, second.TripTitle)
	assert.Equal(t, first.EstimatedCost, second.EstimatedCost)
	assert.Equal(t, first.Itinerary.Days, second.Itinerary.Days)
}
