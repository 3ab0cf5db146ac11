package services

import (
	"context"
	"testing"
	"time"

	"subscription-api/internal/models"
	"subscription-api/internal/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewRevenueService(db, nil)
	svc.now = func() time.Time { return testNow }

	// Recent active record
	recent := activeMonthlySub("user-1", "pkg-1", 1200, 10)
	recent.CreatedAt = testNow.AddDate(0, 0, -5)
	seedSubscription(t, db, recent)

	// Recent cancelled record for a second user, still revenue
	cancelled := activeMonthlySub("user-2", "pkg-1", 800, 10)
	cancelled.Status = models.StatusCancelled
	cancelled.CreatedAt = testNow.AddDate(0, 0, -10)
	seedSubscription(t, db, cancelled)

	// Old record outside the 30 day window
	old := &models.Subscription{
		UserID:       "user-1",
		PackageID:    "pkg-2",
		PlanDuration: plan.DurationMonthly,
		PricePaid:    500,
		StartDate:    testNow.AddDate(0, 0, -90),
		ExpiryDate:   testNow.AddDate(0, 0, -60),
		Status:       models.StatusExpired,
	}
	old.CreatedAt = testNow.AddDate(0, 0, -90)
	seedSubscription(t, db, old)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	// Revenue covers every record ever written, not just effective ones
	assert.Equal(t, 2500.0, stats.TotalRevenue)
	assert.Equal(t, 2000.0, stats.MonthlyRevenue)
	// Only the effectively active record counts as active
	assert.Equal(t, int64(1), stats.ActiveSubscriptions)
	assert.Equal(t, int64(2), stats.TotalUsers)
}

func TestRevenueStatsEmptyStore(t *testing.T) {
	db := newTestDB(t)
	svc := NewRevenueService(db, nil)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.MonthlyRevenue)
	assert.Zero(t, stats.ActiveSubscriptions)
	assert.Zero(t, stats.TotalUsers)
}

func TestRevenueStatsCountsStaleActiveAsInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewRevenueService(db, nil)
	svc.now = func() time.Time { return testNow }

	// Stored status says active but the expiry has passed
	seedSubscription(t, db, activeMonthlySub("user-1", "pkg-1", 1200, -5))

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.ActiveSubscriptions)
	assert.Equal(t, 1200.0, stats.TotalRevenue)
}
