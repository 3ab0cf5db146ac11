package services

import (
	"context"
	"time"

	"subscription-api/internal/models"
	"subscription-api/pkg/logging"

	"gorm.io/gorm"
)

// RevenueStats represents admin revenue rollups over all records
type RevenueStats struct {
	TotalRevenue        float64 `json:"total_revenue"`
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
	TotalUsers          int64   `json:"total_users"`
}

// RevenueService 营收统计
// 只读汇总，覆盖全部账目而不仅是生效订阅。cache 可为 nil（测试场景）。
type RevenueService struct {
	db    *gorm.DB
	cache *CacheService
	now   func() time.Time
}

// NewRevenueService creates a new revenue service
func NewRevenueService(db *gorm.DB, cache *CacheService) *RevenueService {
	return &RevenueService{
		db:    db,
		cache: cache,
		now:   time.Now,
	}
}

// GetStats computes the revenue rollups, serving from cache when possible
func (s *RevenueService) GetStats(ctx context.Context) (*RevenueStats, error) {
	if s.cache != nil {
		if stats, err := s.cache.GetRevenueStats(ctx); err == nil && stats != nil {
			return stats, nil
		}
	}

	stats, err := s.computeStats()
	if err != nil {
		return nil, &DependencyError{Op: "record store", Err: err}
	}

	if s.cache != nil {
		if err := s.cache.SetRevenueStats(ctx, stats); err != nil {
			logging.Errorf("Failed to cache revenue stats: %v", err)
		}
	}
	return stats, nil
}

func (s *RevenueService) computeStats() (*RevenueStats, error) {
	now := s.now()
	stats := &RevenueStats{}

	// Total revenue over every record ever written
	err := s.db.Model(&models.Subscription{}).
		Select("COALESCE(SUM(price_paid), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	// Revenue from records created in the last 30 days
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	err = s.db.Model(&models.Subscription{}).
		Select("COALESCE(SUM(price_paid), 0)").
		Where("created_at >= ?", thirtyDaysAgo).
		Scan(&stats.MonthlyRevenue).Error
	if err != nil {
		return nil, err
	}

	// Effectively active count: status AND live expiry check, same predicate
	// as every other read path
	err = s.db.Model(&models.Subscription{}).
		Where("status = ? AND expiry_date > ?", models.StatusActive, now).
		Count(&stats.ActiveSubscriptions).Error
	if err != nil {
		return nil, err
	}

	// Distinct purchasing users
	err = s.db.Model(&models.Subscription{}).
		Distinct("user_id").
		Count(&stats.TotalUsers).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
