package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"subscription-api/internal/config"
	"subscription-api/internal/database"
	"subscription-api/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	revenueStatsKey = "revenue_stats"
	packageListKey  = "package_list"
)

// CacheService provides Redis-backed caching and purchase serialization
type CacheService struct {
	client *redis.Client
}

// NewCacheService creates a new cache service instance
func NewCacheService() *CacheService {
	return &CacheService{client: database.GetRedis()}
}

// GetRevenueStats gets cached revenue stats; returns (nil, nil) on a miss
func (s *CacheService) GetRevenueStats(ctx context.Context) (*RevenueStats, error) {
	data, err := s.client.Get(ctx, revenueStatsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats RevenueStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SetRevenueStats caches revenue stats with the configured TTL
func (s *CacheService) SetRevenueStats(ctx context.Context, stats *RevenueStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	ttl := time.Duration(config.AppConfig.StatsCacheTTLSeconds) * time.Second
	return s.client.Set(ctx, revenueStatsKey, data, ttl).Err()
}

// InvalidateRevenueStats drops the cached stats after a ledger write
func (s *CacheService) InvalidateRevenueStats(ctx context.Context) error {
	return s.client.Del(ctx, revenueStatsKey).Err()
}

// GetPackageList gets the cached active package list; (nil, nil) on a miss
func (s *CacheService) GetPackageList(ctx context.Context) ([]models.Package, error) {
	data, err := s.client.Get(ctx, packageListKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var packages []models.Package
	if err := json.Unmarshal([]byte(data), &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// SetPackageList caches the active package list with the configured TTL
func (s *CacheService) SetPackageList(ctx context.Context, packages []models.Package) error {
	data, err := json.Marshal(packages)
	if err != nil {
		return err
	}
	ttl := time.Duration(config.AppConfig.StatsCacheTTLSeconds) * time.Second
	return s.client.Set(ctx, packageListKey, data, ttl).Err()
}

// InvalidatePackageList drops the cached package list after an admin write
func (s *CacheService) InvalidatePackageList(ctx context.Context) error {
	return s.client.Del(ctx, packageListKey).Err()
}

// AcquirePurchaseLock serializes purchases per user and package. The record
// store transaction already guards the supersede + insert pair; the lock
// keeps a double-submitted purchase from racing ahead of it. Returns false
// when another purchase for the same key is still in flight.
func (s *CacheService) AcquirePurchaseLock(ctx context.Context, userID, packageID string) (bool, error) {
	key := fmt.Sprintf("purchase_lock:%s:%s", userID, packageID)
	ttl := time.Duration(config.AppConfig.PurchaseLockTTLSeconds) * time.Second
	return s.client.SetNX(ctx, key, "1", ttl).Result()
}

// ReleasePurchaseLock releases the per user and package purchase lock
func (s *CacheService) ReleasePurchaseLock(ctx context.Context, userID, packageID string) error {
	key := fmt.Sprintf("purchase_lock:%s:%s", userID, packageID)
	return s.client.Del(ctx, key).Err()
}
