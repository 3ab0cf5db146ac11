package database

import (
	"time"

	"subscription-api/internal/models"
)

// CreateSubscription 创建订阅记录
func CreateSubscription(subscription *models.Subscription) error {
	return DB.Create(subscription).Error
}

// GetSubscriptionByID 通过ID获取订阅记录
func GetSubscriptionByID(id string) (*models.Subscription, error) {
	var subscription models.Subscription
	err := DB.Where("id = ?", id).First(&subscription).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// GetEffectiveSubscription 获取用户在某个套餐下当前生效的订阅
// SQL mirror of models.Subscription.EffectivelyActive: stored status alone
// is not trusted, the expiry date is always checked against now.
func GetEffectiveSubscription(userID, packageID string, now time.Time) (*models.Subscription, error) {
	var subscription models.Subscription
	err := DB.Where("user_id = ? AND package_id = ? AND status = ? AND expiry_date > ?",
		userID, packageID, models.StatusActive, now).First(&subscription).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// GetAllSubscriptions 获取全部订阅记录（管理端），按创建时间倒序
func GetAllSubscriptions() ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := DB.Order("created_at DESC").Find(&subscriptions).Error
	return subscriptions, err
}
