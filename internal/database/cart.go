package database

import (
	"subscription-api/internal/models"
)

// AddCartItem 添加购物车条目
func AddCartItem(item *models.CartItem) error {
	return DB.Create(item).Error
}

// GetCartItems 获取用户购物车，带套餐信息
func GetCartItems(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := DB.Preload("Package").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// GetCartItemByPackage 查找用户购物车中某个套餐的条目
func GetCartItemByPackage(userID, packageID string) (*models.CartItem, error) {
	var item models.CartItem
	err := DB.Where("user_id = ? AND package_id = ?", userID, packageID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem 删除用户购物车条目
func RemoveCartItem(userID, itemID string) (int64, error) {
	result := DB.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
