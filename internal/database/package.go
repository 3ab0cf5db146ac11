package database

import (
	"subscription-api/internal/models"
)

// CreatePackage 创建套餐
func CreatePackage(pkg *models.Package) error {
	return DB.Create(pkg).Error
}

// GetPackageByID 通过ID获取套餐
func GetPackageByID(id string) (*models.Package, error) {
	var pkg models.Package
	err := DB.Where("id = ?", id).First(&pkg).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// GetActivePackages 获取所有上架套餐，按创建时间倒序
func GetActivePackages() ([]models.Package, error) {
	var packages []models.Package
	err := DB.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&packages).Error
	return packages, err
}

// GetAllPackages 获取所有套餐（管理端）
func GetAllPackages() ([]models.Package, error) {
	var packages []models.Package
	err := DB.Order("created_at DESC").Find(&packages).Error
	return packages, err
}

// UpdatePackage 按字段更新套餐
func UpdatePackage(id string, updates map[string]interface{}) error {
	return DB.Model(&models.Package{}).Where("id = ?", id).Updates(updates).Error
}

// DeletePackage 软删除套餐
func DeletePackage(id string) error {
	return DB.Where("id = ?", id).Delete(&models.Package{}).Error
}
