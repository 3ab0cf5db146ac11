package models

// Package 订阅套餐
// 价格为月度基准价，实际售价由套餐时长倍率换算
type Package struct {
	BaseModel

	Name        string  `json:"name" gorm:"not null;size:100"`
	Description string  `json:"description" gorm:"type:text"`
	BasePrice   float64 `json:"base_price" gorm:"not null"`            // 月度基准价
	Currency    string  `json:"currency" gorm:"size:10;default:'BDT'"` // 货币
	Features    string  `json:"features" gorm:"type:text"`             // JSON string
	IsActive    bool    `json:"is_active" gorm:"default:true;index"`
	CreatedBy   string  `json:"created_by" gorm:"size:36"`
}

// TableName 指定表名
func (Package) TableName() string {
	return "subscription_packages"
}
