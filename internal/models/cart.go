package models

// CartItem 购物车条目
// 每个用户每个套餐最多一条，结算后清空
type CartItem struct {
	BaseModel

	UserID    string `json:"user_id" gorm:"not null;size:36;index:idx_cart_user_package"`
	PackageID string `json:"package_id" gorm:"not null;size:36;index:idx_cart_user_package"`
	Quantity  int    `json:"quantity" gorm:"default:1"`

	Package *Package `json:"package,omitempty" gorm:"foreignKey:PackageID"`
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "shopping_cart"
}
