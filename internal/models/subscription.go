package models

import (
	"time"

	"subscription-api/internal/plan"
)

// Subscription status values. Expired and cancelled are terminal: a record
// never transitions back to active.
const (
	StatusActive    = "active"
	StatusExpired   = "expired"   // superseded by a newer purchase or naturally past expiry
	StatusCancelled = "cancelled" // explicit user action
)

// Subscription 用户订阅记录
// 记录一次购买的完整账目：实付价、累计额度、剩余额度
type Subscription struct {
	BaseModel

	// 关联字段
	UserID    string `json:"user_id" gorm:"not null;size:36;index"`
	PackageID string `json:"package_id" gorm:"not null;size:36;index"`

	// 购买时的套餐名快照，套餐改名不影响历史记录
	PackageName string `json:"package_name" gorm:"size:100"`

	// 账目字段
	PlanDuration     plan.Duration `json:"plan_duration" gorm:"not null;size:20"` // 套餐时长 key
	PricePaid        float64       `json:"price_paid" gorm:"not null"`            // 实际支付金额（按时长换算后）
	Currency         string        `json:"currency" gorm:"size:10;default:'BDT'"`
	CreditsPurchased float64       `json:"credits_purchased"` // 实付 + 结转额度，创建后不变
	CreditsRemaining float64       `json:"credits_remaining"` // 剩余可用额度，只减不增

	// 订阅时间字段
	StartDate  time.Time `json:"start_date"`
	ExpiryDate time.Time `json:"expiry_date" gorm:"index"`

	// 订阅状态：active(激活)、expired(过期)、cancelled(已取消)
	Status   string `json:"status" gorm:"not null;size:20;index"`
	IsActive bool   `json:"is_active" gorm:"default:true"` // 活跃标记，与 Status 同步维护
}

// TableName 指定表名
func (Subscription) TableName() string {
	return "user_subscription_history"
}

// EffectivelyActive reports whether the record is usable right now: stored
// status is active AND the expiry date is still in the future. Stored status
// is never lazily rewritten to expired, so every read path must go through
// this predicate instead of trusting Status alone.
func (s *Subscription) EffectivelyActive(now time.Time) bool {
	return s.Status == StatusActive && s.ExpiryDate.After(now)
}

// IsTerminal reports whether the record reached a terminal status
func (s *Subscription) IsTerminal() bool {
	return s.Status == StatusExpired || s.Status == StatusCancelled
}
