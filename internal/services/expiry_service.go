package services

import (
	"fmt"
	"time"

	"subscription-api/internal/plan"
)

// ExpiryService computes a plan's expiry timestamp from its start timestamp.
// Implementations must be deterministic and monotonic in the start date.
type ExpiryService interface {
	ExpiryDate(start time.Time, key plan.Duration) (time.Time, error)
}

// PlanExpiryService 按目录中的固定天数计算到期时间
// "monthly" here means the catalog's fixed 30 days, not a calendar month.
// The credit math divides the paid amount by the same day length, so the
// two stay consistent by construction.
type PlanExpiryService struct{}

// NewPlanExpiryService creates a new plan expiry service
func NewPlanExpiryService() *PlanExpiryService {
	return &PlanExpiryService{}
}

// ExpiryDate returns start plus the plan's fixed day length
func (s *PlanExpiryService) ExpiryDate(start time.Time, key plan.Duration) (time.Time, error) {
	pd, ok := plan.Lookup(key)
	if !ok {
		return time.Time{}, &ValidationError{Message: fmt.Sprintf("unknown plan duration: %s", key)}
	}
	return start.AddDate(0, 0, pd.Days), nil
}
