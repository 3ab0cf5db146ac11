package plan

import (
	"math"
	"time"
)

// UnusedValue 计算剩余订阅天数对应的金额
// Returns the monetary value of the unused portion of a plan: the amount
// paid spread over the plan's own day length, times the days remaining.
// dayLength must be the day length the amount was actually priced for
// (the original plan, not the target plan), so upgrade credit reflects
// true unused time. Never returns a negative credit.
func UnusedValue(amountPaid float64, dayLength int, daysRemaining int) float64 {
	if dayLength <= 0 || daysRemaining <= 0 || amountPaid <= 0 {
		return 0
	}
	dailyValue := amountPaid / float64(dayLength)
	return dailyValue * float64(daysRemaining)
}

// DaysRemaining returns the number of billable days left until expiry,
// rounded up to whole days. The result is negative once expiry has passed
// by more than a day; credit math clamps that to zero in UnusedValue.
func DaysRemaining(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}
