package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"subscription-api/internal/models"
	"subscription-api/internal/plan"
	"subscription-api/pkg/logging"

	"gorm.io/gorm"
)

// LedgerService 订阅账本
// 负责购买、升级结转、取消和生效状态查询。记录只会从 active 走向
// expired 或 cancelled，历史记录永不物理删除。
type LedgerService struct {
	db     *gorm.DB
	expiry ExpiryService
	now    func() time.Time
}

// NewLedgerService creates a new ledger service
func NewLedgerService(db *gorm.DB, expiry ExpiryService) *LedgerService {
	return &LedgerService{
		db:     db,
		expiry: expiry,
		now:    time.Now,
	}
}

// Purchase buys a plan for a package. If the user already holds an
// effectively active record for the same package, that record is forced to
// expired inside the same transaction so at most one record per user and
// package stays effectively active. Unused value of the superseded record
// carries forward as credit when the new plan's day length is not shorter
// than the old one; a shorter plan starts fresh with no carry.
func (s *LedgerService) Purchase(userID, packageID, packageName string, basePrice float64, durationKey plan.Duration, currency string) (*models.Subscription, error) {
	if userID == "" || packageID == "" {
		return nil, &ValidationError{Message: "user_id and package_id are required"}
	}
	if basePrice < 0 {
		return nil, &ValidationError{Message: "base price must not be negative"}
	}
	newPlan, ok := plan.Lookup(durationKey)
	if !ok {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown plan duration: %s", durationKey)}
	}

	now := s.now()
	expiryDate, err := s.expiry.ExpiryDate(now, durationKey)
	if err != nil {
		return nil, &DependencyError{Op: "expiry service", Err: err}
	}
	if !expiryDate.After(now) {
		// Reject before persistence, never store expiry <= start
		return nil, &DependencyError{Op: "expiry service", Err: fmt.Errorf("expiry %s not after start %s", expiryDate, now)}
	}

	finalPrice := plan.ProratedPrice(basePrice, durationKey)

	var record *models.Subscription
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the user's effectively active record for this package so the
		// supersede + insert pair is atomic against a concurrent purchase.
		var existing models.Subscription
		findErr := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("user_id = ? AND package_id = ? AND status = ? AND expiry_date > ?",
				userID, packageID, models.StatusActive, now).
			First(&existing).Error

		creditsToAdd := 0.0
		if findErr == nil {
			oldPlan := plan.MustLookup(existing.PlanDuration)
			if newPlan.Days >= oldPlan.Days {
				daysRemaining := plan.DaysRemaining(existing.ExpiryDate, now)
				creditsToAdd = plan.UnusedValue(existing.PricePaid, oldPlan.Days, daysRemaining)
				logging.Infof("Carrying forward credits on upgrade - user: %s, package: %s, credits: %.2f",
					userID, packageID, creditsToAdd)
			}

			// The superseded record is expired either way, keeping at most
			// one effectively active record per user and package. Remaining
			// credit is cleared at rest: carried value lives on the new
			// record, forfeited value is gone.
			existing.Status = models.StatusExpired
			existing.IsActive = false
			existing.CreditsRemaining = 0
			if saveErr := tx.Save(&existing).Error; saveErr != nil {
				return saveErr
			}
		} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		record = &models.Subscription{
			UserID:           userID,
			PackageID:        packageID,
			PackageName:      packageName,
			PlanDuration:     durationKey,
			PricePaid:        finalPrice,
			Currency:         currency,
			CreditsPurchased: finalPrice + creditsToAdd,
			CreditsRemaining: finalPrice + creditsToAdd,
			StartDate:        now,
			ExpiryDate:       expiryDate,
			Status:           models.StatusActive,
			IsActive:         true,
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, &DependencyError{Op: "record store", Err: err}
	}

	return record, nil
}

// Cancel cancels a subscription record and freezes the value of its unused
// days into CreditsRemaining for a future purchase. Cancelling a record that
// already reached a terminal status is rejected, not silently repeated.
func (s *LedgerService) Cancel(recordID string) (*models.Subscription, error) {
	var record models.Subscription
	if err := s.db.Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, &DependencyError{Op: "record store", Err: err}
	}

	if record.IsTerminal() {
		return nil, &ConflictError{Message: "subscription is already inactive"}
	}

	now := s.now()
	totalDays := plan.MustLookup(record.PlanDuration).Days
	daysRemaining := plan.DaysRemaining(record.ExpiryDate, now)

	record.Status = models.StatusCancelled
	record.IsActive = false
	record.CreditsRemaining = plan.UnusedValue(record.PricePaid, totalDays, daysRemaining)

	if err := s.db.Save(&record).Error; err != nil {
		return nil, &DependencyError{Op: "record store", Err: err}
	}

	logging.Infof("Subscription cancelled - id: %s, credits remaining: %.2f", record.ID, record.CreditsRemaining)
	return &record, nil
}

// PurchaseFromCart checks out the user's cart. Credits remaining on the
// user's most recent effectively active record are applied against the cart
// total and consumed; that prior record is cancelled, not expired. The new
// record starts with zero remaining credits. This is a deliberately
// different policy from the upgrade carry in Purchase.
func (s *LedgerService) PurchaseFromCart(userID string) (*models.Subscription, error) {
	if userID == "" {
		return nil, &ValidationError{Message: "user_id is required"}
	}

	var items []models.CartItem
	if err := s.db.Preload("Package").Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, &DependencyError{Op: "record store", Err: err}
	}
	if len(items) == 0 {
		return nil, &ValidationError{Message: "cart is empty"}
	}

	totalPrice := 0.0
	for _, item := range items {
		if item.Package == nil || !item.Package.IsActive {
			return nil, &ValidationError{Message: "cart contains an unavailable package"}
		}
		totalPrice += item.Package.BasePrice
	}

	now := s.now()
	expiryDate, err := s.expiry.ExpiryDate(now, plan.DurationMonthly)
	if err != nil {
		return nil, &DependencyError{Op: "expiry service", Err: err}
	}

	// 结算以购物车第一个套餐为准，总价覆盖全部条目
	first := items[0]

	var record *models.Subscription
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var prior models.Subscription
		findErr := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("user_id = ? AND status = ? AND expiry_date > ?",
				userID, models.StatusActive, now).
			Order("created_at DESC").
			First(&prior).Error

		creditsToApply := 0.0
		if findErr == nil {
			creditsToApply = prior.CreditsRemaining

			prior.Status = models.StatusCancelled
			prior.IsActive = false
			prior.CreditsRemaining = 0 // consumed below, never re-carried
			if saveErr := tx.Save(&prior).Error; saveErr != nil {
				return saveErr
			}
		} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// The credit source above may be on another package. Any record on
		// the purchased package that is still effectively active must be
		// superseded too, so the new record is the only one for this pair.
		expireErr := tx.Model(&models.Subscription{}).
			Where("user_id = ? AND package_id = ? AND status = ? AND expiry_date > ?",
				userID, first.PackageID, models.StatusActive, now).
			Updates(map[string]interface{}{
				"status":            models.StatusExpired,
				"is_active":         false,
				"credits_remaining": 0,
			}).Error
		if expireErr != nil {
			return expireErr
		}

		finalPrice := math.Max(0, totalPrice-creditsToApply)

		record = &models.Subscription{
			UserID:           userID,
			PackageID:        first.PackageID,
			PackageName:      first.Package.Name,
			PlanDuration:     plan.DurationMonthly,
			PricePaid:        finalPrice,
			Currency:         first.Package.Currency,
			CreditsPurchased: finalPrice,
			CreditsRemaining: 0,
			StartDate:        now,
			ExpiryDate:       expiryDate,
			Status:           models.StatusActive,
			IsActive:         true,
		}
		if createErr := tx.Create(record).Error; createErr != nil {
			return createErr
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, &DependencyError{Op: "record store", Err: err}
	}

	return record, nil
}

// History returns all of the user's subscription records, newest first
func (s *LedgerService) History(userID string) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subscriptions).Error
	if err != nil {
		return nil, &DependencyError{Op: "record store", Err: err}
	}
	return subscriptions, nil
}

// ListEffective returns the user's effectively active records. The stored
// status alone is never trusted; the expiry date is re-checked on read.
func (s *LedgerService) ListEffective(userID string) ([]models.Subscription, error) {
	all, err := s.History(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	effective := make([]models.Subscription, 0, len(all))
	for _, sub := range all {
		if sub.EffectivelyActive(now) {
			effective = append(effective, sub)
		}
	}
	return effective, nil
}

// ListExpired returns the user's records that are expired by status or have
// run past their expiry date without the status catching up.
func (s *LedgerService) ListExpired(userID string) ([]models.Subscription, error) {
	all, err := s.History(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expired := make([]models.Subscription, 0, len(all))
	for _, sub := range all {
		if sub.Status == models.StatusExpired || !sub.ExpiryDate.After(now) {
			expired = append(expired, sub)
		}
	}
	return expired, nil
}
