package api

import (
	"net/http"

	"subscription-api/internal/database"
	"subscription-api/internal/models"
	"subscription-api/internal/plan"
	"subscription-api/internal/response"
	"subscription-api/internal/services"
	"subscription-api/pkg/logging"

	"github.com/gin-gonic/gin"
)

// PurchaseSubscriptionRequest represents purchase subscription request
type PurchaseSubscriptionRequest struct {
	PackageID string `json:"package_id" binding:"required"`
	Duration  string `json:"duration" binding:"required"` // plan catalog key
}

// PurchaseSubscription purchases a plan for a package
// POST /api/subscriptions/purchase
func PurchaseSubscription(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PurchaseSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	// Strict path: the loose duration string is validated against the
	// catalog before the ledger ever sees it
	durationKey := plan.Duration(req.Duration)
	if !plan.IsValidDuration(durationKey) {
		response.ErrorJSON(c, http.StatusBadRequest, "Unknown plan duration: "+req.Duration)
		return
	}

	pkg, err := database.GetPackageByID(req.PackageID)
	if err != nil {
		response.ErrorJSON(c, http.StatusNotFound, "Package not found")
		return
	}
	if !pkg.IsActive {
		response.ErrorJSON(c, http.StatusBadRequest, "Package is not available")
		return
	}

	// Serialize concurrent purchases for the same user and package
	cacheService := services.NewCacheService()
	ok, err := cacheService.AcquirePurchaseLock(c.Request.Context(), userID, pkg.ID)
	if err != nil {
		// Redis being down degrades to an unserialized purchase; never
		// release a lock this request does not hold
		logging.Errorf("Failed to acquire purchase lock: %v", err)
	} else if !ok {
		response.ErrorJSON(c, http.StatusConflict, "Another purchase is already in progress")
		return
	} else {
		defer cacheService.ReleasePurchaseLock(c.Request.Context(), userID, pkg.ID)
	}

	ledger := services.NewLedgerService(database.GetDB(), services.NewPlanExpiryService())
	subscription, err := ledger.Purchase(userID, pkg.ID, pkg.Name, pkg.BasePrice, durationKey, pkg.Currency)
	if err != nil {
		response.ErrorJSON(c, statusForError(err), "Failed to purchase subscription: "+err.Error())
		return
	}

	if err := cacheService.InvalidateRevenueStats(c.Request.Context()); err != nil {
		logging.Errorf("Failed to invalidate revenue stats cache: %v", err)
	}

	notifyPurchase(c.GetString("user_email"), subscription)

	response.CreatedJSON(c, subscription)
}

// CancelSubscription cancels one of the caller's subscription records
// POST /api/subscriptions/:id/cancel
func CancelSubscription(c *gin.Context) {
	userID := c.GetString("user_id")
	recordID := c.Param("id")

	record, err := database.GetSubscriptionByID(recordID)
	if err != nil || record.UserID != userID {
		// A record belonging to someone else is reported as missing
		response.ErrorJSON(c, http.StatusNotFound, "Subscription not found")
		return
	}

	ledger := services.NewLedgerService(database.GetDB(), services.NewPlanExpiryService())
	cancelled, err := ledger.Cancel(recordID)
	if err != nil {
		response.ErrorJSON(c, statusForError(err), "Failed to cancel subscription: "+err.Error())
		return
	}

	cacheService := services.NewCacheService()
	if err := cacheService.InvalidateRevenueStats(c.Request.Context()); err != nil {
		logging.Errorf("Failed to invalidate revenue stats cache: %v", err)
	}

	notifyCancellation(c.GetString("user_email"), cancelled)

	response.SuccessJSON(c, cancelled)
}

// ListSubscriptions lists the caller's subscription records
// GET /api/subscriptions?filter=active|expired|all
func ListSubscriptions(c *gin.Context) {
	userID := c.GetString("user_id")
	filter := c.DefaultQuery("filter", "all")

	ledger := services.NewLedgerService(database.GetDB(), services.NewPlanExpiryService())

	var subscriptions []models.Subscription
	var err error
	switch filter {
	case "active":
		subscriptions, err = ledger.ListEffective(userID)
	case "expired":
		subscriptions, err = ledger.ListExpired(userID)
	case "all":
		subscriptions, err = ledger.History(userID)
	default:
		response.ErrorJSON(c, http.StatusBadRequest, "Unknown filter: "+filter)
		return
	}

	if err != nil {
		response.ErrorJSON(c, statusForError(err), "Failed to list subscriptions: "+err.Error())
		return
	}

	response.SuccessJSON(c, subscriptions)
}

// notifyPurchase sends the purchase receipt asynchronously, best effort
func notifyPurchase(email string, sub *models.Subscription) {
	if email == "" {
		return
	}
	go func() {
		if err := services.NewEmailService().SendPurchaseReceipt(email, sub); err != nil {
			logging.Errorf("Failed to send purchase receipt - user: %s, error: %v", sub.UserID, err)
		}
	}()
}

// notifyCancellation sends the cancellation notice asynchronously, best effort
func notifyCancellation(email string, sub *models.Subscription) {
	if email == "" {
		return
	}
	go func() {
		if err := services.NewEmailService().SendCancellationNotice(email, sub); err != nil {
			logging.Errorf("Failed to send cancellation notice - user: %s, error: %v", sub.UserID, err)
		}
	}()
}
