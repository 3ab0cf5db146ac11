package api

import (
	"net/http"
	"time"

	"subscription-api/internal/database"
	"subscription-api/internal/response"

	"github.com/gin-gonic/gin"
)

// SubscriptionStatusResponse represents subscription status response
type SubscriptionStatusResponse struct {
	IsActive         bool    `json:"is_active"`
	Status           string  `json:"status,omitempty"`
	PackageName      string  `json:"package_name,omitempty"`
	PlanDuration     string  `json:"plan_duration,omitempty"`
	CreditsRemaining float64 `json:"credits_remaining,omitempty"`
	ExpiresAt        string  `json:"expires_at,omitempty"`
}

// GetSubscriptionStatus reports whether the caller holds an effectively
// active subscription for a package
// GET /api/subscriptions/status?package_id=xxx
func GetSubscriptionStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	packageID := c.Query("package_id")

	if packageID == "" {
		response.ErrorJSON(c, http.StatusBadRequest, "package_id is required")
		return
	}

	subscription, err := database.GetEffectiveSubscription(userID, packageID, time.Now())
	if err != nil {
		// No effectively active subscription found
		response.SuccessJSON(c, SubscriptionStatusResponse{
			IsActive: false,
			Status:   "inactive",
		})
		return
	}

	response.SuccessJSON(c, SubscriptionStatusResponse{
		IsActive:         true,
		Status:           subscription.Status,
		PackageName:      subscription.PackageName,
		PlanDuration:     string(subscription.PlanDuration),
		CreditsRemaining: subscription.CreditsRemaining,
		ExpiresAt:        subscription.ExpiryDate.Format(time.RFC3339),
	})
}
