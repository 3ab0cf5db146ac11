package api

import (
	"net/http"

	"subscription-api/internal/database"
	"subscription-api/internal/response"
	"subscription-api/internal/services"

	"github.com/gin-gonic/gin"
)

// GetRevenueStats gets admin revenue rollups
// GET /api/admin/revenue
func GetRevenueStats(c *gin.Context) {
	revenueService := services.NewRevenueService(database.GetDB(), services.NewCacheService())
	stats, err := revenueService.GetStats(c.Request.Context())
	if err != nil {
		response.ErrorJSON(c, statusForError(err), "Failed to get revenue stats: "+err.Error())
		return
	}

	response.SuccessJSON(c, stats)
}

// GetAllSubscriptions lists every subscription record for the admin view
// GET /api/admin/subscriptions
func GetAllSubscriptions(c *gin.Context) {
	subscriptions, err := database.GetAllSubscriptions()
	if err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to get subscriptions: "+err.Error())
		return
	}

	response.SuccessJSON(c, subscriptions)
}
