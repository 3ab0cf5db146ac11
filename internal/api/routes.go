package api

import (
	"subscription-api/internal/middleware"
	"subscription-api/internal/plan"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all routes
func SetupRoutes(r *gin.Engine) {
	// API route group
	api := r.Group("/api")
	{
		// Public catalog routes
		api.GET("/packages", GetPackages)
		api.GET("/plans", GetPlanDurations)

		// Subscription routes (require user identity)
		subscriptions := api.Group("/subscriptions")
		subscriptions.Use(middleware.UserAuthMiddleware())
		{
			subscriptions.POST("/purchase", PurchaseSubscription)
			subscriptions.POST("/:id/cancel", CancelSubscription)
			subscriptions.GET("", ListSubscriptions)
			subscriptions.GET("/status", GetSubscriptionStatus)
		}

		// Cart routes (require user identity)
		cart := api.Group("/cart")
		cart.Use(middleware.UserAuthMiddleware())
		{
			cart.GET("", GetCart)
			cart.POST("", AddToCart)
			cart.DELETE("/:id", RemoveFromCart)
			cart.POST("/checkout", CheckoutCart)
		}

		// Admin routes (require admin key)
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.GET("/packages", GetAllPackages)
			admin.POST("/packages", CreatePackage)
			admin.PUT("/packages/:id", UpdatePackage)
			admin.DELETE("/packages/:id", DeletePackage)
			admin.GET("/subscriptions", GetAllSubscriptions)
			admin.GET("/revenue", GetRevenueStats)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "subscription-service",
		})
	})
}

// GetPlanDurations lists the plan catalog
// GET /api/plans
func GetPlanDurations(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"data":    plan.Durations(),
	})
}
