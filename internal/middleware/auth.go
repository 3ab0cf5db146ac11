package middleware

import (
	"net/http"

	"subscription-api/internal/config"
	"subscription-api/internal/response"

	"github.com/gin-gonic/gin"
)

// UserAuthMiddleware resolves the current user from the identity provider.
// The upstream gateway authenticates the session and forwards the resolved
// user in X-User-ID; requests without one never reach the ledger.
func UserAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = c.Query("user_id")
		}

		if userID == "" {
			c.JSON(http.StatusUnauthorized, response.Error("Missing user identity"))
			c.Abort()
			return
		}

		// Store user identity in context; email is optional and only used
		// for notifications
		c.Set("user_id", userID)
		c.Set("user_email", c.GetHeader("X-User-Email"))
		c.Next()
	}
}

// AdminAuthMiddleware provides admin authentication middleware
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-Admin-Key")
		if apiKey == "" {
			apiKey = c.Query("admin_key")
		}

		if apiKey == "" || apiKey != config.AppConfig.AdminAPIKey {
			c.JSON(http.StatusUnauthorized, response.Error("Invalid admin key"))
			c.Abort()
			return
		}

		c.Next()
	}
}
