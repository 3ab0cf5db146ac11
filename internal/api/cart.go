package api

import (
	"net/http"

	"subscription-api/internal/database"
	"subscription-api/internal/models"
	"subscription-api/internal/response"
	"subscription-api/internal/services"
	"subscription-api/pkg/logging"

	"github.com/gin-gonic/gin"
)

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	PackageID string `json:"package_id" binding:"required"`
}

// GetCart lists the caller's cart items
// GET /api/cart
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := database.GetCartItems(userID)
	if err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to get cart: "+err.Error())
		return
	}

	response.SuccessJSON(c, items)
}

// AddToCart adds a package to the caller's cart
// POST /api/cart
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
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

	// One cart entry per package
	if _, err := database.GetCartItemByPackage(userID, pkg.ID); err == nil {
		response.ErrorJSON(c, http.StatusConflict, "Package is already in cart")
		return
	}

	item := &models.CartItem{
		UserID:    userID,
		PackageID: pkg.ID,
		Quantity:  1,
	}
	if err := database.AddCartItem(item); err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to add to cart: "+err.Error())
		return
	}
	item.Package = pkg

	response.CreatedJSON(c, item)
}

// RemoveFromCart removes an item from the caller's cart
// DELETE /api/cart/:id
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	itemID := c.Param("id")

	affected, err := database.RemoveCartItem(userID, itemID)
	if err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to remove from cart: "+err.Error())
		return
	}
	if affected == 0 {
		response.ErrorJSON(c, http.StatusNotFound, "Cart item not found")
		return
	}

	response.SuccessJSON(c, nil)
}

// CheckoutCart purchases the cart content, applying any remaining credits
// POST /api/cart/checkout
func CheckoutCart(c *gin.Context) {
	userID := c.GetString("user_id")

	// Cart checkout is serialized per user; the lock key uses a fixed
	// package slot since the cart spans packages
	cacheService := services.NewCacheService()
	ok, err := cacheService.AcquirePurchaseLock(c.Request.Context(), userID, "cart")
	if err != nil {
		// Degrade to an unserialized checkout rather than deleting a lock
		// some other request may hold
		logging.Errorf("Failed to acquire checkout lock: %v", err)
	} else if !ok {
		response.ErrorJSON(c, http.StatusConflict, "Another purchase is already in progress")
		return
	} else {
		defer cacheService.ReleasePurchaseLock(c.Request.Context(), userID, "cart")
	}

	ledger := services.NewLedgerService(database.GetDB(), services.NewPlanExpiryService())
	subscription, err := ledger.PurchaseFromCart(userID)
	if err != nil {
		response.ErrorJSON(c, statusForError(err), "Failed to checkout: "+err.Error())
		return
	}

	if err := cacheService.InvalidateRevenueStats(c.Request.Context()); err != nil {
		logging.Errorf("Failed to invalidate revenue stats cache: %v", err)
	}

	notifyPurchase(c.GetString("user_email"), subscription)

	response.CreatedJSON(c, subscription)
}
