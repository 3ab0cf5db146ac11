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

// PackageWithPlans represents a package with its per-duration prices
type PackageWithPlans struct {
	models.Package
	Plans []PlanPrice `json:"plans"`
}

// PlanPrice represents one purchasable duration of a package
type PlanPrice struct {
	Key   plan.Duration `json:"key"`
	Label string        `json:"label"`
	Days  int           `json:"days"`
	Price float64       `json:"price"`
}

// GetPackages lists active packages with prorated prices per plan duration
// GET /api/packages
func GetPackages(c *gin.Context) {
	cacheService := services.NewCacheService()
	packages, err := cacheService.GetPackageList(c.Request.Context())
	if err != nil {
		logging.Errorf("Failed to read package list cache: %v", err)
	}

	if packages == nil {
		packages, err = database.GetActivePackages()
		if err != nil {
			response.ErrorJSON(c, http.StatusInternalServerError, "Failed to get packages: "+err.Error())
			return
		}
		if err := cacheService.SetPackageList(c.Request.Context(), packages); err != nil {
			logging.Errorf("Failed to cache package list: %v", err)
		}
	}

	out := make([]PackageWithPlans, len(packages))
	for i, pkg := range packages {
		out[i] = PackageWithPlans{Package: pkg}
		for _, pd := range plan.Durations() {
			out[i].Plans = append(out[i].Plans, PlanPrice{
				Key:   pd.Key,
				Label: pd.Label,
				Days:  pd.Days,
				Price: plan.ProratedPrice(pkg.BasePrice, pd.Key),
			})
		}
	}

	response.SuccessJSON(c, out)
}

// GetAllPackages lists every package for the admin view, inactive included
// GET /api/admin/packages
func GetAllPackages(c *gin.Context) {
	packages, err := database.GetAllPackages()
	if err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to get packages: "+err.Error())
		return
	}

	response.SuccessJSON(c, packages)
}

// CreatePackageRequest represents create package request
type CreatePackageRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"min=0"`
	Currency    string  `json:"currency"`
	Features    string  `json:"features"`
}

// CreatePackage creates a new package
// POST /api/admin/packages
func CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if req.Currency == "" {
		req.Currency = "BDT"
	}

	pkg := &models.Package{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Currency:    req.Currency,
		Features:    req.Features,
		IsActive:    true,
	}
	if err := database.CreatePackage(pkg); err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to create package: "+err.Error())
		return
	}

	invalidatePackageCache(c)
	response.CreatedJSON(c, pkg)
}

// UpdatePackageRequest represents update package request
type UpdatePackageRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   *float64 `json:"base_price"`
	Currency    string   `json:"currency"`
	Features    string   `json:"features"`
	IsActive    *bool    `json:"is_active"`
}

// UpdatePackage updates an existing package
// PUT /api/admin/packages/:id
func UpdatePackage(c *gin.Context) {
	packageID := c.Param("id")

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorJSON(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	// Build update map
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			response.ErrorJSON(c, http.StatusBadRequest, "Base price must not be negative")
			return
		}
		updates["base_price"] = *req.BasePrice
	}
	if req.Currency != "" {
		updates["currency"] = req.Currency
	}
	if req.Features != "" {
		updates["features"] = req.Features
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if _, err := database.GetPackageByID(packageID); err != nil {
		response.ErrorJSON(c, http.StatusNotFound, "Package not found")
		return
	}

	if err := database.UpdatePackage(packageID, updates); err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to update package: "+err.Error())
		return
	}

	invalidatePackageCache(c)
	response.SuccessJSON(c, nil)
}

// DeletePackage soft deletes a package
// DELETE /api/admin/packages/:id
func DeletePackage(c *gin.Context) {
	packageID := c.Param("id")

	if _, err := database.GetPackageByID(packageID); err != nil {
		response.ErrorJSON(c, http.StatusNotFound, "Package not found")
		return
	}

	if err := database.DeletePackage(packageID); err != nil {
		response.ErrorJSON(c, http.StatusInternalServerError, "Failed to delete package: "+err.Error())
		return
	}

	invalidatePackageCache(c)
	response.SuccessJSON(c, nil)
}

func invalidatePackageCache(c *gin.Context) {
	if err := services.NewCacheService().InvalidatePackageList(c.Request.Context()); err != nil {
		logging.Errorf("Failed to invalidate package list cache: %v", err)
	}
}
