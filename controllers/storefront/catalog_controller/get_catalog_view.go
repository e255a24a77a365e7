package catalog_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/filters"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/digilinkbd/BestWareHub-sub002/services"
	"github.com/gin-gonic/gin"
)

// GetCatalogView godoc
// @Summary Get filtered catalog page for a sub-category
// @Description Returns products, facet lists, category tree, breadcrumb and active filter labels for one sub-category in a single response. Unknown query keys and malformed values are ignored.
// @Tags Storefront - Catalog
// @Produce json
// @Param slug path string true "Sub-category slug"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(50)
// @Param sort query string false "Sort order (recommended | price-low-high | price-high-low | newest)" default(recommended)
// @Param brand query []string false "Brand slugs (repeatable)"
// @Param minPrice query number false "Minimum effective price"
// @Param maxPrice query number false "Maximum effective price"
// @Param rating query int false "Minimum rating (1-5)"
// @Param arrival query string false "Arrival window (last-7 | last-30 | last-60)"
// @Param deal query []string false "Deal tags (repeatable)"
// @Param seller query []string false "Seller slugs (repeatable)"
// @Param delivery query []string false "Delivery modes (repeatable)"
// @Success 200 {object} models.ApiResponse "Catalog page fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid price range"
// @Failure 404 {object} models.ApiResponse "Sub-category not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/catalog/{slug} [get]
func GetCatalogView(c *gin.Context) {
	slug := c.Param("slug")

	params, err := filters.Decode(slug, c.Request.URL.Query())
	if err != nil {
		if errors.Is(err, filters.ErrPriceRange) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "minPrice cannot exceed maxPrice"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid filter parameters"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	view, err := catalogView.View(ctx, params)
	if err != nil {
		if errors.Is(err, services.ErrScopeNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Sub-category not found"))
			return
		}
		log.Printf("[catalog.view] failed for %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch catalog"))
		return
	}

	meta := &models.Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      view.Total,
		TotalPages: view.TotalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Catalog page fetched successfully", view, meta))
}
