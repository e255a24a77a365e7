package catalog_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/digilinkbd/BestWareHub-sub002/services"
	"github.com/gin-gonic/gin"
)

// GetSubCategoryProducts godoc
// @Summary Get sub-category products with cursor pagination
// @Description Returns one keyset-paginated page of product cards for a sub-category, featured products first then newest. Pass the returned next_cursor to fetch the following page.
// @Tags Storefront - Catalog
// @Produce json
// @Param slug path string true "Sub-category slug"
// @Param cursor query string false "Opaque cursor from the previous page"
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 404 {object} models.ApiResponse "Sub-category not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/subcategories/{slug}/products [get]
func GetSubCategoryProducts(c *gin.Context) {
	slug := c.Param("slug")

	limit := 12
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	var cursor *string
	if raw := c.Query("cursor"); raw != "" {
		cursor = &raw
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	page, err := listing.List(ctx, slug, cursor, limit)
	if err != nil {
		if errors.Is(err, services.ErrScopeNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Sub-category not found"))
			return
		}
		log.Printf("[catalog.listing] failed for %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	cursorMeta := &models.CursorMeta{
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}

	c.JSON(http.StatusOK, models.CursorResponse(c, "Products fetched successfully", page.Items, cursorMeta))
}
