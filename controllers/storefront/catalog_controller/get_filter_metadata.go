package catalog_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/digilinkbd/BestWareHub-sub002/services"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get facet metadata for a sub-category
// @Description Returns the brand list, seller list and price range available within one sub-category. The lists are independent of any active filter selection.
// @Tags Storefront - Catalog
// @Produce json
// @Param slug path string true "Sub-category slug"
// @Success 200 {object} models.ApiResponse "Filter metadata fetched successfully"
// @Failure 404 {object} models.ApiResponse "Sub-category not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/catalog/{slug}/filters [get]
func GetFilterMetadata(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	meta, err := catalogView.FilterMetadata(ctx, slug)
	if err != nil {
		if errors.Is(err, services.ErrScopeNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Sub-category not found"))
			return
		}
		log.Printf("[catalog.filters] failed for %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
}
