package product_controller

import (
	"errors"
	"net/http"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStorefrontProductByID godoc
// @Summary Get single product details for storefront
// @Description Get detailed product information by ID, including brand, seller and category
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err = config.Gorm.WithContext(ctx).
		Preload("Brand").
		Preload("Seller", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, store_name, slug, logo_url, status")
		}).
		Preload("SubCategory").
		Where("id = ? AND status = 'Active'", productID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	// View counting is best-effort and must not delay the response
	go incrementProductViews(productID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}

// incrementProductViews increments the view count for a product
func incrementProductViews(productID uuid.UUID) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		UPDATE products
		SET views = COALESCE(views, 0) + 1
		WHERE id = ?
	`
	config.Gorm.WithContext(ctx).Exec(query, productID)
}
