package vendor_controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/controllers/storefront/catalog_controller"
	"github.com/digilinkbd/BestWareHub-sub002/middleware"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/digilinkbd/BestWareHub-sub002/services"
	"github.com/digilinkbd/BestWareHub-sub002/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Creates a product for the signed-in seller. Send a multipart form with a "data" JSON field and one or more "images" file parts; the first image becomes the primary one. New products start in Draft status unless Active is requested.
// @Tags Vendor - Products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param data formData string true "Product details JSON (models.ProductRequest)"
// @Param images formData file true "Product images, primary first"
// @Success 201 {object} models.ApiResponse "Product created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /vendors/products [post]
func CreateProduct(c *gin.Context) {
	sellerIDStr, ok := middleware.GetSellerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	sellerID, err := uuid.Parse(sellerIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid seller ID"))
		return
	}

	var req models.ProductRequest
	if err := json.Unmarshal([]byte(c.PostForm("data")), &req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product data: "+err.Error()))
		return
	}
	if req.Name == "" || req.Price < 0 || req.SubCategoryID == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, price and sub_category_id are required"))
		return
	}
	if req.Status == "" {
		req.Status = "Draft"
	}
	if req.Status != "Active" && req.Status != "Draft" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Status must be Active or Draft"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}
	images := form.File["images"]
	if len(images) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one product image is required"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	// Validate subcategory exists and is a leaf
	var subCategory models.Category
	if err := config.Gorm.WithContext(ctx).
		Select("id, name, slug, parent_id").
		First(&subCategory, "id = ? AND parent_id IS NOT NULL", req.SubCategoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sub_category_id"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	cld := services.GetCloudinaryService()
	if cld == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Media uploads not configured"))
		return
	}

	urls, err := cld.UploadProductImages(ctx, images, sellerID.String())
	if err != nil {
		log.Printf("[vendor.create-product] upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	media := models.ProductMedia{Primary: models.MediaURL{URL: urls[0]}}
	for i, url := range urls[1:] {
		order := i + 1
		media.Other = append(media.Other, models.MediaURL{URL: url, Order: &order})
	}

	slug := utils.Slugify(req.Name)
	var taken int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("slug = ? OR slug LIKE ?", slug, slug+"-%").
		Count(&taken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if taken > 0 {
		slug = fmt.Sprintf("%s-%d", slug, taken+1)
	}

	dealTags := models.TagsList(req.DealTags)
	if dealTags == nil {
		dealTags = models.TagsList{}
	}
	deliveryModes := models.TagsList(req.DeliveryModes)
	if deliveryModes == nil {
		deliveryModes = models.TagsList{}
	}

	product := models.Product{
		Name:          req.Name,
		Slug:          slug,
		Description:   req.Description,
		Price:         req.Price,
		SalePrice:     req.SalePrice,
		IsDiscount:    req.IsDiscount,
		Discount:      req.Discount,
		BrandID:       req.BrandID,
		SellerID:      sellerID,
		SubCategoryID: req.SubCategoryID,
		Status:        req.Status,
		DealTags:      dealTags,
		DeliveryModes: deliveryModes,
		Media:         media,
		Stock:         req.Stock,
	}

	if err := config.Gorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[vendor.create-product] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	log.Printf("✅ Product created: %s (%s) by seller %s", product.Name, product.ID, sellerID)

	// Cached catalog pages for this sub-category are now stale
	if product.Status == "Active" {
		if view := catalog_controller.CatalogView(); view != nil {
			view.InvalidateScope(subCategory.Slug)
		}
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
