package vendor_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/digilinkbd/BestWareHub-sub002/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// RegisterSeller godoc
// @Summary Register a new seller
// @Description Creates a seller account in Pending status. The store slug is derived from the store name and made unique.
// @Tags Vendor - Auth
// @Accept json
// @Produce json
// @Param seller body models.SellerRegisterRequest true "Seller details"
// @Success 201 {object} models.ApiResponse "Seller registered successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Email or store name already taken"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /vendors/register [post]
func RegisterSeller(c *gin.Context) {
	var req models.SellerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Seller{}).
		Where("email = ?", req.Email).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to hash password"))
		return
	}

	slug := utils.Slugify(req.StoreName)
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid store name"))
		return
	}

	// Append a counter when the slug is already taken
	var taken int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Seller{}).
		Where("slug = ? OR slug LIKE ?", slug, slug+"-%").
		Count(&taken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if taken > 0 {
		slug = fmt.Sprintf("%s-%d", slug, taken+1)
	}

	seller := models.Seller{
		StoreName:    req.StoreName,
		Slug:         slug,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Status:       "Pending",
	}

	if err := config.Gorm.WithContext(ctx).Create(&seller).Error; err != nil {
		log.Printf("[vendor.register] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register seller"))
		return
	}

	log.Printf("✅ Seller registered: %s (%s)", seller.StoreName, seller.Slug)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Seller registered successfully", seller))
}
