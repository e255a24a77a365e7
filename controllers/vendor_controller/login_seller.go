package vendor_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/digilinkbd/BestWareHub-sub002/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginSeller godoc
// @Summary Seller login
// @Description Authenticates a seller with email and password and returns a vendor token. Suspended sellers cannot sign in.
// @Tags Vendor - Auth
// @Accept json
// @Produce json
// @Param credentials body models.SellerLoginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse "Login successful"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Router /vendors/login [post]
func LoginSeller(c *gin.Context) {
	var req models.SellerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var seller models.Seller
	err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&seller).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(seller.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if seller.Status == "Suspended" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account suspended"))
		return
	}

	token, err := services.GetJWTService().GenerateSellerJWT(seller.ID.String(), seller.Email)
	if err != nil {
		log.Printf("[vendor.login] token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}

	log.Printf("✅ Seller login: %s", seller.Email)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.SellerLoginResponse{
		Token:  token,
		Seller: &seller,
	}))
}
