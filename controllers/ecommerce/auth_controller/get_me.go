package auth_controller

import (
	"net/http"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/middleware"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Get the signed-in customer
// @Description Returns the profile of the customer behind the current session token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Profile fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "User not found"
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Gorm.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", user))
}
