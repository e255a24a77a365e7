package auth_controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func upsertCustomer(c *gin.Context, claims *googleIDClaims) (*models.User, error) {
	ctx := c.Request.Context()
	now := time.Now()

	var user models.User
	result := config.Gorm.WithContext(ctx).
		Where("google_sub = ? OR email = ?", claims.Sub, claims.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google sign-in, create the customer
			user = models.User{
				Email:     claims.Email,
				Name:      claims.Name,
				AvatarURL: claims.Picture,
				GoogleSub: claims.Sub,
				LastLogin: &now,
			}

			if err := config.Gorm.WithContext(ctx).Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing customer: refresh profile fields from Google
	updates := map[string]interface{}{
		"avatar_url": claims.Picture,
		"last_login": now,
	}

	// Only set name if the account never had one
	if user.Name == "" {
		updates["name"] = claims.Name
	}

	// Attach Google account if not already linked
	if user.GoogleSub == "" {
		updates["google_sub"] = claims.Sub
	}

	if err := config.Gorm.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if user.Name == "" {
		user.Name = claims.Name
	}
	user.AvatarURL = claims.Picture
	user.LastLogin = &now

	return &user, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
