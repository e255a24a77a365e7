package middleware

import (
	"net/http"

	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/digilinkbd/BestWareHub-sub002/services"
	"github.com/digilinkbd/BestWareHub-sub002/utils"
	"github.com/gin-gonic/gin"
)

// SellerAuthMiddleware validates the seller token issued at vendor login.
// Seller tokens are separate from customer sessions and only grant access
// to the vendor surface.
func SellerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
			c.Abort()
			return
		}

		claims, err := services.GetJWTService().VerifySellerJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("sellerID", claims.SellerID)
		c.Set("sellerEmail", claims.Email)

		c.Next()
	}
}

func GetSellerIDFromContext(c *gin.Context) (string, bool) {
	sellerID, exists := c.Get("sellerID")
	if !exists {
		return "", false
	}
	return sellerID.(string), true
}
