package routes

import (
	"time"

	"github.com/digilinkbd/BestWareHub-sub002/controllers/vendor_controller"
	"github.com/digilinkbd/BestWareHub-sub002/middleware"
	"github.com/gin-gonic/gin"
)

// SetupVendorRoutes sets up the seller-facing routes
func SetupVendorRoutes(router *gin.RouterGroup) {
	vendors := router.Group("/vendors")
	vendors.Use(middleware.RateLimiter(60, time.Minute))

	// Public seller auth
	vendors.POST("/register", vendor_controller.RegisterSeller)
	vendors.POST("/login", vendor_controller.LoginSeller)

	// Seller-only surface
	products := vendors.Group("/products")
	products.Use(middleware.SellerAuthMiddleware())
	{
		products.POST("", vendor_controller.CreateProduct)
		products.GET("", vendor_controller.GetSellerProducts)
	}
}
