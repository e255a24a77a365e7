package routes

import (
	"time"

	"github.com/digilinkbd/BestWareHub-sub002/controllers/ecommerce/auth_controller"
	"github.com/digilinkbd/BestWareHub-sub002/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up customer authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.Use(middleware.RateLimiter(30, time.Minute))
	{
		// Google OAuth routes
		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/me", middleware.CustomerAuthMiddleware(), auth_controller.GetMe)
	}
}
