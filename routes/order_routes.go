package routes

import (
	"time"

	"github.com/digilinkbd/BestWareHub-sub002/controllers/ecommerce/order_controller"
	"github.com/digilinkbd/BestWareHub-sub002/middleware"
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes sets up the customer order routes (all authenticated)
func SetupOrderRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	orders.Use(middleware.CustomerAuthMiddleware())
	orders.Use(middleware.RateLimiter(60, time.Minute))
	{
		orders.POST("", order_controller.CreateOrder)
		orders.GET("", order_controller.GetOrders)
		orders.GET("/:id", order_controller.GetOrderDetails)
		orders.GET("/:id/download-invoice", order_controller.DownloadOrderInvoice)
	}
}
