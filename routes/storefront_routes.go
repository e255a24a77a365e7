package routes

import (
	"time"

	"github.com/digilinkbd/BestWareHub-sub002/controllers/storefront/catalog_controller"
	"github.com/digilinkbd/BestWareHub-sub002/controllers/storefront/category_controller"
	"github.com/digilinkbd/BestWareHub-sub002/controllers/storefront/product_controller"
	"github.com/digilinkbd/BestWareHub-sub002/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")
	store.Use(middleware.RateLimiter(300, time.Minute))

	// Filtered catalog pages
	catalog := store.Group("/catalog")
	{
		catalog.GET("/:slug", catalog_controller.GetCatalogView)
		catalog.GET("/:slug/filters", catalog_controller.GetFilterMetadata)
	}

	// Cursor-paginated sub-category listings
	store.GET("/subcategories/:slug/products", catalog_controller.GetSubCategoryProducts)

	// Product detail
	store.GET("/products/:id", product_controller.GetStorefrontProductByID)

	// Category tree
	store.GET("/categories", category_controller.GetCategories)
}
