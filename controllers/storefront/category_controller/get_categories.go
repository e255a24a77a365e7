package category_controller

import (
	"log"
	"net/http"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/digilinkbd/BestWareHub-sub002/services"
	"github.com/gin-gonic/gin"
)

var categoryStore services.CategoryStore

// InitCategoryController wires the category store. Called once from main.
func InitCategoryController() {
	categoryStore = services.NewGormCategoryStore(config.Gorm)
}

// GetCategories godoc
// @Summary Get the storefront category tree
// @Description Returns parent categories with their sub-categories and product counts. Categories with zero active products are included so navigation stays stable.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	tree, err := categoryStore.Tree(ctx)
	if err != nil {
		log.Printf("[categories.tree] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", tree))
}
