// ════════════════════════════════════════════════════════════
// Path: controllers/storefront/catalog_controller/controller.go
// Shared service wiring for the catalog surface
// ════════════════════════════════════════════════════════════

package catalog_controller

import (
	"github.com/digilinkbd/BestWareHub-sub002/cache"
	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/services"
)

var (
	catalogView *services.CatalogViewService
	listing     *services.ListingService
)

// InitCatalogControllers wires the catalog services against the live
// database handles. Called once from main after config.InitDB.
func InitCatalogControllers() {
	qc := cache.New()

	catalogView = services.NewCatalogViewService(
		services.NewGormCatalogStore(config.Gorm),
		services.NewGormFacetStore(config.Gorm),
		services.NewGormCategoryStore(config.Gorm),
		qc,
	)
	listing = services.NewListingService(services.NewGormListingStore(config.Gorm))
}

// CatalogView exposes the shared service for other controller packages.
func CatalogView() *services.CatalogViewService {
	return catalogView
}
