package services

import (
	"context"

	"github.com/digilinkbd/BestWareHub-sub002/models"
	"gorm.io/gorm"
)

// FacetStore supplies the filter sidebar data for one sub-category. Facet
// lists are independent of the currently active filter set, so they key (and
// cache) on the slug alone.
type FacetStore interface {
	BrandFacets(ctx context.Context, slug string) ([]models.FacetOption, error)
	SellerFacets(ctx context.Context, slug string) ([]models.FacetOption, error)
	PriceRange(ctx context.Context, slug string) (*models.PriceRange, error)
}

type GormFacetStore struct {
	db *gorm.DB
}

func NewGormFacetStore(db *gorm.DB) *GormFacetStore {
	return &GormFacetStore{db: db}
}

func (s *GormFacetStore) BrandFacets(ctx context.Context, slug string) ([]models.FacetOption, error) {
	query := `
		SELECT
			b.id::text AS id,
			b.title,
			COUNT(p.id)::int AS count
		FROM brands b
		JOIN products p ON p.brand_id = b.id AND p.status = 'Active'
		JOIN categories c ON c.id = p.sub_category_id
		WHERE c.slug = ? AND b.status = 'Active'
		GROUP BY b.id, b.title
		HAVING COUNT(p.id) > 0
		ORDER BY b.title ASC
	`
	options := make([]models.FacetOption, 0)
	if err := s.db.WithContext(ctx).Raw(query, slug).Scan(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (s *GormFacetStore) SellerFacets(ctx context.Context, slug string) ([]models.FacetOption, error) {
	query := `
		SELECT
			sl.id::text AS id,
			sl.store_name AS title,
			COUNT(p.id)::int AS count
		FROM sellers sl
		JOIN products p ON p.seller_id = sl.id AND p.status = 'Active'
		JOIN categories c ON c.id = p.sub_category_id
		WHERE c.slug = ? AND sl.status = 'Active'
		GROUP BY sl.id, sl.store_name
		HAVING COUNT(p.id) > 0
		ORDER BY sl.store_name ASC
	`
	options := make([]models.FacetOption, 0)
	if err := s.db.WithContext(ctx).Raw(query, slug).Scan(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (s *GormFacetStore) PriceRange(ctx context.Context, slug string) (*models.PriceRange, error) {
	query := `
		SELECT
			COALESCE(MIN(COALESCE(p.sale_price, p.price)), 0) AS min,
			COALESCE(MAX(COALESCE(p.sale_price, p.price)), 0) AS max
		FROM products p
		JOIN categories c ON c.id = p.sub_category_id
		WHERE c.slug = ? AND p.status = 'Active'
	`
	var pr models.PriceRange
	if err := s.db.WithContext(ctx).Raw(query, slug).Scan(&pr).Error; err != nil {
		return nil, err
	}
	return &pr, nil
}
