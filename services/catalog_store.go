package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/digilinkbd/BestWareHub-sub002/filters"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormListingStore implements ListingStore against Postgres through GORM.
type GormListingStore struct {
	db *gorm.DB
}

func NewGormListingStore(db *gorm.DB) *GormListingStore {
	return &GormListingStore{db: db}
}

func (s *GormListingStore) ResolveScope(ctx context.Context, slug string) (string, string, error) {
	var row struct {
		ID   string
		Name string
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT id::text AS id, name
		FROM categories
		WHERE slug = ? AND parent_id IS NOT NULL AND status = 'Active'
	`, slug).Scan(&row).Error
	if err != nil {
		return "", "", err
	}
	if row.ID == "" {
		return "", "", ErrScopeNotFound
	}
	return row.ID, row.Name, nil
}

// FetchAfter pages through the listing with a keyset predicate. Postgres row
// comparison is lexicographic, so (is_featured, created_at, id) < cursor-row
// selects exactly the rows after the cursor in the DESC/DESC/DESC order.
// A cursor that is not a UUID is ignored rather than rejected.
func (s *GormListingStore) FetchAfter(ctx context.Context, scopeID string, cursor *string, n int) ([]ListingRow, error) {
	query := `
		SELECT
			p.id::text AS id,
			p.name,
			p.slug,
			COALESCE(p.media->'primary'->>'url', '') AS image,
			p.price,
			p.sale_price,
			p.is_discount,
			p.discount,
			p.rating,
			(SELECT COUNT(*) FROM reviews r WHERE r.product_id = p.id)::int AS review_count,
			c.name AS category_name,
			p.is_featured,
			p.created_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.sub_category_id
		WHERE p.sub_category_id = ? AND p.status = 'Active'
	`
	args := []interface{}{scopeID}

	if cursor != nil {
		if _, err := uuid.Parse(*cursor); err == nil {
			query += `
		AND (p.is_featured, p.created_at, p.id) < (
			SELECT cp.is_featured, cp.created_at, cp.id
			FROM products cp WHERE cp.id = ?
		)`
			args = append(args, *cursor)
		}
	}

	query += `
		ORDER BY p.is_featured DESC, p.created_at DESC, p.id DESC
		LIMIT ?`
	args = append(args, n)

	rows := make([]ListingRow, 0, n)
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ─────────────────────────────────────────────────────────────
// Filtered catalog store (offset flow)
// ─────────────────────────────────────────────────────────────

// CatalogStore runs the filtered, sorted, offset-paged catalog query.
type CatalogStore interface {
	// FetchFiltered returns one page plus the unpaged total. Unknown slugs
	// yield ErrScopeNotFound.
	FetchFiltered(ctx context.Context, p filters.Params) ([]models.ProductCard, int, error)
}

type GormCatalogStore struct {
	db *gorm.DB
}

func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{db: db}
}

func (s *GormCatalogStore) FetchFiltered(ctx context.Context, p filters.Params) ([]models.ProductCard, int, error) {
	var scope struct {
		ID   string
		Name string
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT id::text AS id, name
		FROM categories
		WHERE slug = ? AND parent_id IS NOT NULL AND status = 'Active'
	`, p.SubCategorySlug).Scan(&scope).Error
	if err != nil {
		return nil, 0, err
	}
	if scope.ID == "" {
		return nil, 0, ErrScopeNotFound
	}

	whereClause, args := buildCatalogWhere(scope.ID, p)
	orderClause := buildCatalogOrder(p.Sort)

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM products p
		WHERE %s
	`, whereClause)

	var total int64
	if err := s.db.WithContext(ctx).Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	dataQuery := fmt.Sprintf(`
		SELECT
			p.id::text AS id,
			p.name,
			p.slug,
			COALESCE(p.media->'primary'->>'url', '') AS image,
			p.price,
			p.sale_price,
			p.is_discount,
			p.discount,
			p.rating,
			(SELECT COUNT(*) FROM reviews r WHERE r.product_id = p.id)::int AS review_count,
			c.name AS category_name,
			p.is_featured,
			p.created_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.sub_category_id
		WHERE %s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, whereClause, orderClause)

	offset := (p.Page - 1) * p.Limit
	dataArgs := append(args, p.Limit, offset)

	rows := make([]ListingRow, 0, p.Limit)
	if err := s.db.WithContext(ctx).Raw(dataQuery, dataArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	cards := make([]models.ProductCard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, projectCard(row, scope.Name))
	}
	return cards, int(total), nil
}

// buildCatalogWhere translates the filter params into SQL predicates. Every
// facet is additive (AND across dimensions, IN/ANY within one dimension).
func buildCatalogWhere(scopeID string, p filters.Params) (string, []interface{}) {
	conditions := []string{"p.status = 'Active'", "p.sub_category_id = ?"}
	args := []interface{}{scopeID}

	if len(p.BrandIDs) > 0 {
		placeholders := make([]string, len(p.BrandIDs))
		for i, id := range p.BrandIDs {
			placeholders[i] = "?"
			args = append(args, id)
		}
		conditions = append(conditions,
			fmt.Sprintf("p.brand_id::text IN (%s)", strings.Join(placeholders, ",")))
	}

	// effective price: sale price wins when present
	if p.MinPrice != nil {
		conditions = append(conditions, "COALESCE(p.sale_price, p.price) >= ?")
		args = append(args, *p.MinPrice)
	}
	if p.MaxPrice != nil {
		conditions = append(conditions, "COALESCE(p.sale_price, p.price) <= ?")
		args = append(args, *p.MaxPrice)
	}

	if p.Rating != nil {
		conditions = append(conditions, "p.rating >= ?")
		args = append(args, *p.Rating)
	}

	switch p.NewArrivals {
	case filters.ArrivalLast7:
		conditions = append(conditions, "p.created_at >= NOW() - INTERVAL '7 days'")
	case filters.ArrivalLast30:
		conditions = append(conditions, "p.created_at >= NOW() - INTERVAL '30 days'")
	case filters.ArrivalLast60:
		conditions = append(conditions, "p.created_at >= NOW() - INTERVAL '60 days'")
	}

	if len(p.Deals) > 0 {
		placeholders := make([]string, len(p.Deals))
		for i, tag := range p.Deals {
			placeholders[i] = "?"
			args = append(args, tag)
		}
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(p.deal_tags) AS tag
			WHERE tag IN (%s)
		)`, strings.Join(placeholders, ",")))
	}

	if len(p.Sellers) > 0 {
		placeholders := make([]string, len(p.Sellers))
		for i, id := range p.Sellers {
			placeholders[i] = "?"
			args = append(args, id)
		}
		conditions = append(conditions,
			fmt.Sprintf("p.seller_id::text IN (%s)", strings.Join(placeholders, ",")))
	}

	if len(p.DeliveryModes) > 0 {
		placeholders := make([]string, len(p.DeliveryModes))
		for i, mode := range p.DeliveryModes {
			placeholders[i] = "?"
			args = append(args, mode)
		}
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(p.delivery_modes) AS mode
			WHERE mode IN (%s)
		)`, strings.Join(placeholders, ",")))
	}

	return strings.Join(conditions, " AND "), args
}

// buildCatalogOrder maps the sort enum to a deterministic ORDER BY; the id
// tie-break keeps page boundaries stable.
func buildCatalogOrder(sort string) string {
	switch sort {
	case filters.SortPriceLowHigh:
		return "COALESCE(p.sale_price, p.price) ASC, p.id DESC"
	case filters.SortPriceHighLow:
		return "COALESCE(p.sale_price, p.price) DESC, p.id DESC"
	case filters.SortNewest:
		return "p.created_at DESC, p.id DESC"
	default: // recommended
		return "p.is_featured DESC, p.created_at DESC, p.id DESC"
	}
}
