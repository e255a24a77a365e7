package services

import (
	"context"
	"errors"
	"time"

	"github.com/digilinkbd/BestWareHub-sub002/models"
)

// ErrScopeNotFound distinguishes "this sub-category does not exist" from a
// valid scope with zero products. Handlers map it to 404.
var ErrScopeNotFound = errors.New("sub-category not found")

// ListingRow is the raw row the store hands back, before display projection.
type ListingRow struct {
	ID           string
	Name         string
	Slug         string
	Image        string
	Price        float64
	SalePrice    *float64
	IsDiscount   bool
	Discount     *int
	Rating       float64
	ReviewCount  int
	CategoryName *string
	IsFeatured   bool
	CreatedAt    time.Time
}

// ListingStore fetches products for one sub-category in the fixed listing
// order: is_featured DESC, created_at DESC, id DESC. The id tie-break makes
// the ordering total, which keyset pagination depends on.
type ListingStore interface {
	// ResolveScope maps a sub-category slug to its id and display name.
	// Returns ErrScopeNotFound for unknown slugs.
	ResolveScope(ctx context.Context, slug string) (scopeID string, name string, err error)

	// FetchAfter returns up to n rows strictly after the cursor row in the
	// listing order. A nil cursor starts from the top; a cursor that no
	// longer matches any row yields no rows.
	FetchAfter(ctx context.Context, scopeID string, cursor *string, n int) ([]ListingRow, error)
}

// ListingService is the cursor-paginated product listing executor for
// sub-category pages.
type ListingService struct {
	store ListingStore
}

func NewListingService(store ListingStore) *ListingService {
	return &ListingService{store: store}
}

// List returns one page of the sub-category listing. It fetches limit+1 rows
// to detect whether another page exists; the extra row is discarded after
// setting HasMore. NextCursor is the id of the last returned item when more
// pages remain, nil otherwise. An empty scope is a valid empty page, not an
// error.
func (s *ListingService) List(ctx context.Context, slug string, cursor *string, limit int) (*models.CursorPage, error) {
	if limit < 1 {
		limit = 12
	}

	scopeID, categoryName, err := s.store.ResolveScope(ctx, slug)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.FetchAfter(ctx, scopeID, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	items := make([]models.ProductCard, 0, len(rows))
	for _, row := range rows {
		items = append(items, projectCard(row, categoryName))
	}

	page := &models.CursorPage{
		Items:   items,
		HasMore: hasMore,
	}
	if hasMore {
		next := rows[limit-1].ID
		page.NextCursor = &next
	}
	return page, nil
}

// projectCard turns a stored row into its display record. The effective
// price prefers the sale price; the old price is shown only when the product
// is flagged as discounted - a sale price alone does not strike through the
// list price.
func projectCard(row ListingRow, fallbackCategory string) models.ProductCard {
	card := models.ProductCard{
		ID:      row.ID,
		Name:    row.Name,
		Slug:    row.Slug,
		Image:   row.Image,
		Price:   row.Price,
		Rating:  row.Rating,
		Reviews: row.ReviewCount,
	}

	if row.SalePrice != nil {
		card.Price = *row.SalePrice
	}
	if row.IsDiscount {
		old := row.Price
		card.OldPrice = &old
	}
	if row.Discount != nil {
		card.Discount = *row.Discount
	}

	if row.CategoryName != nil && *row.CategoryName != "" {
		card.Category = *row.CategoryName
	} else {
		card.Category = fallbackCategory
	}

	return card
}
