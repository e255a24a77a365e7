package models

// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS (customer-facing projections)
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

// ProductCard is the display projection of one listed product. Price is the
// effective price (sale price when present, list price otherwise); OldPrice
// is populated only when the discount flag is set on the product, regardless
// of whether a sale price exists.
type ProductCard struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Image    string   `json:"image"`
	Price    float64  `json:"price"`
	OldPrice *float64 `json:"old_price,omitempty"`
	Discount int      `json:"discount"`
	Rating   float64  `json:"rating"`
	Reviews  int      `json:"reviews"`
	Category string   `json:"category"`
}

// CursorPage is one keyset-paginated page of a sub-category listing.
type CursorPage struct {
	Items      []ProductCard `json:"items"`
	NextCursor *string       `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}

// FacetOption is one selectable value of a filter dimension.
type FacetOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// PriceRange is the min/max effective price within a scope.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterMetadata is the facet data for one sub-category, independent of the
// currently active filter set.
type FilterMetadata struct {
	Brands     []FacetOption `json:"brands"`
	Sellers    []FacetOption `json:"sellers"`
	PriceRange *PriceRange   `json:"price_range"`
}

// CatalogView is everything one filtered catalog page needs from the server.
type CatalogView struct {
	Products      []ProductCard    `json:"products"`
	Total         int              `json:"total"`
	TotalPages    int              `json:"total_pages"`
	ActiveFilters []string         `json:"active_filters"`
	Brands        []FacetOption    `json:"brands"`
	Sellers       []FacetOption    `json:"sellers"`
	Categories    []CategoryNode   `json:"categories"`
	Breadcrumb    []BreadcrumbItem `json:"breadcrumb"`
}
