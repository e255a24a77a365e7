package services

import (
	"context"
	"errors"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/digilinkbd/BestWareHub-sub002/cache"
	"github.com/digilinkbd/BestWareHub-sub002/filters"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogStore struct {
	calls int32
	cards []models.ProductCard
	total int
	err   error
}

func (f *fakeCatalogStore) FetchFiltered(ctx context.Context, p filters.Params) ([]models.ProductCard, int, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.cards, f.total, nil
}

type fakeFacetStore struct {
	brandCalls  int32
	sellerCalls int32
	brands      []models.FacetOption
	sellers     []models.FacetOption
	prices      *models.PriceRange
	err         error
}

func (f *fakeFacetStore) BrandFacets(ctx context.Context, slug string) ([]models.FacetOption, error) {
	atomic.AddInt32(&f.brandCalls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.brands, nil
}

func (f *fakeFacetStore) SellerFacets(ctx context.Context, slug string) ([]models.FacetOption, error) {
	atomic.AddInt32(&f.sellerCalls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.sellers, nil
}

func (f *fakeFacetStore) PriceRange(ctx context.Context, slug string) (*models.PriceRange, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.prices, nil
}

type fakeCategoryStore struct {
	breadcrumbCalls int32
	tree            []models.CategoryNode
	breadcrumb      []models.BreadcrumbItem
	err             error
}

func (f *fakeCategoryStore) Tree(ctx context.Context) ([]models.CategoryNode, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tree, nil
}

func (f *fakeCategoryStore) Breadcrumb(ctx context.Context, slug string) ([]models.BreadcrumbItem, error) {
	atomic.AddInt32(&f.breadcrumbCalls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.breadcrumb, nil
}

func newViewService(catalog *fakeCatalogStore, facets *fakeFacetStore, categories *fakeCategoryStore) *CatalogViewService {
	return NewCatalogViewService(catalog, facets, categories, cache.New())
}

func mustParseQuery(t *testing.T, query string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(query)
	require.NoError(t, err)
	return v
}

func catalogParams(t *testing.T, slug, query string) filters.Params {
	t.Helper()
	p, err := filters.Decode(slug, mustParseQuery(t, query))
	require.NoError(t, err)
	return p
}

func TestViewAssemblesAllSubQueries(t *testing.T) {
	catalog := &fakeCatalogStore{
		cards: []models.ProductCard{{ID: "p1", Name: "Primo S9", Price: 21999}},
		total: 130,
	}
	facets := &fakeFacetStore{
		brands:  []models.FacetOption{{ID: "b1", Title: "Walton", Count: 12}},
		sellers: []models.FacetOption{{ID: "s1", Title: "TechHub BD", Count: 4}},
	}
	categories := &fakeCategoryStore{
		tree:       []models.CategoryNode{{Name: "Electronics", Slug: "electronics"}},
		breadcrumb: []models.BreadcrumbItem{{Label: "Home", Href: "/"}, {Label: "Phones", Href: "/store/phones"}},
	}
	svc := newViewService(catalog, facets, categories)

	view, err := svc.View(context.Background(), catalogParams(t, "phones", "brand=b1&seller=s1"))
	require.NoError(t, err)

	assert.Equal(t, catalog.cards, view.Products)
	assert.Equal(t, 130, view.Total)
	assert.Equal(t, 3, view.TotalPages) // 130 items at the default limit of 50
	assert.Equal(t, facets.brands, view.Brands)
	assert.Equal(t, categories.breadcrumb, view.Breadcrumb)
	// labels resolved through the facet titles
	assert.Equal(t, []string{"Brand: Walton", "Seller: TechHub BD"}, view.ActiveFilters)
}

// A facet failure must not take down the listing.
func TestViewDegradesWhenFacetsFail(t *testing.T) {
	catalog := &fakeCatalogStore{cards: []models.ProductCard{{ID: "p1"}}, total: 1}
	facets := &fakeFacetStore{err: errors.New("facet db down")}
	categories := &fakeCategoryStore{}
	svc := newViewService(catalog, facets, categories)

	view, err := svc.View(context.Background(), catalogParams(t, "phones", ""))
	require.NoError(t, err)

	assert.Len(t, view.Products, 1)
	assert.Empty(t, view.Brands)
	assert.Empty(t, view.Sellers)
}

func TestViewListingFailureSurfaces(t *testing.T) {
	catalog := &fakeCatalogStore{err: ErrScopeNotFound}
	svc := newViewService(catalog, &fakeFacetStore{}, &fakeCategoryStore{})

	_, err := svc.View(context.Background(), catalogParams(t, "no-such", ""))
	assert.ErrorIs(t, err, ErrScopeNotFound)
}

// The breadcrumb depends only on the slug: changing price/brand filters must
// reuse the cached trail instead of refetching it.
func TestViewBreadcrumbCachedAcrossFilterChanges(t *testing.T) {
	catalog := &fakeCatalogStore{}
	categories := &fakeCategoryStore{breadcrumb: []models.BreadcrumbItem{{Label: "Home", Href: "/"}}}
	svc := newViewService(catalog, &fakeFacetStore{}, categories)

	_, err := svc.View(context.Background(), catalogParams(t, "phones", ""))
	require.NoError(t, err)
	_, err = svc.View(context.Background(), catalogParams(t, "phones", "minPrice=10&maxPrice=50"))
	require.NoError(t, err)

	assert.EqualValues(t, 1, atomic.LoadInt32(&categories.breadcrumbCalls))
	// the listing key includes the filters, so it was fetched twice
	assert.EqualValues(t, 2, atomic.LoadInt32(&catalog.calls))
}

func TestViewListingCacheKeyIgnoresSetOrder(t *testing.T) {
	catalog := &fakeCatalogStore{}
	svc := newViewService(catalog, &fakeFacetStore{}, &fakeCategoryStore{})

	_, err := svc.View(context.Background(), catalogParams(t, "phones", "brand=b1&brand=b2"))
	require.NoError(t, err)
	_, err = svc.View(context.Background(), catalogParams(t, "phones", "brand=b2&brand=b1"))
	require.NoError(t, err)

	assert.EqualValues(t, 1, atomic.LoadInt32(&catalog.calls))
}

func TestFilterMetadata(t *testing.T) {
	facets := &fakeFacetStore{
		brands:  []models.FacetOption{{ID: "b1", Title: "Walton", Count: 3}},
		sellers: []models.FacetOption{{ID: "s1", Title: "TechHub BD", Count: 2}},
		prices:  &models.PriceRange{Min: 500, Max: 90000},
	}
	svc := newViewService(&fakeCatalogStore{}, facets, &fakeCategoryStore{})

	meta, err := svc.FilterMetadata(context.Background(), "phones")
	require.NoError(t, err)
	assert.Equal(t, facets.brands, meta.Brands)
	assert.Equal(t, facets.sellers, meta.Sellers)
	assert.Equal(t, facets.prices, meta.PriceRange)
}

func TestInvalidateScopeForcesRefetch(t *testing.T) {
	facets := &fakeFacetStore{brands: []models.FacetOption{{ID: "b1", Title: "Walton"}}}
	svc := newViewService(&fakeCatalogStore{}, facets, &fakeCategoryStore{})

	_, err := svc.FilterMetadata(context.Background(), "phones")
	require.NoError(t, err)

	svc.InvalidateScope("phones")

	_, err = svc.FilterMetadata(context.Background(), "phones")
	require.NoError(t, err)

	assert.EqualValues(t, 2, atomic.LoadInt32(&facets.brandCalls))
}
