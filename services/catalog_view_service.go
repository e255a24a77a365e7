package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/digilinkbd/BestWareHub-sub002/cache"
	"github.com/digilinkbd/BestWareHub-sub002/filters"
	"github.com/digilinkbd/BestWareHub-sub002/models"
)

// Staleness windows per sub-query. The listing changes with every filter so
// it gets a short window; the hierarchy barely moves.
const (
	listingTTL    = 30 * time.Second
	facetTTL      = 5 * time.Minute
	treeTTL       = 5 * time.Minute
	breadcrumbTTL = 10 * time.Minute
)

// CatalogViewService coordinates the independently-cached queries behind one
// filtered catalog page. Each sub-query is keyed by exactly the params it
// depends on: the listing by the full filter set, facets and breadcrumb by
// the slug alone, the tree by nothing. A failing facet query degrades to an
// empty facet list; only a listing failure fails the view.
type CatalogViewService struct {
	catalog    CatalogStore
	facets     FacetStore
	categories CategoryStore
	cache      *cache.QueryCache
}

func NewCatalogViewService(catalog CatalogStore, facets FacetStore, categories CategoryStore, qc *cache.QueryCache) *CatalogViewService {
	return &CatalogViewService{
		catalog:    catalog,
		facets:     facets,
		categories: categories,
		cache:      qc,
	}
}

type listingResult struct {
	cards []models.ProductCard
	total int
}

// View executes the five sub-queries concurrently and assembles the page.
func (s *CatalogViewService) View(ctx context.Context, p filters.Params) (*models.CatalogView, error) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex

		listing    listingResult
		listingErr error
		brands     []models.FacetOption
		sellers    []models.FacetOption
		tree       []models.CategoryNode
		breadcrumb []models.BreadcrumbItem
	)

	slug := p.SubCategorySlug

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := s.cache.Get(ctx, "listing:"+p.CacheKey(), listingTTL, func(ctx context.Context) (any, error) {
			cards, total, err := s.catalog.FetchFiltered(ctx, p)
			if err != nil {
				return nil, err
			}
			return listingResult{cards: cards, total: total}, nil
		})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			listingErr = err
			return
		}
		listing = v.(listingResult)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := s.cache.Get(ctx, "brands:"+slug, facetTTL, func(ctx context.Context) (any, error) {
			return s.facets.BrandFacets(ctx, slug)
		})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			log.Printf("[catalog.view] brand facets failed for %s: %v", slug, err)
			return
		}
		brands = v.([]models.FacetOption)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := s.cache.Get(ctx, "sellers:"+slug, facetTTL, func(ctx context.Context) (any, error) {
			return s.facets.SellerFacets(ctx, slug)
		})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			log.Printf("[catalog.view] seller facets failed for %s: %v", slug, err)
			return
		}
		sellers = v.([]models.FacetOption)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := s.cache.Get(ctx, "categorytree", treeTTL, func(ctx context.Context) (any, error) {
			return s.categories.Tree(ctx)
		})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			log.Printf("[catalog.view] category tree failed: %v", err)
			return
		}
		tree = v.([]models.CategoryNode)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := s.cache.Get(ctx, "breadcrumb:"+slug, breadcrumbTTL, func(ctx context.Context) (any, error) {
			return s.categories.Breadcrumb(ctx, slug)
		})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if !errors.Is(err, ErrScopeNotFound) {
				log.Printf("[catalog.view] breadcrumb failed for %s: %v", slug, err)
			}
			return
		}
		breadcrumb = v.([]models.BreadcrumbItem)
	}()

	wg.Wait()

	if listingErr != nil {
		return nil, listingErr
	}

	view := &models.CatalogView{
		Products:      listing.cards,
		Total:         listing.total,
		ActiveFilters: filters.Labels(p, facetTitles(brands), facetTitles(sellers)),
		Brands:        brands,
		Sellers:       sellers,
		Categories:    tree,
		Breadcrumb:    breadcrumb,
	}
	if p.Limit > 0 {
		view.TotalPages = (listing.total + p.Limit - 1) / p.Limit
	}
	return view, nil
}

// FilterMetadata serves the standalone facet endpoint, reusing the same
// cache keys as View so the sidebar and the page never diverge.
func (s *CatalogViewService) FilterMetadata(ctx context.Context, slug string) (*models.FilterMetadata, error) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex

		meta models.FilterMetadata
		errs []error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := s.cache.Get(ctx, "brands:"+slug, facetTTL, func(ctx context.Context) (any, error) {
			return s.facets.BrandFacets(ctx, slug)
		})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
			return
		}
		meta.Brands = v.([]models.FacetOption)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := s.cache.Get(ctx, "sellers:"+slug, facetTTL, func(ctx context.Context) (any, error) {
			return s.facets.SellerFacets(ctx, slug)
		})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
			return
		}
		meta.Sellers = v.([]models.FacetOption)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := s.cache.Get(ctx, "pricerange:"+slug, facetTTL, func(ctx context.Context) (any, error) {
			return s.facets.PriceRange(ctx, slug)
		})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
			return
		}
		meta.PriceRange = v.(*models.PriceRange)
	}()

	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}
	return &meta, nil
}

// InvalidateScope drops the cached facets and breadcrumb for one
// sub-category, called when a vendor publishes into it.
func (s *CatalogViewService) InvalidateScope(slug string) {
	s.cache.Invalidate("brands:" + slug)
	s.cache.Invalidate("sellers:" + slug)
	s.cache.Invalidate("pricerange:" + slug)
	s.cache.Invalidate("breadcrumb:" + slug)
	s.cache.Invalidate("categorytree")
}

func facetTitles(options []models.FacetOption) map[string]string {
	titles := make(map[string]string, len(options))
	for _, o := range options {
		titles[o.ID] = o.Title
	}
	return titles
}
