// Package filters owns the canonical filter state for storefront catalog
// pages. The URL query string is the single source of truth: every navigation
// decodes it into a Params value, and every filter change re-encodes a new
// query string (see codec.go). Nothing here touches the database.
package filters

import (
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query string keys understood by the codec. Anything else in the URL
// (search_id, tab, q, ...) belongs to other features and is left alone.
const (
	KeyPage     = "page"
	KeyLimit    = "limit"
	KeySort     = "sort"
	KeyBrand    = "brand"
	KeyMinPrice = "minPrice"
	KeyMaxPrice = "maxPrice"
	KeyRating   = "rating"
	KeyArrival  = "arrival"
	KeyDeal     = "deal"
	KeySeller   = "seller"
	KeyDelivery = "delivery"
)

// Sort options
const (
	SortRecommended  = "recommended"
	SortPriceLowHigh = "price-low-high"
	SortPriceHighLow = "price-high-low"
	SortNewest       = "newest"
)

// New-arrival windows
const (
	ArrivalLast7  = "last-7"
	ArrivalLast30 = "last-30"
	ArrivalLast60 = "last-60"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
)

// DeliveryExpress is the only delivery mode the storefront recognizes today.
const DeliveryExpress = "express"

// multiValued marks keys that may repeat in the query string (?brand=a&brand=b).
var multiValued = map[string]bool{
	KeyBrand:    true,
	KeyDeal:     true,
	KeySeller:   true,
	KeyDelivery: true,
}

// ErrPriceRange is returned by Decode when minPrice exceeds maxPrice. This is
// the one filter input that is rejected instead of normalized: silently
// swapping or clamping the bounds would show the user a result set that
// contradicts the URL.
var ErrPriceRange = errors.New("minPrice must not exceed maxPrice")

// Params is the decoded filter state for one catalog listing request.
// Values are never mutated after Decode; a filter change produces a fresh
// query string which is decoded into a fresh Params.
type Params struct {
	SubCategorySlug string
	Page            int
	Limit           int
	Sort            string
	BrandIDs        []string
	MinPrice        *float64
	MaxPrice        *float64
	Rating          *float64
	NewArrivals     string // "" when unset
	Deals           []string
	Sellers         []string
	DeliveryModes   []string
}

// Decode parses the query string for the catalog page scoped to slug.
// Unknown keys are ignored and malformed numeric values fall back to their
// defaults - the storefront always prefers showing a result set over a 4xx.
// The only hard validation error is an inverted price range.
func Decode(slug string, query url.Values) (Params, error) {
	p := Params{
		SubCategorySlug: slug,
		Page:            DefaultPage,
		Limit:           DefaultLimit,
		Sort:            SortRecommended,
	}

	if page, err := strconv.Atoi(query.Get(KeyPage)); err == nil && page >= 1 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(query.Get(KeyLimit)); err == nil && limit >= 1 && limit <= MaxLimit {
		p.Limit = limit
	}

	switch s := query.Get(KeySort); s {
	case SortRecommended, SortPriceLowHigh, SortPriceHighLow, SortNewest:
		p.Sort = s
	}

	p.MinPrice = parseDecimal(query.Get(KeyMinPrice))
	p.MaxPrice = parseDecimal(query.Get(KeyMaxPrice))
	if p.MinPrice != nil && p.MaxPrice != nil && *p.MinPrice > *p.MaxPrice {
		return Params{}, ErrPriceRange
	}

	if r := parseDecimal(query.Get(KeyRating)); r != nil && *r >= 0 {
		p.Rating = r
	}

	switch a := query.Get(KeyArrival); a {
	case ArrivalLast7, ArrivalLast30, ArrivalLast60:
		p.NewArrivals = a
	}

	p.BrandIDs = dedupe(query[KeyBrand])
	p.Deals = dedupe(query[KeyDeal])
	p.Sellers = dedupe(query[KeySeller])
	p.DeliveryModes = dedupe(query[KeyDelivery])

	return p, nil
}

// Values re-encodes the params as a canonical query string, emitting only
// non-default fields. Decode(slug, p.Values()) round-trips to p.
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Page != DefaultPage {
		v.Set(KeyPage, strconv.Itoa(p.Page))
	}
	if p.Limit != DefaultLimit {
		v.Set(KeyLimit, strconv.Itoa(p.Limit))
	}
	if p.Sort != "" && p.Sort != SortRecommended {
		v.Set(KeySort, p.Sort)
	}
	if p.MinPrice != nil {
		v.Set(KeyMinPrice, formatDecimal(*p.MinPrice))
	}
	if p.MaxPrice != nil {
		v.Set(KeyMaxPrice, formatDecimal(*p.MaxPrice))
	}
	if p.Rating != nil {
		v.Set(KeyRating, formatDecimal(*p.Rating))
	}
	if p.NewArrivals != "" {
		v.Set(KeyArrival, p.NewArrivals)
	}
	for _, id := range p.BrandIDs {
		v.Add(KeyBrand, id)
	}
	for _, d := range p.Deals {
		v.Add(KeyDeal, d)
	}
	for _, s := range p.Sellers {
		v.Add(KeySeller, s)
	}
	for _, m := range p.DeliveryModes {
		v.Add(KeyDelivery, m)
	}
	return v
}

// CacheKey is a deterministic representation of the params, used to key the
// per-query caches. Multi-valued fields are sorted so that insertion order
// does not split the cache.
func (p Params) CacheKey() string {
	var b strings.Builder
	b.WriteString("sub=")
	b.WriteString(p.SubCategorySlug)
	b.WriteString("|page=")
	b.WriteString(strconv.Itoa(p.Page))
	b.WriteString("|limit=")
	b.WriteString(strconv.Itoa(p.Limit))
	b.WriteString("|sort=")
	b.WriteString(p.Sort)
	if p.MinPrice != nil {
		b.WriteString("|min=")
		b.WriteString(formatDecimal(*p.MinPrice))
	}
	if p.MaxPrice != nil {
		b.WriteString("|max=")
		b.WriteString(formatDecimal(*p.MaxPrice))
	}
	if p.Rating != nil {
		b.WriteString("|rating=")
		b.WriteString(formatDecimal(*p.Rating))
	}
	if p.NewArrivals != "" {
		b.WriteString("|arrival=")
		b.WriteString(p.NewArrivals)
	}
	writeSet(&b, "brand", p.BrandIDs)
	writeSet(&b, "deal", p.Deals)
	writeSet(&b, "seller", p.Sellers)
	writeSet(&b, "delivery", p.DeliveryModes)
	return b.String()
}

func writeSet(b *strings.Builder, name string, values []string) {
	if len(values) == 0 {
		return
	}
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	b.WriteString("|")
	b.WriteString(name)
	b.WriteString("=")
	b.WriteString(strings.Join(sorted, ","))
}

func parseDecimal(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// dedupe preserves first-seen order so the set round-trips stably through
// the URL.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
