package filters

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDefaults(t *testing.T) {
	p, err := Decode("laptops", url.Values{})
	require.NoError(t, err)

	assert.Equal(t, "laptops", p.SubCategorySlug)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, SortRecommended, p.Sort)
	assert.Nil(t, p.MinPrice)
	assert.Nil(t, p.MaxPrice)
	assert.Nil(t, p.Rating)
	assert.Empty(t, p.NewArrivals)
	assert.Empty(t, p.BrandIDs)
}

func TestDecodeFullQuery(t *testing.T) {
	q, err := url.ParseQuery("sort=price-low-high&brand=b1&brand=b2&minPrice=10&maxPrice=50&rating=4&deal=clearance&delivery=express&page=2")
	require.NoError(t, err)

	p, err := Decode("laptops", q)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, SortPriceLowHigh, p.Sort)
	assert.Equal(t, []string{"b1", "b2"}, p.BrandIDs)
	require.NotNil(t, p.MinPrice)
	assert.Equal(t, 10.0, *p.MinPrice)
	require.NotNil(t, p.MaxPrice)
	assert.Equal(t, 50.0, *p.MaxPrice)
	require.NotNil(t, p.Rating)
	assert.Equal(t, 4.0, *p.Rating)
	assert.Equal(t, []string{"clearance"}, p.Deals)
	assert.Equal(t, []string{"express"}, p.DeliveryModes)
}

// Malformed numeric inputs fail open to defaults: the page should still render.
func TestDecodeMalformedNumbersFailOpen(t *testing.T) {
	q := url.Values{
		KeyPage:     {"banana"},
		KeyLimit:    {"-3"},
		KeyMinPrice: {"cheap"},
		KeyRating:   {"many"},
	}

	p, err := Decode("laptops", q)
	require.NoError(t, err)

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Nil(t, p.MinPrice)
	assert.Nil(t, p.Rating)
}

func TestDecodeUnknownSortFallsBack(t *testing.T) {
	p, err := Decode("laptops", url.Values{KeySort: {"alphabetical"}})
	require.NoError(t, err)
	assert.Equal(t, SortRecommended, p.Sort)
}

func TestDecodeInvertedPriceRange(t *testing.T) {
	q := url.Values{KeyMinPrice: {"50"}, KeyMaxPrice: {"10"}}
	_, err := Decode("laptops", q)
	assert.ErrorIs(t, err, ErrPriceRange)
}

func TestDecodeDegeneratePriceRangeAllowed(t *testing.T) {
	q := url.Values{KeyMinPrice: {"10"}, KeyMaxPrice: {"10"}}
	p, err := Decode("laptops", q)
	require.NoError(t, err)
	assert.Equal(t, 10.0, *p.MinPrice)
	assert.Equal(t, 10.0, *p.MaxPrice)
}

func TestDecodeDedupesRepeatedValues(t *testing.T) {
	q := url.Values{KeyBrand: {"b1", "b2", "b1", ""}}
	p, err := Decode("laptops", q)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, p.BrandIDs)
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	q := url.Values{"search_id": {"abc"}, "tab": {"deals"}}
	p, err := Decode("laptops", q)
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, p.Page)
}

// decode(p.Values()) == p, modulo default filling and set dedup.
func TestValuesRoundTrip(t *testing.T) {
	min, max, rating := 25.5, 900.0, 4.0
	p := Params{
		SubCategorySlug: "laptops",
		Page:            3,
		Limit:           24,
		Sort:            SortPriceHighLow,
		BrandIDs:        []string{"b2", "b1"},
		MinPrice:        &min,
		MaxPrice:        &max,
		Rating:          &rating,
		NewArrivals:     ArrivalLast30,
		Deals:           []string{"clearance", "flash"},
		Sellers:         []string{"s9"},
		DeliveryModes:   []string{"express"},
	}

	decoded, err := Decode("laptops", p.Values())
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestValuesOmitsDefaults(t *testing.T) {
	p := Params{SubCategorySlug: "laptops", Page: DefaultPage, Limit: DefaultLimit, Sort: SortRecommended}
	assert.Empty(t, p.Values())
}

func TestCacheKeyOrderInsensitiveForSets(t *testing.T) {
	a, err := Decode("laptops", url.Values{KeyBrand: {"b1", "b2"}})
	require.NoError(t, err)
	b, err := Decode("laptops", url.Values{KeyBrand: {"b2", "b1"}})
	require.NoError(t, err)

	assert.Equal(t, a.CacheKey(), b.CacheKey())
}

func TestCacheKeyDistinguishesFilters(t *testing.T) {
	a, _ := Decode("laptops", url.Values{})
	b, _ := Decode("laptops", url.Values{KeyDeal: {"clearance"}})
	c, _ := Decode("phones", url.Values{})

	assert.NotEqual(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}
