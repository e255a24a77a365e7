package services

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeListingStore reproduces the store contract in memory: rows ordered by
// is_featured DESC, created_at DESC, id DESC, cursor exclusive.
type fakeListingStore struct {
	scopes map[string]string // slug -> scope id
	names  map[string]string // slug -> category name
	rows   map[string][]ListingRow
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{
		scopes: map[string]string{},
		names:  map[string]string{},
		rows:   map[string][]ListingRow{},
	}
}

func (f *fakeListingStore) addScope(slug, scopeID, name string) {
	f.scopes[slug] = scopeID
	f.names[slug] = name
}

func (f *fakeListingStore) ResolveScope(ctx context.Context, slug string) (string, string, error) {
	id, ok := f.scopes[slug]
	if !ok {
		return "", "", ErrScopeNotFound
	}
	return id, f.names[slug], nil
}

func (f *fakeListingStore) FetchAfter(ctx context.Context, scopeID string, cursor *string, n int) ([]ListingRow, error) {
	rows := append([]ListingRow(nil), f.rows[scopeID]...)
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	start := 0
	if cursor != nil {
		for i, r := range rows {
			if r.ID == *cursor {
				start = i + 1
				break
			}
		}
	}
	rows = rows[start:]
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

func seedRows(store *fakeListingStore, scopeID string, n int) []string {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("p-%03d", i)
		store.rows[scopeID] = append(store.rows[scopeID], ListingRow{
			ID:        id,
			Name:      "Item " + id,
			Price:     100,
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		})
		ids = append(ids, id)
	}
	return ids
}

// 13 items with limit 12: first page full with a cursor at item #12, second
// page carries the remainder and closes the stream.
func TestListThirteenItemsLimitTwelve(t *testing.T) {
	store := newFakeListingStore()
	store.addScope("laptops", "scope-1", "Laptops")
	ids := seedRows(store, "scope-1", 13)
	svc := NewListingService(store)

	first, err := svc.List(context.Background(), "laptops", nil, 12)
	require.NoError(t, err)
	assert.Len(t, first.Items, 12)
	assert.True(t, first.HasMore)
	require.NotNil(t, first.NextCursor)
	assert.Equal(t, ids[11], *first.NextCursor)

	second, err := svc.List(context.Background(), "laptops", first.NextCursor, 12)
	require.NoError(t, err)
	assert.Len(t, second.Items, 1)
	assert.False(t, second.HasMore)
	assert.Nil(t, second.NextCursor)
	assert.Equal(t, ids[12], second.Items[0].ID)
}

// Sequential cursor walks must visit every item exactly once, in order.
func TestListVisitsEveryItemExactlyOnce(t *testing.T) {
	store := newFakeListingStore()
	store.addScope("phones", "scope-2", "Phones")
	ids := seedRows(store, "scope-2", 25)
	svc := NewListingService(store)

	var visited []string
	var cursor *string
	for {
		page, err := svc.List(context.Background(), "phones", cursor, 4)
		require.NoError(t, err)
		for _, item := range page.Items {
			visited = append(visited, item.ID)
		}
		if !page.HasMore {
			assert.Nil(t, page.NextCursor)
			break
		}
		require.NotNil(t, page.NextCursor)
		cursor = page.NextCursor
	}

	assert.Equal(t, ids, visited)
}

// Featured items sort ahead of newer non-featured ones.
func TestListFeaturedFirst(t *testing.T) {
	store := newFakeListingStore()
	store.addScope("laptops", "scope-1", "Laptops")
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	store.rows["scope-1"] = []ListingRow{
		{ID: "new-plain", CreatedAt: now},
		{ID: "old-featured", IsFeatured: true, CreatedAt: now.Add(-48 * time.Hour)},
	}
	svc := NewListingService(store)

	page, err := svc.List(context.Background(), "laptops", nil, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "old-featured", page.Items[0].ID)
	assert.Equal(t, "new-plain", page.Items[1].ID)
}

func TestListEmptyScopeIsNotAnError(t *testing.T) {
	store := newFakeListingStore()
	store.addScope("empty", "scope-9", "Empty")
	svc := NewListingService(store)

	page, err := svc.List(context.Background(), "empty", nil, 12)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestListUnknownSlug(t *testing.T) {
	svc := NewListingService(newFakeListingStore())

	_, err := svc.List(context.Background(), "no-such-scope", nil, 12)
	assert.ErrorIs(t, err, ErrScopeNotFound)
}

// ─────────────────────────────────────────────────────────────
// Projection rules
// ─────────────────────────────────────────────────────────────

func TestProjectCardEffectivePrice(t *testing.T) {
	sale := 80.0
	card := projectCard(ListingRow{Price: 100, SalePrice: &sale}, "Laptops")
	assert.Equal(t, 80.0, card.Price)

	card = projectCard(ListingRow{Price: 100}, "Laptops")
	assert.Equal(t, 100.0, card.Price)
}

// The discount flag, not the presence of a sale price, controls OldPrice.
func TestProjectCardOldPriceGatedOnDiscountFlag(t *testing.T) {
	sale := 80.0

	card := projectCard(ListingRow{Price: 100, SalePrice: &sale, IsDiscount: false}, "Laptops")
	assert.Nil(t, card.OldPrice)

	card = projectCard(ListingRow{Price: 100, SalePrice: &sale, IsDiscount: true}, "Laptops")
	require.NotNil(t, card.OldPrice)
	assert.Equal(t, 100.0, *card.OldPrice)
}

func TestProjectCardDiscountDefaultsToZero(t *testing.T) {
	card := projectCard(ListingRow{Price: 100}, "Laptops")
	assert.Equal(t, 0, card.Discount)

	pct := 20
	card = projectCard(ListingRow{Price: 100, Discount: &pct}, "Laptops")
	assert.Equal(t, 20, card.Discount)
}

func TestProjectCardCategoryFallback(t *testing.T) {
	name := "Gaming Laptops"
	card := projectCard(ListingRow{Price: 100, CategoryName: &name}, "Laptops")
	assert.Equal(t, "Gaming Laptops", card.Category)

	card = projectCard(ListingRow{Price: 100}, "Laptops")
	assert.Equal(t, "Laptops", card.Category)

	empty := ""
	card = projectCard(ListingRow{Price: 100, CategoryName: &empty}, "Laptops")
	assert.Equal(t, "Laptops", card.Category)
}

func TestProjectCardReviewsIsACount(t *testing.T) {
	card := projectCard(ListingRow{Price: 100, ReviewCount: 7}, "Laptops")
	assert.Equal(t, 7, card.Reviews)
}
