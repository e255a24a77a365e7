package filters

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSetsAndPreservesUnrelatedKeys(t *testing.T) {
	current := url.Values{"tab": {"deals"}, "search_id": {"xyz"}, KeySort: {"newest"}}

	out := Encode(current, NewPatch().Set(KeySort, SortPriceLowHigh))

	assert.Equal(t, SortPriceLowHigh, out.Get(KeySort))
	assert.Equal(t, "deals", out.Get("tab"))
	assert.Equal(t, "xyz", out.Get("search_id"))
	// input untouched
	assert.Equal(t, "newest", current.Get(KeySort))
}

func TestEncodeReplacesMultiValuedWholesale(t *testing.T) {
	current := url.Values{KeyBrand: {"b1", "b2", "b3"}}

	out := Encode(current, NewPatch().SetValues(KeyBrand, "b9", "b4"))

	assert.Equal(t, []string{"b9", "b4"}, out[KeyBrand])
}

func TestEncodeEmptySetRemovesKey(t *testing.T) {
	current := url.Values{KeyBrand: {"b1"}}

	out := Encode(current, NewPatch().SetValues(KeyBrand))

	assert.NotContains(t, out, KeyBrand)
}

func TestEncodeDeleteRemovesKey(t *testing.T) {
	current := url.Values{KeyMinPrice: {"10"}, KeyMaxPrice: {"50"}}

	out := Encode(current, NewPatch().Delete(KeyMinPrice))

	assert.NotContains(t, out, KeyMinPrice)
	assert.Equal(t, "50", out.Get(KeyMaxPrice))
}

// Any filter-bearing patch implicitly resets pagination.
func TestEncodeFilterChangeResetsPage(t *testing.T) {
	current := url.Values{KeyPage: {"4"}, KeyBrand: {"b1"}}

	out := Encode(current, NewPatch().SetValues(KeyBrand, "b1", "b2"))

	assert.NotContains(t, out, KeyPage)
}

func TestEncodeExplicitPagePatchKeepsPage(t *testing.T) {
	current := url.Values{KeyPage: {"4"}, KeyBrand: {"b1"}}

	out := Encode(current, NewPatch().Set(KeyPage, "5"))

	assert.Equal(t, "5", out.Get(KeyPage))
	assert.Equal(t, []string{"b1"}, out[KeyBrand])
}

func TestEncodeNilPatchOnlyResetsPage(t *testing.T) {
	current := url.Values{KeyPage: {"2"}, KeySort: {"newest"}}

	out := Encode(current, nil)

	assert.Equal(t, "newest", out.Get(KeySort))
	assert.Equal(t, "2", out.Get(KeyPage))
}

// Scenario: toggling a brand on an empty URL adds exactly one occurrence;
// toggling again returns the original URL.
func TestToggleInsertThenRemove(t *testing.T) {
	start := url.Values{}

	on := Toggle(start, KeyBrand, "b1")
	assert.Equal(t, []string{"b1"}, on[KeyBrand])

	off := Toggle(on, KeyBrand, "b1")
	assert.NotContains(t, off, KeyBrand)
	assert.Equal(t, start.Encode(), off.Encode())
}

func TestToggleKeepsSiblingValues(t *testing.T) {
	current := url.Values{KeyBrand: {"b1", "b2"}}

	out := Toggle(current, KeyBrand, "b1")

	assert.Equal(t, []string{"b2"}, out[KeyBrand])
}

func TestToggleResetsPage(t *testing.T) {
	current := url.Values{KeyPage: {"3"}}

	out := Toggle(current, KeyDeal, "clearance")

	assert.NotContains(t, out, KeyPage)
	assert.Equal(t, []string{"clearance"}, out[KeyDeal])
}

func TestToggleMissingValueIsInsert(t *testing.T) {
	current := url.Values{KeyBrand: {"b1"}}

	out := Toggle(current, KeyBrand, "b7")

	assert.Equal(t, []string{"b1", "b7"}, out[KeyBrand])
}

func TestClearKeepsPreservedKeys(t *testing.T) {
	current := url.Values{
		KeyBrand:    {"b1"},
		KeyMinPrice: {"10"},
		KeyPage:     {"2"},
		"q":         {"gaming laptop"},
	}

	out := Clear(current, "q")

	assert.Equal(t, "gaming laptop", out.Get("q"))
	assert.Len(t, out, 1)
}

func TestClearIdempotent(t *testing.T) {
	current := url.Values{KeyBrand: {"b1"}, "q": {"mouse"}}

	once := Clear(current, "q")
	twice := Clear(once, "q")

	assert.Equal(t, once, twice)
}

func TestClearNoActiveFiltersReturnsInputUnchanged(t *testing.T) {
	current := url.Values{"q": {"mouse"}}

	out := Clear(current, "q")

	require.Equal(t, current, out)
}
