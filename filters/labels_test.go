package filters

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestLabelsFixedOrder(t *testing.T) {
	p := Params{
		BrandIDs:      []string{"b1", "b2"},
		MinPrice:      f64(10),
		MaxPrice:      f64(50),
		Rating:        f64(4),
		NewArrivals:   ArrivalLast7,
		Deals:         []string{"clearance"},
		Sellers:       []string{"s1"},
		DeliveryModes: []string{"express"},
	}
	brands := map[string]string{"b1": "Acme", "b2": "Bolt"}
	sellers := map[string]string{"s1": "TechHub"}

	got := Labels(p, brands, sellers)

	assert.Equal(t, []string{
		"Brand: Acme",
		"Brand: Bolt",
		"Price: BDT 10 - BDT 50",
		"4+ Stars",
		"New: Last 7 Days",
		"Deal: clearance",
		"Seller: TechHub",
		"Express Delivery",
	}, got)
}

func TestLabelsUnresolvedIDsOmitted(t *testing.T) {
	p := Params{BrandIDs: []string{"b1", "ghost"}, Sellers: []string{"nobody"}}

	got := Labels(p, map[string]string{"b1": "Acme"}, map[string]string{})

	assert.Equal(t, []string{"Brand: Acme"}, got)
}

// Degenerate range: min == max still renders as a range, never errors.
func TestLabelsDegeneratePriceRange(t *testing.T) {
	p := Params{MinPrice: f64(10), MaxPrice: f64(10)}

	got := Labels(p, nil, nil)

	assert.Equal(t, []string{"Price: BDT 10 - BDT 10"}, got)
}

func TestLabelsOpenEndedPriceBounds(t *testing.T) {
	assert.Equal(t, []string{"Min BDT 100"}, Labels(Params{MinPrice: f64(100)}, nil, nil))
	assert.Equal(t, []string{"Max BDT 500"}, Labels(Params{MaxPrice: f64(500)}, nil, nil))
}

func TestLabelsUnrecognizedArrivalProducesNothing(t *testing.T) {
	got := Labels(Params{NewArrivals: "last-90"}, nil, nil)
	assert.Empty(t, got)
}

// Only "express" is a recognized delivery mode.
func TestLabelsDeliveryModes(t *testing.T) {
	assert.Empty(t, Labels(Params{DeliveryModes: []string{"standard"}}, nil, nil))
	assert.Equal(t, []string{"Express Delivery"},
		Labels(Params{DeliveryModes: []string{"standard", "express"}}, nil, nil))
}

func TestLabelsPure(t *testing.T) {
	q := url.Values{KeyBrand: {"b1"}, KeyRating: {"4.5"}}
	p, err := Decode("laptops", q)
	require.NoError(t, err)
	brands := map[string]string{"b1": "Acme"}

	first := Labels(p, brands, nil)
	second := Labels(p, brands, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Brand: Acme", "4.5+ Stars"}, first)
}
