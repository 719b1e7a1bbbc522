package filter_engine

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyQuery_ChecksNamedControls(t *testing.T) {
	panel := samplePanel()
	panel.ApplyQuery(url.Values{
		"fabric":   {"cotton", "linen"},
		"price":    {"0-500"},
		"discount": {"30"},
		"in_stock": {"on"},
		"sort":     {"price-low"},
	})

	sel := panel.Selection()
	assert.Equal(t, []string{"cotton"}, sel.Fabrics)
	assert.Equal(t, []string{"0-500"}, sel.PriceRanges)
	assert.Equal(t, []int{30}, sel.MinDiscounts)
	assert.True(t, sel.InStockOnly)

	assert.Equal(t, url.Values{
		"fabric":   {"cotton"},
		"price":    {"0-500"},
		"discount": {"30"},
		"in_stock": {"In Stock"},
	}, panel.Query())
}

func TestRemoveTagQuery(t *testing.T) {
	q := url.Values{
		"fabric": {"cotton", "silk"},
		"color":  {"Red"},
		"sort":   {"price-high"},
		"page":   {"3"},
	}

	out := RemoveTagQuery(q, Tag{Facet: FacetFabric, Value: "silk"})
	assert.Equal(t, url.Values{"fabric": {"cotton"}, "color": {"Red"}, "sort": {"price-high"}}, out)

	out = RemoveTagQuery(q, Tag{Facet: FacetColor, Value: "Red"})
	assert.Equal(t, url.Values{"fabric": {"cotton", "silk"}, "sort": {"price-high"}}, out)

	// the input is left alone
	assert.Equal(t, []string{"cotton", "silk"}, q["fabric"])
	assert.Equal(t, []string{"3"}, q["page"])
}

func TestClearQuery_KeepsSort(t *testing.T) {
	q := url.Values{"fabric": {"cotton"}, "in_stock": {"on"}, "sort": {"new"}, "page": {"2"}}
	assert.Equal(t, url.Values{"sort": {"new"}}, ClearQuery(q))
}

func TestSortURL_ResetsPagination(t *testing.T) {
	got, err := SortURL("/category/silk-sarees/?fabric=silk&page=4&sort=new", SortPriceLow)
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "/category/silk-sarees/", u.Path)
	assert.Equal(t, "price-low", u.Query().Get("sort"))
	assert.Equal(t, "1", u.Query().Get("page"))
	assert.Equal(t, "silk", u.Query().Get("fabric"))
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortDiscount, ParseSort("discount"))
	assert.Equal(t, SortFeatured, ParseSort(""))
	assert.Equal(t, SortFeatured, ParseSort("cheapest"))
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		token  string
		lo, hi float64
		ok     bool
	}{
		{"0-500", 0, 500, true},
		{" 1000 - 2000 ", 1000, 2000, true},
		{"500", 0, 0, false},
		{"-500", 0, 0, false},
		{"a-b", 0, 0, false},
		{"1-2-3", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			lo, hi, ok := ParsePriceRange(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestItemFromAttributes(t *testing.T) {
	it := ItemFromAttributes(map[string]string{
		AttrFabric:   "Pure Silk",
		AttrColor:    "Red",
		AttrOccasion: "Wedding, Festival",
		AttrPrice:    "2499.50",
		AttrDiscount: "35",
		AttrInStock:  "True",
	})
	assert.Equal(t, Item{
		Fabric: "Pure Silk", Color: "Red", Occasion: "Wedding, Festival",
		Price: 2499.5, Discount: 35, InStock: true,
	}, it)

	back := ItemFromAttributes(it.Attributes())
	assert.Equal(t, it, back)

	missing := ItemFromAttributes(nil)
	assert.True(t, math.IsNaN(missing.Price))
	assert.Equal(t, MalformedDiscount, missing.Discount)
	assert.False(t, missing.InStock)
}

func TestPanel_SubscribeCancel(t *testing.T) {
	panel := samplePanel()
	calls := 0
	cancel := panel.Subscribe(func(Selection) { calls++ })

	panel.Toggle(FacetFabric, "silk")
	cancel()
	panel.Toggle(FacetFabric, "silk")

	assert.Equal(t, 1, calls)
	assert.False(t, panel.Toggle(FacetFabric, "linen"))
}

func TestPanel_AddControlUpdatesInPlace(t *testing.T) {
	panel := NewPanel(Control{Facet: FacetColor, Value: "Red"})
	panel.AddControl(Control{Facet: FacetColor, Value: "Red", Title: "Royal Red", Count: 4})
	panel.AddControl(Control{Facet: FacetColor, Value: "Gold", Checked: true})

	controls := panel.Controls()
	require.Len(t, controls, 2)
	assert.Equal(t, "Royal Red", controls[0].Title)
	assert.Equal(t, 4, controls[0].Count)
	assert.Equal(t, []string{"Gold"}, panel.Selection().Colors)
}
