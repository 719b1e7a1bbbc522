package models

import (
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/filter_engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPincodeQuote(t *testing.T) {
	p := Pincode{
		City: "Mumbai", State: "Maharashtra",
		StandardDeliveryDays: 5, ExpressDeliveryDays: 2, ExpressDeliveryCharge: 99,
		CODAvailable: true,
	}
	ordered := time.Date(2024, 3, 4, 18, 30, 0, 0, time.UTC)

	q := p.Quote(ordered)
	assert.True(t, q.Success)
	assert.True(t, q.Serviceable)
	require.NotNil(t, q.StandardDelivery)
	require.NotNil(t, q.ExpressDelivery)
	assert.Equal(t, DeliveryOption{Days: 5, Date: "09 Mar, Saturday"}, *q.StandardDelivery)
	assert.Equal(t, DeliveryOption{Days: 2, Date: "06 Mar, Wednesday", Charge: 99}, *q.ExpressDelivery)
	assert.True(t, q.CODAvailable)
}

func TestProductBadgeText(t *testing.T) {
	tests := []struct {
		badge string
		want  string
	}{
		{BadgeBestseller, "Bestseller"},
		{BadgeNew, "New"},
		{BadgeDiscount, "35% OFF"},
		{"", "35% OFF"},
	}
	for _, tt := range tests {
		p := Product{BadgeType: tt.badge, DiscountPercent: 35}
		assert.Equal(t, tt.want, p.BadgeText(), "badge %q", tt.badge)
	}
}

func TestProductOccasions(t *testing.T) {
	assert.Equal(t, []string{"Wedding", "Festival"}, Product{Occasion: "Wedding, Festival"}.Occasions())
	assert.Equal(t, []string{"Party"}, Product{Occasion: " ,Party, "}.Occasions())
	assert.Nil(t, Product{}.Occasions())
}

func TestProductFilterItem(t *testing.T) {
	p := Product{
		Slug: "chanderi-red", Fabric: "Chanderi", PrimaryColor: "Red", Occasion: "Festival",
		CurrentPrice: 3499, DiscountPercent: 41, InStock: true,
	}
	assert.Equal(t, filter_engine.Item{
		ID: "chanderi-red", Fabric: "Chanderi", Color: "Red", Occasion: "Festival",
		Price: 3499, Discount: 41, InStock: true,
	}, p.FilterItem())

	card := NewProductCard(p, "/static/a.jpg")
	assert.True(t, card.Visible)
	assert.Equal(t, "41% OFF", card.Badge)
	back := filter_engine.ItemFromAttributes(card.Attributes)
	back.ID = p.Slug
	assert.Equal(t, p.FilterItem(), back)
}

func TestCollectionFacetsControls(t *testing.T) {
	f := CollectionFacets{
		Fabrics: []FacetOption{{Value: "Cotton", Count: 2}},
		Colors:  []FacetOption{{Value: "Red", Title: "Royal Red", Count: 1}},
	}
	controls := f.Controls()

	require.Len(t, controls, 2+len(PriceRanges)+len(DiscountThresholds)+1)
	assert.Equal(t, filter_engine.Control{Facet: filter_engine.FacetFabric, Value: "Cotton", Count: 2}, controls[0])
	assert.Equal(t, "Royal Red", controls[1].Title)
	last := controls[len(controls)-1]
	assert.Equal(t, filter_engine.FacetInStock, last.Facet)
	assert.Equal(t, InStockControlValue, last.Value)
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, &Pagination{Page: 2, Limit: 24, Total: 49, TotalPages: 3}, NewPagination(2, 24, 49))
	assert.Equal(t, 0, NewPagination(1, 24, 0).TotalPages)
	assert.Equal(t, 0, NewPagination(1, 0, 10).TotalPages)
}

func TestGradients(t *testing.T) {
	assert.Equal(t, "Royal Red", SwatchTitle("Red"))
	assert.Equal(t, "Teal", SwatchTitle("Teal"))
	assert.Equal(t, defaultGradient, GradientFor(colorGradients, "Teal"))

	c := ProductColor{Name: "Maroon"}
	require.NoError(t, c.BeforeSave(nil))
	assert.Contains(t, c.Gradient, "#800000")
}

func TestLoginOTPIsExpired(t *testing.T) {
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	o := LoginOTP{CreatedAt: now.Add(-9 * time.Minute)}
	assert.False(t, o.IsExpired(now, 10*time.Minute))
	assert.True(t, o.IsExpired(now.Add(2*time.Minute), 10*time.Minute))
}

func TestFestivalBannerIsRunning(t *testing.T) {
	b := FestivalBanner{
		IsActive:  true,
		StartDate: time.Date(2024, 10, 25, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, b.IsRunning(time.Date(2024, 10, 24, 23, 59, 0, 0, time.UTC)))
	assert.True(t, b.IsRunning(time.Date(2024, 10, 25, 0, 0, 0, 0, time.UTC)))
	assert.True(t, b.IsRunning(time.Date(2024, 10, 31, 22, 0, 0, 0, time.UTC)))
	assert.False(t, b.IsRunning(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)))

	b.IsActive = false
	assert.False(t, b.IsRunning(time.Date(2024, 10, 28, 12, 0, 0, 0, time.UTC)))
}

func TestDefaultSiteSetting(t *testing.T) {
	s := DefaultSiteSetting("Modeva")
	assert.Equal(t, "Modeva", s.SiteName)
	assert.True(t, s.EnableCOD)
	assert.InDelta(t, 999, s.FreeShippingAbove, 0.001)
}
