package models

import "github.com/Modeva-Ecommerce/modeva-storefront/filter_engine"

// FacetOption is one value of a facet with the number of products carrying it
type FacetOption struct {
	Value string `json:"value"`
	Title string `json:"title,omitempty"`
	Count int    `json:"count"`
}

// CollectionFacets lists the filter values a collection offers
type CollectionFacets struct {
	ProductCount int           `json:"product_count"`
	Fabrics      []FacetOption `json:"fabrics"`
	Colors       []FacetOption `json:"colors"`
	Occasions    []FacetOption `json:"occasions"`
}

// PriceRanges and DiscountThresholds are the fixed price/discount checkboxes.
var (
	PriceRanges        = []string{"0-1000", "1000-2500", "2500-5000", "5000-10000", "10000-100000"}
	DiscountThresholds = []string{"10", "20", "30", "40", "50"}
)

// InStockControlValue is the value and tag label of the in-stock checkbox
const InStockControlValue = "In Stock"

// Controls turns the facets into the panel's checkboxes and swatches
func (f CollectionFacets) Controls() []filter_engine.Control {
	var controls []filter_engine.Control
	for _, o := range f.Fabrics {
		controls = append(controls, filter_engine.Control{Facet: filter_engine.FacetFabric, Value: o.Value, Count: o.Count})
	}
	for _, o := range f.Colors {
		controls = append(controls, filter_engine.Control{Facet: filter_engine.FacetColor, Value: o.Value, Title: o.Title, Count: o.Count})
	}
	for _, o := range f.Occasions {
		controls = append(controls, filter_engine.Control{Facet: filter_engine.FacetOccasion, Value: o.Value, Count: o.Count})
	}
	for _, r := range PriceRanges {
		controls = append(controls, filter_engine.Control{Facet: filter_engine.FacetPrice, Value: r})
	}
	for _, d := range DiscountThresholds {
		controls = append(controls, filter_engine.Control{Facet: filter_engine.FacetDiscount, Value: d})
	}
	controls = append(controls, filter_engine.Control{Facet: filter_engine.FacetInStock, Value: InStockControlValue})
	return controls
}
