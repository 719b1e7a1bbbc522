package filter_engine

import (
	"math"
	"strconv"
	"strings"
)

// Data attribute names rendered into every product card.
const (
	AttrFabric   = "data-fabric"
	AttrColor    = "data-color"
	AttrOccasion = "data-occasion"
	AttrPrice    = "data-price"
	AttrDiscount = "data-discount"
	AttrInStock  = "data-in-stock"
)

// MalformedDiscount marks an item whose discount attribute could not be read.
// It is below every threshold, so the item never passes a discount constraint.
const MalformedDiscount = -1

// Item is one catalog entry as seen by the filter engine.
type Item struct {
	ID       string  `json:"id,omitempty"`
	Fabric   string  `json:"fabric"`
	Color    string  `json:"color"`
	Occasion string  `json:"occasion"`
	Price    float64 `json:"price"`
	Discount int     `json:"discount"`
	InStock  bool    `json:"in_stock"`
}

// ItemFromAttributes materializes an item from its rendered data attributes.
// A price that does not parse becomes NaN and fails every range comparison.
func ItemFromAttributes(attrs map[string]string) Item {
	item := Item{
		Fabric:   attrs[AttrFabric],
		Color:    attrs[AttrColor],
		Occasion: attrs[AttrOccasion],
		Price:    math.NaN(),
		Discount: MalformedDiscount,
		InStock:  strings.EqualFold(strings.TrimSpace(attrs[AttrInStock]), "true"),
	}

	if price, err := strconv.ParseFloat(strings.TrimSpace(attrs[AttrPrice]), 64); err == nil {
		item.Price = price
	}
	if discount, err := strconv.Atoi(strings.TrimSpace(attrs[AttrDiscount])); err == nil && discount >= 0 {
		item.Discount = discount
	}

	return item
}

// Attributes renders the item back into its data attributes.
func (it Item) Attributes() map[string]string {
	return map[string]string{
		AttrFabric:   it.Fabric,
		AttrColor:    it.Color,
		AttrOccasion: it.Occasion,
		AttrPrice:    strconv.FormatFloat(it.Price, 'f', -1, 64),
		AttrDiscount: strconv.Itoa(it.Discount),
		AttrInStock:  strconv.FormatBool(it.InStock),
	}
}

// Container is anything that holds the items a page currently renders.
// The engine asks for them on every apply, so the list may change between runs.
type Container interface {
	Items() []Item
}

// ItemList is a fixed Container.
type ItemList []Item

func (l ItemList) Items() []Item { return l }
