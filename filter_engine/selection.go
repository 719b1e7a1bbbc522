package filter_engine

import (
	"slices"
	"strconv"
	"strings"
)

// Facet is one independent filter dimension. Its value doubles as the
// control name and the query parameter.
type Facet string

const (
	FacetFabric   Facet = "fabric"
	FacetColor    Facet = "color"
	FacetOccasion Facet = "occasion"
	FacetPrice    Facet = "price"
	FacetDiscount Facet = "discount"
	FacetInStock  Facet = "in_stock"
)

// Facets lists every facet in evaluation order.
var Facets = []Facet{FacetFabric, FacetColor, FacetOccasion, FacetPrice, FacetDiscount, FacetInStock}

// ParseFacet maps a control name to its facet.
func ParseFacet(name string) (Facet, bool) {
	f := Facet(name)
	if slices.Contains(Facets, f) {
		return f, true
	}
	return "", false
}

// Selection is the set of currently checked controls, partitioned by facet.
// It is always rebuilt from the controls and never stored on its own.
type Selection struct {
	Fabrics      []string `json:"fabric,omitempty"`
	Colors       []string `json:"color,omitempty"`
	Occasions    []string `json:"occasion,omitempty"`
	PriceRanges  []string `json:"price,omitempty"`
	MinDiscounts []int    `json:"discount,omitempty"`
	InStockOnly  bool     `json:"in_stock,omitempty"`
}

// selectionOf scans the controls and collects every checked value.
func selectionOf(controls []*Control) Selection {
	var s Selection
	for _, c := range controls {
		if !c.Checked {
			continue
		}
		switch c.Facet {
		case FacetFabric:
			s.Fabrics = appendUnique(s.Fabrics, c.Value)
		case FacetColor:
			s.Colors = appendUnique(s.Colors, c.Value)
		case FacetOccasion:
			s.Occasions = appendUnique(s.Occasions, c.Value)
		case FacetPrice:
			s.PriceRanges = appendUnique(s.PriceRanges, c.Value)
		case FacetDiscount:
			// a threshold that is not a number constrains nothing
			if d, err := strconv.Atoi(strings.TrimSpace(c.Value)); err == nil && !slices.Contains(s.MinDiscounts, d) {
				s.MinDiscounts = append(s.MinDiscounts, d)
			}
		case FacetInStock:
			s.InStockOnly = true
		}
	}
	return s
}

func appendUnique(values []string, v string) []string {
	if slices.Contains(values, v) {
		return values
	}
	return append(values, v)
}

// IsEmpty reports whether no facet is constrained.
func (s Selection) IsEmpty() bool {
	return len(s.Fabrics) == 0 &&
		len(s.Colors) == 0 &&
		len(s.Occasions) == 0 &&
		len(s.PriceRanges) == 0 &&
		len(s.MinDiscounts) == 0 &&
		!s.InStockOnly
}

// Matches evaluates every constrained facet against the item, stopping at
// the first failing one. Facets are ANDed, the options inside one facet ORed.
func (s Selection) Matches(it Item) bool {
	if len(s.Fabrics) > 0 && !slices.Contains(s.Fabrics, it.Fabric) {
		return false
	}
	if len(s.Colors) > 0 && !slices.Contains(s.Colors, it.Color) {
		return false
	}
	if len(s.Occasions) > 0 && !matchOccasion(s.Occasions, it.Occasion) {
		return false
	}
	if len(s.PriceRanges) > 0 && !matchPrice(s.PriceRanges, it.Price) {
		return false
	}
	if len(s.MinDiscounts) > 0 && it.Discount < slices.Max(s.MinDiscounts) {
		return false
	}
	if s.InStockOnly && !it.InStock {
		return false
	}
	return true
}

// matchOccasion is a containment test: "Wedding, Festival" matches "Festival".
func matchOccasion(selected []string, occasion string) bool {
	for _, o := range selected {
		if strings.Contains(occasion, o) {
			return true
		}
	}
	return false
}

func matchPrice(ranges []string, price float64) bool {
	for _, r := range ranges {
		lo, hi, ok := ParsePriceRange(r)
		if ok && price >= lo && price <= hi {
			return true
		}
	}
	return false
}

// ParsePriceRange reads a "min-max" token. Both bounds are required and inclusive.
func ParsePriceRange(token string) (lo, hi float64, ok bool) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
