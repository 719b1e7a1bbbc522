package filter_engine

import (
	"net/url"
	"slices"
)

// Sort keys offered by the sort selector.
const (
	SortFeatured   = "featured"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortNewest     = "new"
	SortBestseller = "bestseller"
	SortRating     = "rating"
	SortDiscount   = "discount"
)

var sortKeys = []string{SortFeatured, SortPriceLow, SortPriceHigh, SortNewest, SortBestseller, SortRating, SortDiscount}

// ParseSort returns a known sort key, falling back to featured.
func ParseSort(s string) string {
	if slices.Contains(sortKeys, s) {
		return s
	}
	return SortFeatured
}

// SortURL is where the sort selector navigates: the current page with the
// new sort and pagination back on the first page. Filters are left as they are.
func SortURL(current, sort string) (string, error) {
	u, err := url.Parse(current)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("sort", sort)
	q.Set("page", "1")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
