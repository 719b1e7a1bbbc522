// ════════════════════════════════════════════════════════════
// STOREFRONT PAGE MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import "github.com/Modeva-Ecommerce/modeva-storefront/filter_engine"

// ProductCard is a product tile on listing pages
type ProductCard struct {
	ID            string            `json:"id"`
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	Brand         string            `json:"brand"`
	CurrentPrice  float64           `json:"current_price"`
	OriginalPrice float64           `json:"original_price"`
	Discount      int               `json:"discount_percent"`
	Rating        float64           `json:"rating"`
	RatingCount   int               `json:"rating_count"`
	Badge         string            `json:"badge"`
	Image         string            `json:"image,omitempty"`
	Attributes    map[string]string `json:"attributes"`
	Visible       bool              `json:"visible"`
}

// NewProductCard renders p; image is its first gallery image, if any
func NewProductCard(p Product, image string) ProductCard {
	return ProductCard{
		ID:            p.ID.String(),
		Slug:          p.Slug,
		Name:          p.Name,
		Brand:         p.Brand,
		CurrentPrice:  p.CurrentPrice,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.DiscountPercent,
		Rating:        p.Rating,
		RatingCount:   p.RatingCount,
		Badge:         p.BadgeText(),
		Image:         image,
		Attributes:    p.FilterItem().Attributes(),
		Visible:       true,
	}
}

// ActiveFilterTag is a tray chip plus the link that removes it
type ActiveFilterTag struct {
	filter_engine.Tag
	RemoveURL string `json:"remove_url"`
}

// ActiveFilters is the rendered tag tray
type ActiveFilters struct {
	Tags        []ActiveFilterTag `json:"tags"`
	ClearAllURL string            `json:"clear_all_url,omitempty"`
}

// CollectionPage is the /category/:slug rendering
type CollectionPage struct {
	Category      CategoryWithCount       `json:"category"`
	Products      []ProductCard           `json:"products"`
	Filters       []filter_engine.Control `json:"filters"`
	ActiveFilters ActiveFilters           `json:"active_filters"`
	ResultsCount  string                  `json:"results_count"`
	TotalProducts int                     `json:"total_products"`
	CurrentSort   string                  `json:"current_sort"`
	Pagination    *Pagination             `json:"pagination"`
}

// ListingPage renders the other product lists (all products, offers, search ...)
type ListingPage struct {
	PageTitle     string        `json:"page_title"`
	Query         string        `json:"query,omitempty"`
	Products      []ProductCard `json:"products"`
	TotalProducts int           `json:"total_products"`
	CurrentSort   string        `json:"current_sort,omitempty"`
	Pagination    *Pagination   `json:"pagination"`
}

// ColorView is one selectable color on the product page
type ColorView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Gradient string   `json:"gradient"`
	Images   []string `json:"images"`
}

// ProductDetail is the /product/:slug rendering
type ProductDetail struct {
	Product       Product             `json:"product"`
	Badge         string              `json:"badge"`
	Occasions     []string            `json:"occasions"`
	Colors        []ColorView         `json:"colors"`
	SelectedColor *ColorView          `json:"selected_color,omitempty"`
	ImagesByColor map[string][]string `json:"images_by_color"`
}

// HomePage is the / rendering
type HomePage struct {
	Site           SiteSetting         `json:"site"`
	Banners        []HeroBanner        `json:"banners"`
	FestivalBanner *FestivalBanner     `json:"festival_banner,omitempty"`
	Bestsellers    []ProductCard       `json:"bestsellers"`
	Categories     []CategoryWithCount `json:"categories"`
}

// CartItem is one cart line with its product and line total
type CartItem struct {
	Product   ProductCard `json:"product"`
	Quantity  int         `json:"quantity"`
	Color     string      `json:"color"`
	ItemTotal float64     `json:"item_total"`
}

// CartPage is the /cart/ rendering. Lines whose product is gone are left out.
type CartPage struct {
	Items       []CartItem `json:"cart_items"`
	TotalAmount float64    `json:"total_amount"`
	TotalItems  int        `json:"total_items"`
}

// WishlistPage is the /wishlist/ rendering
type WishlistPage struct {
	Products []ProductCard `json:"products"`
	Count    int           `json:"count"`
}
