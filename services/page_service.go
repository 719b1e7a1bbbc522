package services

import (
	"context"
	"errors"
	"math"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/google/uuid"
)

const (
	HomeBannerLimit     = 4
	HomeBestsellerLimit = 8
)

// Home renders the landing page. Missing site settings fall back to the
// defaults; a missing festival banner is simply left out.
func (s *CatalogService) Home(ctx context.Context) (*models.HomePage, error) {
	banners, err := s.store.HeroBanners(ctx, HomeBannerLimit)
	if err != nil {
		return nil, err
	}
	for i := range banners {
		banners[i].Image = s.media.ImageURL(banners[i].Image)
	}
	if banners == nil {
		banners = []models.HeroBanner{}
	}

	festival, err := s.store.FestivalBanner(ctx, s.now())
	switch {
	case errors.Is(err, ErrNotFound):
		festival = nil
	case err != nil:
		return nil, err
	default:
		festival.Image = s.media.ImageURL(festival.Image)
	}

	bestsellers, err := s.store.Products(ctx, ProductQuery{
		BestsellerOnly: true,
		Page:           1,
		Limit:          HomeBestsellerLimit,
	})
	if err != nil {
		return nil, err
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}

	site := models.DefaultSiteSetting(config.App.SiteName)
	stored, err := s.store.SiteSetting(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return nil, err
	default:
		site = *stored
	}

	return &models.HomePage{
		Site:           site,
		Banners:        banners,
		FestivalBanner: festival,
		Bestsellers:    s.cards(bestsellers.Products),
		Categories:     categories,
	}, nil
}

// CartPage looks up every cart line's product. Lines are ordered by
// product ID; lines whose product is unknown or inactive are skipped.
func (s *CatalogService) CartPage(ctx context.Context, cart Cart) (*models.CartPage, error) {
	products, err := s.productsByID(ctx, sortedKeys(cart))
	if err != nil {
		return nil, err
	}

	page := &models.CartPage{Items: []models.CartItem{}}
	for _, id := range sortedKeys(cart) {
		p, ok := products[id]
		if !ok {
			continue
		}
		line := cart[id]
		item := models.CartItem{
			Product:   models.NewProductCard(p, s.coverImage(p)),
			Quantity:  line.Quantity,
			Color:     line.Color,
			ItemTotal: roundRupees(p.CurrentPrice * float64(line.Quantity)),
		}
		page.Items = append(page.Items, item)
		page.TotalAmount += item.ItemTotal
		page.TotalItems += line.Quantity
	}
	page.TotalAmount = roundRupees(page.TotalAmount)
	return page, nil
}

// WishlistPage renders the wishlisted products in the order they were added
func (s *CatalogService) WishlistPage(ctx context.Context, ids []string) (*models.WishlistPage, error) {
	products, err := s.productsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	page := &models.WishlistPage{Products: []models.ProductCard{}}
	for _, id := range ids {
		if p, ok := products[id]; ok {
			page.Products = append(page.Products, models.NewProductCard(p, s.coverImage(p)))
		}
	}
	page.Count = len(page.Products)
	return page, nil
}

// productsByID fetches the products behind ids keyed by their ID string.
// IDs that do not parse are ignored.
func (s *CatalogService) productsByID(ctx context.Context, ids []string) (map[string]models.Product, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		if id, err := uuid.Parse(raw); err == nil {
			parsed = append(parsed, id)
		}
	}
	if len(parsed) == 0 {
		return map[string]models.Product{}, nil
	}

	products, err := s.store.ProductsByIDs(ctx, parsed)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID.String()] = p
	}
	return byID, nil
}

func roundRupees(v float64) float64 {
	return math.Round(v*100) / 100
}
