package services

import (
	"context"
	"errors"
	"log"
	"net/url"
	"slices"
	"strings"
	"time"

	category_cache "github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/filter_engine"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

const (
	NewArrivalWindow = 30 * 24 * time.Hour
	OfferMinDiscount = 30
)

// CatalogService renders the storefront's product pages
type CatalogService struct {
	store    CatalogStore
	media    *MediaService
	pageSize int
	now      func() time.Time
}

func NewCatalogService(store CatalogStore, media *MediaService, pageSize int) *CatalogService {
	return &CatalogService{store: store, media: media, pageSize: pageSize, now: time.Now}
}

// CollectionPage renders one category with its filter panel. Sort and
// pagination run in the database; the checked filters decide which cards of
// the page are visible.
func (s *CatalogService) CollectionPage(ctx context.Context, slug string, query url.Values) (*models.CollectionPage, error) {
	category, err := s.store.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	facets, err := s.collectionFacets(ctx, category)
	if err != nil {
		return nil, err
	}

	sort := filter_engine.ParseSort(query.Get("sort"))
	page, err := s.store.Products(ctx, ProductQuery{
		CategoryID:     &category.ID,
		BestsellerOnly: sort == filter_engine.SortBestseller,
		Sort:           sort,
		Page:           ParsePage(query.Get("page")),
		Limit:          s.pageSize,
	})
	if err != nil {
		return nil, err
	}

	items := make(filter_engine.ItemList, len(page.Products))
	for i, p := range page.Products {
		items[i] = p.FilterItem()
	}

	panel := filter_engine.NewPanel(facets.Controls()...)
	panel.ApplyQuery(query)
	engine := filter_engine.New(items, panel)
	defer engine.Close()

	result := engine.Apply()
	tray := engine.Tags()

	cards := s.cards(page.Products)
	for i := range cards {
		cards[i].Visible = result.Visible[i]
	}

	base := "/category/" + category.Slug + "/"
	active := models.ActiveFilters{Tags: make([]models.ActiveFilterTag, 0, len(tray.Tags))}
	for _, tag := range tray.Tags {
		active.Tags = append(active.Tags, models.ActiveFilterTag{
			Tag:       tag,
			RemoveURL: pageURL(base, filter_engine.RemoveTagQuery(query, tag)),
		})
	}
	if tray.ClearAll {
		active.ClearAllURL = pageURL(base, filter_engine.ClearQuery(query))
	}

	return &models.CollectionPage{
		Category: models.CategoryWithCount{
			ID:           category.ID,
			Name:         category.Name,
			Slug:         category.Slug,
			Description:  category.Description,
			Image:        category.Image,
			Gradient:     category.Gradient,
			ProductCount: facets.ProductCount,
		},
		Products:      cards,
		Filters:       panel.Controls(),
		ActiveFilters: active,
		ResultsCount:  result.Summary(),
		TotalProducts: page.Total,
		CurrentSort:   sort,
		Pagination:    models.NewPagination(page.Page, s.pageSize, page.Total),
	}, nil
}

func (s *CatalogService) collectionFacets(ctx context.Context, category *models.Category) (models.CollectionFacets, error) {
	if facets, ok := category_cache.GetFacets(category.Slug); ok {
		return facets, nil
	}

	products, err := s.store.CategoryProducts(ctx, category.ID)
	if err != nil {
		return models.CollectionFacets{}, err
	}
	facets := BuildFacets(products)
	category_cache.SetFacets(category.Slug, facets)
	log.Printf("[catalog] facets cached for %s (%d products)", category.Slug, facets.ProductCount)
	return facets, nil
}

// BuildFacets collects the filter values offered by a set of products.
// Occasion counts use a case-insensitive substring match, so "Party" also
// counts products tagged "Party Wear".
func BuildFacets(products []models.Product) models.CollectionFacets {
	fabricCounts := map[string]int{}
	colorCounts := map[string]int{}
	occasionSet := map[string]struct{}{}

	for _, p := range products {
		if p.Fabric != "" {
			fabricCounts[p.Fabric]++
		}
		if p.PrimaryColor != "" {
			colorCounts[p.PrimaryColor]++
		}
		for _, o := range p.Occasions() {
			occasionSet[o] = struct{}{}
		}
	}

	facets := models.CollectionFacets{
		ProductCount: len(products),
		Fabrics:      []models.FacetOption{},
		Colors:       []models.FacetOption{},
		Occasions:    []models.FacetOption{},
	}
	for _, fabric := range sortedKeys(fabricCounts) {
		facets.Fabrics = append(facets.Fabrics, models.FacetOption{Value: fabric, Count: fabricCounts[fabric]})
	}
	for _, color := range sortedKeys(colorCounts) {
		facets.Colors = append(facets.Colors, models.FacetOption{
			Value: color,
			Title: models.SwatchTitle(color),
			Count: colorCounts[color],
		})
	}
	for _, occasion := range sortedKeys(occasionSet) {
		needle := strings.ToLower(occasion)
		count := 0
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Occasion), needle) {
				count++
			}
		}
		facets.Occasions = append(facets.Occasions, models.FacetOption{Value: occasion, Count: count})
	}
	return facets
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// AllProducts lists every active product, newest first unless sorted
func (s *CatalogService) AllProducts(ctx context.Context, query url.Values) (*models.ListingPage, error) {
	sort := filter_engine.ParseSort(query.Get("sort"))
	return s.listing(ctx, "All Products", ProductQuery{
		Sort: sort,
		Page: ParsePage(query.Get("page")),
	}, sort)
}

// NewArrivals lists products added in the last 30 days
func (s *CatalogService) NewArrivals(ctx context.Context, query url.Values) (*models.ListingPage, error) {
	return s.listing(ctx, "New Arrivals", ProductQuery{
		CreatedSince: s.now().Add(-NewArrivalWindow),
		Sort:         filter_engine.SortNewest,
		Page:         ParsePage(query.Get("page")),
	}, "")
}

// Offers lists products discounted by 30% or more, biggest discount first
func (s *CatalogService) Offers(ctx context.Context, query url.Values) (*models.ListingPage, error) {
	return s.listing(ctx, "Special Offers", ProductQuery{
		MinDiscount: OfferMinDiscount,
		Sort:        filter_engine.SortDiscount,
		Page:        ParsePage(query.Get("page")),
	}, "")
}

// Search matches q against product name, fabric, occasion and category name
func (s *CatalogService) Search(ctx context.Context, q string, query url.Values) (*models.ListingPage, error) {
	page, err := s.listing(ctx, "Search Results", ProductQuery{
		Search: q,
		Page:   ParsePage(query.Get("page")),
	}, "")
	if err != nil {
		return nil, err
	}
	page.Query = q
	return page, nil
}

func (s *CatalogService) listing(ctx context.Context, title string, q ProductQuery, currentSort string) (*models.ListingPage, error) {
	q.Limit = s.pageSize
	page, err := s.store.Products(ctx, q)
	if err != nil {
		return nil, err
	}
	return &models.ListingPage{
		PageTitle:     title,
		Products:      s.cards(page.Products),
		TotalProducts: page.Total,
		CurrentSort:   currentSort,
		Pagination:    models.NewPagination(page.Page, s.pageSize, page.Total),
	}, nil
}

func (s *CatalogService) cards(products []models.Product) []models.ProductCard {
	cards := make([]models.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, models.NewProductCard(p, s.coverImage(p)))
	}
	return cards
}

// coverImage is the first image of the first color
func (s *CatalogService) coverImage(p models.Product) string {
	for _, c := range p.Colors {
		if images := s.colorImages(c); len(images) > 0 {
			return images[0]
		}
	}
	return ""
}

func (s *CatalogService) colorImages(c models.ProductColor) []string {
	images := slices.Clone([]models.ColorImage(c.Images))
	slices.SortStableFunc(images, func(a, b models.ColorImage) int { return a.Order - b.Order })

	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, s.media.ImageURL(img.Source))
	}
	return urls
}

// ProductDetail renders one product with its colors. The first color is
// preselected.
func (s *CatalogService) ProductDetail(ctx context.Context, slug string) (*models.ProductDetail, error) {
	product, err := s.store.ProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	detail := &models.ProductDetail{
		Product:       *product,
		Badge:         product.BadgeText(),
		Occasions:     product.Occasions(),
		Colors:        make([]models.ColorView, 0, len(product.Colors)),
		ImagesByColor: make(map[string][]string, len(product.Colors)),
	}
	for _, c := range product.Colors {
		view := models.ColorView{
			ID:       c.ID.String(),
			Name:     c.Name,
			Gradient: c.Gradient,
			Images:   s.colorImages(c),
		}
		detail.Colors = append(detail.Colors, view)
		detail.ImagesByColor[view.ID] = view.Images
	}
	if len(detail.Colors) > 0 {
		selected := detail.Colors[0]
		detail.SelectedColor = &selected
	}
	return detail, nil
}

// Categories lists the active categories with their product counts
func (s *CatalogService) Categories(ctx context.Context) ([]models.CategoryWithCount, error) {
	if cached, ok := category_cache.GetCategories(); ok {
		return cached, nil
	}
	categories, err := s.store.ActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.CategoryWithCount{}
	}
	category_cache.SetCategories(categories)
	return categories, nil
}

// CheckPincode answers whether a pincode is delivered to and how fast
func (s *CatalogService) CheckPincode(ctx context.Context, code string) (models.PincodeResponse, error) {
	code = strings.TrimSpace(code)
	if err := validateForm(PincodeForm{Pincode: code}); err != nil {
		return models.PincodeResponse{}, err
	}

	pincode, err := s.store.ServiceablePincode(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return models.PincodeResponse{
			Success:     true,
			Serviceable: false,
			Message:     "Sorry, we do not deliver to this pincode yet.",
		}, nil
	}
	if err != nil {
		return models.PincodeResponse{}, err
	}
	return pincode.Quote(s.now()), nil
}

func pageURL(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
