package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/filter_engine"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductQuery selects one page of active products
type ProductQuery struct {
	CategoryID     *uuid.UUID
	CreatedSince   time.Time
	MinDiscount    int
	Search         string
	BestsellerOnly bool
	Sort           string
	Page           int
	Limit          int
}

// ProductPage is a page of products plus the size of the whole result
type ProductPage struct {
	Products []models.Product
	Total    int
	Page     int
}

// CatalogStore reads categories, products and pincodes
type CatalogStore interface {
	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	ActiveCategories(ctx context.Context) ([]models.CategoryWithCount, error)
	// CategoryProducts returns every active product of the category, unpaged.
	CategoryProducts(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error)
	Products(ctx context.Context, q ProductQuery) (ProductPage, error)
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ServiceablePincode(ctx context.Context, code string) (*models.Pincode, error)
	// ProductsByIDs returns the active products among ids, in no particular order.
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	HeroBanners(ctx context.Context, limit int) ([]models.HeroBanner, error)
	// FestivalBanner returns the newest active banner whose dates cover day.
	FestivalBanner(ctx context.Context, day time.Time) (*models.FestivalBanner, error)
	SiteSetting(ctx context.Context) (*models.SiteSetting, error)
}

// ParsePage reads the page query parameter. Anything unusable is page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ClampPage keeps page within the pages that exist for total items
func ClampPage(page, total, limit int) int {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || total == 0 {
		return 1
	}
	last := (total + limit - 1) / limit
	if page > last {
		return last
	}
	return page
}

func orderClause(sort string) string {
	switch sort {
	case filter_engine.SortPriceLow:
		return "products.current_price ASC"
	case filter_engine.SortPriceHigh:
		return "products.current_price DESC"
	case filter_engine.SortRating:
		return "products.rating DESC"
	case filter_engine.SortDiscount:
		return "products.discount_percent DESC"
	default:
		return "products.created_at DESC"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern is a case-insensitive LIKE pattern matching s literally
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// ─────────────────────────────────────────────────────────────
// GORM
// ─────────────────────────────────────────────────────────────

type GormCatalogStore struct {
	db *gorm.DB
}

func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{db: db}
}

func orderedColors(db *gorm.DB) *gorm.DB {
	return db.Order("product_colors.created_at ASC")
}

func (s *GormCatalogStore) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormCatalogStore) ActiveCategories(ctx context.Context) ([]models.CategoryWithCount, error) {
	var out []models.CategoryWithCount
	err := s.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("categories.id, categories.name, categories.slug, categories.description, categories.image, categories.gradient, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id AND products.is_active = ?", true).
		Where("categories.is_active = ?", true).
		Group("categories.id").
		Order("categories.sort_order ASC, categories.name ASC").
		Scan(&out).Error
	return out, err
}

func (s *GormCatalogStore) CategoryProducts(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Find(&products).Error
	return products, err
}

func (s *GormCatalogStore) Products(ctx context.Context, q ProductQuery) (ProductPage, error) {
	base := s.db.WithContext(ctx).Model(&models.Product{}).Where("products.is_active = ?", true)

	if q.CategoryID != nil {
		base = base.Where("products.category_id = ?", *q.CategoryID)
	}
	if !q.CreatedSince.IsZero() {
		base = base.Where("products.created_at >= ?", q.CreatedSince)
	}
	if q.MinDiscount > 0 {
		base = base.Where("products.discount_percent >= ?", q.MinDiscount)
	}
	if q.BestsellerOnly {
		base = base.Where("products.is_bestseller = ?", true)
	}
	if q.Search != "" {
		like := containsPattern(q.Search)
		base = base.
			Joins("LEFT JOIN categories ON categories.id = products.category_id").
			Where(`LOWER(products.name) LIKE ? ESCAPE '\' OR LOWER(products.fabric) LIKE ? ESCAPE '\' OR `+
				`LOWER(products.occasion) LIKE ? ESCAPE '\' OR LOWER(categories.name) LIKE ? ESCAPE '\'`,
				like, like, like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ProductPage{}, err
	}

	page := ClampPage(q.Page, int(total), q.Limit)
	var products []models.Product
	err := base.Session(&gorm.Session{}).
		Select("products.*").
		Preload("Colors", orderedColors).
		Order(orderClause(q.Sort)).
		Offset((page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&products).Error
	if err != nil {
		return ProductPage{}, err
	}

	return ProductPage{Products: products, Total: int(total), Page: page}, nil
}

func (s *GormCatalogStore) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Colors", orderedColors).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormCatalogStore) ServiceablePincode(ctx context.Context, code string) (*models.Pincode, error) {
	var pincode models.Pincode
	err := s.db.WithContext(ctx).Where("pincode = ? AND is_serviceable = ?", code, true).First(&pincode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pincode, nil
}

func (s *GormCatalogStore) ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := s.db.WithContext(ctx).
		Preload("Colors", orderedColors).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&products).Error
	return products, err
}

func (s *GormCatalogStore) HeroBanners(ctx context.Context, limit int) ([]models.HeroBanner, error) {
	var banners []models.HeroBanner
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Limit(limit).
		Find(&banners).Error
	return banners, err
}

func (s *GormCatalogStore) FestivalBanner(ctx context.Context, day time.Time) (*models.FestivalBanner, error) {
	day = models.StartOfDay(day)
	var banner models.FestivalBanner
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, day, day).
		Order("created_at DESC").
		First(&banner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (s *GormCatalogStore) SiteSetting(ctx context.Context) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := s.db.WithContext(ctx).Order("id ASC").First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
