package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/filter_engine"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// storeNow is a whole second in UTC; sqlite compares stored times as text.
var storeNow = time.Date(2024, 10, 20, 12, 0, 0, 0, time.UTC)

func openStoreDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductColor{},
		&models.Pincode{},
		&models.Customer{},
		&models.LoginOTP{},
		&models.HeroBanner{},
		&models.FestivalBanner{},
		&models.SiteSetting{},
	))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type catalogRows struct {
	t  *testing.T
	db *gorm.DB
}

func (r catalogRows) category(name, slug string, order int, active bool) models.Category {
	r.t.Helper()
	c := models.Category{Name: name, Slug: slug, SortOrder: order, IsActive: active}
	require.NoError(r.t, r.db.Create(&c).Error)
	return c
}

// product inserts an active, in-stock product; edit tweaks it before insert.
func (r catalogRows) product(cat models.Category, name string, edit func(*models.Product)) models.Product {
	r.t.Helper()
	p := models.Product{
		CategoryID:    &cat.ID,
		Name:          name,
		Slug:          name,
		Fabric:        "Cotton",
		PrimaryColor:  "Red",
		Occasion:      "Casual",
		CurrentPrice:  999,
		OriginalPrice: 1999,
		InStock:       true,
		IsActive:      true,
		CreatedAt:     storeNow.AddDate(0, 0, -60),
	}
	if edit != nil {
		edit(&p)
	}
	require.NoError(r.t, r.db.Create(&p).Error)
	return p
}

func slugsOf(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Slug)
	}
	return out
}

func TestGormCatalogStore_SearchMatchesProductAndCategoryFields(t *testing.T) {
	db := openStoreDB(t)
	rows := catalogRows{t, db}
	sarees := rows.category("Silk Sarees", "silk-sarees", 1, true)
	kurtis := rows.category("Designer Kurtis", "designer-kurtis", 2, true)
	sets := rows.category("Ethnic Sets", "ethnic-sets", 3, true)

	rows.product(sarees, "kanjivaram-red", func(p *models.Product) { p.Fabric = "Pure Silk"; p.Occasion = "Wedding" })
	rows.product(kurtis, "anarkali-teal", func(p *models.Product) { p.Fabric = "Georgette" })
	rows.product(sets, "velvet-lehenga", func(p *models.Product) { p.Fabric = "Velvet"; p.Occasion = "Bridal, Reception" })
	rows.product(sarees, "hidden-silk", func(p *models.Product) { p.IsActive = false })

	store := NewGormCatalogStore(db)
	cases := map[string][]string{
		"KANJI":     {"kanjivaram-red"},
		"georgette": {"anarkali-teal"},
		"reception": {"velvet-lehenga"},
		"kurtis":    {"anarkali-teal"},
		"silk":      {"kanjivaram-red"},
		"organza":   {},
	}
	for search, want := range cases {
		t.Run(search, func(t *testing.T) {
			page, err := store.Products(context.Background(), ProductQuery{Search: search, Page: 1, Limit: 10})
			require.NoError(t, err)
			assert.ElementsMatch(t, want, slugsOf(page.Products))
			assert.Equal(t, len(want), page.Total)
		})
	}
}

func TestGormCatalogStore_SearchTreatsWildcardsLiterally(t *testing.T) {
	db := openStoreDB(t)
	rows := catalogRows{t, db}
	cat := rows.category("Dupattas", "dupattas", 1, true)
	rows.product(cat, "100% cotton dupatta", nil)
	rows.product(cat, "kota_doria", nil)
	rows.product(cat, "kota-doria", nil)

	store := NewGormCatalogStore(db)
	page, err := store.Products(context.Background(), ProductQuery{Search: "0%", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"100% cotton dupatta"}, slugsOf(page.Products))

	page, err = store.Products(context.Background(), ProductQuery{Search: "a_d", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"kota_doria"}, slugsOf(page.Products))
}

func TestGormCatalogStore_OffersAndBestsellers(t *testing.T) {
	db := openStoreDB(t)
	rows := catalogRows{t, db}
	cat := rows.category("Silk Sarees", "silk-sarees", 1, true)
	rows.product(cat, "off-29", func(p *models.Product) { p.DiscountPercent = 29 })
	rows.product(cat, "off-30", func(p *models.Product) { p.DiscountPercent = 30; p.IsBestseller = true })
	rows.product(cat, "off-45", func(p *models.Product) { p.DiscountPercent = 45 })
	rows.product(cat, "retired-bestseller", func(p *models.Product) { p.IsBestseller = true; p.IsActive = false })

	store := NewGormCatalogStore(db)
	offers, err := store.Products(context.Background(), ProductQuery{
		MinDiscount: OfferMinDiscount, Sort: filter_engine.SortDiscount, Page: 1, Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"off-45", "off-30"}, slugsOf(offers.Products))
	assert.Equal(t, 2, offers.Total)

	best, err := store.Products(context.Background(), ProductQuery{BestsellerOnly: true, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"off-30"}, slugsOf(best.Products))
}

func TestGormCatalogStore_NewArrivalWindow(t *testing.T) {
	db := openStoreDB(t)
	rows := catalogRows{t, db}
	cat := rows.category("Silk Sarees", "silk-sarees", 1, true)
	for _, days := range []int{10, 29, 31} {
		d := days
		rows.product(cat, fmt.Sprintf("%d-days-old", d), func(p *models.Product) { p.CreatedAt = storeNow.AddDate(0, 0, -d) })
	}

	page, err := NewGormCatalogStore(db).Products(context.Background(), ProductQuery{
		CreatedSince: storeNow.Add(-NewArrivalWindow),
		Sort:         filter_engine.SortNewest,
		Page:         1,
		Limit:        10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"10-days-old", "29-days-old"}, slugsOf(page.Products))
}

func TestGormCatalogStore_ClampsPastTheLastPage(t *testing.T) {
	db := openStoreDB(t)
	rows := catalogRows{t, db}
	cat := rows.category("Silk Sarees", "silk-sarees", 1, true)
	rows.product(cat, "a", func(p *models.Product) { p.CurrentPrice = 100 })
	rows.product(cat, "b", func(p *models.Product) { p.CurrentPrice = 200 })
	rows.product(cat, "c", func(p *models.Product) { p.CurrentPrice = 300 })

	page, err := NewGormCatalogStore(db).Products(context.Background(), ProductQuery{
		CategoryID: &cat.ID, Sort: filter_engine.SortPriceLow, Page: 5, Limit: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, []string{"c"}, slugsOf(page.Products))
}

func TestGormCatalogStore_FalseFlagsArePersisted(t *testing.T) {
	db := openStoreDB(t)
	rows := catalogRows{t, db}
	hidden := rows.category("Hidden", "hidden", 1, false)
	cat := rows.category("Silk Sarees", "silk-sarees", 2, true)
	rows.product(cat, "sold-out", func(p *models.Product) { p.InStock = false })
	rows.product(cat, "retired", func(p *models.Product) { p.IsActive = false })

	var stored models.Product
	require.NoError(t, db.Where("slug = ?", "sold-out").First(&stored).Error)
	assert.False(t, stored.InStock)

	store := NewGormCatalogStore(db)
	_, err := store.CategoryBySlug(context.Background(), hidden.Slug)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.ProductBySlug(context.Background(), "retired")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := store.CategoryProducts(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"sold-out"}, slugsOf(all))

	require.NoError(t, db.Create(&[]models.Pincode{
		{Code: "600001", City: "Chennai", State: "Tamil Nadu", StandardDeliveryDays: 5, CODAvailable: false, IsServiceable: true},
		{Code: "799001", City: "Agartala", State: "Tripura", IsServiceable: false},
	}).Error)
	pin, err := store.ServiceablePincode(context.Background(), "600001")
	require.NoError(t, err)
	assert.False(t, pin.CODAvailable)
	_, err = store.ServiceablePincode(context.Background(), "799001")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormCatalogStore_ActiveCategoriesCountActiveProducts(t *testing.T) {
	db := openStoreDB(t)
	rows := catalogRows{t, db}
	kurtis := rows.category("Designer Kurtis", "designer-kurtis", 2, true)
	sarees := rows.category("Silk Sarees", "silk-sarees", 1, true)
	rows.category("Ethnic Sets", "ethnic-sets", 2, true)
	rows.category("Archive", "archive", 0, false)
	rows.product(sarees, "s1", nil)
	rows.product(sarees, "s2", nil)
	rows.product(sarees, "s3", func(p *models.Product) { p.IsActive = false })
	rows.product(kurtis, "k1", nil)

	got, err := NewGormCatalogStore(db).ActiveCategories(context.Background())
	require.NoError(t, err)

	counts := make([]string, 0, len(got))
	for _, c := range got {
		counts = append(counts, fmt.Sprintf("%s=%d", c.Slug, c.ProductCount))
	}
	assert.Equal(t, []string{"silk-sarees=2", "designer-kurtis=1", "ethnic-sets=0"}, counts)
}

func TestGormCatalogStore_ProductBySlugOrdersColors(t *testing.T) {
	db := openStoreDB(t)
	rows := catalogRows{t, db}
	cat := rows.category("Silk Sarees", "silk-sarees", 1, true)
	p := rows.product(cat, "kanjivaram-red", func(p *models.Product) {
		p.Colors = []models.ProductColor{
			{Name: "Golden Yellow", CreatedAt: storeNow.Add(2 * time.Second),
				Images: datatypes.NewJSONSlice([]models.ColorImage{{Source: "gold-1", Order: 0}})},
			{Name: "Royal Red", CreatedAt: storeNow,
				Images: datatypes.NewJSONSlice([]models.ColorImage{{Source: "red-2", Order: 1}, {Source: "red-1", Order: 0}})},
		}
	})

	got, err := NewGormCatalogStore(db).ProductBySlug(context.Background(), p.Slug)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Silk Sarees", got.Category.Name)
	require.Len(t, got.Colors, 2)
	assert.Equal(t, "Royal Red", got.Colors[0].Name)
	assert.Equal(t, "Golden Yellow", got.Colors[1].Name)
	assert.Len(t, got.Colors[0].Images, 2)
}

func TestGormCatalogStore_ProductsByIDs(t *testing.T) {
	db := openStoreDB(t)
	rows := catalogRows{t, db}
	cat := rows.category("Silk Sarees", "silk-sarees", 1, true)
	a := rows.product(cat, "a", nil)
	b := rows.product(cat, "b", func(p *models.Product) { p.IsActive = false })
	rows.product(cat, "c", nil)

	store := NewGormCatalogStore(db)
	got, err := store.ProductsByIDs(context.Background(), []uuid.UUID{a.ID, b.ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, slugsOf(got))

	got, err = store.ProductsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGormCatalogStore_HomeContent(t *testing.T) {
	db := openStoreDB(t)
	store := NewGormCatalogStore(db)
	ctx := context.Background()

	_, err := store.SiteSetting(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.FestivalBanner(ctx, storeNow)
	assert.ErrorIs(t, err, ErrNotFound)

	for i, title := range []string{"third", "first", "hidden", "second", "fourth", "fifth"} {
		order := map[string]int{"first": 0, "second": 1, "third": 2, "fourth": 3, "fifth": 4, "hidden": 0}[title]
		require.NoError(t, db.Create(&models.HeroBanner{
			Title: title, Image: title + ".jpg", ButtonLink1: "/offers/", SortOrder: order,
			IsActive: title != "hidden", CreatedAt: storeNow.Add(time.Duration(i) * time.Second),
		}).Error)
	}
	banners, err := store.HeroBanners(ctx, HomeBannerLimit)
	require.NoError(t, err)
	titles := make([]string, 0, len(banners))
	for _, b := range banners {
		titles = append(titles, b.Title)
	}
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, titles)

	day := func(d int) time.Time { return time.Date(2024, 10, d, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, db.Create(&[]models.FestivalBanner{
		{FestivalName: "Navratri", Title: "Navratri", IsActive: true, StartDate: day(3), EndDate: day(12)},
		{FestivalName: "Diwali", Title: "Diwali", IsActive: true, StartDate: day(20), EndDate: day(31)},
		{FestivalName: "Draft", Title: "Draft", IsActive: false, StartDate: day(1), EndDate: day(31)},
	}).Error)

	festival, err := store.FestivalBanner(ctx, time.Date(2024, 10, 31, 21, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Diwali", festival.FestivalName)
	_, err = store.FestivalBanner(ctx, day(15))
	assert.ErrorIs(t, err, ErrNotFound)

	setting := models.DefaultSiteSetting("Modeva")
	setting.EnableCOD = false
	require.NoError(t, db.Create(&setting).Error)
	got, err := store.SiteSetting(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Modeva", got.SiteName)
	assert.False(t, got.EnableCOD)
}
