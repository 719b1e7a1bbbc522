package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	category_cache "github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

type seedColor struct {
	Name   string
	Images []string
}

type seedProduct struct {
	Category     string
	Name         string
	Slug         string
	Fabric       string
	PrimaryColor string
	Occasion     string
	Price        float64
	Original     float64
	Badge        string
	Bestseller   bool
	InStock      bool
	Colors       []seedColor
}

var seedCategories = []models.Category{
	{Name: "Silk Sarees", Slug: "silk-sarees", Description: "Handwoven silk from Kanchipuram, Banaras and Chanderi", SortOrder: 1, IsActive: true},
	{Name: "Designer Kurtis", Slug: "designer-kurtis", Description: "Everyday and festive kurtis", SortOrder: 2, IsActive: true},
	{Name: "Bridal Lehengas", Slug: "bridal-lehengas", Description: "Lehengas for the big day", SortOrder: 3, IsActive: true},
	{Name: "Ethnic Sets", Slug: "ethnic-sets", Description: "Co-ordinated sets for every occasion", SortOrder: 4, IsActive: true},
}

var seedProducts = []seedProduct{
	{Category: "silk-sarees", Name: "Kanjivaram Red Silk Saree", Slug: "kanjivaram-red", Fabric: "Kanjivaram Silk", PrimaryColor: "Red", Occasion: "Wedding, Festival", Price: 12499, Original: 17999, Badge: models.BadgeBestseller, Bestseller: true, InStock: true,
		Colors: []seedColor{{Name: "Royal Red", Images: []string{"kanjivaram-red-1.jpg", "kanjivaram-red-2.jpg"}}, {Name: "Golden Yellow", Images: []string{"kanjivaram-gold-1.jpg"}}}},
	{Category: "silk-sarees", Name: "Banarasi Gold Zari Saree", Slug: "banarasi-gold", Fabric: "Banarasi Silk", PrimaryColor: "Gold", Occasion: "Wedding", Price: 8999, Original: 10999, Badge: models.BadgeDiscount, InStock: true,
		Colors: []seedColor{{Name: "Golden Yellow", Images: []string{"banarasi-gold-1.jpg"}}}},
	{Category: "silk-sarees", Name: "Chanderi Red Festive Saree", Slug: "chanderi-red", Fabric: "Chanderi", PrimaryColor: "Red", Occasion: "Festival, Party", Price: 3499, Original: 5999, Badge: models.BadgeDiscount, InStock: true,
		Colors: []seedColor{{Name: "Royal Red", Images: []string{"chanderi-red-1.jpg"}}, {Name: "Pink Blush", Images: []string{"chanderi-pink-1.jpg"}}}},
	{Category: "silk-sarees", Name: "Tussar Emerald Saree", Slug: "tussar-emerald", Fabric: "Tussar Silk", PrimaryColor: "Green", Occasion: "Party", Price: 4599, Original: 4599, Badge: models.BadgeNew, InStock: false,
		Colors: []seedColor{{Name: "Emerald Green", Images: []string{"tussar-emerald-1.jpg"}}}},
	{Category: "designer-kurtis", Name: "Block Print Cotton Kurti", Slug: "block-print-kurti", Fabric: "Cotton", PrimaryColor: "Blue", Occasion: "Casual", Price: 899, Original: 1499, Badge: models.BadgeDiscount, InStock: true,
		Colors: []seedColor{{Name: "Royal Blue", Images: []string{"block-print-blue-1.jpg"}}}},
	{Category: "designer-kurtis", Name: "Chikankari Linen Kurti", Slug: "chikankari-linen", Fabric: "Linen", PrimaryColor: "White", Occasion: "Casual, Festival", Price: 1899, Original: 2499, Badge: models.BadgeBestseller, Bestseller: true, InStock: true,
		Colors: []seedColor{{Name: "Ivory White", Images: []string{"chikankari-white-1.jpg"}}}},
	{Category: "bridal-lehengas", Name: "Maroon Velvet Bridal Lehenga", Slug: "maroon-velvet-lehenga", Fabric: "Velvet", PrimaryColor: "Maroon", Occasion: "Wedding", Price: 45999, Original: 59999, Badge: models.BadgeDiscount, InStock: true,
		Colors: []seedColor{{Name: "Maroon", Images: []string{"maroon-lehenga-1.jpg", "maroon-lehenga-2.jpg"}}}},
	{Category: "ethnic-sets", Name: "Purple Georgette Sharara Set", Slug: "purple-sharara", Fabric: "Georgette", PrimaryColor: "Purple", Occasion: "Party, Festival", Price: 3299, Original: 4999, Badge: models.BadgeDiscount, InStock: true,
		Colors: []seedColor{{Name: "Royal Purple", Images: []string{"purple-sharara-1.jpg"}}}},
}

var seedPincodes = []models.Pincode{
	{Code: "110001", City: "New Delhi", State: "Delhi", StandardDeliveryDays: 4, ExpressDeliveryDays: 2, ExpressDeliveryCharge: 99, CODAvailable: true, IsServiceable: true},
	{Code: "400001", City: "Mumbai", State: "Maharashtra", StandardDeliveryDays: 5, ExpressDeliveryDays: 2, ExpressDeliveryCharge: 99, CODAvailable: true, IsServiceable: true},
	{Code: "560001", City: "Bengaluru", State: "Karnataka", StandardDeliveryDays: 5, ExpressDeliveryDays: 3, ExpressDeliveryCharge: 129, CODAvailable: true, IsServiceable: true},
	{Code: "600001", City: "Chennai", State: "Tamil Nadu", StandardDeliveryDays: 5, ExpressDeliveryDays: 2, ExpressDeliveryCharge: 99, CODAvailable: false, IsServiceable: true},
	{Code: "700001", City: "Kolkata", State: "West Bengal", StandardDeliveryDays: 6, ExpressDeliveryDays: 3, ExpressDeliveryCharge: 149, CODAvailable: true, IsServiceable: true},
}

// main migrates the storefront schema and loads the demo catalog.
// Usage: go run cmd/seed/main.go
// Set SEED_IMAGE_DIR together with the Cloudinary keys to upload the images.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MODEVA STOREFRONT - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	db := config.StoreGorm
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductColor{},
		&models.Pincode{},
		&models.Customer{},
		&models.LoginOTP{},
		&models.LoginEvent{},
		&models.HeroBanner{},
		&models.FestivalBanner{},
		&models.SiteSetting{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	uploader := newUploader()

	categories, err := seedCategoryRows(db)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	log.Printf("✓ %d categories ready", len(categories))

	created := 0
	for _, sp := range seedProducts {
		ok, err := seedProductRow(db, categories, sp, uploader)
		if err != nil {
			log.Fatalf("Failed to seed product %s: %v", sp.Slug, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("✓ %d products created, %d already present", created, len(seedProducts)-created)

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pincode"}},
		DoUpdates: clause.AssignmentColumns([]string{"city", "state", "standard_delivery_days", "express_delivery_days", "express_delivery_charge", "cod_available", "is_serviceable"}),
	}).Create(&seedPincodes).Error; err != nil {
		log.Fatalf("Failed to seed pincodes: %v", err)
	}
	log.Printf("✓ %d pincodes upserted", len(seedPincodes))

	if err := seedStorefrontContent(db); err != nil {
		log.Fatalf("Failed to seed home page content: %v", err)
	}
	log.Println("✓ Site settings and banners ready")

	category_cache.Invalidate()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("Next steps:")
	fmt.Println("1. Start the storefront: go run main.go")
	fmt.Println("2. Open GET /category/silk-sarees/ or GET /api/v1/store/categories")
	fmt.Println()
}

func seedCategoryRows(db *gorm.DB) (map[string]models.Category, error) {
	out := make(map[string]models.Category, len(seedCategories))
	for _, c := range seedCategories {
		row := c
		if err := db.Where(models.Category{Slug: c.Slug}).Attrs(c).FirstOrCreate(&row).Error; err != nil {
			return nil, err
		}
		out[row.Slug] = row
	}
	return out, nil
}

// seedProductRow creates the product with its colors unless the slug exists.
func seedProductRow(db *gorm.DB, categories map[string]models.Category, sp seedProduct, up *uploader) (bool, error) {
	var existing models.Product
	err := db.Where("slug = ?", sp.Slug).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	cat, ok := categories[sp.Category]
	if !ok {
		return false, fmt.Errorf("unknown category %q", sp.Category)
	}

	discount := 0
	if sp.Original > sp.Price {
		discount = int((sp.Original - sp.Price) / sp.Original * 100)
	}

	p := models.Product{
		CategoryID:      &cat.ID,
		Name:            sp.Name,
		Slug:            sp.Slug,
		Brand:           "Modeva",
		Description:     sp.Name + " from the Modeva collection.",
		PrimaryColor:    sp.PrimaryColor,
		CurrentPrice:    sp.Price,
		OriginalPrice:   sp.Original,
		DiscountPercent: discount,
		BadgeType:       sp.Badge,
		Fabric:          sp.Fabric,
		Occasion:        sp.Occasion,
		InStock:         sp.InStock,
		IsBestseller:    sp.Bestseller,
		IsActive:        true,
		Rating:          4.5,
	}
	for _, sc := range sp.Colors {
		color := models.ProductColor{Name: sc.Name}
		for i, img := range sc.Images {
			color.Images = append(color.Images, models.ColorImage{Source: up.source(sp.Slug, img), Order: i})
		}
		if color.Images == nil {
			color.Images = datatypes.JSONSlice[models.ColorImage]{}
		}
		p.Colors = append(p.Colors, color)
	}

	return true, db.Create(&p).Error
}

// uploader pushes local seed images to Cloudinary when configured.
// Without it the image file name is stored and served from /static.
type uploader struct {
	dir   string
	media *services.MediaService
}

// seedStorefrontContent creates the settings row, a hero banner and a festival
// banner running for the next two weeks. Existing rows are left alone.
func seedStorefrontContent(db *gorm.DB) error {
	setting := models.DefaultSiteSetting("Modeva")
	setting.Email = "care@modeva.in"
	setting.Phone = "9876543210"
	if err := db.Where(models.SiteSetting{}).FirstOrCreate(&setting).Error; err != nil {
		return err
	}

	banner := models.HeroBanner{
		Title:       "The Wedding Edit",
		Subtitle:    "Handwoven silks for every ceremony",
		Image:       "/static/images/banners/wedding-edit.jpg",
		ButtonText1: "Shop Sarees",
		ButtonLink1: "/category/silk-sarees/",
		IsActive:    true,
	}
	if err := db.Where(models.HeroBanner{Title: banner.Title}).FirstOrCreate(&banner).Error; err != nil {
		return err
	}

	today := models.StartOfDay(time.Now())
	festival := models.FestivalBanner{
		FestivalName:    "Festive Season",
		FestivalTag:     "Limited Time",
		Title:           "Festive Sale",
		OfferPercentage: "40%",
		CouponCode:      "FESTIVE40",
		IsActive:        true,
		StartDate:       today,
		EndDate:         today.AddDate(0, 0, 14),
	}
	return db.Where(models.FestivalBanner{FestivalName: festival.FestivalName}).FirstOrCreate(&festival).Error
}

func newUploader() *uploader {
	dir := os.Getenv("SEED_IMAGE_DIR")
	name := os.Getenv("CLOUDINARY_CLOUD_NAME")
	if dir == "" || name == "" {
		log.Println("⚠️ SEED_IMAGE_DIR or Cloudinary not set, storing static image paths")
		return &uploader{}
	}
	media, err := services.NewMediaService(name, os.Getenv("CLOUDINARY_API_KEY"), os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}
	return &uploader{dir: dir, media: media}
}

func (u *uploader) source(slug, file string) string {
	if u.media == nil {
		return "/static/images/products/" + file
	}
	ctx, cancel := config.WithTimeout()
	defer cancel()
	publicID := strings.TrimSuffix(file, filepath.Ext(file))
	id, err := u.media.UploadImage(ctx, filepath.Join(u.dir, file), publicID, "modeva/products/"+slug)
	if err != nil {
		log.Printf("⚠️ upload of %s failed, keeping static path: %v", file, err)
		return "/static/images/products/" + file
	}
	return id
}
