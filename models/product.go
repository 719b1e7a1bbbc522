package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/filter_engine"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BadgeDiscount   = "discount"
	BadgeBestseller = "bestseller"
	BadgeNew        = "new"
)

// swatchTitles describes each primary color on the filter swatches.
var swatchTitles = map[string]string{
	"Red":    "Royal Red",
	"Gold":   "Golden Yellow",
	"Blue":   "Royal Blue",
	"Green":  "Emerald Green",
	"Purple": "Royal Purple",
	"Pink":   "Pink Blush",
	"Orange": "Orange",
	"Black":  "Black",
	"White":  "Ivory White",
	"Maroon": "Maroon",
}

// SwatchTitle is the descriptive title of a primary color swatch.
func SwatchTitle(color string) string {
	if t, ok := swatchTitles[color]; ok {
		return t
	}
	return color
}

var colorGradients = map[string]string{
	"Royal Red":     "linear-gradient(135deg, #C41E3A 0%, #8B0000 100%)",
	"Golden Yellow": "linear-gradient(135deg, #D4AF37 0%, #FFD700 100%)",
	"Royal Purple":  "linear-gradient(135deg, #4B0082 0%, #8B008B 100%)",
	"Emerald Green": "linear-gradient(135deg, #2E8B57 0%, #3CB371 100%)",
	"Royal Blue":    "linear-gradient(135deg, #00008B 0%, #4169E1 100%)",
	"Pink Blush":    "linear-gradient(135deg, #FF69B4 0%, #FFB6C1 100%)",
	"Maroon":        "linear-gradient(135deg, #800000 0%, #B22222 100%)",
	"Navy Blue":     "linear-gradient(135deg, #000080 0%, #1E90FF 100%)",
	"Orange":        "linear-gradient(135deg, #FF8C00 0%, #FFA500 100%)",
	"Black":         "linear-gradient(135deg, #000000 0%, #434343 100%)",
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID      *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`
	Category        *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Name            string     `json:"name" gorm:"type:varchar(200);not null;index"`
	Slug            string     `json:"slug" gorm:"type:varchar(220);uniqueIndex;not null"`
	Brand           string     `json:"brand" gorm:"type:varchar(100);default:'Modeva'"`
	Description     string     `json:"description" gorm:"type:text"`
	PrimaryColor    string     `json:"primary_color" gorm:"type:varchar(50);default:'Red'"`
	CurrentPrice    float64    `json:"current_price" gorm:"type:numeric(10,2);not null;check:current_price >= 0"`
	OriginalPrice   float64    `json:"original_price" gorm:"type:numeric(10,2);not null"`
	DiscountPercent int        `json:"discount_percent" gorm:"default:0;index"`
	Rating          float64    `json:"rating" gorm:"type:numeric(2,1);default:4.5"`
	RatingCount     int        `json:"rating_count" gorm:"default:0"`
	ReviewCount     int        `json:"review_count" gorm:"default:0"`
	BadgeType       string     `json:"badge_type" gorm:"type:varchar(20);default:'discount'"`
	Fabric          string     `json:"fabric" gorm:"type:varchar(100);default:'Pure Silk';index"`
	Length          string     `json:"length" gorm:"type:varchar(50);default:'5.5 meters'"`
	BlousePiece     string     `json:"blouse_piece" gorm:"type:varchar(100)"`
	WeaveType       string     `json:"weave_type" gorm:"type:varchar(100);default:'Handloom'"`
	WorkDetails     string     `json:"work_details" gorm:"type:varchar(200)"`
	Occasion        string     `json:"occasion" gorm:"type:varchar(200);default:'Wedding, Festival'"`
	InStock         bool       `json:"in_stock" gorm:"not null"`
	IsBestseller    bool       `json:"is_bestseller" gorm:"default:false;index"`
	IsActive        bool       `json:"is_active" gorm:"not null;index"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Colors []ProductColor `json:"colors,omitempty" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "products"
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// BadgeText is the ribbon shown on the product card
func (p Product) BadgeText() string {
	switch p.BadgeType {
	case BadgeBestseller:
		return "Bestseller"
	case BadgeNew:
		return "New"
	default:
		return fmt.Sprintf("%d%% OFF", p.DiscountPercent)
	}
}

// Occasions splits the combined occasion token
func (p Product) Occasions() []string {
	var out []string
	for _, o := range strings.Split(p.Occasion, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// FilterItem is the product as the collection filter sees it
func (p Product) FilterItem() filter_engine.Item {
	return filter_engine.Item{
		ID:       p.Slug,
		Fabric:   p.Fabric,
		Color:    p.PrimaryColor,
		Occasion: p.Occasion,
		Price:    p.CurrentPrice,
		Discount: p.DiscountPercent,
		InStock:  p.InStock,
	}
}

// ═══════════════════════════════════════════════════════════
// Colors and their image sets
// ═══════════════════════════════════════════════════════════

// ColorImage is one gallery image. Source is either a full URL or a
// Cloudinary public ID.
type ColorImage struct {
	Source string `json:"source"`
	Order  int    `json:"order"`
}

type ProductColor struct {
	ID        uuid.UUID                       `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID                       `json:"product_id" gorm:"type:uuid;not null;index"`
	Name      string                          `json:"name" gorm:"type:varchar(50);not null"`
	Gradient  string                          `json:"gradient" gorm:"type:varchar(200)"`
	Images    datatypes.JSONSlice[ColorImage] `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time                       `json:"created_at" gorm:"autoCreateTime"`
}

func (ProductColor) TableName() string {
	return "product_colors"
}

func (c *ProductColor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// BeforeSave keeps the swatch gradient in step with the color name
func (c *ProductColor) BeforeSave(tx *gorm.DB) error {
	c.Gradient = GradientFor(colorGradients, c.Name)
	return nil
}
