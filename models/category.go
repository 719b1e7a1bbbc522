package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryGradients colors the category tiles that have no uploaded image.
var categoryGradients = map[string]string{
	"Silk Sarees":     "linear-gradient(135deg, #C41E3A 0%, #8B0000 100%)",
	"Designer Kurtis": "linear-gradient(135deg, #4B0082 0%, #8B008B 100%)",
	"Bridal Lehengas": "linear-gradient(135deg, #D4AF37 0%, #FFD700 100%)",
	"Ethnic Sets":     "linear-gradient(135deg, #2E8B57 0%, #3CB371 100%)",
}

const defaultGradient = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"

// Category groups storefront products into collections
type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Slug        string    `json:"slug" gorm:"type:varchar(120);uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Image       *string   `json:"image,omitempty" gorm:"type:text"`
	Gradient    string    `json:"gradient" gorm:"type:varchar(200)"`
	IsActive    bool      `json:"is_active" gorm:"not null;index"`
	SortOrder   int       `json:"order" gorm:"column:sort_order;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "categories"
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// BeforeSave keeps the tile gradient in step with the name
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Gradient = GradientFor(categoryGradients, c.Name)
	return nil
}

// GradientFor looks a name up in a gradient table.
func GradientFor(table map[string]string, name string) string {
	if g, ok := table[name]; ok {
		return g
	}
	return defaultGradient
}

// CategoryWithCount is a category plus its active product count
type CategoryWithCount struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Image        *string   `json:"image,omitempty"`
	Gradient     string    `json:"gradient"`
	ProductCount int       `json:"product_count"`
}
