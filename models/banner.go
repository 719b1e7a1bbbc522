package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HeroBanner is one slide of the home page carousel
type HeroBanner struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(200);not null"`
	Subtitle    string    `json:"subtitle" gorm:"type:varchar(200)"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image" gorm:"type:text;not null"`
	ButtonText1 string    `json:"button_text_1" gorm:"column:button_text_1;type:varchar(50);default:'Shop Now'"`
	ButtonLink1 string    `json:"button_link_1" gorm:"column:button_link_1;type:varchar(200);not null"`
	ButtonText2 string    `json:"button_text_2,omitempty" gorm:"column:button_text_2;type:varchar(50)"`
	ButtonLink2 string    `json:"button_link_2,omitempty" gorm:"column:button_link_2;type:varchar(200)"`
	SortOrder   int       `json:"order" gorm:"column:sort_order;default:0"`
	IsActive    bool      `json:"is_active" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (HeroBanner) TableName() string {
	return "hero_banners"
}

func (b *HeroBanner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// FestivalBanner promotes a festival sale between two dates
type FestivalBanner struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FestivalName    string    `json:"festival_name" gorm:"type:varchar(200);not null"`
	FestivalTag     string    `json:"festival_tag" gorm:"type:varchar(100)"`
	Title           string    `json:"title" gorm:"type:varchar(200);not null"`
	Description     string    `json:"description" gorm:"type:text"`
	OfferText1      string    `json:"offer_text_1" gorm:"column:offer_text_1;type:varchar(50);default:'UPTO'"`
	OfferPercentage string    `json:"offer_percentage" gorm:"type:varchar(10);default:'50%'"`
	OfferText2      string    `json:"offer_text_2" gorm:"column:offer_text_2;type:varchar(50);default:'OFF'"`
	CouponCode      string    `json:"coupon_code" gorm:"type:varchar(50)"`
	Image           string    `json:"banner_image" gorm:"column:banner_image;type:text"`
	ButtonText      string    `json:"button_text" gorm:"type:varchar(100);default:'Shop Festival Collection'"`
	ButtonLink      string    `json:"button_link" gorm:"type:varchar(200);default:'/offers/'"`
	BgColor1        string    `json:"bg_color_1" gorm:"column:bg_color_1;type:varchar(7);default:'#FF6B6B'"`
	BgColor2        string    `json:"bg_color_2" gorm:"column:bg_color_2;type:varchar(7);default:'#FFE66D'"`
	IsActive        bool      `json:"is_active" gorm:"not null;index"`
	StartDate       time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate         time.Time `json:"end_date" gorm:"type:date;not null"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (FestivalBanner) TableName() string {
	return "festival_banners"
}

func (b *FestivalBanner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// IsRunning reports whether the banner is active on day. Both dates are inclusive.
func (b FestivalBanner) IsRunning(day time.Time) bool {
	d := StartOfDay(day)
	return b.IsActive && !d.Before(StartOfDay(b.StartDate)) && !d.After(StartOfDay(b.EndDate))
}

// StartOfDay truncates t to midnight UTC of its calendar day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SiteSetting is the single row of shop-wide details shown in the header and footer
type SiteSetting struct {
	ID                uint    `json:"-" gorm:"primaryKey"`
	Logo              *string `json:"logo,omitempty" gorm:"type:text"`
	SiteName          string  `json:"site_name" gorm:"type:varchar(100);not null"`
	Tagline           string  `json:"tagline" gorm:"type:varchar(200)"`
	Email             string  `json:"email" gorm:"type:varchar(255)"`
	Phone             string  `json:"phone" gorm:"type:varchar(15)"`
	Address           string  `json:"address" gorm:"type:text"`
	FacebookURL       string  `json:"facebook_url,omitempty" gorm:"type:text"`
	InstagramURL      string  `json:"instagram_url,omitempty" gorm:"type:text"`
	TwitterURL        string  `json:"twitter_url,omitempty" gorm:"type:text"`
	EnableCOD         bool    `json:"enable_cod" gorm:"column:enable_cod;not null"`
	FreeShippingAbove float64 `json:"free_shipping_above" gorm:"type:numeric(10,2);not null"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}

// DefaultSiteSetting is used until a settings row exists
func DefaultSiteSetting(siteName string) SiteSetting {
	return SiteSetting{
		SiteName:          siteName,
		Tagline:           "Elegance Redefined",
		EnableCOD:         true,
		FreeShippingAbove: 999,
	}
}
