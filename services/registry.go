package services

import (
	"log"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Global Instances
// ════════════════════════════════════════════════════════════

var (
	catalogService *CatalogService
	authService    *AuthService
	cartService    *CartService
)

// InitStorefrontServices wires the services used by the controllers
func InitStorefrontServices(db *gorm.DB, media *MediaService, mailer Mailer) {
	catalogService = NewCatalogService(NewGormCatalogStore(db), media, config.App.PageSize)
	authService = NewAuthService(NewGormCustomerStore(db), GetSessionStore(), mailer, config.App.OTPExpiry)
	cartService = NewCartService(GetSessionStore(), config.App.SessionTTL)
	log.Println("✅ Storefront services initialized")
}

// GetCatalogService returns the global catalog service instance
func GetCatalogService() *CatalogService {
	if catalogService == nil {
		catalogService = NewCatalogService(NewGormCatalogStore(config.StoreGorm), &MediaService{}, config.App.PageSize)
	}
	return catalogService
}

func SetCatalogService(s *CatalogService) { catalogService = s }

// GetAuthService returns the global auth service instance
func GetAuthService() *AuthService {
	if authService == nil {
		log.Fatal("❌ auth service used before InitStorefrontServices")
	}
	return authService
}

func SetAuthService(s *AuthService) { authService = s }

// GetCartService returns the global cart service instance
func GetCartService() *CartService {
	if cartService == nil {
		cartService = NewCartService(GetSessionStore(), config.App.SessionTTL)
	}
	return cartService
}

func SetCartService(s *CartService) { cartService = s }
