package ecommerce_routes

import (
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every storefront route on router
func SetupRoutes(router *gin.Engine) {
	site := router.Group("")
	site.Use(middleware.Session(), middleware.CSRF(), middleware.CustomerAuth())

	SetupStorefrontRoutes(site)
	SetupAuthRoutes(site)
	SetupCartRoutes(site)

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(100, time.Minute))
	SetupStoreAPIRoutes(api)
}
