package ecommerce_routes

import (
	store_category "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/category_controller"
	store_pincode "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/pincode_controller"
	store_product "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the catalog pages (public, no auth required)
func SetupStorefrontRoutes(router gin.IRouter) {
	router.GET("/", store_product.GetHomePage)
	router.GET("/category/:slug/", store_product.GetCollectionPage)
	router.GET("/product/:slug/", store_product.GetProductDetail)

	router.GET("/all-products/", store_product.GetAllProducts)
	router.GET("/new-arrivals/", store_product.GetNewArrivals)
	router.GET("/offers/", store_product.GetOffers)
	router.GET("/search/", store_product.SearchProducts)

	router.POST("/check-pincode/", store_pincode.CheckPincode)
}

// SetupStoreAPIRoutes registers the JSON catalog API under /api/v1
func SetupStoreAPIRoutes(api *gin.RouterGroup) {
	store := api.Group("/store")
	{
		store.GET("/categories", store_category.GetCategories)
	}
}
