package ecommerce_routes

import (
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/cart_controller"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes sets up the session cart and wishlist routes
func SetupCartRoutes(router gin.IRouter) {
	router.POST("/add-to-cart/", cart_controller.AddToCart)
	router.POST("/remove-from-cart/", cart_controller.RemoveFromCart)
	router.GET("/get-cart-count/", cart_controller.GetCartCount)
	router.GET("/cart/", cart_controller.GetCartPage)

	router.POST("/add-to-wishlist/", cart_controller.AddToWishlist)
	router.POST("/remove-from-wishlist/", cart_controller.RemoveFromWishlist)
	router.GET("/get-wishlist-items/", cart_controller.GetWishlistItems)
	router.GET("/wishlist/", cart_controller.GetWishlistPage)
}
