package cart_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// AddToWishlist godoc
// @Summary Add a product to the wishlist
// @Tags wishlist
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-CSRFToken header string true "CSRF token"
// @Param product_id formData string true "Product ID"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} models.ActionResponse
// @Router /add-to-wishlist/ [post]
func AddToWishlist(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	count, err := services.GetCartService().AddToWishlist(ctx, middleware.GetSessionID(c), c.PostForm("product_id"))
	respondCount(c, "add_to_wishlist", "Added to wishlist", count, err)
}

// RemoveFromWishlist godoc
// @Summary Remove a product from the wishlist
// @Tags wishlist
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-CSRFToken header string true "CSRF token"
// @Param product_id formData string true "Product ID"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} models.ActionResponse
// @Router /remove-from-wishlist/ [post]
func RemoveFromWishlist(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	count, err := services.GetCartService().RemoveFromWishlist(ctx, middleware.GetSessionID(c), c.PostForm("product_id"))
	respondCount(c, "remove_from_wishlist", "Removed from wishlist", count, err)
}

// GetWishlistItems godoc
// @Summary Wishlist contents
// @Description Product IDs in the order they were added
// @Tags wishlist
// @Produce json
// @Success 200 {object} models.WishlistItemsResponse
// @Router /get-wishlist-items/ [get]
func GetWishlistItems(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := services.GetCartService().Wishlist(ctx, middleware.GetSessionID(c))
	if err != nil {
		log.Printf("⚠️ [wishlist] read failed: %v", err)
		items = []string{}
	}
	c.JSON(http.StatusOK, models.WishlistItemsResponse{Count: len(items), Items: items})
}
