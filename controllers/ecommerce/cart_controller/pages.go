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

// GetCartPage godoc
// @Summary Cart page
// @Description Cart lines with their products and line totals. Lines whose product no longer exists are left out.
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartPage}
// @Failure 500 {object} models.ApiResponse
// @Router /cart/ [get]
func GetCartPage(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := services.GetCartService().Cart(ctx, middleware.GetSessionID(c))
	if err != nil {
		log.Printf("⚠️ [cart] read failed: %v", err)
		cart = services.Cart{}
	}

	page, err := services.GetCatalogService().CartPage(ctx, cart)
	if err != nil {
		log.Printf("❌ [cart] page failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched", page))
}

// GetWishlistPage godoc
// @Summary Wishlist page
// @Description Wishlisted products in the order they were added
// @Tags wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.WishlistPage}
// @Failure 500 {object} models.ApiResponse
// @Router /wishlist/ [get]
func GetWishlistPage(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	ids, err := services.GetCartService().Wishlist(ctx, middleware.GetSessionID(c))
	if err != nil {
		log.Printf("⚠️ [wishlist] read failed: %v", err)
		ids = nil
	}

	page, err := services.GetCatalogService().WishlistPage(ctx, ids)
	if err != nil {
		log.Printf("❌ [wishlist] page failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched", page))
}
