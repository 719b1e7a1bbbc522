package cart_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Adding a product already in the cart raises its quantity. count is the total quantity in the cart.
// @Tags cart
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-CSRFToken header string true "CSRF token"
// @Param product_id formData string true "Product ID"
// @Param quantity formData int false "Quantity" default(1)
// @Param color formData string false "Color name" default(Default)
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} models.ActionResponse
// @Router /add-to-cart/ [post]
func AddToCart(c *gin.Context) {
	quantity := 1
	if raw := strings.TrimSpace(c.PostForm("quantity")); raw != "" {
		q, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ActionFailed(services.ErrInvalidQuantity.Message))
			return
		}
		quantity = q
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	count, err := services.GetCartService().AddToCart(ctx, middleware.GetSessionID(c),
		c.PostForm("product_id"), quantity, strings.TrimSpace(c.PostForm("color")))
	respondCount(c, "add_to_cart", "Added to cart", count, err)
}

// RemoveFromCart godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-CSRFToken header string true "CSRF token"
// @Param product_id formData string true "Product ID"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} models.ActionResponse
// @Router /remove-from-cart/ [post]
func RemoveFromCart(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	count, err := services.GetCartService().RemoveFromCart(ctx, middleware.GetSessionID(c), c.PostForm("product_id"))
	respondCount(c, "remove_from_cart", "Removed from cart", count, err)
}

// GetCartCount godoc
// @Summary Cart size
// @Description Total quantity across cart lines
// @Tags cart
// @Produce json
// @Success 200 {object} models.CountResponse
// @Router /get-cart-count/ [get]
func GetCartCount(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	count, err := services.GetCartService().CartCount(ctx, middleware.GetSessionID(c))
	if err != nil {
		log.Printf("⚠️ [cart] count failed: %v", err)
	}
	c.JSON(http.StatusOK, models.CountResponse{Count: count})
}
