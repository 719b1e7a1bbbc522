package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/metrics"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// respondCount answers a cart or wishlist change with the new size
func respondCount(c *gin.Context, action, message string, count int, err error) {
	metrics.Get().RecordCartAction(action, err)
	if err != nil {
		var fe *services.FormError
		if errors.As(err, &fe) {
			c.JSON(http.StatusBadRequest, models.ActionFailed(fe.Message))
			return
		}
		log.Printf("❌ [cart] %s failed: %v", action, err)
		c.JSON(http.StatusInternalServerError, models.ActionFailed(services.MessageFor(err)))
		return
	}
	c.JSON(http.StatusOK, models.ActionOK(message).WithCount(count))
}
