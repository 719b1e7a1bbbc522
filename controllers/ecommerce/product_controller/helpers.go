package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// respondCatalogError maps a catalog failure onto the API envelope
func respondCatalogError(c *gin.Context, entity string, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, entity+" not found"))
		return
	}
	log.Printf("❌ [catalog] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch "+entity))
}
