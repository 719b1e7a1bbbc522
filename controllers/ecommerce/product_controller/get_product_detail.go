package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// GetProductDetail godoc
// @Summary Get product details
// @Description Product with its colors, the preselected color and the ordered images of every color
// @Tags store
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse{data=models.ProductDetail}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /product/{slug}/ [get]
func GetProductDetail(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	detail, err := services.GetCatalogService().ProductDetail(ctx, c.Param("slug"))
	if err != nil {
		respondCatalogError(c, "Product", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched", detail))
}
