package category_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List storefront categories
// @Description Active categories in display order, each with its active product count
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryWithCount}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := services.GetCatalogService().Categories(ctx)
	if err != nil {
		log.Printf("❌ [catalog] categories: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched", categories))
}
