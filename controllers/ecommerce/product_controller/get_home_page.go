package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// GetHomePage godoc
// @Summary Home page
// @Description Site settings, up to 4 hero banners, the running festival banner, up to 8 bestsellers and the active categories
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.HomePage}
// @Failure 500 {object} models.ApiResponse
// @Router / [get]
func GetHomePage(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	home, err := services.GetCatalogService().Home(ctx)
	if err != nil {
		respondCatalogError(c, "Home page", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Home page fetched", home))
}
