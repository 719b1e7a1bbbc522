package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/metrics"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// GetCollectionPage godoc
// @Summary Get a category collection page
// @Description Returns the category, its filter controls, one page of products and the active-filter tray.
// @Description Filters are read from the query string (fabric, color, occasion, price, discount, in_stock);
// @Description every product carries a visible flag decided by the checked filters.
// @Tags store
// @Produce json
// @Param slug path string true "Category slug"
// @Param sort query string false "featured | price-low | price-high | new | bestseller | rating | discount"
// @Param page query int false "Page number" default(1)
// @Param fabric query []string false "Fabric" collectionFormat(multi)
// @Param color query []string false "Primary color" collectionFormat(multi)
// @Param occasion query []string false "Occasion" collectionFormat(multi)
// @Param price query []string false "Price range, e.g. 0-1000" collectionFormat(multi)
// @Param discount query []string false "Minimum discount percent" collectionFormat(multi)
// @Param in_stock query string false "Only in-stock products"
// @Success 200 {object} models.ApiResponse{data=models.CollectionPage}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /category/{slug}/ [get]
func GetCollectionPage(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := c.Request.URL.Query()
	page, err := services.GetCatalogService().CollectionPage(ctx, c.Param("slug"), query)
	if err != nil {
		respondCatalogError(c, "Category", err)
		return
	}

	shown := 0
	for _, p := range page.Products {
		if p.Visible {
			shown++
		}
	}
	metrics.Get().RecordFilterPass(len(page.ActiveFilters.Tags) > 0, shown, len(page.Products))

	c.JSON(http.StatusOK, models.PaginatedResponse(c, page.ResultsCount, page, page.Pagination))
}
